package handler

import (
	"log/slog"
	"net/http"

	"ruteando/internal/delivery/http/response"
	"ruteando/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// SwitchRoleRequest represents the request body for switching the active role
type SwitchRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// GetProfile handles retrieving the acting user's account
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Perfil obtenido")
}

// SwitchRole handles changing the role the user operates under
func (h *UserHandler) SwitchRole(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SwitchRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Solicitud de cambio de rol inválida")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.SwitchRole(c.Request().Context(), userID, req.Role)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Rol actualizado")
}
