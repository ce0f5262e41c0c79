package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"ruteando/internal/delivery/http/response"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	LinkUC usecase.LinkUsecase
	Logger *slog.Logger
}

// LinkHandler holds dependencies for manager-driver linking handlers
type LinkHandler struct {
	linkUC usecase.LinkUsecase
	logger *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		linkUC: params.LinkUC,
		logger: params.Logger,
	}
}

// RedeemCodeRequest represents the request body for redeeming a link code
type RedeemCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// LinkCodeResponse carries a freshly issued code with its QR as base64 PNG
type LinkCodeResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	QRCodePNG string    `json:"qr_code_png,omitempty"`
}

// GenerateCode handles issuing a short-lived linking code for a manager
func (h *LinkHandler) GenerateCode(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return err
	}

	output, err := h.linkUC.GenerateLinkCode(c.Request().Context(), managerID)
	if err != nil {
		return handleAppError(c, err)
	}

	resp := LinkCodeResponse{
		Code:      output.Code,
		ExpiresAt: output.ExpiresAt,
	}
	if len(output.QRCodePNG) > 0 {
		resp.QRCodePNG = base64.StdEncoding.EncodeToString(output.QRCodePNG)
	}

	return response.Success(c, http.StatusCreated, resp, "Código de vinculación generado")
}

// RedeemCode handles a driver consuming a linking code
func (h *LinkHandler) RedeemCode(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RedeemCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Código inválido")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	link, err := h.linkUC.RedeemLinkCode(c.Request().Context(), driverID, req.Code)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link, "Vinculación completada")
}

// Unlink handles removing a manager-driver association
func (h *LinkHandler) Unlink(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return err
	}

	driverID, err := uuid.Parse(c.Param("driver_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de conductor inválido")
	}

	if err := h.linkUC.Unlink(c.Request().Context(), managerID, driverID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Vinculación eliminada"}, "Vinculación eliminada")
}
