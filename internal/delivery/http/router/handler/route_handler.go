package handler

import (
	"log/slog"
	"net/http"

	"ruteando/internal/delivery/http/response"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler holds dependencies for route lifecycle handlers
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// AssignRouteRequest represents the request body for assigning a route
type AssignRouteRequest struct {
	DriverID uuid.UUID `json:"driver_id" validate:"required"`
}

// Plan handles computing and persisting a new route
func (h *RouteHandler) Plan(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.PlanRouteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Solicitud de planificación inválida")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.routeUC.PlanRoute(c.Request().Context(), userID, &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Ruta planificada")
}

// Get handles retrieving a route with its stops
func (h *RouteHandler) Get(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de ruta inválido")
	}

	result, err := h.routeUC.GetRoute(c.Request().Context(), routeID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Ruta obtenida")
}

// Assign handles handing a pending route to a linked driver
func (h *RouteHandler) Assign(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return err
	}

	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de ruta inválido")
	}

	var req AssignRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Solicitud de asignación inválida")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	route, err := h.routeUC.AssignRoute(c.Request().Context(), managerID, routeID, req.DriverID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route, "Ruta asignada")
}

// Start handles transitioning a route to en_curso
func (h *RouteHandler) Start(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de ruta inválido")
	}

	result, err := h.routeUC.StartRoute(c.Request().Context(), driverID, routeID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Ruta iniciada")
}

// Finish handles transitioning a route to finalizada
func (h *RouteHandler) Finish(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de ruta inválido")
	}

	result, err := h.routeUC.FinishRoute(c.Request().Context(), driverID, routeID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Ruta finalizada")
}

// Proximity handles a driver position report against the active route
func (h *RouteHandler) Proximity(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de ruta inválido")
	}

	var req usecase.ProximityInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Posición inválida")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.routeUC.CheckProximity(c.Request().Context(), driverID, routeID, &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Proximidad verificada")
}
