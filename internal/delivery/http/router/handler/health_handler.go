package handler

import (
	"net/http"

	"ruteando/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the liveness probe.
type HealthHandler struct{}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports service liveness.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Servicio disponible")
}
