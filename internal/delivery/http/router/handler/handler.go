// Package handler contains the HTTP handlers for the API surface.
package handler

import (
	"ruteando/internal/delivery/http/response"
	domainerrors "ruteando/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// getUserID extracts the authenticated user ID placed on the context by the
// auth middleware.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Token sin identificador de usuario válido")
	}

	return userID, nil
}

// handleAppError renders an AppError with its own HTTP code; anything else
// bubbles up to the global error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
