// Package errors defines the application error contract: typed errors
// carrying an HTTP status, a stable business code and a user-facing message.
package errors

import (
	"net/http"

	"ruteando/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are in Spanish, the product's locale.
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		"",
	)

	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Faltan campos obligatorios",
		"",
	)

	ErrInvalidDateFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_FORMAT",
		"Formato de fecha inválido. Use YYYY-MM-DD",
		"",
	)

	ErrInvalidDeliveryStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DELIVERY_STATUS",
		"Estado de entrega inválido",
		"",
	)

	ErrNotEnoughAddresses = NewBaseError(
		http.StatusBadRequest,
		"NOT_ENOUGH_ADDRESSES",
		"Se necesitan al menos dos direcciones válidas para calcular una ruta",
		"",
	)

	ErrNotEnoughUniquePoints = NewBaseError(
		http.StatusBadRequest,
		"NOT_ENOUGH_UNIQUE_POINTS",
		"No hay suficientes ubicaciones únicas para calcular la ruta",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Rol inválido",
		"",
	)

	// Not found errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"Ruta no encontrada",
		"",
	)

	ErrRouteNotActive = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_ACTIVE",
		"Ruta no encontrada o no está en curso",
		"",
	)

	ErrRouteDeliveryNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_DELIVERY_NOT_FOUND",
		"RutaEntrega no encontrada",
		"",
	)

	ErrLinkNotFound = NewBaseError(
		http.StatusNotFound,
		"LINK_NOT_FOUND",
		"No existe relación entre este gestor y conductor",
		"",
	)

	ErrLinkCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"LINK_CODE_NOT_FOUND",
		"Código no encontrado",
		"",
	)

	// Permission errors
	ErrManagerOnly = NewBaseError(
		http.StatusForbidden,
		"MANAGER_ONLY",
		"Funcionalidad exclusiva para gestores con suscripción activa",
		"",
	)

	ErrDriverOnly = NewBaseError(
		http.StatusForbidden,
		"DRIVER_ONLY",
		"Solo los conductores pueden acceder a esta funcionalidad",
		"",
	)

	ErrDriverNotLinked = NewBaseError(
		http.StatusForbidden,
		"DRIVER_NOT_LINKED",
		"El conductor no está vinculado a este gestor",
		"",
	)

	ErrNotRouteOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_ROUTE_OWNER",
		"No tienes permiso para iniciar esta ruta",
		"",
	)

	ErrNotDeliveryOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_DELIVERY_OWNER",
		"El conductor no está autorizado para registrar esta entrega",
		"",
	)

	ErrPremiumRequired = NewBaseError(
		http.StatusForbidden,
		"PREMIUM_REQUIRED",
		"Debes tener una suscripción activa para ser Gestor",
		"",
	)

	ErrRoleNotAllowed = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_ALLOWED",
		"Rol no autorizado para acceder a este recurso",
		"",
	)

	// Conflict errors (invalid state transitions)
	ErrRouteAlreadyAssigned = NewBaseError(
		http.StatusBadRequest,
		"ROUTE_ALREADY_ASSIGNED",
		"La ruta ya está asignada a otro conductor",
		"",
	)

	ErrRouteNotStartable = NewBaseError(
		http.StatusBadRequest,
		"ROUTE_NOT_STARTABLE",
		"No se puede iniciar una ruta en este estado",
		"",
	)

	ErrDeliveryFinalized = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_FINALIZED",
		"La entrega ya fue finalizada y no puede modificarse",
		"",
	)

	ErrLinkCodeExpired = NewBaseError(
		http.StatusBadRequest,
		"LINK_CODE_EXPIRED",
		"El código ha expirado",
		"",
	)

	// External provider errors
	ErrGeocodingFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_FAILED",
		"No se pudieron obtener las coordenadas de la dirección",
		"",
	)

	ErrPlannerUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PLANNER_UNAVAILABLE",
		"Error al consultar el proveedor de rutas",
		"",
	)

	ErrNoRouteFound = NewBaseError(
		http.StatusBadGateway,
		"NO_ROUTE_FOUND",
		"El proveedor no devolvió rutas válidas",
		"",
	)

	// General errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Credenciales inválidas o ausentes",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"La transacción de base de datos falló",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "La operación de base de datos falló"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
