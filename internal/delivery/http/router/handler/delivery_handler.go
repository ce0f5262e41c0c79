package handler

import (
	"io"
	"log/slog"
	"net/http"

	"ruteando/internal/delivery/http/response"
	"ruteando/internal/domain/entity"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxAttachmentSize caps uploaded evidence files at 10 MiB.
const maxAttachmentSize = 10 << 20

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler holds dependencies for delivery tracking handlers
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// RecordAttempt handles a driver-reported delivery outcome
func (h *DeliveryHandler) RecordAttempt(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.RecordAttemptInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Intento de entrega inválido")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.deliveryUC.RecordAttempt(c.Request().Context(), driverID, &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Intento registrado")
}

// HistoryResponse carries the visible deliveries with their count
type HistoryResponse struct {
	Deliveries []*entity.Delivery `json:"deliveries"`
	Count      int                `json:"count"`
}

// History handles listing deliveries visible to the acting user
func (h *DeliveryHandler) History(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	input := &usecase.HistoryInput{
		Status:   c.QueryParam("status"),
		DateFrom: c.QueryParam("date_from"),
		DateTo:   c.QueryParam("date_to"),
	}

	if raw := c.QueryParam("driver_id"); raw != "" {
		driverID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Identificador de conductor inválido")
		}
		input.DriverID = &driverID
	}

	deliveries, err := h.deliveryUC.History(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HistoryResponse{
		Deliveries: deliveries,
		Count:      len(deliveries),
	}, "Historial obtenido")
}

// UploadAttachment handles storing attempt evidence and returns its key
func (h *DeliveryHandler) UploadAttachment(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Falta el archivo adjunto")
	}
	if fileHeader.Size > maxAttachmentSize {
		return response.BadRequest(c, "FILE_TOO_LARGE", "El archivo supera el tamaño máximo permitido")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "No se pudo leer el archivo adjunto")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAttachmentSize))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "No se pudo leer el archivo adjunto")
	}

	key, err := h.deliveryUC.UploadAttachment(
		c.Request().Context(),
		driverID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"key": key}, "Adjunto almacenado")
}
