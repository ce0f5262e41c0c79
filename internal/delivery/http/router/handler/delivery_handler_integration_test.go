package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ruteando/internal/domain/entity"
	"ruteando/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// stubDeliveryUsecase returns canned values for the handler tests.
type stubDeliveryUsecase struct {
	deliveries []*entity.Delivery
}

func (s *stubDeliveryUsecase) RecordAttempt(context.Context, uuid.UUID, *usecase.RecordAttemptInput) (*usecase.AttemptResult, error) {
	return nil, nil
}

func (s *stubDeliveryUsecase) History(context.Context, uuid.UUID, *usecase.HistoryInput) ([]*entity.Delivery, error) {
	return s.deliveries, nil
}

func (s *stubDeliveryUsecase) UploadAttachment(context.Context, uuid.UUID, string, string, []byte) (string, error) {
	return "", nil
}

func TestDeliveryHandler_History_Integration(t *testing.T) {
	deliveries := []*entity.Delivery{
		{ID: uuid.New(), Status: entity.DeliveryStatusFinished},
		{ID: uuid.New(), Status: entity.DeliveryStatusPending},
	}

	handler := &DeliveryHandler{
		deliveryUC: &stubDeliveryUsecase{deliveries: deliveries},
		logger:     slog.Default(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/deliveries", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	err := handler.History(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	// The payload carries the deliveries together with their count
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"count":2`)
	assert.Contains(t, responseBody, `"deliveries"`)
	assert.Contains(t, responseBody, deliveries[0].ID.String())
	assert.Contains(t, responseBody, "Historial obtenido")
}
