package usecase

import (
	"context"

	"ruteando/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordAttemptInput is one driver-reported delivery outcome.
type RecordAttemptInput struct {
	RouteDeliveryID uuid.UUID        `json:"route_delivery_id" validate:"required"`
	NewStatus       string           `json:"new_status" validate:"required"`
	Reason          string           `json:"reason"`
	Location        *entity.GPSPoint `json:"location,omitempty"`
	AttachmentKeys  []string         `json:"attachment_keys,omitempty"`
}

// AttemptResult is the recorded attempt plus the states it produced.
type AttemptResult struct {
	Attempt  *entity.DeliveryAttempt `json:"attempt"`
	Delivery *entity.Delivery        `json:"delivery"`
	Link     *entity.RouteDelivery   `json:"link"`
}

// HistoryInput scopes a delivery history query. DriverID is required for
// managers and ignored for drivers; dates use YYYY-MM-DD and the status
// filter is case-insensitive.
type HistoryInput struct {
	DriverID *uuid.UUID `json:"driver_id,omitempty"`
	Status   string     `json:"status,omitempty"`
	DateFrom string     `json:"date_from,omitempty"`
	DateTo   string     `json:"date_to,omitempty"`
}

// DeliveryUsecase defines the delivery tracking use cases.
type DeliveryUsecase interface {
	// RecordAttempt appends an immutable attempt record and updates the
	// delivery and its route link in one transaction.
	RecordAttempt(ctx context.Context, driverID uuid.UUID, input *RecordAttemptInput) (*AttemptResult, error)

	// History lists deliveries visible to the acting user under the role
	// rules: drivers see their own, managers see a linked driver's deliveries
	// on routes the manager created.
	History(ctx context.Context, userID uuid.UUID, input *HistoryInput) ([]*entity.Delivery, error)

	// UploadAttachment stores attempt evidence and returns its storage key.
	UploadAttachment(ctx context.Context, driverID uuid.UUID, filename, contentType string, data []byte) (string, error)
}
