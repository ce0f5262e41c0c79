package usecase

import (
	"context"
	"time"

	"ruteando/internal/domain/entity"

	"github.com/google/uuid"
)

// LinkCodeOutput is a freshly issued linking code with its QR rendering.
type LinkCodeOutput struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	QRCodePNG []byte    `json:"qr_code_png,omitempty"`
}

// LinkUsecase defines the manager-driver linking use cases.
type LinkUsecase interface {
	// GenerateLinkCode issues a short-lived single-use code for a manager.
	GenerateLinkCode(ctx context.Context, managerID uuid.UUID) (*LinkCodeOutput, error)

	// RedeemLinkCode consumes a code and links the driver to its issuing
	// manager. Redeeming while already linked is a no-op success.
	RedeemLinkCode(ctx context.Context, driverID uuid.UUID, code string) (*entity.ManagerDriverLink, error)

	// Unlink removes the association between a manager and a driver.
	Unlink(ctx context.Context, managerID, driverID uuid.UUID) error
}
