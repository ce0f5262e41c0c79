package usecase

import (
	"context"

	"ruteando/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the account use cases.
type UserUsecase interface {
	// GetProfile retrieves the acting user's account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// SwitchRole changes the role the user operates under. Switching to
	// Gestor requires an active premium subscription.
	SwitchRole(ctx context.Context, userID uuid.UUID, role string) (*entity.User, error)
}
