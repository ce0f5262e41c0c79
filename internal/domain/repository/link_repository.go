package repository

import (
	"context"
	"errors"

	"ruteando/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for manager/driver linking.
var (
	// ErrLinkNotFound is returned when no association exists for the pair.
	ErrLinkNotFound = errors.New("manager-driver link not found")
	// ErrLinkCodeNotFound is returned when a linking code does not exist.
	ErrLinkCodeNotFound = errors.New("link code not found")
)

// LinkRepository defines the interface for manager-driver associations and
// their one-time linking codes.
type LinkRepository interface {
	// CreateLink persists a new manager-driver association.
	CreateLink(ctx context.Context, link *entity.ManagerDriverLink) error

	// FindLink retrieves the association for a (manager, driver) pair
	// regardless of its active flag. Returns ErrLinkNotFound when absent.
	FindLink(ctx context.Context, managerID, driverID uuid.UUID) (*entity.ManagerDriverLink, error)

	// HasActiveLink reports whether an active association exists for the pair.
	HasActiveLink(ctx context.Context, managerID, driverID uuid.UUID) (bool, error)

	// DeleteLink removes the association for the pair. Returns
	// ErrLinkNotFound when there is nothing to delete. This is a hard delete:
	// the entity carries an active flag, but revocation removes the row.
	DeleteLink(ctx context.Context, managerID, driverID uuid.UUID) error

	// CreateCode persists a new linking code.
	CreateCode(ctx context.Context, code *entity.LinkCode) error

	// FindCodeByValue retrieves a linking code by its value.
	// Returns ErrLinkCodeNotFound when unknown.
	FindCodeByValue(ctx context.Context, value string) (*entity.LinkCode, error)

	// DeleteCode removes a linking code after redemption.
	DeleteCode(ctx context.Context, id uuid.UUID) error
}
