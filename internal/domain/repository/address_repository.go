package repository

import (
	"context"
	"errors"

	"ruteando/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address persistence. Addresses
// are deduplicated by unit hash: the same unit is stored exactly once.
type AddressRepository interface {
	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUnitHash retrieves the address with the given unit hash.
	// Returns ErrAddressNotFound when the unit has never been sighted.
	FindByUnitHash(ctx context.Context, unitHash string) (*entity.Address, error)

	// FindByGeocodeEntryID retrieves every address (deliverable unit) located
	// at the building of the given geocode cache entry.
	FindByGeocodeEntryID(ctx context.Context, geocodeEntryID uuid.UUID) ([]*entity.Address, error)

	// FindByIDs retrieves the addresses for the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Address, error)

	// UpdatePackageCount sets the expected package count for an address.
	UpdatePackageCount(ctx context.Context, id uuid.UUID, packageCount int) error
}
