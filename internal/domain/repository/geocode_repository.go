package repository

import (
	"context"
	"errors"

	"ruteando/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGeocodeEntryNotFound is returned on a geocode cache miss.
var ErrGeocodeEntryNotFound = errors.New("geocode entry not found")

// GeocodeRepository defines the interface for the geocode cache: one entry
// per distinct building hash, created lazily and never expired.
type GeocodeRepository interface {
	// Create persists a new cache entry.
	Create(ctx context.Context, entry *entity.GeocodeEntry) error

	// FindByBuildingHash retrieves the cache entry for a building.
	// Returns ErrGeocodeEntryNotFound on a miss.
	FindByBuildingHash(ctx context.Context, buildingHash string) (*entity.GeocodeEntry, error)

	// FindByIDs retrieves the cache entries for the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.GeocodeEntry, error)
}
