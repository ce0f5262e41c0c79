package postgres

import (
	"context"

	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/repository"
	"ruteando/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// geocodeRepository implements the domain.GeocodeRepository interface.
type geocodeRepository struct {
	db *gorm.DB
}

// NewGeocodeRepository is the constructor for geocodeRepository.
func NewGeocodeRepository(db *gorm.DB) repository.GeocodeRepository {
	return &geocodeRepository{db: db}
}

// Create persists a new cache entry.
func (repo *geocodeRepository) Create(ctx context.Context, entry *entity.GeocodeEntry) error {
	entryM := fromGeocodeDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("building already cached")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required geocode information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geocode entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindByBuildingHash retrieves the cache entry for a building.
func (repo *geocodeRepository) FindByBuildingHash(ctx context.Context, buildingHash string) (*entity.GeocodeEntry, error) {
	var entryM model.GeocodeEntryModel
	if err := repo.db.WithContext(ctx).
		Where("building_hash = ?", buildingHash).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeocodeEntryNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toGeocodeDomain(&entryM), nil
}

// FindByIDs retrieves the cache entries for the given IDs.
func (repo *geocodeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.GeocodeEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var entryModels []*model.GeocodeEntryModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&entryModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*entity.GeocodeEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toGeocodeDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toGeocodeDomain converts a GORM GeocodeEntryModel to a domain GeocodeEntry entity.
func toGeocodeDomain(data *model.GeocodeEntryModel) *entity.GeocodeEntry {
	if data == nil {
		return nil
	}

	return &entity.GeocodeEntry{
		ID:           data.ID,
		BuildingHash: data.BuildingHash,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Provider:     data.Provider,
		RawResponse:  data.RawResponse,
		CreatedAt:    data.CreatedAt,
	}
}

// fromGeocodeDomain converts a domain GeocodeEntry entity to a GORM GeocodeEntryModel.
func fromGeocodeDomain(data *entity.GeocodeEntry) *model.GeocodeEntryModel {
	if data == nil {
		return nil
	}

	return &model.GeocodeEntryModel{
		ID:           data.ID,
		BuildingHash: data.BuildingHash,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Provider:     data.Provider,
		RawResponse:  data.RawResponse,
		CreatedAt:    data.CreatedAt,
	}
}
