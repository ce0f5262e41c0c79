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

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("address unit already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid geocode entry reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAddressDomain(&addressM), nil
}

// FindByUnitHash retrieves the address with the given unit hash.
func (repo *addressRepository) FindByUnitHash(ctx context.Context, unitHash string) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("unit_hash = ?", unitHash).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAddressDomain(&addressM), nil
}

// FindByGeocodeEntryID retrieves every deliverable unit of one building.
func (repo *addressRepository) FindByGeocodeEntryID(ctx context.Context, geocodeEntryID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("geocode_entry_id = ?", geocodeEntryID).
		Order("created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindByIDs retrieves the addresses for the given IDs.
func (repo *addressRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Address, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var addressModels []*model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&addressModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdatePackageCount sets the expected package count for an address.
func (repo *addressRepository) UpdatePackageCount(ctx context.Context, id uuid.UUID, packageCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", id).
		Update("package_count", packageCount)

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:             data.ID,
		GeocodeEntryID: data.GeocodeEntryID,
		Street:         data.Street,
		Number:         data.Number,
		Floor:          data.Floor,
		Apartment:      data.Apartment,
		City:           data.City,
		Region:         data.Region,
		Country:        data.Country,
		PostalCode:     data.PostalCode,
		NormalizedText: data.NormalizedText,
		UnitHash:       data.UnitHash,
		BuildingHash:   data.BuildingHash,
		PackageCount:   data.PackageCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:             data.ID,
		GeocodeEntryID: data.GeocodeEntryID,
		Street:         data.Street,
		Number:         data.Number,
		Floor:          data.Floor,
		Apartment:      data.Apartment,
		City:           data.City,
		Region:         data.Region,
		Country:        data.Country,
		PostalCode:     data.PostalCode,
		NormalizedText: data.NormalizedText,
		UnitHash:       data.UnitHash,
		BuildingHash:   data.BuildingHash,
		PackageCount:   data.PackageCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
