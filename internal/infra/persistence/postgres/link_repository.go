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

// linkRepository implements the domain.LinkRepository interface.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{db: db}
}

// CreateLink persists a new manager-driver association.
func (repo *linkRepository) CreateLink(ctx context.Context, link *entity.ManagerDriverLink) error {
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("manager and driver already linked")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// FindLink retrieves the association for a (manager, driver) pair.
func (repo *linkRepository) FindLink(ctx context.Context, managerID, driverID uuid.UUID) (*entity.ManagerDriverLink, error) {
	var linkM model.ManagerDriverLinkModel
	if err := repo.db.WithContext(ctx).
		Where("manager_id = ? AND driver_id = ?", managerID, driverID).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toLinkDomain(&linkM), nil
}

// HasActiveLink reports whether an active association exists for the pair.
func (repo *linkRepository) HasActiveLink(ctx context.Context, managerID, driverID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ManagerDriverLinkModel{}).
		Where("manager_id = ? AND driver_id = ? AND active = ?", managerID, driverID, true).
		Count(&count).Error; err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}

// DeleteLink removes the association for the pair. Hard delete.
func (repo *linkRepository) DeleteLink(ctx context.Context, managerID, driverID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("manager_id = ? AND driver_id = ?", managerID, driverID).
		Delete(&model.ManagerDriverLinkModel{})

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// CreateCode persists a new linking code.
func (repo *linkRepository) CreateCode(ctx context.Context, code *entity.LinkCode) error {
	codeM := fromLinkCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("code value already issued")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create link code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindCodeByValue retrieves a linking code by its value.
func (repo *linkRepository) FindCodeByValue(ctx context.Context, value string) (*entity.LinkCode, error) {
	var codeM model.LinkCodeModel
	if err := repo.db.WithContext(ctx).
		Where("code = ?", value).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkCodeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toLinkCodeDomain(&codeM), nil
}

// DeleteCode removes a linking code after redemption.
func (repo *linkRepository) DeleteCode(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LinkCodeModel{})

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkCodeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLinkDomain converts a GORM ManagerDriverLinkModel to a domain entity.
func toLinkDomain(data *model.ManagerDriverLinkModel) *entity.ManagerDriverLink {
	if data == nil {
		return nil
	}

	return &entity.ManagerDriverLink{
		ID:        data.ID,
		ManagerID: data.ManagerID,
		DriverID:  data.DriverID,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}

// fromLinkDomain converts a domain ManagerDriverLink to its GORM model.
func fromLinkDomain(data *entity.ManagerDriverLink) *model.ManagerDriverLinkModel {
	if data == nil {
		return nil
	}

	return &model.ManagerDriverLinkModel{
		ID:        data.ID,
		ManagerID: data.ManagerID,
		DriverID:  data.DriverID,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}

// toLinkCodeDomain converts a GORM LinkCodeModel to a domain entity.
func toLinkCodeDomain(data *model.LinkCodeModel) *entity.LinkCode {
	if data == nil {
		return nil
	}

	return &entity.LinkCode{
		ID:        data.ID,
		ManagerID: data.ManagerID,
		Code:      data.Code,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

// fromLinkCodeDomain converts a domain LinkCode to its GORM model.
func fromLinkCodeDomain(data *entity.LinkCode) *model.LinkCodeModel {
	if data == nil {
		return nil
	}

	return &model.LinkCodeModel{
		ID:        data.ID,
		ManagerID: data.ManagerID,
		Code:      data.Code,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
