package postgres

import (
	"context"
	"encoding/json"

	"ruteando/internal/domain/entity"
	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/repository"
	"ruteando/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryRepository implements the domain.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// CreateDelivery persists a new delivery.
func (repo *deliveryRepository) CreateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid driver or address reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required delivery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// CreateRouteDelivery persists a new route-delivery link.
func (repo *deliveryRepository) CreateRouteDelivery(ctx context.Context, link *entity.RouteDelivery) error {
	linkM := fromRouteDeliveryDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("delivery already linked to route")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid route, delivery or stop reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create route delivery")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindDeliveryByID retrieves a delivery by its unique ID.
func (repo *deliveryRepository) FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toDeliveryDomain(&deliveryM), nil
}

// FindRouteDeliveryByID retrieves a route-delivery link by its unique ID.
func (repo *deliveryRepository) FindRouteDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.RouteDelivery, error) {
	var linkM model.RouteDeliveryModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteDeliveryNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRouteDeliveryDomain(&linkM), nil
}

// UpdateDelivery updates an existing delivery record.
func (repo *deliveryRepository) UpdateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Save(deliveryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update delivery")
	}

	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// UpdateRouteDelivery updates an existing route-delivery link.
func (repo *deliveryRepository) UpdateRouteDelivery(ctx context.Context, link *entity.RouteDelivery) error {
	linkM := fromRouteDeliveryDomain(link)

	if err := repo.db.WithContext(ctx).Save(linkM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update route delivery")
	}

	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// CreateAttempt appends an immutable delivery attempt record.
func (repo *deliveryRepository) CreateAttempt(ctx context.Context, attempt *entity.DeliveryAttempt) error {
	attemptM, err := fromDeliveryAttemptDomain(attempt)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid delivery or link reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery attempt")
	}

	attempt.ID = attemptM.ID
	attempt.CreatedAt = attemptM.CreatedAt

	return nil
}

// FindPendingDeliveriesByRoute retrieves every still-pending delivery linked
// to the route, together with its link.
func (repo *deliveryRepository) FindPendingDeliveriesByRoute(ctx context.Context, routeID uuid.UUID) ([]*entity.Delivery, []*entity.RouteDelivery, error) {
	var linkModels []*model.RouteDeliveryModel
	if err := repo.db.WithContext(ctx).
		Where("route_id = ? AND status = ?", routeID, entity.DeliveryStatusPending.String()).
		Find(&linkModels).Error; err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if len(linkModels) == 0 {
		return nil, nil, nil
	}

	deliveryIDs := make([]uuid.UUID, 0, len(linkModels))
	links := make([]*entity.RouteDelivery, 0, len(linkModels))
	for _, linkM := range linkModels {
		deliveryIDs = append(deliveryIDs, linkM.DeliveryID)
		links = append(links, toRouteDeliveryDomain(linkM))
	}

	var deliveryModels []*model.DeliveryModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", deliveryIDs).
		Find(&deliveryModels).Error; err != nil {
		return nil, nil, errors.WithStack(err)
	}

	byID := make(map[uuid.UUID]*entity.Delivery, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		byID[deliveryM.ID] = toDeliveryDomain(deliveryM)
	}

	// Keep deliveries aligned with their links.
	deliveries := make([]*entity.Delivery, 0, len(links))
	for _, link := range links {
		deliveries = append(deliveries, byID[link.DeliveryID])
	}

	return deliveries, links, nil
}

// CountDeliveriesByRoute returns the number of deliveries linked to a route.
func (repo *deliveryRepository) CountDeliveriesByRoute(ctx context.Context, routeID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RouteDeliveryModel{}).
		Where("route_id = ?", routeID).
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// FindDeliveriesByDriver retrieves a driver's deliveries, newest first.
func (repo *deliveryRepository) FindDeliveriesByDriver(ctx context.Context, driverID uuid.UUID, filter repository.HistoryFilter) ([]*entity.Delivery, error) {
	query := repo.db.WithContext(ctx).
		Where("driver_id = ?", driverID)
	query = applyHistoryFilter(query, filter)

	var deliveryModels []*model.DeliveryModel
	if err := query.Order("created_at DESC").Find(&deliveryModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

// FindDeliveriesByDriverAndRouteCreator retrieves a driver's deliveries
// restricted to routes created by the given manager.
func (repo *deliveryRepository) FindDeliveriesByDriverAndRouteCreator(ctx context.Context, driverID, creatorID uuid.UUID, filter repository.HistoryFilter) ([]*entity.Delivery, error) {
	query := repo.db.WithContext(ctx).
		Where("deliveries.driver_id = ?", driverID).
		Where("deliveries.id IN (?)", repo.db.
			Table("route_deliveries").
			Select("route_deliveries.delivery_id").
			Joins("JOIN routes ON routes.id = route_deliveries.route_id").
			Where("routes.created_by = ?", creatorID),
		)
	query = applyHistoryFilter(query, filter)

	var deliveryModels []*model.DeliveryModel
	if err := query.Order("deliveries.created_at DESC").Find(&deliveryModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

// applyHistoryFilter narrows a delivery query with the optional status and
// inclusive calendar-date bounds.
func applyHistoryFilter(query *gorm.DB, filter repository.HistoryFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		// End of the DateTo calendar day.
		query = query.Where("created_at < ?", filter.DateTo.AddDate(0, 0, 1))
	}

	return query
}

// --- Mapper Functions ---

// toDeliveryDomain converts a GORM DeliveryModel to a domain Delivery entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:           data.ID,
		DriverID:     data.DriverID,
		AddressID:    data.AddressID,
		Status:       entity.DeliveryStatus(data.Status),
		Notes:        data.Notes,
		Modifiable:   data.Modifiable,
		PackageCount: data.PackageCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromDeliveryDomain converts a domain Delivery entity to a GORM DeliveryModel.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:           data.ID,
		DriverID:     data.DriverID,
		AddressID:    data.AddressID,
		Status:       data.Status.String(),
		Notes:        data.Notes,
		Modifiable:   data.Modifiable,
		PackageCount: data.PackageCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toRouteDeliveryDomain converts a GORM RouteDeliveryModel to a domain RouteDelivery entity.
func toRouteDeliveryDomain(data *model.RouteDeliveryModel) *entity.RouteDelivery {
	if data == nil {
		return nil
	}

	return &entity.RouteDelivery{
		ID:            data.ID,
		RouteID:       data.RouteID,
		DeliveryID:    data.DeliveryID,
		RouteStopID:   data.RouteStopID,
		Status:        entity.DeliveryStatus(data.Status),
		FailureReason: data.FailureReason,
		AssignedAt:    data.AssignedAt,
		AttemptedAt:   data.AttemptedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromRouteDeliveryDomain converts a domain RouteDelivery entity to a GORM RouteDeliveryModel.
func fromRouteDeliveryDomain(data *entity.RouteDelivery) *model.RouteDeliveryModel {
	if data == nil {
		return nil
	}

	return &model.RouteDeliveryModel{
		ID:            data.ID,
		RouteID:       data.RouteID,
		DeliveryID:    data.DeliveryID,
		RouteStopID:   data.RouteStopID,
		Status:        data.Status.String(),
		FailureReason: data.FailureReason,
		AssignedAt:    data.AssignedAt,
		AttemptedAt:   data.AttemptedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromDeliveryAttemptDomain converts a domain DeliveryAttempt to its GORM model.
func fromDeliveryAttemptDomain(data *entity.DeliveryAttempt) (*model.DeliveryAttemptModel, error) {
	if data == nil {
		return nil, nil
	}

	attemptM := &model.DeliveryAttemptModel{
		ID:              data.ID,
		DeliveryID:      data.DeliveryID,
		RouteDeliveryID: data.RouteDeliveryID,
		DriverID:        data.DriverID,
		PreviousStatus:  data.PreviousStatus.String(),
		NewStatus:       data.NewStatus.String(),
		Reason:          data.Reason,
		CreatedAt:       data.CreatedAt,
	}
	if data.Location != nil {
		lat := data.Location.Lat
		lng := data.Location.Lng
		attemptM.Latitude = &lat
		attemptM.Longitude = &lng
	}
	if len(data.AttachmentKeys) > 0 {
		keys, err := json.Marshal(data.AttachmentKeys)
		if err != nil {
			return nil, err
		}
		attemptM.AttachmentKeys = keys
	}

	return attemptM, nil
}
