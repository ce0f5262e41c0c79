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
	"gorm.io/gorm/clause"
)

// routeRepository implements the domain.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{db: db}
}

// CreateRoute persists a new route together with its ordered stops.
func (repo *routeRepository) CreateRoute(ctx context.Context, route *entity.Route, stops []*entity.RouteStop) error {
	routeM := fromRouteDomain(route)

	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required route information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create route")
	}

	route.ID = routeM.ID
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt

	for _, stop := range stops {
		stop.RouteID = route.ID
		stopM := fromRouteStopDomain(stop)

		if err := repo.db.WithContext(ctx).Create(stopM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrValidationFailed.WrapMessage("duplicate stop order within route")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create route stop")
		}

		stop.ID = stopM.ID
		stop.CreatedAt = stopM.CreatedAt
		stop.UpdatedAt = stopM.UpdatedAt
	}

	return nil
}

// FindRouteByID retrieves a route by its unique ID.
func (repo *routeRepository) FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	var routeM model.RouteModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRouteDomain(&routeM), nil
}

// UpdateRoute updates an existing route record.
func (repo *routeRepository) UpdateRoute(ctx context.Context, route *entity.Route) error {
	routeM := fromRouteDomain(route)

	if err := repo.db.WithContext(ctx).Save(routeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update route")
	}

	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// FindStopsByRoute retrieves all stops of a route ordered by position.
func (repo *routeRepository) FindStopsByRoute(ctx context.Context, routeID uuid.UUID) ([]*entity.RouteStop, error) {
	var stopModels []*model.RouteStopModel
	if err := repo.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("stop_order ASC").
		Find(&stopModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	stops := make([]*entity.RouteStop, 0, len(stopModels))
	for _, stopM := range stopModels {
		stops = append(stops, toRouteStopDomain(stopM))
	}

	return stops, nil
}

// FindFirstUnvisitedStop retrieves the lowest-order stop with Visited=false.
func (repo *routeRepository) FindFirstUnvisitedStop(ctx context.Context, routeID uuid.UUID) (*entity.RouteStop, error) {
	var stopM model.RouteStopModel
	if err := repo.db.WithContext(ctx).
		Where("route_id = ? AND visited = ?", routeID, false).
		Order("stop_order ASC").
		First(&stopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteStopNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRouteStopDomain(&stopM), nil
}

// MarkStopVisited sets the visited flag on a stop.
func (repo *routeRepository) MarkStopVisited(ctx context.Context, stopID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RouteStopModel{}).
		Where("id = ?", stopID).
		Update("visited", true)

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrRouteStopNotFound
	}

	return nil
}

// UpsertRouteLocation stores the last reported driver position for a route.
func (repo *routeRepository) UpsertRouteLocation(ctx context.Context, location *entity.RouteLocation) error {
	locationM := fromRouteLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "route_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"latitude", "longitude", "provider", "accuracy", "updated_at",
			}),
		}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert route location")
	}

	location.ID = locationM.ID
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toRouteDomain converts a GORM RouteModel to a domain Route entity.
func toRouteDomain(data *model.RouteModel) *entity.Route {
	if data == nil {
		return nil
	}

	route := &entity.Route{
		ID:              data.ID,
		Status:          entity.RouteStatus(data.Status),
		TotalDistanceM:  data.TotalDistanceM,
		TotalDurationS:  data.TotalDurationS,
		EncodedPolyline: data.EncodedPolyline,
		ReadOnly:        data.ReadOnly,
		AssignedAt:      data.AssignedAt,
		FinishedAt:      data.FinishedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.CreatedBy != nil {
		route.CreatedBy = *data.CreatedBy
	}
	if data.AssignedTo != nil {
		route.AssignedTo = *data.AssignedTo
	}

	return route
}

// fromRouteDomain converts a domain Route entity to a GORM RouteModel.
func fromRouteDomain(data *entity.Route) *model.RouteModel {
	if data == nil {
		return nil
	}

	routeM := &model.RouteModel{
		ID:              data.ID,
		Status:          data.Status.String(),
		TotalDistanceM:  data.TotalDistanceM,
		TotalDurationS:  data.TotalDurationS,
		EncodedPolyline: data.EncodedPolyline,
		ReadOnly:        data.ReadOnly,
		AssignedAt:      data.AssignedAt,
		FinishedAt:      data.FinishedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.CreatedBy != uuid.Nil {
		createdBy := data.CreatedBy
		routeM.CreatedBy = &createdBy
	}
	if data.AssignedTo != uuid.Nil {
		assignedTo := data.AssignedTo
		routeM.AssignedTo = &assignedTo
	}

	return routeM
}

// toRouteStopDomain converts a GORM RouteStopModel to a domain RouteStop entity.
func toRouteStopDomain(data *model.RouteStopModel) *entity.RouteStop {
	if data == nil {
		return nil
	}

	return &entity.RouteStop{
		ID:             data.ID,
		RouteID:        data.RouteID,
		GeocodeEntryID: data.GeocodeEntryID,
		Order:          data.StopOrder,
		DistancePrevM:  data.DistancePrevM,
		DurationPrevS:  data.DurationPrevS,
		Visited:        data.Visited,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromRouteStopDomain converts a domain RouteStop entity to a GORM RouteStopModel.
func fromRouteStopDomain(data *entity.RouteStop) *model.RouteStopModel {
	if data == nil {
		return nil
	}

	return &model.RouteStopModel{
		ID:             data.ID,
		RouteID:        data.RouteID,
		GeocodeEntryID: data.GeocodeEntryID,
		StopOrder:      data.Order,
		DistancePrevM:  data.DistancePrevM,
		DurationPrevS:  data.DurationPrevS,
		Visited:        data.Visited,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromRouteLocationDomain converts a domain RouteLocation to its GORM model.
func fromRouteLocationDomain(data *entity.RouteLocation) *model.RouteLocationModel {
	if data == nil {
		return nil
	}

	return &model.RouteLocationModel{
		ID:        data.ID,
		RouteID:   data.RouteID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Provider:  data.Provider,
		Accuracy:  data.Accuracy,
		UpdatedAt: data.UpdatedAt,
	}
}
