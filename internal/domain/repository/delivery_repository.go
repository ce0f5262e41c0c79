package repository

import (
	"context"
	"errors"
	"time"

	"ruteando/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for delivery persistence.
var (
	// ErrDeliveryNotFound is returned when a delivery is not found.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrRouteDeliveryNotFound is returned when a route-delivery link is not found.
	ErrRouteDeliveryNotFound = errors.New("route delivery not found")
)

// HistoryFilter narrows a delivery history query. Nil fields are ignored.
// Date bounds are inclusive at calendar-date granularity.
type HistoryFilter struct {
	Status   *entity.DeliveryStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// DeliveryRepository defines the interface for deliveries, their per-route
// links and the append-only attempt log.
type DeliveryRepository interface {
	// CreateDelivery persists a new delivery.
	CreateDelivery(ctx context.Context, delivery *entity.Delivery) error

	// CreateRouteDelivery persists a new route-delivery link.
	CreateRouteDelivery(ctx context.Context, link *entity.RouteDelivery) error

	// FindDeliveryByID retrieves a delivery by its unique ID.
	FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// FindRouteDeliveryByID retrieves a route-delivery link by its unique ID.
	FindRouteDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.RouteDelivery, error)

	// UpdateDelivery updates an existing delivery record.
	UpdateDelivery(ctx context.Context, delivery *entity.Delivery) error

	// UpdateRouteDelivery updates an existing route-delivery link.
	UpdateRouteDelivery(ctx context.Context, link *entity.RouteDelivery) error

	// CreateAttempt appends an immutable delivery attempt record.
	CreateAttempt(ctx context.Context, attempt *entity.DeliveryAttempt) error

	// FindPendingDeliveriesByRoute retrieves every delivery linked to the
	// route that is still pending, together with its link.
	FindPendingDeliveriesByRoute(ctx context.Context, routeID uuid.UUID) ([]*entity.Delivery, []*entity.RouteDelivery, error)

	// CountDeliveriesByRoute returns the number of deliveries linked to a route.
	CountDeliveriesByRoute(ctx context.Context, routeID uuid.UUID) (int64, error)

	// FindDeliveriesByDriver retrieves a driver's deliveries, newest first,
	// applying the filter.
	FindDeliveriesByDriver(ctx context.Context, driverID uuid.UUID, filter HistoryFilter) ([]*entity.Delivery, error)

	// FindDeliveriesByDriverAndRouteCreator retrieves a driver's deliveries
	// restricted to routes created by the given manager, applying the filter.
	FindDeliveriesByDriverAndRouteCreator(ctx context.Context, driverID, creatorID uuid.UUID, filter HistoryFilter) ([]*entity.Delivery, error)
}
