package repository

import (
	"context"
	"errors"

	"ruteando/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for route persistence.
var (
	// ErrRouteNotFound is returned when a route is not found.
	ErrRouteNotFound = errors.New("route not found")
	// ErrRouteStopNotFound is returned when a route has no matching stop.
	ErrRouteStopNotFound = errors.New("route stop not found")
)

// RouteRepository defines the interface for route and route-stop persistence.
type RouteRepository interface {
	// CreateRoute persists a new route together with its ordered stops.
	CreateRoute(ctx context.Context, route *entity.Route, stops []*entity.RouteStop) error

	// FindRouteByID retrieves a route by its unique ID.
	FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)

	// UpdateRoute updates an existing route record.
	UpdateRoute(ctx context.Context, route *entity.Route) error

	// FindStopsByRoute retrieves all stops of a route ordered by their
	// 1-based position.
	FindStopsByRoute(ctx context.Context, routeID uuid.UUID) ([]*entity.RouteStop, error)

	// FindFirstUnvisitedStop retrieves the lowest-order stop with
	// Visited=false. Returns ErrRouteStopNotFound when every stop is visited.
	FindFirstUnvisitedStop(ctx context.Context, routeID uuid.UUID) (*entity.RouteStop, error)

	// MarkStopVisited sets the visited flag on a stop.
	MarkStopVisited(ctx context.Context, stopID uuid.UUID) error

	// UpsertRouteLocation stores the last reported driver position for a
	// route, overwriting any previous report.
	UpsertRouteLocation(ctx context.Context, location *entity.RouteLocation) error
}
