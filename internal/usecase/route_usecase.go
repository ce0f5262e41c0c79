package usecase

import (
	"context"

	"ruteando/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanRouteInput selects the resolved addresses to route through, in request
// order. Stops are deduplicated per building.
type PlanRouteInput struct {
	AddressIDs []uuid.UUID `json:"address_ids" validate:"required,min=2"`
}

// RouteWithStops bundles a route and its ordered stops.
type RouteWithStops struct {
	Route *entity.Route       `json:"route"`
	Stops []*entity.RouteStop `json:"stops"`
}

// StartRouteResult reports the deliveries materialized when a route starts.
type StartRouteResult struct {
	Route             *entity.Route `json:"route"`
	DeliveriesCreated int           `json:"deliveries_created"`
}

// FinishRouteResult reports the outcome of finalizing a route.
type FinishRouteResult struct {
	Route       *entity.Route `json:"route"`
	FailedCount int           `json:"failed_count"`
}

// ProximityInput is one driver position report against the active route.
type ProximityInput struct {
	Latitude  float64  `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64  `json:"longitude" validate:"required,min=-180,max=180"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

// ProximityResult is the outcome of a proximity check. When RouteComplete is
// true every stop is visited and the remaining fields are zero.
type ProximityResult struct {
	RouteComplete   bool      `json:"route_complete"`
	StopID          uuid.UUID `json:"stop_id,omitempty"`
	StopOrder       int       `json:"stop_order,omitempty"`
	DistanceM       float64   `json:"distance_m,omitempty"`
	ThresholdM      float64   `json:"threshold_m,omitempty"`
	WithinThreshold bool      `json:"within_threshold"`
	Visited         bool      `json:"visited"`
}

// RouteUsecase defines the route lifecycle use cases.
type RouteUsecase interface {
	// PlanRoute computes a driving path through the buildings of the given
	// addresses and persists the route in the pendiente state.
	PlanRoute(ctx context.Context, userID uuid.UUID, input *PlanRouteInput) (*RouteWithStops, error)

	// AssignRoute hands a pending route to a linked driver. Requires an acting
	// manager with active premium. Idempotent for the same driver.
	AssignRoute(ctx context.Context, managerID, routeID, driverID uuid.UUID) (*entity.Route, error)

	// StartRoute transitions the route to en_curso and materializes one
	// delivery per deliverable unit of every stop, atomically.
	StartRoute(ctx context.Context, driverID, routeID uuid.UUID) (*StartRouteResult, error)

	// FinishRoute transitions the route to finalizada, failing every delivery
	// still pending, atomically.
	FinishRoute(ctx context.Context, driverID, routeID uuid.UUID) (*FinishRouteResult, error)

	// CheckProximity measures the driver's distance to the next unvisited stop
	// and auto-confirms the visit inside the configured threshold.
	CheckProximity(ctx context.Context, driverID, routeID uuid.UUID, input *ProximityInput) (*ProximityResult, error)

	// GetRoute retrieves a route with its ordered stops.
	GetRoute(ctx context.Context, routeID uuid.UUID) (*RouteWithStops, error)
}
