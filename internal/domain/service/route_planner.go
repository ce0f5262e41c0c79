package service

import (
	"context"

	"github.com/paulmach/orb"
)

// PlannedLeg is the provider's distance/duration between two consecutive
// points of the computed path.
type PlannedLeg struct {
	DistanceM float64
	DurationS float64
}

// PlannedRoute is the provider's answer for an ordered set of points.
// Legs has length len(points)-1.
type PlannedRoute struct {
	TotalDistanceM  float64
	TotalDurationS  float64
	EncodedPolyline string
	Legs            []PlannedLeg
}

// RoutePlanner obtains an ordered driving path through an external directions
// provider. Callers must pass at least two distinct building-level points;
// the gateway rejects fewer before any external call.
type RoutePlanner interface {
	ComputeRoute(ctx context.Context, points []orb.Point) (*PlannedRoute, error)
}
