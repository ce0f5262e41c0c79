package entity

import (
	"time"

	"github.com/google/uuid"
)

// RouteStatus is the closed set of route lifecycle states.
type RouteStatus string

const (
	// RouteStatusPending is the state of a freshly planned, unassigned route.
	RouteStatusPending RouteStatus = "pendiente"
	// RouteStatusAssigned is entered when a manager assigns the route to a driver.
	RouteStatusAssigned RouteStatus = "asignada"
	// RouteStatusInProgress is entered when the driver starts the route.
	RouteStatusInProgress RouteStatus = "en_curso"
	// RouteStatusFinished is the terminal state entered when the driver finishes.
	RouteStatusFinished RouteStatus = "finalizada"
)

// String returns the string representation of the RouteStatus.
func (s RouteStatus) String() string {
	return string(s)
}

// IsValid checks if the RouteStatus is a valid value.
func (s RouteStatus) IsValid() bool {
	switch s {
	case RouteStatusPending, RouteStatusAssigned, RouteStatusInProgress, RouteStatusFinished:
		return true
	default:
		return false
	}
}

// CanAssign reports whether the route may transition to asignada.
func (s RouteStatus) CanAssign() bool {
	return s == RouteStatusPending
}

// CanStart reports whether the route may transition to en_curso. A pending
// route can be started directly by its creator without assignment.
func (s RouteStatus) CanStart() bool {
	return s == RouteStatusPending || s == RouteStatusAssigned
}

// CanFinish reports whether the route may transition to finalizada.
func (s RouteStatus) CanFinish() bool {
	return s == RouteStatusInProgress
}

// Route is a planned multi-stop delivery run.
type Route struct {
	ID              uuid.UUID   // The unique identifier for the route.
	CreatedBy       uuid.UUID   // User that planned (or assigned) the route; uuid.Nil when unattributed.
	AssignedTo      uuid.UUID   // Driver the route is assigned to; uuid.Nil while unassigned.
	Status          RouteStatus // Current lifecycle state.
	TotalDistanceM  float64     // Total distance in meters as computed by the directions provider.
	TotalDurationS  float64     // Total duration in seconds as computed by the directions provider.
	EncodedPolyline string      // Encoded path geometry for map rendering.
	ReadOnly        bool        // Set on assignment; the stop composition is frozen afterwards.
	AssignedAt      *time.Time  // Timestamp of assignment, nil while unassigned.
	FinishedAt      *time.Time  // Timestamp of finalization, nil until finished.
	CreatedAt       time.Time   // Timestamp of creation.
	UpdatedAt       time.Time   // Timestamp of the last modification.
}

// IsAssigned reports whether the route has a driver.
func (r *Route) IsAssigned() bool {
	return r.AssignedTo != uuid.Nil
}

// CanBeStartedBy reports whether the given user may start this route: either
// the assigned driver or, for self-created routes, the creator.
func (r *Route) CanBeStartedBy(userID uuid.UUID) bool {
	return (r.IsAssigned() && r.AssignedTo == userID) || (r.CreatedBy != uuid.Nil && r.CreatedBy == userID)
}

// RouteStop is one geocoded location along a route's path. It references a
// geocode cache entry rather than an address: a building may host several
// deliverable units.
type RouteStop struct {
	ID             uuid.UUID // The unique identifier for the stop.
	RouteID        uuid.UUID // Owning route.
	GeocodeEntryID uuid.UUID // Cached building location this stop visits.
	Order          int       // 1-based position within the route; sequence-significant.
	DistancePrevM  *float64  // Distance in meters from the previous stop, nil for the first.
	DurationPrevS  *float64  // Duration in seconds from the previous stop, nil for the first.
	Visited        bool      // Set by the proximity checker (or explicit override).
	CreatedAt      time.Time // Timestamp of creation.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// RouteLocation is the last reported driver position while executing a route.
// One per route, overwritten on every proximity check.
type RouteLocation struct {
	ID        uuid.UUID // The unique identifier for the record.
	RouteID   uuid.UUID // Route the position belongs to; unique.
	Latitude  float64   // Reported latitude.
	Longitude float64   // Reported longitude.
	Provider  string    // Position source, e.g. "gps".
	Accuracy  *float64  // Reported accuracy in meters, nil when unknown.
	UpdatedAt time.Time // Timestamp of the last report.
}
