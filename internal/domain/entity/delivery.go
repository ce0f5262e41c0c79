package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the closed set of delivery states.
type DeliveryStatus string

const (
	// DeliveryStatusPending is the initial state of every delivery.
	DeliveryStatusPending DeliveryStatus = "pendiente"
	// DeliveryStatusFinished marks a successfully completed delivery; terminal.
	DeliveryStatusFinished DeliveryStatus = "finalizada"
	// DeliveryStatusFailed marks a failed delivery. A further attempt may still
	// be recorded while the route is active.
	DeliveryStatusFailed DeliveryStatus = "fallida"
)

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsValid checks if the DeliveryStatus is a valid value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusFinished, DeliveryStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further attempts may modify the delivery.
// Only finalizada is immutable; a failed delivery can be retried.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusFinished
}

// ParseDeliveryStatus converts a string to a DeliveryStatus, tolerating case
// differences. Returns the zero value when the string names no known state.
func ParseDeliveryStatus(s string) DeliveryStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pendiente":
		return DeliveryStatusPending
	case "finalizada":
		return DeliveryStatusFinished
	case "fallida":
		return DeliveryStatusFailed
	default:
		return DeliveryStatus("")
	}
}

// GPSPoint is a raw driver-reported coordinate pair.
type GPSPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Delivery is the tracked obligation to deliver packages to one address,
// owned by one driver. Its status is the authoritative current state; the
// RouteDelivery link mirrors it per route.
type Delivery struct {
	ID           uuid.UUID      // The unique identifier for the delivery.
	DriverID     uuid.UUID      // Driver responsible for the delivery.
	AddressID    uuid.UUID      // Destination address.
	Status       DeliveryStatus // Authoritative current state.
	Notes        string         // Free-form observations.
	Modifiable   bool           // Cleared when the delivery is created from a started route.
	PackageCount int            // Number of packages for this unit.
	CreatedAt    time.Time      // Timestamp of creation.
	UpdatedAt    time.Time      // Timestamp of the last modification.
}

// RouteDelivery binds a route, a delivery and a route stop. Its state mirrors
// the delivery's on every write path; the two are updated in one transaction.
type RouteDelivery struct {
	ID            uuid.UUID      // The unique identifier for the link.
	RouteID       uuid.UUID      // Owning route.
	DeliveryID    uuid.UUID      // Linked delivery.
	RouteStopID   uuid.UUID      // Stop the delivery is served from.
	Status        DeliveryStatus // Mirror of the delivery's state.
	FailureReason string         // Reason recorded when the delivery failed.
	AssignedAt    *time.Time     // When the link was created (route start).
	AttemptedAt   *time.Time     // When the last attempt touched this link.
	CreatedAt     time.Time      // Timestamp of creation.
	UpdatedAt     time.Time      // Timestamp of the last modification.
}

// DeliveryAttempt is the immutable audit record of one status-changing
// action. Append-only; never updated or deleted.
type DeliveryAttempt struct {
	ID              uuid.UUID      // The unique identifier for the attempt.
	DeliveryID      uuid.UUID      // Delivery the attempt belongs to.
	RouteDeliveryID uuid.UUID      // Link the attempt was recorded through.
	DriverID        uuid.UUID      // Driver that recorded the attempt.
	PreviousStatus  DeliveryStatus // Delivery state before the attempt.
	NewStatus       DeliveryStatus // Delivery state after the attempt.
	Reason          string         // Driver-supplied reason, may be empty.
	Location        *GPSPoint      // Where the attempt was recorded, nil when not reported.
	AttachmentKeys  []string       // Storage keys of uploaded evidence, may be empty.
	CreatedAt       time.Time      // Timestamp of the attempt.
}
