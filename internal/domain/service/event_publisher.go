package service

import "context"

// Delivery event types published for downstream consumers.
const (
	EventAttemptRecorded = "delivery.attempt_recorded"
	EventRouteFinished   = "route.finished"
)

// DeliveryEvent describes a delivery status change for async consumers.
type DeliveryEvent struct {
	Type        string `json:"type"`
	RouteID     string `json:"route_id,omitempty"`
	DeliveryID  string `json:"delivery_id,omitempty"`
	DriverID    string `json:"driver_id"`
	NewStatus   string `json:"new_status,omitempty"`
	FailedCount int    `json:"failed_count,omitempty"`
	OccurredAt  string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishDeliveryEvent publishes a delivery event for async processing.
	PublishDeliveryEvent(ctx context.Context, event *DeliveryEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
