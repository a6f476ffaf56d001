package service

import (
	"context"
	"time"
)

// Event types emitted by the booking and review flows.
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventReviewCreated        = "review.created"
)

// DomainEvent is published after a unit of work commits.
type DomainEvent struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	PropertyID int64          `json:"property_id"`
	ActorID    int64          `json:"actor_id"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing domain events to a message bus.
type EventPublisher interface {
	// Publish delivers an event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
