package service

import (
	"context"
	"time"
)

// DomainEvent represents a business event published for async consumers,
// such as a course request being submitted or a course getting approved.
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventType  string            `json:"event_type"`
	SubjectID  string            `json:"subject_id"`         // ID of the entity the event is about
	ActorID    string            `json:"actor_id,omitempty"` // ID of the user who triggered the event
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDomainEvent publishes a domain event for async processing
	PublishDomainEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
