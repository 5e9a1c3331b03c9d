package service

import (
	"context"
)

// Link event types published to downstream consumers.
const (
	LinkEventCompleted = "link.completed"
	LinkEventRemoved   = "link.removed"
)

// LinkEvent represents a change to a durable link, published after the
// store write succeeds. Publication is best-effort; a failed publish never
// rolls back the link.
type LinkEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`
	PCID        string `json:"pc_id"`
	PCName      string `json:"pc_name,omitempty"`
	ConsoleID   string `json:"console_id,omitempty"`
	OccurredAt  string `json:"occurred_at"`
	InitiatedBy string `json:"initiated_by,omitempty"` // id of the identity that triggered the change
}

// EventPublisher defines the interface for publishing link events to a message queue
type EventPublisher interface {
	// PublishLinkEvent publishes a link lifecycle event for async consumers
	PublishLinkEvent(ctx context.Context, event *LinkEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
