package service

import (
	"context"
)

// Engagement event kinds.
const (
	EngagementKindView     = "view"
	EngagementKindFavorite = "favorite"
)

// EngagementEvent represents one view or favorite action on an offer,
// published by the portal and consumed by the engagement worker which folds
// it into the per-offer counters.
type EngagementEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventID    string `json:"event_id"`
	OfferID    string `json:"offer_id"`
	UserID     string `json:"user_id,omitempty"`
	Kind       string `json:"kind"`  // "view" or "favorite"
	Delta      int64  `json:"delta"` // +1, or -1 when a favorite is removed
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEngagementEvent publishes an engagement event for async processing
	PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
