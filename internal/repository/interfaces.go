package repository

import (
	"context"
	"time"

	"github.com/almonzeir/sudannnnn/internal/domain"
)

// EventFilter narrows an event query. Zero-valued fields are not applied.
type EventFilter struct {
	ConversationID string
	UserID         string
	Since          time.Time
}

// EventRepository defines the interface for event storage operations
type EventRepository interface {
	// InsertBatch inserts a batch of events into the storage
	InsertBatch(ctx context.Context, events []*domain.Event) (int, error)

	// QueryEvents returns the raw events matching the filter, ordered by
	// created_at ascending. Aggregation happens in the caller, never here.
	QueryEvents(ctx context.Context, filter EventFilter) ([]*domain.Event, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}
