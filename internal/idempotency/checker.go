package idempotency

import "context"

// Checker decides whether an event id has been processed before.
type Checker interface {
	// FirstSeen atomically marks the event id and reports whether this
	// call was the first sighting. A duplicate returns false.
	FirstSeen(ctx context.Context, eventID string) (bool, error)

	// Close releases the underlying connection.
	Close() error
}
