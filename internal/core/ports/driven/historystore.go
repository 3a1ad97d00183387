package driven

import (
	"context"
	"time"
)

// HistoryEntry is one recorded URL open.
type HistoryEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Project is the project directory the URL was discovered in.
	Project string

	// Label is the choice label as shown at selection time.
	Label string

	// URL is the opened URL.
	URL string

	// OpenedAt is when the URL was opened.
	OpenedAt time.Time
}

// HistoryStore persists opened URLs.
type HistoryStore interface {
	// Record stores one opened URL.
	Record(ctx context.Context, entry HistoryEntry) error

	// List returns the most recent entries, newest first, up to limit.
	// A non-positive limit returns all entries.
	List(ctx context.Context, limit int) ([]HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
