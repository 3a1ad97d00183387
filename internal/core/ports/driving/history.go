package driving

import (
	"context"

	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

// HistoryService exposes the record of previously opened URLs.
type HistoryService interface {
	// List returns the most recent entries, newest first, up to limit.
	List(ctx context.Context, limit int) ([]driven.HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
