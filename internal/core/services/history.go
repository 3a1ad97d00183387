package services

import (
	"context"

	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes the record of previously opened URLs.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a history service. store may be nil, in which
// case listing yields nothing and clearing is a no-op.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns the most recent entries, newest first, up to limit.
func (s *HistoryService) List(ctx context.Context, limit int) ([]driven.HistoryEntry, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx, limit)
}

// Clear removes all entries.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Clear(ctx)
}
