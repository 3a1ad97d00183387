package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driving"
	"github.com/custodia-labs/repohome-cli/internal/logger"
)

// Ensure OpenService implements the interface.
var _ driving.OpenService = (*OpenService)(nil)

// OpenService runs the full pipeline: lookup, prompt, open, record.
type OpenService struct {
	lookup   driving.LookupService
	prompter driven.Prompter
	browser  driven.Browser
	history  driven.HistoryStore
	now      func() time.Time
}

// NewOpenService creates an open service. history may be nil, in which
// case opened URLs are not recorded.
func NewOpenService(lookup driving.LookupService, prompter driven.Prompter, browser driven.Browser, history driven.HistoryStore) *OpenService {
	return &OpenService{
		lookup:   lookup,
		prompter: prompter,
		browser:  browser,
		history:  history,
		now:      time.Now,
	}
}

// Run discovers the project's URLs, asks the user to pick one and opens
// it in the browser.
func (s *OpenService) Run(ctx context.Context, dir string) error {
	result, err := s.lookup.Lookup(ctx, dir)
	if err != nil {
		return err
	}
	if len(result.Choices) == 0 {
		return domain.ErrNoChoices
	}

	choice, err := s.prompter.Pick(ctx, result.Choices)
	if err != nil {
		return err
	}
	if choice.IsCancel() {
		return domain.ErrCancelled
	}

	if err := s.browser.Open(ctx, choice.URL); err != nil {
		return fmt.Errorf("open %s: %w", choice.URL, err)
	}

	// History is best effort; a failed write never fails the open.
	if s.history != nil {
		entry := driven.HistoryEntry{
			Project:  dir,
			Label:    choice.Label,
			URL:      choice.URL,
			OpenedAt: s.now(),
		}
		if err := s.history.Record(ctx, entry); err != nil {
			logger.Warn("record history: %v", err)
		}
	}

	return nil
}
