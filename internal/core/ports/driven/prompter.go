package driven

import (
	"context"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
)

// Prompter presents an ordered choice list and returns the selection.
// Implementations may be a full-screen picker or a plain numbered prompt;
// the core does not care.
type Prompter interface {
	// Pick shows the choices and blocks until the user selects one.
	// Selecting the cancel sentinel, pressing escape, or interrupting
	// returns domain.ErrCancelled.
	Pick(ctx context.Context, choices []domain.Choice) (domain.Choice, error)
}
