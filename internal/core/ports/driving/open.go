package driving

import "context"

// OpenService runs the full pipeline: lookup, prompt, open, record.
type OpenService interface {
	// Run discovers the project's URLs, asks the user to pick one and
	// opens it. Returns domain.ErrNoChoices when nothing was found and
	// domain.ErrCancelled when the user dismissed the prompt.
	Run(ctx context.Context, dir string) error
}
