package driving

import (
	"context"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
)

// Lookup is everything discovered about one project directory.
type Lookup struct {
	// URLs are the normalised URLs extracted from the manifest and remote.
	URLs domain.ExtractedURLs

	// Inference is the GitHub evidence derived from the URLs.
	Inference domain.GitHubInference

	// Choices is the ordered list offered to the user. Empty when
	// nothing was found; otherwise it ends with the cancel sentinel.
	Choices []domain.Choice
}

// LookupService discovers candidate URLs for a project.
type LookupService interface {
	// Lookup reads the manifest and remote for dir, extracts and
	// normalises their URLs, infers GitHub URLs, and builds the choice
	// list. Collaborator failures degrade to missing data; the only
	// error surfaced is a context cancellation.
	Lookup(ctx context.Context, dir string) (Lookup, error)
}
