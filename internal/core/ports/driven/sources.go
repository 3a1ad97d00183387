package driven

import (
	"context"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
)

// ManifestSource reads a project manifest from a directory.
// Implementations handle the on-disk format (package.json) and shape
// tolerance; the core only ever sees the tagged domain representation.
type ManifestSource interface {
	// Load reads the manifest for the given project directory.
	// A missing, unreadable, or malformed file returns an empty Manifest
	// together with domain.ErrNoManifest, never a parse failure.
	Load(ctx context.Context, dir string) (domain.Manifest, error)
}

// RemoteSource resolves a version-control remote URL for a project.
type RemoteSource interface {
	// RemoteURL returns the raw URL configured for the named remote,
	// or an empty string when the directory is not a repository or the
	// remote does not exist. The returned value is unnormalised.
	RemoteURL(ctx context.Context, dir, remote string) (string, error)
}
