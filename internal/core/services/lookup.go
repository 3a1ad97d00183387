package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driving"
	"github.com/custodia-labs/repohome-cli/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// DefaultRemoteName is the git remote consulted when none is configured.
const DefaultRemoteName = "origin"

// LookupService discovers candidate URLs for a project directory.
// Collaborator failures degrade to missing data rather than aborting:
// a broken manifest or missing remote simply contributes nothing.
type LookupService struct {
	manifests  driven.ManifestSource
	remotes    driven.RemoteSource
	remoteName string
}

// NewLookupService creates a lookup service. remotes may be nil, in which
// case only manifest evidence feeds the inference. An empty remoteName
// defaults to origin.
func NewLookupService(manifests driven.ManifestSource, remotes driven.RemoteSource, remoteName string) *LookupService {
	if remoteName == "" {
		remoteName = DefaultRemoteName
	}
	return &LookupService{
		manifests:  manifests,
		remotes:    remotes,
		remoteName: remoteName,
	}
}

// Lookup reads the manifest and remote for dir, extracts and normalises
// their URLs, infers GitHub URLs, and builds the choice list.
func (s *LookupService) Lookup(ctx context.Context, dir string) (driving.Lookup, error) {
	if err := ctx.Err(); err != nil {
		return driving.Lookup{}, err
	}

	manifest, err := s.manifests.Load(ctx, dir)
	if err != nil {
		if !errors.Is(err, domain.ErrNoManifest) {
			logger.Warn("manifest load: %v", err)
		}
		manifest = domain.Manifest{}
	}

	urls := ExtractURLs(manifest)

	if s.remotes != nil {
		raw, err := s.remotes.RemoteURL(ctx, dir, s.remoteName)
		if err != nil {
			logger.Debug("remote %q not resolved: %v", s.remoteName, err)
		} else {
			urls.GitRemote = NormaliseRemoteURL(raw)
		}
	}

	inference := InferGitHub(urls)
	logger.Debug("inferred user=%q repository=%q pages=%q observed=%v",
		inference.UserName, inference.RepositoryName, inference.PagesURL, inference.HasPages)

	return driving.Lookup{
		URLs:      urls,
		Inference: inference,
		Choices:   BuildChoices(urls, inference),
	}, nil
}
