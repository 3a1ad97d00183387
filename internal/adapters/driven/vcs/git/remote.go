// Package git resolves version-control remote URLs by shelling out to git.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

// commandTimeout bounds the git invocation. Resolving a remote is a local
// config read; anything slower than this is stuck.
const commandTimeout = 5 * time.Second

// Ensure Source implements the interface.
var _ driven.RemoteSource = (*Source)(nil)

// Source resolves remote URLs via the git binary.
type Source struct{}

// NewSource creates a git remote source.
func NewSource() *Source {
	return &Source{}
}

// RemoteURL returns the raw URL configured for the named remote.
// A directory that is not a repository, a missing remote, or an absent
// git binary all yield an error; callers treat that as "no remote".
func (s *Source) RemoteURL(ctx context.Context, dir, remote string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", remote)
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git remote get-url %s: %w", remote, err)
	}

	return strings.TrimSpace(string(out)), nil
}
