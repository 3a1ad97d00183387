// Package browser launches URLs in the user's default browser.
package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

// Ensure Launcher implements the interface.
var _ driven.Browser = (*Launcher)(nil)

// Launcher opens URLs with the platform launcher, or with a user
// configured command when one is set.
type Launcher struct {
	// command overrides the platform launcher when non-empty.
	command string

	// goos is the platform identifier, swappable for tests.
	goos string
}

// NewLauncher creates a browser launcher. command may be empty, in which
// case the platform default is used.
func NewLauncher(command string) *Launcher {
	return &Launcher{command: command, goos: runtime.GOOS}
}

// Open launches the URL. It returns once the launch command has been
// handed to the operating system; it does not wait for the browser.
func (l *Launcher) Open(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("%w: empty url", domain.ErrInvalidInput)
	}

	name, args := l.launchCommand(url)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}

	// Detach: the browser outlives us, reap the launcher in the background.
	go func() { _ = cmd.Wait() }()
	return nil
}

// launchCommand picks the launcher binary and arguments for the platform.
func (l *Launcher) launchCommand(url string) (string, []string) {
	if l.command != "" {
		return l.command, []string{url}
	}

	switch l.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		// Linux and the other Unix-likes.
		return "xdg-open", []string{url}
	}
}
