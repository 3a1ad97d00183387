package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
)

func TestLauncher_LaunchCommand(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		command  string
		wantName string
		wantArgs []string
	}{
		{
			name:     "darwin",
			goos:     "darwin",
			wantName: "open",
			wantArgs: []string{"https://acme.dev"},
		},
		{
			name:     "windows",
			goos:     "windows",
			wantName: "rundll32",
			wantArgs: []string{"url.dll,FileProtocolHandler", "https://acme.dev"},
		},
		{
			name:     "linux",
			goos:     "linux",
			wantName: "xdg-open",
			wantArgs: []string{"https://acme.dev"},
		},
		{
			name:     "unknown unix falls back to xdg-open",
			goos:     "freebsd",
			wantName: "xdg-open",
			wantArgs: []string{"https://acme.dev"},
		},
		{
			name:     "configured command wins on any platform",
			goos:     "darwin",
			command:  "firefox",
			wantName: "firefox",
			wantArgs: []string{"https://acme.dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Launcher{command: tt.command, goos: tt.goos}
			name, args := l.launchCommand("https://acme.dev")
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestLauncher_Open_EmptyURL(t *testing.T) {
	l := NewLauncher("")

	err := l.Open(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLauncher_Open_MissingLauncher(t *testing.T) {
	l := NewLauncher("definitely-not-a-real-browser-binary")

	err := l.Open(context.Background(), "https://acme.dev")

	assert.Error(t, err)
}
