package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

func newOpenFixture(manifest domain.Manifest) (*OpenService, *fakePrompter, *fakeBrowser, *fakeHistoryStore) {
	lookup := NewLookupService(&fakeManifestSource{manifest: manifest}, nil, "")
	prompter := &fakePrompter{}
	browser := &fakeBrowser{}
	history := &fakeHistoryStore{}
	svc := NewOpenService(lookup, prompter, browser, history)
	svc.now = func() time.Time { return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC) }
	return svc, prompter, browser, history
}

func TestOpenService_Run(t *testing.T) {
	manifest := domain.Manifest{
		Repository: domain.StringField("git+https://github.com/acme/widget.git"),
	}
	svc, prompter, browser, history := newOpenFixture(manifest)
	prompter.pick = 0 // the inferred repository page

	err := svc.Run(context.Background(), "/tmp/widget")

	require.NoError(t, err)
	require.Len(t, browser.opened, 1)
	assert.Equal(t, "https://github.com/acme/widget", browser.opened[0])

	require.Len(t, history.entries, 1)
	assert.Equal(t, "/tmp/widget", history.entries[0].Project)
	assert.Equal(t, "https://github.com/acme/widget", history.entries[0].URL)
	assert.Equal(t, time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC), history.entries[0].OpenedAt)
}

func TestOpenService_Run_NoChoices(t *testing.T) {
	svc, prompter, browser, _ := newOpenFixture(domain.Manifest{})

	err := svc.Run(context.Background(), "/tmp/empty")

	assert.ErrorIs(t, err, domain.ErrNoChoices)
	assert.Nil(t, prompter.offered, "prompt must not be shown for an empty list")
	assert.Empty(t, browser.opened)
}

func TestOpenService_Run_CancelSentinel(t *testing.T) {
	manifest := domain.Manifest{Homepage: domain.StringField("https://acme.dev")}
	svc, prompter, browser, history := newOpenFixture(manifest)
	prompter.pick = 1 // the trailing cancel entry

	err := svc.Run(context.Background(), "/tmp/widget")

	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Empty(t, browser.opened)
	assert.Empty(t, history.entries)
}

func TestOpenService_Run_PrompterCancelled(t *testing.T) {
	manifest := domain.Manifest{Homepage: domain.StringField("https://acme.dev")}
	svc, prompter, browser, _ := newOpenFixture(manifest)
	prompter.err = domain.ErrCancelled

	err := svc.Run(context.Background(), "/tmp/widget")

	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Empty(t, browser.opened)
}

func TestOpenService_Run_BrowserFailure(t *testing.T) {
	manifest := domain.Manifest{Homepage: domain.StringField("https://acme.dev")}
	svc, _, browser, history := newOpenFixture(manifest)
	browser.err = errors.New("no display")

	err := svc.Run(context.Background(), "/tmp/widget")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "https://acme.dev")
	assert.Empty(t, history.entries, "a failed open is not recorded")
}

func TestOpenService_Run_HistoryFailureIsBestEffort(t *testing.T) {
	manifest := domain.Manifest{Homepage: domain.StringField("https://acme.dev")}
	svc, _, browser, history := newOpenFixture(manifest)
	history.recordErr = errors.New("disk full")

	err := svc.Run(context.Background(), "/tmp/widget")

	require.NoError(t, err, "history failures never fail the open")
	assert.Len(t, browser.opened, 1)
}

func TestOpenService_Run_NilHistory(t *testing.T) {
	manifest := domain.Manifest{Homepage: domain.StringField("https://acme.dev")}
	lookup := NewLookupService(&fakeManifestSource{manifest: manifest}, nil, "")
	svc := NewOpenService(lookup, &fakePrompter{}, &fakeBrowser{}, nil)

	err := svc.Run(context.Background(), "/tmp/widget")

	require.NoError(t, err)
}

func TestHistoryService(t *testing.T) {
	store := &fakeHistoryStore{}
	svc := NewHistoryService(store)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, historyEntry("https://acme.dev")))
	require.NoError(t, store.Record(ctx, historyEntry("https://github.com/acme")))

	entries, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, svc.Clear(ctx))
	assert.True(t, store.cleared)
}

func TestHistoryService_NilStore(t *testing.T) {
	svc := NewHistoryService(nil)
	ctx := context.Background()

	entries, err := svc.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, svc.Clear(ctx))
}

func historyEntry(url string) driven.HistoryEntry {
	return driven.HistoryEntry{URL: url, OpenedAt: time.Now()}
}
