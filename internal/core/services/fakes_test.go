package services

import (
	"context"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

// fakeManifestSource returns a canned manifest or error.
type fakeManifestSource struct {
	manifest domain.Manifest
	err      error
}

func (f *fakeManifestSource) Load(_ context.Context, _ string) (domain.Manifest, error) {
	return f.manifest, f.err
}

// fakeRemoteSource returns a canned remote URL or error and records the
// remote name it was asked for.
type fakeRemoteSource struct {
	url       string
	err       error
	askedFor  string
	askedDirs []string
}

func (f *fakeRemoteSource) RemoteURL(_ context.Context, dir, remote string) (string, error) {
	f.askedFor = remote
	f.askedDirs = append(f.askedDirs, dir)
	return f.url, f.err
}

// fakePrompter returns a canned choice by index, or an error.
type fakePrompter struct {
	pick    int
	err     error
	offered []domain.Choice
}

func (f *fakePrompter) Pick(_ context.Context, choices []domain.Choice) (domain.Choice, error) {
	f.offered = choices
	if f.err != nil {
		return domain.Choice{}, f.err
	}
	return choices[f.pick], nil
}

// fakeBrowser records opened URLs.
type fakeBrowser struct {
	opened []string
	err    error
}

func (f *fakeBrowser) Open(_ context.Context, url string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, url)
	return nil
}

// fakeHistoryStore records entries in memory.
type fakeHistoryStore struct {
	entries   []driven.HistoryEntry
	recordErr error
	cleared   bool
}

func (f *fakeHistoryStore) Record(_ context.Context, entry driven.HistoryEntry) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeHistoryStore) List(_ context.Context, limit int) ([]driven.HistoryEntry, error) {
	if limit > 0 && limit < len(f.entries) {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func (f *fakeHistoryStore) Clear(_ context.Context) error {
	f.cleared = true
	f.entries = nil
	return nil
}

func (f *fakeHistoryStore) Close() error { return nil }
