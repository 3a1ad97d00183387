package cli

import (
	"context"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driving"
)

// mockLookupService returns a fixed lookup result.
type mockLookupService struct {
	result driving.Lookup
	err    error
}

func (m *mockLookupService) Lookup(_ context.Context, _ string) (driving.Lookup, error) {
	return m.result, m.err
}

// mockOpenService records the directory it was run against.
type mockOpenService struct {
	dir string
	err error
}

func (m *mockOpenService) Run(_ context.Context, dir string) error {
	m.dir = dir
	return m.err
}

type mockHistoryService struct {
	entries  []driven.HistoryEntry
	listErr  error
	clearErr error
	cleared  bool
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]driven.HistoryEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if limit > 0 && limit < len(m.entries) {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	return nil
}

// mockVerifier answers existence checks from fixed maps.
type mockVerifier struct {
	users map[string]bool
	repos map[string]bool
	err   error
}

func (m *mockVerifier) UserExists(_ context.Context, user string) (bool, error) {
	return m.users[user], m.err
}

func (m *mockVerifier) RepositoryExists(_ context.Context, user, repo string) (bool, error) {
	return m.repos[user+"/"+repo], m.err
}

// mockConfigStore is an in-memory ConfigStore.
type mockConfigStore struct {
	values map[string]any
	path   string
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{
		values: map[string]any{
			// Keep tests away from the real history database.
			driven.ConfigHistoryEnabled: false,
		},
		path: "/tmp/repohome-test/config.toml",
	}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	val, ok := m.values[key]
	return val, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if val, ok := m.values[key].(string); ok {
		return val
	}
	return ""
}

func (m *mockConfigStore) GetBool(key string) bool {
	if val, ok := m.values[key].(bool); ok {
		return val
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string {
	return m.path
}

// testLookup is a populated lookup shared by the command tests.
func testLookup() driving.Lookup {
	urls := domain.ExtractedURLs{
		Homepage:  "https://acme.dev",
		GitRemote: "https://github.com/acme/widget",
	}
	inference := domain.GitHubInference{
		UserName:       "acme",
		RepositoryName: "widget",
	}
	choices := []domain.Choice{
		{Label: "1. GitHub repository", URL: "https://github.com/acme/widget", Kind: domain.ChoiceRepository},
		{Label: "2. GitHub user", URL: "https://github.com/acme", Kind: domain.ChoiceUser},
		{Label: "3. homepage (package.json)", URL: "https://acme.dev", Kind: domain.ChoiceManifest, Field: domain.FieldHomepage},
		{Label: "4. git remote", URL: "https://github.com/acme/widget", Kind: domain.ChoiceRemote, Field: domain.FieldGitRemote},
		{Label: "5. Cancel", Kind: domain.ChoiceCancel},
	}
	return driving.Lookup{URLs: urls, Inference: inference, Choices: choices}
}

// setupTestServices injects mocks into the package wiring and returns a
// cleanup restoring the previous state.
func setupTestServices() func() {
	origConfig := configStore
	origHistoryStore := historyStore
	origLookup := lookupService
	origOpen := openService
	origHistory := historyService
	origVerifier := repoVerifier

	configStore = newMockConfigStore()
	historyStore = nil
	lookupService = &mockLookupService{result: testLookup()}
	openService = &mockOpenService{}
	historyService = &mockHistoryService{}
	repoVerifier = &mockVerifier{
		users: map[string]bool{"acme": true},
		repos: map[string]bool{"acme/widget": true},
	}

	return func() {
		configStore = origConfig
		historyStore = origHistoryStore
		lookupService = origLookup
		openService = origOpen
		historyService = origHistory
		repoVerifier = origVerifier
	}
}
