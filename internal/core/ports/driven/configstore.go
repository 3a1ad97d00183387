package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Well-known configuration keys.
const (
	// ConfigRemoteName is the git remote consulted for a URL.
	// Defaults to origin.
	ConfigRemoteName = "remote.name"

	// ConfigBrowserCommand overrides the platform browser launcher.
	ConfigBrowserCommand = "browser.command"

	// ConfigGitHubToken is the personal access token used for
	// verification requests. Unauthenticated requests work but are
	// heavily rate limited.
	ConfigGitHubToken = "github.token"

	// ConfigHistoryEnabled toggles recording of opened URLs.
	ConfigHistoryEnabled = "history.enabled"
)
