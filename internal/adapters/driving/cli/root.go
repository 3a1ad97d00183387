// Package cli wires the cobra command tree to the core services.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repohome-cli/internal/adapters/driven/browser"
	configfile "github.com/custodia-labs/repohome-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/repohome-cli/internal/adapters/driven/manifest/npm"
	"github.com/custodia-labs/repohome-cli/internal/adapters/driven/storage/sqlite"
	gitvcs "github.com/custodia-labs/repohome-cli/internal/adapters/driven/vcs/git"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driving"
	"github.com/custodia-labs/repohome-cli/internal/core/services"
	"github.com/custodia-labs/repohome-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose  bool
	flagRemote   string
	flagNoRemote bool
)

// Injected services. Tests replace these with fakes; initServices fills
// in any that are still nil.
var (
	configStore    driven.ConfigStore
	historyStore   driven.HistoryStore
	lookupService  driving.LookupService
	openService    driving.OpenService
	historyService driving.HistoryService
)

var rootCmd = &cobra.Command{
	Use:   "repohome [dir]",
	Short: "Open a project's homepage, repository, or other URLs",
	Long: `repohome inspects a project's package.json (and its git remote) to
discover candidate URLs - homepage, author, repository, issue tracker,
funding, GitHub and GitHub Pages - then lets you pick one and opens it
in your browser.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	RunE: runOpen,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagRemote, "remote", "", "git remote to consult (default origin)")
	rootCmd.PersistentFlags().BoolVar(&flagNoRemote, "no-remote", false, "skip the git remote lookup")
}

// Execute runs the command tree.
func Execute() error {
	defer closeServices()

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrf("Error: %v\n", err)
		return err
	}
	return nil
}

// initServices builds any services the tests have not injected.
func initServices() {
	if configStore == nil {
		store, err := configfile.NewConfigStore("")
		if err != nil {
			logger.Warn("config unavailable: %v", err)
		} else {
			configStore = store
		}
	}

	if lookupService == nil {
		var remotes driven.RemoteSource
		if !flagNoRemote {
			remotes = gitvcs.NewSource()
		}
		lookupService = services.NewLookupService(npm.NewSource(), remotes, remoteName())
	}

	if historyStore == nil && historyEnabled() {
		store, err := sqlite.NewStore("")
		if err != nil {
			logger.Warn("history unavailable: %v", err)
		} else {
			historyStore = store
		}
	}

	if historyService == nil {
		historyService = services.NewHistoryService(historyStore)
	}

	if openService == nil {
		launcher := browser.NewLauncher(configString(driven.ConfigBrowserCommand))
		openService = services.NewOpenService(lookupService, newPrompter(), launcher, historyStore)
	}
}

// closeServices releases long-lived resources.
func closeServices() {
	if historyStore != nil {
		_ = historyStore.Close()
	}
}

// remoteName resolves the remote to consult: flag, then config, then the
// service default.
func remoteName() string {
	if flagRemote != "" {
		return flagRemote
	}
	return configString(driven.ConfigRemoteName)
}

// historyEnabled is true unless the config explicitly disables it.
func historyEnabled() bool {
	if configStore == nil {
		return true
	}
	val, ok := configStore.Get(driven.ConfigHistoryEnabled)
	if !ok {
		return true
	}
	enabled, ok := val.(bool)
	return !ok || enabled
}

func configString(key string) string {
	if configStore == nil {
		return ""
	}
	return configStore.GetString(key)
}

// projectDir resolves the positional directory argument, defaulting to
// the current working directory.
func projectDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return os.Getwd()
}
