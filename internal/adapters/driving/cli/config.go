package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration values.

Known keys:
  remote.name      git remote consulted for a URL (default origin)
  browser.command  override the platform browser launcher
  github.token     personal access token for check requests
  history.enabled  record opened URLs (default true)`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	initServices()
	if configStore == nil {
		return errors.New("configuration not available")
	}

	for _, key := range knownConfigKeys() {
		if val, ok := configStore.Get(key); ok {
			cmd.Printf("%s = %v\n", key, val)
		}
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	initServices()
	if configStore == nil {
		return errors.New("configuration not available")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set: %w", args[0], domain.ErrNotFound)
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	initServices()
	if configStore == nil {
		return errors.New("configuration not available")
	}

	key, raw := args[0], args[1]

	// Booleans are stored typed so GetBool works.
	var value any = raw
	if parsed, err := strconv.ParseBool(raw); err == nil {
		value = parsed
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	cmd.Printf("%s = %v\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	initServices()
	if configStore == nil {
		return errors.New("configuration not available")
	}

	cmd.Println(configStore.Path())
	return nil
}

func knownConfigKeys() []string {
	return []string{
		driven.ConfigRemoteName,
		driven.ConfigBrowserCommand,
		driven.ConfigGitHubToken,
		driven.ConfigHistoryEnabled,
	}
}
