package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repohome-cli/internal/adapters/driven/github"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repohome-cli/internal/logger"
)

// repoVerifier is injected by tests; checkVerifier builds the real one.
var repoVerifier driven.RepoVerifier

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Verify the inferred GitHub URLs against the GitHub API",
	Long: `check runs the same inference as the root command, then asks the
GitHub API whether the inferred user and repository actually exist.
Set github.token in the config or GITHUB_TOKEN in the environment to
raise the rate limit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	initServices()

	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	result, err := lookupService.Lookup(cmd.Context(), dir)
	if err != nil {
		return err
	}
	if result.Inference.UserName == "" {
		return errors.New("no GitHub user inferred; nothing to check")
	}

	verifier := checkVerifier(cmd)
	inference := result.Inference

	exists, err := verifier.UserExists(cmd.Context(), inference.UserName)
	if err != nil {
		return err
	}
	printCheck(cmd, "user "+inference.UserName, inference.UserURL(), exists)

	if inference.RepositoryName != "" {
		exists, err = verifier.RepositoryExists(cmd.Context(), inference.UserName, inference.RepositoryName)
		if err != nil {
			return err
		}
		printCheck(cmd, "repository "+inference.UserName+"/"+inference.RepositoryName, inference.RepositoryURL(), exists)
	}

	return nil
}

// checkVerifier returns the injected verifier or builds one against the
// real API, authenticated when a token is available.
func checkVerifier(cmd *cobra.Command) driven.RepoVerifier {
	if repoVerifier != nil {
		return repoVerifier
	}

	token := configString(driven.ConfigGitHubToken)
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		logger.Debug("no GitHub token; using the unauthenticated quota")
	}
	return github.NewVerifier(cmd.Context(), token)
}

func printCheck(cmd *cobra.Command, subject, url string, exists bool) {
	status := "not found"
	if exists {
		status = "found"
	}
	cmd.Printf("%-9s  %s  (%s)\n", status, subject, url)
}
