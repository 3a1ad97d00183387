package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/repohome-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

// runOpen is the root command: discover URLs, prompt, open in browser.
func runOpen(cmd *cobra.Command, args []string) error {
	initServices()

	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	err = openService.Run(cmd.Context(), dir)
	switch {
	case errors.Is(err, domain.ErrCancelled):
		cmd.Println("Cancelled.")
		return nil
	case errors.Is(err, domain.ErrNoChoices):
		return errors.New("no URLs found in package.json or git remote")
	}
	return err
}

// newPrompter picks the interactive picker on a terminal, falling back
// to a plain numbered prompt when stdout is piped.
func newPrompter() driven.Prompter {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.NewPrompter("")
	}
	return newPlainPrompter(os.Stdin, os.Stdout)
}
