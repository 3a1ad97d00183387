package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driving"
)

var flagListJSON bool

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "Print the candidate URLs without opening anything",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "emit the lookup result as JSON")
	rootCmd.AddCommand(listCmd)
}

// listOutput is the JSON shape emitted by list --json.
type listOutput struct {
	URLs      map[string]string `json:"urls"`
	Inference inferenceOutput   `json:"inference"`
	Choices   []choiceOutput    `json:"choices"`
}

type inferenceOutput struct {
	UserName       string `json:"userName,omitempty"`
	RepositoryName string `json:"repositoryName,omitempty"`
	UserURL        string `json:"userUrl,omitempty"`
	RepositoryURL  string `json:"repositoryUrl,omitempty"`
	HasPages       bool   `json:"hasPages"`
	PagesURL       string `json:"pagesUrl,omitempty"`
}

type choiceOutput struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	initServices()

	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	result, err := lookupService.Lookup(cmd.Context(), dir)
	if err != nil {
		return err
	}
	if len(result.Choices) == 0 {
		return errors.New("no URLs found in package.json or git remote")
	}

	if flagListJSON {
		return printListJSON(cmd, result)
	}

	for _, choice := range result.Choices {
		if choice.IsCancel() {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", choice.Label, choice.URL)
	}
	return nil
}

func printListJSON(cmd *cobra.Command, result driving.Lookup) error {
	urls := make(map[string]string)
	for _, field := range domain.FieldOrder {
		if url := result.URLs.Get(field); url != "" {
			urls[string(field)] = url
		}
	}

	out := listOutput{
		URLs: urls,
		Inference: inferenceOutput{
			UserName:       result.Inference.UserName,
			RepositoryName: result.Inference.RepositoryName,
			UserURL:        result.Inference.UserURL(),
			RepositoryURL:  result.Inference.RepositoryURL(),
			HasPages:       result.Inference.HasPages,
			PagesURL:       result.Inference.PagesURL,
		},
	}
	for _, choice := range result.Choices {
		if choice.IsCancel() {
			continue
		}
		out.Choices = append(out.Choices, choiceOutput{Label: choice.Label, URL: choice.URL})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
