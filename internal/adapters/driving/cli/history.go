package cli

import (
	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously opened URLs",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all history entries",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "maximum entries to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	initServices()

	entries, err := historyService.List(cmd.Context(), flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("No history.")
		return nil
	}

	for _, entry := range entries {
		cmd.Printf("%s  %-32s  %s\n", entry.OpenedAt.Format("2006-01-02 15:04"), entry.URL, entry.Project)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	initServices()

	if err := historyService.Clear(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("History cleared.")
	return nil
}
