package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hollisb/chargraph/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the record of recently opened graphs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently opened graphs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No history.")
			return nil
		}

		title := color.New(color.FgCyan)
		for _, e := range entries {
			title.Printf("%-30s", e.Title)
			fmt.Printf("  %s\n", e.AddedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all history entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func openHistory() (*history.Store, error) {
	path, err := defaultHistoryPath()
	if err != nil {
		return nil, err
	}
	return history.Open(path)
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}
