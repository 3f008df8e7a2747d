// Command chargraph is a CLI for working with character-relationship
// graph documents: inspecting them, rendering them to PNG or SVG, and
// listing the shared open-history.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hollisb/chargraph/pkg/graph"
)

var historyDBPath string

var rootCmd = &cobra.Command{
	Use:   "chargraph",
	Short: "Character relationship graph toolkit",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&historyDBPath, "history-db", "",
		"Path to the history database (default ~/.chargraph/history.db)")
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(historyCmd)
}

// defaultHistoryPath resolves the history database location, creating
// the parent directory if needed.
func defaultHistoryPath() (string, error) {
	if historyDBPath != "" {
		return historyDBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, ".chargraph")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return filepath.Join(dir, "history.db"), nil
}

// loadGraph reads and parses a graph document. Malformed JSON parses
// to an empty graph; only I/O failures are errors.
func loadGraph(path string) (*graph.Graph, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return graph.ParseJSON(data), data, nil
}
