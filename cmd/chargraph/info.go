package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hollisb/chargraph/pkg/graph"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Show node and link counts for a graph document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		// Build against a nominal viewport; only resolution matters here.
		m := graph.Build(g, 800, 600)

		header := color.New(color.FgCyan, color.Bold)
		warn := color.New(color.FgYellow)

		header.Println(args[0])
		fmt.Printf("  nodes: %d\n", len(m.Nodes))
		fmt.Printf("  links: %d resolved\n", len(m.Links))

		roles := make(map[string]int)
		for _, n := range m.Nodes {
			roles[n.Role]++
		}
		for _, role := range []string{"main", "supporting", "minor"} {
			if roles[role] > 0 {
				fmt.Printf("    %-10s %d\n", role, roles[role])
			}
		}
		if other := len(m.Nodes) - roles["main"] - roles["supporting"] - roles["minor"]; other > 0 {
			fmt.Printf("    %-10s %d\n", "other", other)
		}

		if len(m.Dropped) > 0 {
			warn.Printf("  %d link(s) dropped:\n", len(m.Dropped))
			for _, d := range m.Dropped {
				warn.Printf("    %s -> %s (unknown node id)\n", d.Source, d.Target)
			}
		}
		return nil
	},
}
