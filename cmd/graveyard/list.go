package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-graveyard/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows a list of all registered levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	levels := registry.List()
	out := cmd.OutOrStdout()

	if len(levels) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, l := range levels {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, l.ID, l.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'graveyard play <id>' to play a level.")
}
