package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-graveyard/internal/platform/tui"
	"github.com/vovakirdan/tui-graveyard/internal/registry"
	"github.com/vovakirdan/tui-graveyard/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show the best runs of a level",
	Long: `Display the run history of the given level, best score first.

In a terminal the scores open in an interactive table; use tab to switch
levels. With --plain, or when stdout is not a terminal, the top 10 runs
are printed as text.

Examples:
  graveyard scores graveyard
  graveyard scores crypt --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) error {
	levelID := args[0]

	game, err := registry.Create(levelID)
	if err != nil {
		return fmt.Errorf("%w, run 'graveyard list' to see available levels", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		return printRuns(cmd.OutOrStdout(), store, levelID, game.Title())
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}
	_, err = tui.RunScoreboard(store, width, height, levelID)
	return err
}

// printRuns writes the top 10 runs and the level totals as text.
func printRuns(out io.Writer, store *storage.Store, levelID, title string) error {
	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Runs - %s\n", title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'graveyard play %s' to set the first score!\n", levelID)
		return nil
	}

	format := "  %-4s  %-7s  %-7s  %-5s  %-6s  %-12s  %s\n"
	fmt.Fprintf(out, format, "Rank", "Score", "Outcome", "Kills", "Time", "Player", "Date")
	fmt.Fprintf(out, format, "----", "-----", "-------", "-----", "----", "------", "----")
	for i, r := range runs {
		row := tui.RunRow(i+1, r, flagFPS)
		fmt.Fprintf(out, format, row[0], row[1], row[2], row[3], row[4], row[5],
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(levelID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Runs: %d  Escaped: %d  Average: %.0f\n",
		stats.BestScore, stats.Runs, stats.Wins, stats.AvgScore)
	return nil
}
