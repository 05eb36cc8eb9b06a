// graveyard is a side-scrolling graveyard platformer played in the terminal.
//
// Usage:
//
//	graveyard list              - List available levels
//	graveyard play [level]      - Play a level, or pick one from the menu
//	graveyard scores <level>    - Show the best runs of a level
//	graveyard serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.graveyard/runs.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-graveyard/internal/games/graveyard"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

// logger is set up before every command runs.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "graveyard",
	Short: "Graveyard - escape the undead in your terminal",
	Long: `Graveyard is a side-scrolling platformer for the terminal. Run past
zombies and biting plants, throw torches, climb ladders and reach the
door at the end of the level.

Available commands:
  list     - Show all available levels
  play     - Play a level (menu when no level is given)
  scores   - View the run history of a level
  serve    - Start SSH server for remote play

Examples:
  graveyard list
  graveyard play graveyard
  graveyard play crypt --difficulty hard
  graveyard scores crypt
  graveyard serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.graveyard/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging opens the log file and hands the logger to the levels.
// Without a file, logs are dropped since the terminal belongs to the UI.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	} else if cmd.Name() == "serve" {
		w = os.Stderr
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "graveyard",
		Level:           level,
	})
	graveyard.SetLogger(logger)
	return nil
}
