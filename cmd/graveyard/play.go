package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/games/graveyard"
	"github.com/vovakirdan/tui-graveyard/internal/platform/tui"
	"github.com/vovakirdan/tui-graveyard/internal/registry"
	"github.com/vovakirdan/tui-graveyard/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagKeyHold    int
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, or pick one from the menu.

Controls:
  Left/Right, A/D  - Run
  Up, W            - Jump, climb ladders
  Down, S          - Crouch, climb down
  Z/X/Space, 1     - Throw a torch
  Mouse click      - Throw toward the pointer
  P                - Pause
  R                - Restart (after the run ended)
  Esc              - Back (when paused or after the run ended)
  Q/Ctrl+C         - Quit

Terminals report key presses but no releases, so a press stays held for
--key-hold ticks. Auto-repeat keeps a held key down.

Difficulty options:
  easy   - More health and longer invincibility, slow progression
  normal - Progression starts at 30%
  hard   - Less health, slower throws, progression starts at 70%
  fixed  - No progression, spawn chances stay as configured

Examples:
  graveyard play
  graveyard play graveyard
  graveyard play crypt --difficulty hard
  graveyard play graveyard --config ./my-settings.yaml --key-hold 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagKeyHold, "key-hold", 0, "Ticks a key press stays held (0 = from settings)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	level := ""
	if len(args) == 1 {
		level = args[0]
		if !registry.Exists(level) {
			return fmt.Errorf("unknown level %q, run 'graveyard list' to see available levels", level)
		}
	}

	graveyard.SetConfigPath(flagConfig)
	if err := graveyard.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	hold, err := keyHold(flagConfig, flagKeyHold)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The game still works without run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("run history disabled", "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	opts := tui.Options{
		Store:   store,
		Player:  playerName(),
		KeyHold: hold,
		Logger:  logger,
	}

	if level == "" {
		return tui.RunSession(cfg, "", opts)
	}

	game, err := registry.Create(level)
	if err != nil {
		return err
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running level: %w", err)
	}
	return nil
}

// keyHold returns flagHold, or the key hold of the settings when it is 0.
func keyHold(configPath string, flagHold int) (int, error) {
	if flagHold < 0 {
		return 0, errors.New("--key-hold must not be negative")
	}
	if flagHold > 0 {
		return flagHold, nil
	}
	settings, src, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default settings", "source", src, "err", err)
	}
	return settings.Game.Defaults.KeyHold, nil
}

// playerName is the name stored with each run.
func playerName() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(env); name != "" {
			return name
		}
	}
	return "player"
}
