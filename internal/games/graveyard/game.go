// Package graveyard implements the graveyard side-scroller levels on top of
// the game rules. It loads settings, builds the layout, follows the player
// with a camera and draws the world as glyphs.
package graveyard

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/game"
	"github.com/vovakirdan/tui-graveyard/internal/registry"
)

// Shared run options, set by the CLI before any level is created.
var (
	optMu            sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	optMu.Lock()
	defer optMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. The empty string keeps the
// config's own difficulty block.
func SetDifficultyPreset(name string) error {
	optMu.Lock()
	defer optMu.Unlock()
	if name == "" {
		difficultyPreset = ""
		return nil
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return fmt.Errorf("graveyard: unknown difficulty %q", name)
	}
	difficultyPreset = preset
	return nil
}

// SetLogger sets the logger handed to every new run. Nil restores the
// discarding default.
func SetLogger(l *log.Logger) {
	optMu.Lock()
	defer optMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func options() (string, config.DifficultyPreset, *log.Logger) {
	optMu.RLock()
	defer optMu.RUnlock()
	return configPath, difficultyPreset, logger
}

// Game runs one level for the platform.
type Game struct {
	level *Level

	cfg      core.RuntimeConfig
	settings config.Settings
	run      *game.Game
	camera   *game.Camera
	view     viewport
	paused   bool
	err      error
}

// New creates a game for the given layout.
func New(level *Level) *Game {
	return &Game{level: level}
}

// ID returns the unique identifier for this level.
func (g *Game) ID() string { return g.level.ID }

// Title returns the display name for this level.
func (g *Game) Title() string { return g.level.Title }

// Level returns the layout being played.
func (g *Game) Level() *Level { return g.level }

// Run returns the underlying run, nil if Reset failed.
func (g *Game) Run() *game.Game { return g.run }

// Err returns the error of the last Reset.
func (g *Game) Err() error { return g.err }

// Reset loads the settings and starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	path, preset, l := options()
	g.cfg = cfg
	g.paused = false
	g.err = nil

	settings, source, err := config.Load(path)
	if err != nil {
		l.Warn("using default settings", "err", err)
	}
	if preset != "" {
		config.ApplyPreset(&settings, preset)
	}
	g.settings = settings

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	queue, err := g.level.Queue(settings)
	if err != nil {
		g.fail(l, err)
		return
	}
	run, err := game.New(g.level.Width, g.level.Height, queue,
		game.WithSettings(settings),
		game.WithSeed(seed),
		game.WithLogger(l.With("level", g.level.ID)),
	)
	if err != nil {
		g.fail(l, err)
		return
	}
	g.run = run

	g.view = newViewport(cfg.ScreenW, cfg.ScreenH, g.level.Height)
	g.camera, err = game.NewCamera(g.view.worldW(), g.view.worldH())
	if err != nil {
		g.fail(l, err)
		return
	}
	g.camera.Follow(run.Player().Body(), g.level.Width, g.level.Height)

	l.Info("run started", "level", g.level.ID, "config", source, "difficulty", preset, "seed", seed)
}

func (g *Game) fail(l *log.Logger, err error) {
	g.run = nil
	g.camera = nil
	g.err = err
	l.Error("cannot start run", "level", g.level.ID, "err", err)
}

// Step advances the run by one tick. Pause toggles; restart only works once
// the run is over.
func (g *Game) Step(in core.Input) core.StepResult {
	if g.run == nil {
		return core.StepResult{State: g.State()}
	}

	if g.run.Over() {
		if in.Has(core.KeyRestart) {
			g.Reset(g.cfg)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.KeyPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.run.Tick(g.toWorld(in))
	g.camera.Follow(g.run.Player().Body(), g.level.Width, g.level.Height)
	return core.StepResult{State: g.State()}
}

// toWorld maps the cursor from screen cells to world pixels.
func (g *Game) toWorld(in core.Input) core.Input {
	x, y := g.view.toWorld(in.CursorX, in.CursorY)
	in.CursorX = g.camera.X + x
	in.CursorY = g.camera.Y + y
	return in
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.run == nil {
		return core.GameState{GameOver: true}
	}
	stats := g.run.Stats()
	return core.GameState{
		Score:    g.run.Score(),
		Kills:    stats.Kills,
		Ticks:    stats.Ticks,
		GameOver: g.run.Over(),
		Won:      g.run.Phase() == game.PhaseGameWon,
		Paused:   g.paused,
	}
}

// Register the levels with the registry
func init() {
	for _, build := range layouts {
		registry.Register(build().ID, func() registry.Game {
			return New(build())
		})
	}
}
