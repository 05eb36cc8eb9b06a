package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/registry"
	"github.com/vovakirdan/tui-graveyard/internal/storage"
)

// footerRows is the space below the game screen for the help line.
const footerRows = 1

// Options configures a Model.
type Options struct {
	Store   *storage.Store // nil disables run history
	Player  string         // name stored with each run
	KeyHold int            // ticks a key press stays held
	Logger  *log.Logger
	// QuitOnBack ends the program on back instead of returning to a menu.
	QuitOnBack bool
}

// Model is the Bubble Tea model for running one level.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keys      KeyMap
	help      help.Model
	latch     *KeyLatch
	cursorX   float64
	cursorY   float64
	gameState core.GameState
	quitting  bool
	back      bool
	runSaved  bool // whether the current finished run was recorded
}

// NewModel creates a new Bubble Tea model for the given level.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		latch:  NewKeyLatch(opts.KeyHold),
	}
}

// gameConfig is the runtime config handed to the game: the screen without
// the footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footerRows, 1)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.back = true
			if m.opts.QuitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if k, ok := m.keys.Lookup(msg); ok {
		m.latch.Press(k)
	}
	return m, nil
}

// handleMouse feeds the cursor position and the pointer key.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.cursorX, m.cursorY = float64(msg.X), float64(msg.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.latch.Press(core.KeyPointer)
	}
	return m, nil
}

// handleResize processes window resize events. The game adapts its view
// on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := core.Input{Keys: m.latch.Next(), CursorX: m.cursorX, CursorY: m.cursorY}

	result := m.game.Step(in)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun()
		m.runSaved = true
		m.latch.Clear()
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run.
func (m Model) saveRun() {
	if m.opts.Store == nil {
		return
	}
	outcome := storage.OutcomeLost
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}
	id, err := m.opts.Store.SaveRun(storage.Run{
		LevelID: m.game.ID(),
		Player:  m.opts.Player,
		Outcome: outcome,
		Score:   m.gameState.Score,
		Kills:   m.gameState.Kills,
		Ticks:   m.gameState.Ticks,
	})
	if err != nil {
		m.opts.Logger.Warn("cannot save run", "level", m.game.ID(), "err", err)
		return
	}
	m.opts.Logger.Info("run saved", "id", id, "level", m.game.ID(), "outcome", outcome, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".graveyard", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
	}
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState { return m.gameState }

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool { return m.back }

// Run starts the Bubble Tea program for one level.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.QuitOnBack = true
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cursor and pointer clicks
	)

	_, err := p.Run()
	return err
}
