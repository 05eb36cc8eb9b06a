package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel runs the menu, level and scoreboard screens in one program.
// SSH sessions and the local menu share it.
type SessionModel struct {
	config   core.RuntimeConfig
	opts     Options
	screen   sessionScreen
	menu     MenuModel
	scores   ScoreboardModel
	game     Model
	quitting bool
}

// NewSessionModel creates a session that opens on the menu, or directly in
// level when it is set.
func NewSessionModel(cfg core.RuntimeConfig, level string, opts Options) SessionModel {
	opts.QuitOnBack = false
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := SessionModel{
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(opts.Store, cfg),
	}
	if level != "" {
		if g, err := registry.Create(level); err == nil {
			m.game = NewModel(g, cfg, opts)
			m.screen = screenGame
		}
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the current screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil // stale tick from a finished level
	}

	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	result := m.menu.Result()
	switch {
	case result.WantsScoreboard:
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH, "")
		m.screen = screenScores
		return m, nil
	case result.LevelID != "":
		g, err := registry.Create(result.LevelID)
		if err != nil {
			m.opts.Logger.Warn("cannot create level", "level", result.LevelID, "err", err)
			m.menu = NewMenuModel(m.opts.Store, m.config)
			return m, nil
		}
		m.game = NewModel(g, m.config, m.opts)
		m.screen = screenGame
		return m, m.game.Init()
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// toMenu returns to a fresh menu so best scores are current.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Store, m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs a session in the local terminal until the user quits.
func RunSession(cfg core.RuntimeConfig, level string, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, level, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
