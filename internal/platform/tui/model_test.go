package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/storage"
)

// scriptedGame records the inputs it was stepped with and reports a state
// chosen by the test.
type scriptedGame struct {
	resets int
	cfg    core.RuntimeConfig
	inputs []core.Input
	state  core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
}

func (g *scriptedGame) Step(in core.Input) core.StepResult {
	g.inputs = append(g.inputs, in)
	g.state.Ticks++
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "SCRIPTED") }
func (g *scriptedGame) State() core.GameState   { return g.state }

func (g *scriptedGame) last() core.Input { return g.inputs[len(g.inputs)-1] }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
}

func TestModelInitResetsWithoutFooter(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1", g.resets)
	}
	if g.cfg.ScreenH != 11 || g.cfg.ScreenW != 40 || g.cfg.Seed != 7 {
		t.Errorf("game config = %+v", g.cfg)
	}
}

func TestModelLatchesKeysAcrossTicks(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{KeyHold: 2})

	m = update(t, m, runeKey('d'))
	m = update(t, m, TickMsg{})
	if !g.last().Has(core.KeyRight) {
		t.Fatalf("tick 1 keys = %v", g.last().Keys)
	}
	m = update(t, m, TickMsg{})
	if !g.last().Has(core.KeyRight) {
		t.Fatalf("tick 2 keys = %v", g.last().Keys)
	}
	update(t, m, TickMsg{})
	if g.last().Has(core.KeyRight) {
		t.Errorf("tick 3 keys = %v, want released", g.last().Keys)
	}
}

func TestModelMouseFeedsPointer(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{})

	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})

	in := g.last()
	if !in.Has(core.KeyPointer) || in.CursorX != 3 || in.CursorY != 4 {
		t.Errorf("input = %+v", in)
	}
}

func TestModelSavesFinishedRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{Store: store, Player: "tester"})

	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 1500, Kills: 3, GameOver: true, Won: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if r := runs[0]; r.Player != "tester" || r.Outcome != storage.OutcomeWon || r.Score != 1500 || r.Kills != 3 {
		t.Errorf("run = %+v", r)
	}

	// A new run that ends is recorded again
	g.state = core.GameState{}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 10, GameOver: true}
	update(t, m, TickMsg{})

	n, err := store.RunCount("scripted")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("RunCount() = %d, want 2", n)
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{})
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m = update(t, m, TickMsg{})
	m = update(t, m, esc)
	if m.BackToMenu() {
		t.Fatal("back while playing should be ignored")
	}

	g.state.Paused = true
	m = update(t, m, TickMsg{})
	m = update(t, m, esc)
	if !m.BackToMenu() {
		t.Error("back while paused should leave the level")
	}
}

func TestModelQuitAndView(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{})

	if view := m.View(); !strings.Contains(view, "SCRIPTED") {
		t.Errorf("View() = %q", view)
	}

	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestModelResize(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 0 {
		t.Error("resize should not reset the run")
	}
}
