package tui

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-graveyard/internal/registry"
	"github.com/vovakirdan/tui-graveyard/internal/storage"
)

type namedGame struct {
	*scriptedGame
	id, title string
}

func (g namedGame) ID() string    { return g.id }
func (g namedGame) Title() string { return g.title }

var registerOnce sync.Once

// registerLevels registers two scripted levels for the menu and scoreboard.
func registerLevels() {
	registerOnce.Do(func() {
		for _, n := range []struct{ id, title string }{
			{"scripted-a", "Scripted A"},
			{"scripted-b", "Scripted B"},
		} {
			registry.Register(n.id, func() registry.Game {
				return namedGame{scriptedGame: &scriptedGame{}, id: n.id, title: n.title}
			})
		}
	})
}

func TestPlayTime(t *testing.T) {
	tests := []struct {
		ticks, rate int
		want        string
	}{
		{0, 60, "0:00"},
		{3600, 60, "1:00"},
		{5430, 60, "1:30"},
		{120, 0, "0:02"},
	}

	for _, tt := range tests {
		if got := PlayTime(tt.ticks, tt.rate); got != tt.want {
			t.Errorf("PlayTime(%d, %d) = %q, want %q", tt.ticks, tt.rate, got, tt.want)
		}
	}
}

func TestRunRowBlankPlayer(t *testing.T) {
	row := RunRow(3, storage.Run{Score: 40, Outcome: storage.OutcomeLost, Kills: 2, Ticks: 600}, 60)
	want := []string{"#3", "40", "lost", "2", "0:10", "-"}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("row[%d] = %q, want %q", i, row[i], w)
		}
	}
}

func TestScoreboardLoadsLevelRuns(t *testing.T) {
	registerLevels()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{LevelID: "scripted-b", Player: "ann", Outcome: storage.OutcomeWon, Score: 900},
		{LevelID: "scripted-b", Player: "bob", Outcome: storage.OutcomeLost, Score: 300},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 40, "scripted-b")
	if got := m.levels[m.cursor].ID; got != "scripted-b" {
		t.Fatalf("start level = %q, want scripted-b", got)
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "900" || rows[0][5] != "ann" {
		t.Fatalf("rows = %v", rows)
	}
	if view := m.View(); !strings.Contains(view, "RUN HISTORY - Scripted B") || !strings.Contains(view, "escaped 1") {
		t.Errorf("View() missing title or stats:\n%s", view)
	}

	// Tab moves to the next level, wrapping around
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.levels[m.cursor].ID; got == "scripted-b" {
		t.Fatalf("tab did not change level")
	}
	if len(m.table.Rows()) != 0 {
		t.Errorf("rows = %v, want none", m.table.Rows())
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty level should show the empty message")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	registerLevels()
	m := NewScoreboardModel(nil, 60, 20, "")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if sb := next.(ScoreboardModel); !sb.IsGoingBack() || sb.IsQuitting() {
		t.Error("esc should go back")
	}
	next, _ = m.Update(runeKey('q'))
	if sb := next.(ScoreboardModel); !sb.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardLevelWraps(t *testing.T) {
	registerLevels()
	m := NewScoreboardModel(nil, 60, 20, "")
	n := len(m.levels)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := next.(ScoreboardModel).cursor; got != n-1 {
		t.Errorf("shift+tab from first level: cursor = %d, want %d", got, n-1)
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := next.(ScoreboardModel).cursor; got != 0 {
		t.Errorf("right from last level: cursor = %d, want 0", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Crypt", 10, "Crypt"},
		{"Graveyard Gate", 10, "Graveyard."},
		{"Ossuary", 7, "Ossuary"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
