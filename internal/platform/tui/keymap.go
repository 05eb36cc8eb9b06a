package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Throw   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Throw, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Throw, k.Pause, k.Restart},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "jump/climb"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "crouch"),
		),
		Throw: key.NewBinding(
			key.WithKeys("z", "x", " ", "1"),
			key.WithHelp("z/space", "throw"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Lookup translates a key message to a simulation key.
func (k KeyMap) Lookup(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case key.Matches(msg, k.Up):
		return core.KeyUp, true
	case key.Matches(msg, k.Down):
		return core.KeyDown, true
	case key.Matches(msg, k.Throw):
		return core.KeyThrow, true
	case key.Matches(msg, k.Pause):
		return core.KeyPause, true
	case key.Matches(msg, k.Restart):
		return core.KeyRestart, true
	}
	return "", false
}

// KeyLatch turns key presses into held keys. Terminals report presses and
// auto-repeats but never releases, so a press keeps its key held for a fixed
// number of ticks. Pause, restart and the pointer are one-shot.
type KeyLatch struct {
	hold int
	left map[core.Key]int
}

// NewKeyLatch creates a latch holding each press for hold ticks, at least one.
func NewKeyLatch(hold int) *KeyLatch {
	return &KeyLatch{hold: max(hold, 1), left: make(map[core.Key]int)}
}

// Hold returns the number of ticks a press lasts.
func (l *KeyLatch) Hold() int { return l.hold }

// Press starts or refreshes k. A horizontal press releases the opposite
// direction.
func (l *KeyLatch) Press(k core.Key) {
	switch k {
	case core.KeyLeft:
		delete(l.left, core.KeyRight)
	case core.KeyRight:
		delete(l.left, core.KeyLeft)
	}
	if oneShot(k) {
		l.left[k] = 1
		return
	}
	l.left[k] = l.hold
}

// Next returns the keys held for the coming tick and ages every press by one
// tick.
func (l *KeyLatch) Next() core.KeySet {
	keys := make(core.KeySet, len(l.left))
	for k, n := range l.left {
		keys.Add(k)
		if n <= 1 {
			delete(l.left, k)
		} else {
			l.left[k] = n - 1
		}
	}
	return keys
}

// Clear releases every key.
func (l *KeyLatch) Clear() {
	clear(l.left)
}

func oneShot(k core.Key) bool {
	return k == core.KeyPause || k == core.KeyRestart || k == core.KeyPointer
}

// MenuKeyMap defines the key bindings for the level picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
