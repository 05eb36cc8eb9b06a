// Package tui runs graveyard levels in a terminal with Bubble Tea: the tick
// loop, key latching, the level menu, the run scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at tickRate ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
