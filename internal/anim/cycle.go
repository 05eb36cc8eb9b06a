package anim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// ErrInvalidSpeed is returned for a playback speed below 1.
var ErrInvalidSpeed = errors.New("anim: playback speed must be at least 1")

// Mode selects how a frame index is derived from the counter.
type Mode uint8

const (
	// Looping wraps around the frame list.
	Looping Mode = iota
	// Locked stops on the last frame.
	Locked
)

// Cycle is a tick counter with a playback speed: the frame index moves once
// every speed ticks.
type Cycle struct {
	counter int
	speed   int
}

// NewCycle creates a cycle at counter 0.
func NewCycle(speed int) (Cycle, error) {
	if speed < 1 {
		return Cycle{}, fmt.Errorf("%w: got %d", ErrInvalidSpeed, speed)
	}
	return Cycle{speed: speed}, nil
}

// Advance moves the counter one tick forward.
func (c *Cycle) Advance() { c.counter++ }

// Reset puts the counter back to 0.
func (c *Cycle) Reset() { c.counter = 0 }

// Counter returns the number of ticks since the last reset.
func (c Cycle) Counter() int { return c.counter }

// Speed returns the ticks per frame.
func (c Cycle) Speed() int { return c.speed }

// Index returns the frame index for a list of n frames.
func (c Cycle) Index(n int, mode Mode) (int, bool) {
	if n <= 0 || c.speed < 1 {
		return 0, false
	}
	i := c.counter / c.speed
	if mode == Looping {
		return i % n, true
	}
	if i >= n {
		i = n - 1
	}
	return i, true
}

// Finished reports whether a locked playback of n frames reached its last
// frame. An empty list counts as finished so transitions never stall on
// missing data.
func (c Cycle) Finished(n int) bool {
	if n <= 0 || c.speed < 1 {
		return true
	}
	return c.counter/c.speed >= n-1
}

// Machine couples a State with a Cycle over a shared Table. An optional
// overlay action takes over frame selection until it is cleared, which lets a
// one-shot animation play on top of the locomotion state.
type Machine struct {
	table    Table
	state    State
	overlay  Action
	overlaid bool
	cycle    Cycle
}

// NewMachine creates a machine in the initial state.
func NewMachine(table Table, initial State, speed int) (*Machine, error) {
	cycle, err := NewCycle(speed)
	if err != nil {
		return nil, err
	}
	return &Machine{table: table, state: initial, cycle: cycle}, nil
}

// State returns the current locomotion state.
func (m *Machine) State() State { return m.state }

// Action returns the current action.
func (m *Machine) Action() Action { return m.state.Action }

// Direction returns the current facing.
func (m *Machine) Direction() core.Direction { return m.state.Direction }

// SetDirection changes the facing without touching the counter.
func (m *Machine) SetDirection(d core.Direction) { m.state.Direction = d }

// SetAction switches to a. The counter restarts only when the action changes.
// It reports whether it changed.
func (m *Machine) SetAction(a Action) bool {
	if a == m.state.Action {
		return false
	}
	m.state.Action = a
	m.cycle.Reset()
	return true
}

// ShiftAction switches to a and keeps the counter running.
func (m *Machine) ShiftAction(a Action) {
	m.state.Action = a
}

// SetState is SetAction followed by Fit.
func (m *Machine) SetState(a Action, body *core.Box) bool {
	changed := m.SetAction(a)
	m.Fit(body)
	return changed
}

// Fit sizes body to the first frame of the current state, keeping its bottom
// edge in place. Without frames the body is left alone.
func (m *Machine) Fit(body *core.Box) {
	if body == nil {
		return
	}
	if f, ok := m.table.First(m.state); ok {
		body.Resize(float64(f.W), float64(f.H))
	}
}

// Defined reports whether the table has frames for the locomotion state.
func (m *Machine) Defined() bool { return m.table.Len(m.state) > 0 }

// Overlay plays a on top of the current state from its first frame.
func (m *Machine) Overlay(a Action) {
	m.overlay = a
	m.overlaid = true
	m.cycle.Reset()
}

// ClearOverlay drops the overlay.
func (m *Machine) ClearOverlay() {
	m.overlaid = false
}

// Overlaid returns the overlay action, if any.
func (m *Machine) Overlaid() (Action, bool) {
	return m.overlay, m.overlaid
}

// Shown returns the state whose frames are currently displayed.
func (m *Machine) Shown() State {
	if m.overlaid {
		return State{Action: m.overlay, Direction: m.state.Direction}
	}
	return m.state
}

// Advance moves the animation one tick forward.
func (m *Machine) Advance() { m.cycle.Advance() }

// ResetCounter restarts the animation of the shown state.
func (m *Machine) ResetCounter() { m.cycle.Reset() }

// Counter returns the frame counter.
func (m *Machine) Counter() int { return m.cycle.Counter() }

// Len returns the frame count of the shown state.
func (m *Machine) Len() int { return m.table.Len(m.Shown()) }

// Finished reports whether the shown state's locked playback reached its last
// frame.
func (m *Machine) Finished() bool {
	return m.cycle.Finished(m.Len())
}

// Frame returns the current frame of the shown state. It reports false when
// the table has nothing for that state.
func (m *Machine) Frame(mode Mode) (Frame, bool) {
	shown := m.Shown()
	i, ok := m.cycle.Index(m.table.Len(shown), mode)
	if !ok {
		return Frame{}, false
	}
	return m.table.At(shown, i)
}
