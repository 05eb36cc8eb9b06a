package entity

import (
	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/assets"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// Door is the level goal. It opens while the player stands in it and counts
// the consecutive open ticks; once the count reaches the passage delay the
// door is passed.
type Door struct {
	body    core.Box
	machine *anim.Machine
	cfg     config.DoorDefaults
	timer   int
	passed  bool
}

// NewDoor creates a closed door at (x, y).
func NewDoor(x, y float64, cfg config.DoorDefaults) (*Door, error) {
	if cfg.PassageDelay <= 0 {
		return nil, invalid("door passage delay %d", cfg.PassageDelay)
	}
	table := assets.Default().Table(assets.Door)
	machine, err := anim.NewMachine(table, anim.State{Action: anim.ActionClose, Direction: core.DirDown}, cfg.CycleSpeed)
	if err != nil {
		return nil, invalid("door: %v", err)
	}
	d := &Door{body: core.Box{X: x, Y: y}, machine: machine, cfg: cfg}
	if first, ok := table.First(machine.State()); ok {
		d.body.W, d.body.H = float64(first.W), float64(first.H)
	}
	// start on the last closing frame instead of playing the close animation
	for range machine.Len() * cfg.CycleSpeed {
		machine.Advance()
	}
	return d, nil
}

func (d *Door) Kind() arena.Kind  { return KindDoor }
func (d *Door) Body() core.Box    { return d.body }
func (d *Door) State() anim.State { return d.machine.State() }
func (d *Door) Passed() bool      { return d.passed }

// Timer returns the consecutive open ticks.
func (d *Door) Timer() int { return d.timer }

// PassageDelay returns the open ticks needed to pass.
func (d *Door) PassageDelay() int { return d.cfg.PassageDelay }

// Open starts opening the door.
func (d *Door) Open() { d.machine.SetAction(anim.ActionOpen) }

// Close starts closing the door and resets the passage timer.
func (d *Door) Close() {
	d.machine.SetAction(anim.ActionClose)
	d.timer = 0
}

// Move counts open ticks.
func (d *Door) Move(arena.World) {
	if d.machine.Action() == anim.ActionOpen {
		d.timer++
	} else {
		d.timer = 0
	}
	if d.timer >= d.cfg.PassageDelay {
		d.passed = true
	}
	d.machine.Advance()
}

func (d *Door) Frame() (anim.Frame, bool) {
	return d.machine.Frame(anim.Locked)
}
