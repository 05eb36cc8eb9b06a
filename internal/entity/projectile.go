package entity

import (
	"math"

	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/assets"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

func validateTorch(cfg config.TorchDefaults) error {
	switch {
	case cfg.Damage < 0:
		return invalid("torch damage %v", cfg.Damage)
	case cfg.Speed < 0:
		return invalid("torch speed %v", cfg.Speed)
	case cfg.Gravity < 0:
		return invalid("torch gravity %v", cfg.Gravity)
	case cfg.CycleSpeed < 1:
		return invalid("torch cycle speed %d", cfg.CycleSpeed)
	}
	return nil
}

func validateFlame(cfg config.FlameDefaults) error {
	switch {
	case cfg.Life <= 0:
		return invalid("flame life %d", cfg.Life)
	case cfg.Damage < 0:
		return invalid("flame damage %v", cfg.Damage)
	case cfg.CycleSpeed < 1:
		return invalid("flame cycle speed %d", cfg.CycleSpeed)
	}
	return nil
}

func validateEyeBall(cfg config.EyeBallDefaults) error {
	switch {
	case cfg.Speed < 0:
		return invalid("eyeball speed %v", cfg.Speed)
	case cfg.Damage < 0:
		return invalid("eyeball damage %v", cfg.Damage)
	case cfg.MaxDistance <= 0:
		return invalid("eyeball max distance %v", cfg.MaxDistance)
	case cfg.CycleSpeed < 1:
		return invalid("eyeball cycle speed %d", cfg.CycleSpeed)
	}
	return nil
}

// Torch is the player's thrown weapon. It flies on a parabola and sets the
// ground on fire where it lands.
type Torch struct {
	body    core.Box
	machine *anim.Machine
	cfg     config.TorchDefaults
	flame   config.FlameDefaults

	xStep, yStep float64
	dead         bool
}

// NewTorch creates a torch thrown from (x, y) toward dir.
func NewTorch(x, y float64, dir core.Direction, cfg config.TorchDefaults, flame config.FlameDefaults) (*Torch, error) {
	if err := validateTorch(cfg); err != nil {
		return nil, err
	}
	if err := validateFlame(flame); err != nil {
		return nil, err
	}
	if dir != core.DirLeft && dir != core.DirRight {
		return nil, invalid("torch direction %s", dir)
	}
	machine, err := anim.NewMachine(assets.Default().Table(assets.Torch),
		anim.State{Action: anim.ActionAttacking, Direction: dir}, cfg.CycleSpeed)
	if err != nil {
		return nil, invalid("torch: %v", err)
	}
	t := &Torch{
		body:    core.Box{X: x, Y: y},
		machine: machine,
		cfg:     cfg,
		flame:   flame,
		xStep:   dir.Sign() * cfg.Speed,
		yStep:   -cfg.Lift,
	}
	if f, ok := assets.Default().Table(assets.Torch).First(machine.State()); ok {
		t.body.W, t.body.H = float64(f.W), float64(f.H)
	}
	return t, nil
}

func (t *Torch) Kind() arena.Kind { return KindTorch }
func (t *Torch) Body() core.Box   { return t.body }
func (t *Torch) Dead() bool       { return t.dead }
func (t *Torch) Damage() float64  { return t.cfg.Damage }

// Velocity returns the per-tick steps.
func (t *Torch) Velocity() (x, y float64) { return t.xStep, t.yStep }

// Hit destroys the torch.
func (t *Torch) Hit(float64) { t.dead = true }

// Move advances the torch along its parabola.
func (t *Torch) Move(arena.World) {
	if t.dead {
		return
	}
	t.yStep += t.cfg.Gravity
	t.body.Y += t.yStep
	t.body.X += t.xStep
	t.machine.Advance()
}

func (t *Torch) Frame() (anim.Frame, bool) {
	if t.dead {
		return anim.Frame{}, false
	}
	return t.machine.Frame(anim.Looping)
}

// OnPlatform handles a platform contact. Landing on top spawns a flame at the
// impact point; any other contact only destroys the torch.
func (t *Torch) OnPlatform(c core.Contact, w arena.World) {
	if t.dead || !c.OK() {
		return
	}
	if c.Dir == core.DirUp {
		t.body.X += c.DX
		t.body.Y += c.DY
		if flame, err := NewFlame(t.body.CenterX(), t.body.Bottom(), t.flame); err == nil {
			w.Spawn(flame)
		}
	}
	t.dead = true
	w.Kill(t)
}

// Flame is the ground fire left by a torch. It burns big for the first half
// of its life and small for the rest.
type Flame struct {
	body    core.Box
	machine *anim.Machine
	cfg     config.FlameDefaults
	groundY float64
	age     int
	dead    bool
}

// NewFlame creates a flame centered on x and standing on groundY.
func NewFlame(x, groundY float64, cfg config.FlameDefaults) (*Flame, error) {
	if err := validateFlame(cfg); err != nil {
		return nil, err
	}
	machine, err := anim.NewMachine(assets.Default().Table(assets.Flame),
		anim.State{Action: anim.ActionBig, Direction: core.DirRight}, cfg.CycleSpeed)
	if err != nil {
		return nil, invalid("flame: %v", err)
	}
	f := &Flame{machine: machine, cfg: cfg, groundY: groundY}
	if first, ok := assets.Default().Table(assets.Flame).First(machine.State()); ok {
		f.body.W, f.body.H = float64(first.W), float64(first.H)
	}
	f.body.X = x - math.Floor(f.body.W/2)
	f.body.Y = groundY - f.body.H
	return f, nil
}

func (f *Flame) Kind() arena.Kind  { return KindFlame }
func (f *Flame) Body() core.Box    { return f.body }
func (f *Flame) Dead() bool        { return f.dead }
func (f *Flame) Damage() float64   { return f.cfg.Damage }
func (f *Flame) Age() int          { return f.age }
func (f *Flame) State() anim.State { return f.machine.State() }

// Move ages the flame.
func (f *Flame) Move(arena.World) {
	if f.dead {
		return
	}
	f.age++
	if f.age >= f.cfg.Life {
		f.dead = true
		f.machine.SetAction(anim.ActionDead)
		return
	}
	if f.machine.Action() != anim.ActionSmall && f.age >= f.cfg.Life/2 {
		f.shrink()
	}
	f.machine.Advance()
}

// shrink switches to the small sprite, keeping the horizontal center and
// sinking one pixel into the ground so the flame stays in contact.
func (f *Flame) shrink() {
	prev := f.body.W
	f.machine.SetAction(anim.ActionSmall)
	first, ok := assets.Default().Table(assets.Flame).First(f.machine.State())
	if !ok {
		return
	}
	f.body.W, f.body.H = float64(first.W), float64(first.H)
	f.body.X += math.Floor(prev/2) - math.Floor(f.body.W/2)
	f.body.Y = f.groundY - f.body.H + 1
}

func (f *Flame) Frame() (anim.Frame, bool) {
	if f.dead {
		return anim.Frame{}, false
	}
	return f.machine.Frame(anim.Looping)
}

// OnPlatform applies a platform push-out.
func (f *Flame) OnPlatform(c core.Contact) {
	if !c.OK() {
		return
	}
	f.body.X += c.DX
	f.body.Y += c.DY
}

// EyeBall is the plant's projectile. It flies straight until it has covered
// its maximum distance or hits something.
type EyeBall struct {
	body      core.Box
	machine   *anim.Machine
	cfg       config.EyeBallDefaults
	travelled float64
	dead      bool
}

// NewEyeBall creates an eyeball at (x, y) flying toward dir.
func NewEyeBall(x, y float64, dir core.Direction, cfg config.EyeBallDefaults) (*EyeBall, error) {
	if err := validateEyeBall(cfg); err != nil {
		return nil, err
	}
	if dir != core.DirLeft && dir != core.DirRight {
		return nil, invalid("eyeball direction %s", dir)
	}
	table := assets.Default().Table(assets.EyeBall)
	machine, err := anim.NewMachine(table, anim.State{Action: anim.ActionAttacking, Direction: dir}, cfg.CycleSpeed)
	if err != nil {
		return nil, invalid("eyeball: %v", err)
	}
	e := &EyeBall{body: core.Box{X: x, Y: y}, machine: machine, cfg: cfg}
	if first, ok := table.First(machine.State()); ok {
		e.body.W, e.body.H = float64(first.W), float64(first.H)
	}
	return e, nil
}

func (e *EyeBall) Kind() arena.Kind   { return KindEyeBall }
func (e *EyeBall) Body() core.Box     { return e.body }
func (e *EyeBall) Dead() bool         { return e.dead }
func (e *EyeBall) Damage() float64    { return e.cfg.Damage }
func (e *EyeBall) Travelled() float64 { return e.travelled }
func (e *EyeBall) Hit(float64)        { e.dead = true }

// Direction returns the flight direction.
func (e *EyeBall) Direction() core.Direction { return e.machine.Direction() }

// Move flies one step.
func (e *EyeBall) Move(arena.World) {
	if e.dead {
		return
	}
	e.body.X += e.machine.Direction().Sign() * e.cfg.Speed
	e.travelled += e.cfg.Speed
	if e.travelled >= e.cfg.MaxDistance {
		e.dead = true
		return
	}
	e.machine.Advance()
}

func (e *EyeBall) Frame() (anim.Frame, bool) {
	if e.dead {
		return anim.Frame{}, false
	}
	return e.machine.Frame(anim.Looping)
}
