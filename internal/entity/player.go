package entity

import (
	"math"

	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/assets"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// Player body sizes. The hitbox follows the stance, not the sprite.
const (
	playerWidth          = 21
	playerHeight         = 32
	playerCrouchedHeight = 23
	playerLadderedWidth  = 19

	// climbStep is the vertical distance covered per tick on a ladder.
	climbStep = 2
	// throwOffset shifts a thrown torch ahead of the player's center.
	throwOffset = 10
)

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithWeapon sets the torch and flame parameters used when throwing.
func WithWeapon(torch config.TorchDefaults, flame config.FlameDefaults) PlayerOption {
	return func(p *Player) {
		p.torch = torch
		p.flame = flame
	}
}

// Player is the controlled character.
type Player struct {
	body    core.Box
	machine *anim.Machine
	cfg     config.PlayerDefaults
	torch   config.TorchDefaults
	flame   config.FlameDefaults
	health  vitals

	xStep, yStep  float64
	invincibility int
	throwCooldown int
	grounded      bool
	laddered      bool
}

// NewPlayer creates a player standing at (x, y), walking right.
func NewPlayer(x, y float64, cfg config.PlayerDefaults, opts ...PlayerOption) (*Player, error) {
	switch {
	case cfg.Speed < 0:
		return nil, invalid("player speed %v", cfg.Speed)
	case cfg.Gravity < 0:
		return nil, invalid("player gravity %v", cfg.Gravity)
	case cfg.JumpSpeed < 0:
		return nil, invalid("player jump speed %v", cfg.JumpSpeed)
	case cfg.InvincibilityTime < 0 || cfg.ThrowInterval < 0:
		return nil, invalid("player timers %d/%d", cfg.InvincibilityTime, cfg.ThrowInterval)
	}
	health, err := newVitals(cfg.MaxHealth)
	if err != nil {
		return nil, err
	}

	defaults := config.DefaultSettings()
	p := &Player{
		body:   core.Box{X: x, Y: y, W: playerWidth, H: playerHeight},
		cfg:    cfg,
		torch:  defaults.Torch.Defaults,
		flame:  defaults.Flame.Defaults,
		health: health,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := validateTorch(p.torch); err != nil {
		return nil, err
	}
	if err := validateFlame(p.flame); err != nil {
		return nil, err
	}

	initial := anim.State{Action: anim.ActionWalking, Direction: core.DirRight}
	p.machine, err = anim.NewMachine(assets.Default().Table(assets.Player), initial, cfg.CycleSpeed)
	if err != nil {
		return nil, invalid("player: %v", err)
	}
	return p, nil
}

func (p *Player) Kind() arena.Kind { return KindPlayer }
func (p *Player) Body() core.Box   { return p.body }

// State returns the locomotion state.
func (p *Player) State() anim.State { return p.machine.State() }

// Shown returns the state whose frames are displayed, including a throw overlay.
func (p *Player) Shown() anim.State { return p.machine.Shown() }

func (p *Player) Health() float64    { return p.health.value }
func (p *Player) MaxHealth() float64 { return p.health.max }
func (p *Player) Grounded() bool     { return p.grounded }
func (p *Player) Laddered() bool     { return p.laddered }
func (p *Player) Invincibility() int { return p.invincibility }
func (p *Player) ThrowCooldown() int { return p.throwCooldown }
func (p *Player) ThrowInterval() int { return p.cfg.ThrowInterval }

// Velocity returns the per-tick steps.
func (p *Player) Velocity() (x, y float64) { return p.xStep, p.yStep }

// Dead reports whether the player reached the terminal state.
func (p *Player) Dead() bool { return p.machine.Action() == anim.ActionDead }

// SetHealth clamps v to [0, max]. Reaching 0 kills the player.
func (p *Player) SetHealth(v float64) {
	if p.health.set(v) {
		p.Die()
	}
}

// Die switches to the terminal state. It reports false if already dead.
func (p *Player) Die() bool {
	if p.Dead() {
		return false
	}
	p.machine.ClearOverlay()
	p.machine.SetAction(anim.ActionDead)
	return true
}

// Hit applies damage unless the player is still invincible from a previous hit.
func (p *Player) Hit(damage float64) {
	if p.Dead() || p.invincibility > 0 || damage <= 0 {
		return
	}
	p.SetHealth(p.health.value - damage)
	p.invincibility = p.cfg.InvincibilityTime
}

// Move reads the held keys and advances the player one tick.
func (p *Player) Move(w arena.World) {
	if p.Dead() {
		return
	}
	keys := w.Keys()

	if p.invincibility > 0 {
		p.invincibility--
	}
	if p.throwCooldown > 0 {
		p.throwCooldown--
	}

	if (keys.Has(core.KeyThrow) || keys.Has(core.KeyPointer)) && p.throwCooldown == 0 && !p.laddered {
		if keys.Has(core.KeyPointer) && !keys.Has(core.KeyThrow) {
			p.faceCursor(w)
		}
		p.throw(w)
	}

	switch {
	case keys.Has(core.KeyUp) && p.grounded && !p.laddered:
		p.yStep = -p.cfg.JumpSpeed
		p.setAction(anim.ActionJumping, true)
	case keys.Has(core.KeyDown) && p.grounded:
		p.setAction(anim.ActionCrouching, true)
	case p.grounded:
		p.setAction(p.stride(), true)
	case !p.laddered:
		p.setAction(anim.ActionJumping, false)
	}

	if !p.laddered {
		p.yStep += p.cfg.Gravity
		p.body.Y += p.yStep
	}

	p.xStep = 0
	if p.machine.Action() != anim.ActionCrouching {
		if keys.Has(core.KeyLeft) {
			p.xStep = -p.cfg.Speed
			p.machine.SetDirection(core.DirLeft)
		} else if keys.Has(core.KeyRight) {
			p.xStep = p.cfg.Speed
			p.machine.SetDirection(core.DirRight)
		}
	}
	if a := p.machine.Action(); a != anim.ActionJumping && a != anim.ActionCrouching {
		p.setAction(p.stride(), false)
	}
	p.body.X += p.xStep

	// collisions set it again this tick when standing on something
	p.grounded = false

	if _, ok := p.machine.Overlaid(); ok && p.machine.Finished() {
		p.machine.ClearOverlay()
	}
	p.machine.Advance()
}

func (p *Player) stride() anim.Action {
	if p.xStep != 0 {
		return anim.ActionWalking
	}
	return anim.ActionIdle
}

// faceCursor turns the player toward the pointer. A pointer straight above
// or below keeps the current facing.
func (p *Player) faceCursor(w arena.World) {
	cx, _ := w.Cursor()
	switch mid := p.body.CenterX(); {
	case cx < mid:
		p.machine.SetDirection(core.DirLeft)
	case cx > mid:
		p.machine.SetDirection(core.DirRight)
	}
}

func (p *Player) throw(w arena.World) {
	dir := p.machine.Direction()
	x := p.body.X + math.Floor(p.body.W/2) + dir.Sign()*throwOffset
	y := p.body.Y + p.body.H*0.1
	torch, err := NewTorch(x, y, dir, p.torch, p.flame)
	if err != nil {
		return
	}
	w.Spawn(torch)
	p.throwCooldown = p.cfg.ThrowInterval

	switch p.machine.Action() {
	case anim.ActionIdle, anim.ActionWalking, anim.ActionJumping:
		p.machine.Overlay(anim.ActionAttacking)
	case anim.ActionCrouching:
		p.machine.Overlay(anim.ActionAttackingCrouched)
	}
}

// setAction changes the locomotion action and reshapes the hitbox for the
// stance, keeping the feet in place.
func (p *Player) setAction(a anim.Action, reset bool) {
	if reset {
		p.machine.SetAction(a)
	} else {
		p.machine.ShiftAction(a)
	}
	if !p.machine.Defined() {
		return
	}
	h := float64(playerHeight)
	if a == anim.ActionCrouching || a == anim.ActionAttackingCrouched {
		h = playerCrouchedHeight
	}
	w := float64(playerWidth)
	if p.laddered {
		w = playerLadderedWidth
	}
	p.body.Resize(w, h)
}

// Frame returns the displayed frame, flagged as blinking while invincible.
func (p *Player) Frame() (anim.Frame, bool) {
	mode := anim.Locked
	switch p.machine.Shown().Action {
	case anim.ActionWalking, anim.ActionClimbing:
		mode = anim.Looping
	}
	f, ok := p.machine.Frame(mode)
	if !ok {
		return anim.Frame{}, false
	}
	f.Blinking = p.invincibility > 0
	return f, true
}

// OnPlatform applies a platform push-out.
func (p *Player) OnPlatform(c core.Contact) {
	if !c.OK() {
		return
	}
	p.body.X += c.DX
	p.body.Y += c.DY
	switch c.Dir {
	case core.DirLeft, core.DirRight:
		p.xStep = 0
	default:
		p.yStep = 0
		if c.Dir == core.DirUp {
			p.grounded = true
			p.laddered = false
		}
	}
}

// OnLadder attaches the player to a ladder and climbs with the up and down
// keys. Standing at the foot or on top of the ladder does nothing.
func (p *Player) OnLadder(keys core.KeySet, ladder core.Box) {
	if p.Dead() {
		return
	}
	inside := ladder.Y-p.body.H*0.85 < p.body.Y && p.body.Y < ladder.Bottom()
	onBottom := p.body.Bottom() >= ladder.Bottom()
	onTop := p.body.Bottom() <= ladder.Y
	if onBottom || onTop {
		return
	}

	p.laddered = true
	p.yStep = 0

	up, down := keys.Has(core.KeyUp), keys.Has(core.KeyDown)
	if up {
		p.body.Y -= climbStep
	} else if down {
		p.body.Y += climbStep
	}
	switch {
	case (up || down) && inside:
		p.setAction(anim.ActionClimbing, false)
	case inside:
		p.setAction(anim.ActionClimbingPose, true)
	}
}

// LeaveLadder detaches the player. It runs when no ladder overlaps the player.
func (p *Player) LeaveLadder() { p.laddered = false }
