package entity

import (
	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/assets"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// eyeBallGap separates a fired eyeball from the plant's body.
const eyeBallGap = 5

// Plant is the turret enemy: it grows out of the ground once, then
// periodically turns toward the player and fires an eyeball.
type Plant struct {
	body    core.Box
	machine *anim.Machine
	cfg     config.PlantDefaults
	eyeBall config.EyeBallDefaults
	health  vitals

	attackCooldown int
	damageCooldown int
}

// NewPlant creates a plant growing at (x, y), where y is the top of its final
// body, facing dir.
func NewPlant(x, y float64, dir core.Direction, cfg config.PlantDefaults, eyeBall config.EyeBallDefaults) (*Plant, error) {
	switch {
	case cfg.Damage < 0 || cfg.ProjectileDamage < 0:
		return nil, invalid("plant damage %v/%v", cfg.Damage, cfg.ProjectileDamage)
	case cfg.AttackInterval < 0 || cfg.DamageInterval < 0:
		return nil, invalid("plant intervals %d/%d", cfg.AttackInterval, cfg.DamageInterval)
	case dir != core.DirLeft && dir != core.DirRight:
		return nil, invalid("plant facing %s", dir)
	}
	if err := validateEyeBall(eyeBall); err != nil {
		return nil, err
	}
	health, err := newVitals(cfg.MaxHealth)
	if err != nil {
		return nil, err
	}

	table := assets.Default().Table(assets.Plant)
	machine, err := anim.NewMachine(table, anim.State{Action: anim.ActionSpawning, Direction: dir}, cfg.CycleSpeed)
	if err != nil {
		return nil, invalid("plant: %v", err)
	}

	// place the full-grown body, then shrink it to the first spawning frame
	p := &Plant{
		body:           core.Box{X: x, Y: y, W: plantWidth, H: plantHeight},
		machine:        machine,
		cfg:            cfg,
		eyeBall:        eyeBall,
		health:         health,
		attackCooldown: cfg.AttackInterval,
	}
	machine.Fit(&p.body)
	return p, nil
}

// Full-grown plant size, used by the spawn factory.
const (
	plantWidth  = 16
	plantHeight = 32
)

func (p *Plant) Kind() arena.Kind  { return KindPlant }
func (p *Plant) Body() core.Box    { return p.body }
func (p *Plant) State() anim.State { return p.machine.State() }
func (p *Plant) Health() float64   { return p.health.value }
func (p *Plant) Dead() bool        { return p.machine.Action() == anim.ActionDead }

// Damage is the contact damage.
func (p *Plant) Damage() float64 { return p.cfg.Damage }

// SetProjectileDamage overrides the damage of future eyeballs.
func (p *Plant) SetProjectileDamage(d float64) {
	if d >= 0 {
		p.cfg.ProjectileDamage = d
	}
}

// AttackCooldown returns the ticks left before the next attack.
func (p *Plant) AttackCooldown() int { return p.attackCooldown }

// SetHealth clamps v; reaching 0 kills the plant.
func (p *Plant) SetHealth(v float64) {
	if p.Dead() {
		return
	}
	if p.health.set(v) {
		p.machine.SetAction(anim.ActionDead)
	}
}

// Hit subtracts damage from the health.
func (p *Plant) Hit(damage float64) {
	p.SetHealth(p.health.value - damage)
}

// Move runs the spawn, idle, attack cycle.
func (p *Plant) Move(w arena.World) {
	if p.Dead() {
		return
	}
	if p.damageCooldown > 0 {
		p.damageCooldown--
	}

	switch p.machine.Action() {
	case anim.ActionSpawning:
		if p.machine.Finished() {
			p.machine.SetState(anim.ActionIdle, &p.body)
		}
	case anim.ActionIdle:
		if p.attackCooldown > 0 {
			p.attackCooldown--
		}
		if p.attackCooldown <= 0 {
			if target, ok := findPlayer(w); ok {
				if target.CenterX() >= p.body.CenterX() {
					p.machine.SetDirection(core.DirRight)
				} else {
					p.machine.SetDirection(core.DirLeft)
				}
				p.machine.SetState(anim.ActionAttacking, &p.body)
				p.attackCooldown = p.cfg.AttackInterval
			}
		}
	case anim.ActionAttacking:
		if p.machine.Finished() {
			p.fire(w)
			p.machine.SetState(anim.ActionIdle, &p.body)
		}
	}
	p.machine.Advance()
}

func (p *Plant) fire(w arena.World) {
	dir := p.machine.Direction()
	x := p.body.X - eyeBallGap
	if dir == core.DirRight {
		x = p.body.Right() + eyeBallGap
	}
	cfg := p.eyeBall
	cfg.Speed = p.cfg.ProjectileSpeed
	cfg.Damage = p.cfg.ProjectileDamage
	eye, err := NewEyeBall(x, p.body.Y+p.body.H*0.3, dir, cfg)
	if err != nil {
		return
	}
	w.Spawn(eye)
}

// Frame returns the idle frame looping and the growth and attack locked.
func (p *Plant) Frame() (anim.Frame, bool) {
	if p.machine.Action() == anim.ActionIdle {
		return p.machine.Frame(anim.Looping)
	}
	return p.machine.Frame(anim.Locked)
}

// OnPlatform applies a platform push-out.
func (p *Plant) OnPlatform(c core.Contact) {
	if !c.OK() {
		return
	}
	p.body.X += c.DX
	p.body.Y += c.DY
}

// OnPlayer hits the player on contact, at most once per damage interval.
func (p *Plant) OnPlayer(target arena.Damageable) {
	switch p.machine.Action() {
	case anim.ActionSpawning, anim.ActionDead:
		return
	}
	if p.damageCooldown <= 0 {
		target.Hit(p.cfg.Damage)
		p.damageCooldown = p.cfg.DamageInterval
	}
}

// findPlayer returns the body of the first player among the actors.
func findPlayer(w arena.World) (core.Box, bool) {
	for _, a := range w.Actors() {
		if a.Kind() == KindPlayer && !arena.IsDead(a) {
			return a.Body(), true
		}
	}
	return core.Box{}, false
}
