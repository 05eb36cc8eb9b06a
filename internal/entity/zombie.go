package entity

import (
	"math/rand"

	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/assets"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// Zombie is the walker enemy: it emerges from the ground, walks a random
// distance and sinks back.
type Zombie struct {
	body    core.Box
	machine *anim.Machine
	cfg     config.ZombieDefaults
	health  vitals

	yStep    float64
	distance float64
	walked   float64
	cooldown int
	grounded bool
}

// NewZombie creates a zombie emerging at (x, y) and facing dir. The walk
// distance is drawn from rng within the configured range.
func NewZombie(x, y float64, dir core.Direction, cfg config.ZombieDefaults, rng *rand.Rand) (*Zombie, error) {
	switch {
	case cfg.Speed < 0:
		return nil, invalid("zombie speed %v", cfg.Speed)
	case cfg.Gravity < 0:
		return nil, invalid("zombie gravity %v", cfg.Gravity)
	case cfg.Damage < 0:
		return nil, invalid("zombie damage %v", cfg.Damage)
	case cfg.MinWalkDistance < 0 || cfg.MinWalkDistance > cfg.MaxWalkDistance:
		return nil, invalid("zombie walk range [%v, %v]", cfg.MinWalkDistance, cfg.MaxWalkDistance)
	case dir != core.DirLeft && dir != core.DirRight:
		return nil, invalid("zombie facing %s", dir)
	case rng == nil:
		return nil, invalid("zombie needs a random source")
	}
	health, err := newVitals(cfg.MaxHealth)
	if err != nil {
		return nil, err
	}

	table := assets.Default().Table(assets.Zombie)
	initial := anim.State{Action: anim.ActionEmerging, Direction: dir}
	machine, err := anim.NewMachine(table, initial, cfg.CycleSpeed)
	if err != nil {
		return nil, invalid("zombie: %v", err)
	}
	z := &Zombie{
		body:     core.Box{X: x, Y: y},
		machine:  machine,
		cfg:      cfg,
		health:   health,
		distance: cfg.MinWalkDistance + rng.Float64()*(cfg.MaxWalkDistance-cfg.MinWalkDistance),
	}
	if f, ok := table.First(initial); ok {
		z.body.W, z.body.H = float64(f.W), float64(f.H)
	}
	return z, nil
}

func (z *Zombie) Kind() arena.Kind  { return KindZombie }
func (z *Zombie) Body() core.Box    { return z.body }
func (z *Zombie) State() anim.State { return z.machine.State() }
func (z *Zombie) Health() float64   { return z.health.value }
func (z *Zombie) Grounded() bool    { return z.grounded }
func (z *Zombie) Walked() float64   { return z.walked }
func (z *Zombie) Dead() bool        { return z.machine.Action() == anim.ActionDead }

// Damage is the contact damage dealt to the player.
func (z *Zombie) Damage() float64 { return z.cfg.Damage }

// SetDamage overrides the contact damage.
func (z *Zombie) SetDamage(d float64) {
	if d >= 0 {
		z.cfg.Damage = d
	}
}

// WalkDistance is the distance the zombie walks before immersing.
func (z *Zombie) WalkDistance() float64 { return z.distance }

// SetWalkDistance overrides the sampled walk distance.
func (z *Zombie) SetWalkDistance(d float64) {
	if d >= 0 {
		z.distance = d
	}
}

// StartWalking skips the emerging animation.
func (z *Zombie) StartWalking() {
	if z.machine.Action() == anim.ActionEmerging {
		z.machine.SetState(anim.ActionWalking, &z.body)
	}
}

// SetHealth clamps v; reaching 0 kills the zombie.
func (z *Zombie) SetHealth(v float64) {
	if z.Dead() {
		return
	}
	if z.health.set(v) {
		z.machine.SetAction(anim.ActionDead)
	}
}

// Hit subtracts damage from the health.
func (z *Zombie) Hit(damage float64) {
	z.SetHealth(z.health.value - damage)
}

// Move runs the emerge, walk, immerse progression.
func (z *Zombie) Move(w arena.World) {
	if z.Dead() {
		return
	}
	if z.cooldown > 0 {
		z.cooldown--
	}

	if z.machine.Action() != anim.ActionEmerging {
		z.yStep += z.cfg.Gravity
		z.body.Y += z.yStep
	}

	switch z.machine.Action() {
	case anim.ActionEmerging:
		if z.machine.Finished() {
			z.machine.SetState(anim.ActionWalking, &z.body)
		}
	case anim.ActionWalking:
		step := z.machine.Direction().Sign() * z.cfg.Speed
		z.body.X += step
		z.walked += z.cfg.Speed
		z.turnAtEdges(w)
		if z.walked >= z.distance && z.grounded {
			z.machine.SetState(anim.ActionImmersing, &z.body)
		}
	case anim.ActionImmersing:
		if z.machine.Finished() {
			z.machine.SetAction(anim.ActionDead)
			return
		}
	}
	z.machine.Advance()
}

func (z *Zombie) turnAtEdges(w arena.World) {
	width, _ := w.Size()
	switch {
	case z.body.X < 0:
		z.body.X = 0
		z.machine.SetDirection(core.DirRight)
	case z.body.Right() > width:
		z.body.X = width - z.body.W
		z.machine.SetDirection(core.DirLeft)
	}
}

// Frame returns the walk cycle looping and the emerge and immerse animations
// locked.
func (z *Zombie) Frame() (anim.Frame, bool) {
	if z.machine.Action() == anim.ActionWalking {
		return z.machine.Frame(anim.Looping)
	}
	return z.machine.Frame(anim.Locked)
}

// OnPlatform applies a platform push-out. A side contact turns the zombie
// around.
func (z *Zombie) OnPlatform(c core.Contact) {
	if !c.OK() {
		return
	}
	z.body.X += c.DX
	z.body.Y += c.DY
	switch c.Dir {
	case core.DirLeft, core.DirRight:
		z.machine.SetDirection(c.Dir)
	default:
		z.yStep = 0
		if c.Dir == core.DirUp {
			z.grounded = true
		}
	}
}

// OnPlayer hits the player once per attack interval while walking.
func (z *Zombie) OnPlayer(target arena.Damageable) {
	switch z.machine.Action() {
	case anim.ActionEmerging, anim.ActionImmersing, anim.ActionDead:
		return
	}
	if z.cooldown <= 0 {
		target.Hit(z.cfg.Damage)
		z.cooldown = z.cfg.AttackInterval
	}
}
