package arena

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// ErrInvalidArgument is returned for invalid construction arguments.
var ErrInvalidArgument = errors.New("arena: invalid argument")

// Option configures an Arena.
type Option func(*Arena)

// WithRegistry sets the collision registry. By default the arena creates an
// empty one.
func WithRegistry(r *Registry) Option {
	return func(a *Arena) {
		if r != nil {
			a.collisions = r
		}
	}
}

// WithExemption marks actors that are never culled for leaving the bounds.
func WithExemption(exempt func(Actor) bool) Option {
	return func(a *Arena) {
		a.exempt = exempt
	}
}

// Arena owns the actors and the world bounds and runs the tick loop.
// Actors must be comparable values, in practice pointers.
//
// Spawn and Kill never touch the actor list directly. Requests are staged and
// applied by Commit, which Tick calls after culling (before the movement pass)
// and again after the collision pass. Within a commit spawns are applied
// before kills, so an actor spawned and killed in the same tick never shows up.
type Arena struct {
	width, height float64

	actors []Actor
	spawns []Actor
	kills  []Actor

	keys             core.KeySet
	cursorX, cursorY float64

	collisions *Registry
	exempt     func(Actor) bool
}

// New creates an empty arena of the given size.
func New(width, height float64, opts ...Option) (*Arena, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: world size %vx%v", ErrInvalidArgument, width, height)
	}
	a := &Arena{
		width:      width,
		height:     height,
		keys:       core.KeySet{},
		collisions: NewRegistry(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Keys returns the keys held this tick.
func (a *Arena) Keys() core.KeySet { return a.keys }

// Cursor returns the pointer position sampled this tick.
func (a *Arena) Cursor() (float64, float64) { return a.cursorX, a.cursorY }

// Actors returns the live actors in spawn order.
func (a *Arena) Actors() []Actor { return a.actors }

// Size returns the world size.
func (a *Arena) Size() (float64, float64) { return a.width, a.height }

// Collisions returns the registry used by the collision pass.
func (a *Arena) Collisions() *Registry { return a.collisions }

// Spawn stages an actor for addition.
func (a *Arena) Spawn(actor Actor) {
	if actor != nil {
		a.spawns = append(a.spawns, actor)
	}
}

// Kill stages an actor for removal.
func (a *Arena) Kill(actor Actor) {
	if actor != nil {
		a.kills = append(a.kills, actor)
	}
}

// Pending returns the number of staged spawns and kills.
func (a *Arena) Pending() (spawns, kills int) {
	return len(a.spawns), len(a.kills)
}

// Contains reports whether actor is live.
func (a *Arena) Contains(actor Actor) bool {
	return slices.Contains(a.actors, actor)
}

// InBounds reports whether actor lies horizontally inside the world and does
// not reach below its floor. The top is open.
func (a *Arena) InBounds(actor Actor) bool {
	b := actor.Body()
	return b.X >= 0 && b.X <= a.width-b.W && b.Y <= a.height-b.H
}

// Commit applies staged spawns, then staged kills.
func (a *Arena) Commit() {
	for _, s := range a.spawns {
		if !slices.Contains(a.actors, s) {
			a.actors = append(a.actors, s)
		}
	}
	clear(a.spawns)
	a.spawns = a.spawns[:0]

	if len(a.kills) == 0 {
		return
	}
	live := make([]Actor, 0, len(a.actors))
	for _, actor := range a.actors {
		if !slices.Contains(a.kills, actor) {
			live = append(live, actor)
		}
	}
	a.actors = live
	clear(a.kills)
	a.kills = a.kills[:0]
}

// Cull stages removal of dead actors and of non-exempt actors outside the
// bounds.
func (a *Arena) Cull() {
	for _, actor := range a.actors {
		if IsDead(actor) {
			a.Kill(actor)
			continue
		}
		if a.exempt != nil && a.exempt(actor) {
			continue
		}
		if !a.InBounds(actor) {
			a.Kill(actor)
		}
	}
}

// Tick runs one frame: snapshot the input, cull, move every actor, dispatch
// collisions.
func (a *Arena) Tick(in core.Input) {
	if in.Keys != nil {
		a.keys = in.Keys.Clone()
	} else {
		a.keys = core.KeySet{}
	}
	a.cursorX, a.cursorY = in.CursorX, in.CursorY

	a.Cull()
	a.Commit()

	for _, actor := range a.actors {
		actor.Move(a)
	}

	a.collisions.Dispatch(a.actors, a)
	a.Commit()
}
