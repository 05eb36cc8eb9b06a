// Package arena runs the per-tick world loop: it owns the actor list, moves
// every actor, dispatches pairwise collisions through a kind-indexed handler
// table and applies spawn and kill requests at fixed points of the tick.
package arena

import (
	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// Kind tags the concrete type of an actor. Handlers are looked up by pairs of
// kinds, so every concrete actor type owns a distinct kind below MaxKinds.
type Kind uint8

// MaxKinds bounds the collision table.
const MaxKinds = 32

// Actor is anything simulated by the arena.
type Actor interface {
	Kind() Kind
	// Body returns the current bounding box in world pixels.
	Body() core.Box
	// Move advances the actor by one tick.
	Move(w World)
}

// Animated actors expose their current frame to renderers.
type Animated interface {
	Frame() (anim.Frame, bool)
}

// Damaging actors hurt what they touch.
type Damaging interface {
	Damage() float64
}

// Damageable actors can take hits.
type Damageable interface {
	Hit(damage float64)
}

// Killable actors have a terminal state.
type Killable interface {
	Dead() bool
}

// Solid actors push overlapping bodies out of themselves.
type Solid interface {
	Resolve(body core.Box) core.Contact
}

// World is the view of the arena handed to actors and handlers.
type World interface {
	// Keys returns the keys held this tick. Callers must not modify it.
	Keys() core.KeySet
	// Cursor returns the pointer position in world coordinates.
	Cursor() (x, y float64)
	// Actors returns the live actors in order. Callers must not modify it.
	Actors() []Actor
	// Size returns the world size in pixels.
	Size() (w, h float64)
	// Spawn queues a new actor.
	Spawn(a Actor)
	// Kill queues an actor for removal.
	Kill(a Actor)
}

// IsDead reports whether a is Killable and dead.
func IsDead(a Actor) bool {
	k, ok := a.(Killable)
	return ok && k.Dead()
}
