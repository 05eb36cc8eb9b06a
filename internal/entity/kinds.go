// Package entity holds the concrete actors of the graveyard: the player, the
// two enemy archetypes, projectiles and effects, and the static geometry they
// collide with. Each actor is a small state machine driven by anim.Machine.
package entity

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-graveyard/internal/arena"
)

// Actor kinds. Zero is left unused so an unset kind never matches a handler.
const (
	KindPlayer arena.Kind = iota + 1
	KindZombie
	KindPlant
	KindTorch
	KindFlame
	KindEyeBall
	KindPlatform
	KindLadder
	KindGraveStone
	KindDoor
)

var kindNames = map[arena.Kind]string{
	KindPlayer:     "player",
	KindZombie:     "zombie",
	KindPlant:      "plant",
	KindTorch:      "torch",
	KindFlame:      "flame",
	KindEyeBall:    "eyeball",
	KindPlatform:   "platform",
	KindLadder:     "ladder",
	KindGraveStone: "gravestone",
	KindDoor:       "door",
}

// KindName returns a readable name for k.
func KindName(k arena.Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsStatic reports whether k is level geometry.
func IsStatic(k arena.Kind) bool {
	switch k {
	case KindPlatform, KindLadder, KindGraveStone, KindDoor:
		return true
	}
	return false
}

// ErrInvalidArgument is returned by constructors given out-of-range values.
var ErrInvalidArgument = errors.New("entity: invalid argument")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// vitals is a health pool clamped to [0, max].
type vitals struct {
	value, max float64
}

func newVitals(limit float64) (vitals, error) {
	if limit <= 0 {
		return vitals{}, invalid("max health must be positive, got %v", limit)
	}
	return vitals{value: limit, max: limit}, nil
}

// set clamps v into the pool and reports whether it is now empty.
func (h *vitals) set(v float64) bool {
	h.value = min(max(v, 0), h.max)
	return h.value == 0
}
