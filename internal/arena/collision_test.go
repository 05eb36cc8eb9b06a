package arena

import (
	"testing"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

func TestRegisterMirrorsArguments(t *testing.T) {
	reg := NewRegistry()
	var gotA, gotB Actor
	reg.Register(kindMover, kindBox, func(a, b Actor, w World) {
		gotA, gotB = a, b
	})

	box := &stub{kind: kindBox, body: core.Box{X: 0, Y: 0, W: 10, H: 10}}
	mover := &stub{kind: kindMover, body: core.Box{X: 5, Y: 5, W: 10, H: 10}}

	// box comes first in the list, so the mirrored entry is used
	reg.Dispatch([]Actor{box, mover}, nil)
	if gotA != mover || gotB != box {
		t.Errorf("handler got (%v, %v), expected (mover, box)", gotA, gotB)
	}
	if reg.Handler(kindBox, kindMover) == nil {
		t.Error("mirrored entry missing")
	}
}

func TestRegisterNilClearsBothEntries(t *testing.T) {
	reg := NewRegistry()
	reg.Register(kindMover, kindBox, func(a, b Actor, w World) {})
	reg.Register(kindMover, kindBox, nil)
	if reg.Handler(kindMover, kindBox) != nil || reg.Handler(kindBox, kindMover) != nil {
		t.Error("nil registration should clear both entries")
	}
}

func TestRegisterPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for kind outside the table")
		}
	}()
	NewRegistry().Register(MaxKinds, kindBox, func(a, b Actor, w World) {})
}

func TestDispatchSeesPushOut(t *testing.T) {
	reg := NewRegistry()
	calls := 0
	reg.Register(kindMover, kindBox, func(a, b Actor, w World) {
		calls++
		m := a.(*stub)
		m.body.X = b.Body().Right()
	})

	mover := &stub{kind: kindMover, body: core.Box{X: 5, Y: 0, W: 10, H: 10}}
	first := &stub{kind: kindBox, body: core.Box{X: 0, Y: 0, W: 10, H: 10}}
	// second overlaps the mover only at its original position
	second := &stub{kind: kindBox, body: core.Box{X: 0, Y: 0, W: 9, H: 10}}

	reg.Dispatch([]Actor{mover, first, second}, nil)
	if calls != 1 {
		t.Errorf("calls = %d, expected 1 since the first push-out clears the second box", calls)
	}
}

func TestFreeHandlerFiresOncePerPass(t *testing.T) {
	reg := NewRegistry()
	free := 0
	reg.RegisterFree(kindMover, kindLadder, func(a, b Actor, w World) { free++ })

	player := &stub{kind: kindMover, body: core.Box{X: 0, Y: 0, W: 10, H: 10}}
	ladderA := &stub{kind: kindLadder, body: core.Box{X: 100, Y: 0, W: 10, H: 50}}
	ladderB := &stub{kind: kindLadder, body: core.Box{X: 200, Y: 0, W: 10, H: 50}}

	reg.Dispatch([]Actor{player, ladderA, ladderB}, nil)
	if free != 1 {
		t.Errorf("free handler fired %d times, expected 1", free)
	}
}

func TestFreeHandlerSkippedWhenAnyPairOverlaps(t *testing.T) {
	reg := NewRegistry()
	free, hit := 0, 0
	reg.Register(kindMover, kindLadder, func(a, b Actor, w World) { hit++ })
	reg.RegisterFree(kindMover, kindLadder, func(a, b Actor, w World) { free++ })

	player := &stub{kind: kindMover, body: core.Box{X: 200, Y: 0, W: 10, H: 10}}
	far := &stub{kind: kindLadder, body: core.Box{X: 100, Y: 0, W: 10, H: 50}}
	near := &stub{kind: kindLadder, body: core.Box{X: 205, Y: 0, W: 10, H: 50}}

	reg.Dispatch([]Actor{far, player, near}, nil)
	if hit != 1 {
		t.Errorf("collision handler fired %d times, expected 1", hit)
	}
	if free != 0 {
		t.Errorf("free handler fired %d times, expected 0", free)
	}
}

func TestFreeHandlerArgumentOrder(t *testing.T) {
	reg := NewRegistry()
	var got Actor
	reg.RegisterFree(kindMover, kindLadder, func(a, b Actor, w World) { got = a })

	player := &stub{kind: kindMover, body: core.Box{X: 0, Y: 0, W: 10, H: 10}}
	ladder := &stub{kind: kindLadder, body: core.Box{X: 100, Y: 0, W: 10, H: 50}}

	reg.Dispatch([]Actor{ladder, player}, nil)
	if got != player {
		t.Error("free handler should receive the first registered kind first")
	}
}
