package entity

import (
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// fakeWorld records spawn and kill requests instead of applying them.
type fakeWorld struct {
	keys    core.KeySet
	actors  []arena.Actor
	spawned []arena.Actor
	killed  []arena.Actor
	w, h    float64
	cx, cy  float64
}

func newFakeWorld(keys ...core.Key) *fakeWorld {
	return &fakeWorld{keys: core.NewKeySet(keys...), w: 3584, h: 240}
}

func (f *fakeWorld) Keys() core.KeySet          { return f.keys }
func (f *fakeWorld) Cursor() (float64, float64) { return f.cx, f.cy }
func (f *fakeWorld) Actors() []arena.Actor      { return f.actors }
func (f *fakeWorld) Size() (float64, float64)   { return f.w, f.h }
func (f *fakeWorld) Spawn(a arena.Actor)        { f.spawned = append(f.spawned, a) }
func (f *fakeWorld) Kill(a arena.Actor)         { f.killed = append(f.killed, a) }
func (f *fakeWorld) press(keys ...core.Key)     { f.keys = core.NewKeySet(keys...) }

func (f *fakeWorld) spawnedOf(k arena.Kind) (n int) {
	for _, a := range f.spawned {
		if a.Kind() == k {
			n++
		}
	}
	return n
}
