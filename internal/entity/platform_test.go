package entity

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

func TestPlatformConstructors(t *testing.T) {
	box := core.Box{X: 0, Y: 100, W: 50, H: 10}
	tests := []struct {
		name  string
		build func() (*Platform, error)
		kind  string
		solid bool
	}{
		{"ground", func() (*Platform, error) { return NewPlatform("ground", box, 0, core.AllSurfaces) }, "platform", true},
		{"ladder", func() (*Platform, error) { return NewLadder("ladder", box) }, "ladder", false},
		{"gravestone", func() (*Platform, error) { return NewGraveStone("stone", box) }, "gravestone", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := KindName(p.Kind()); got != tc.kind {
				t.Errorf("kind = %s, expected %s", got, tc.kind)
			}
			if !IsStatic(p.Kind()) {
				t.Error("platforms are static")
			}
			body := core.Box{X: 10, Y: 95, W: 10, H: 10}
			if got := p.Resolve(body).OK(); got != tc.solid {
				t.Errorf("contact ok = %v, expected %v", got, tc.solid)
			}
		})
	}
}

func TestPlatformResolveHonorsSurfaces(t *testing.T) {
	top, err := NewPlatform("ledge", core.Box{X: 0, Y: 100, W: 50, H: 10}, 0, core.SurfacesOf(core.DirUp))
	if err != nil {
		t.Fatal(err)
	}
	c := top.Resolve(core.Box{X: 10, Y: 95, W: 10, H: 10})
	if c.Dir != core.DirUp || c.DY != -5 {
		t.Errorf("contact = %+v, expected up by 5", c)
	}
	if c := top.Resolve(core.Box{X: 10, Y: 105, W: 10, H: 10}); c.OK() {
		t.Errorf("contact from below = %+v, expected none", c)
	}
}

func TestPlatformValidation(t *testing.T) {
	if _, err := NewPlatform("flat", core.Box{W: 10}, 0, core.AllSurfaces); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero height error = %v", err)
	}
	if _, err := NewPlatform("spiky", core.Box{W: 10, H: 10}, -1, core.AllSurfaces); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative damage error = %v", err)
	}
}

func TestKindNames(t *testing.T) {
	if KindName(KindEyeBall) != "eyeball" {
		t.Errorf("KindName(KindEyeBall) = %s", KindName(KindEyeBall))
	}
	if KindName(99) != "kind(99)" {
		t.Errorf("unknown kind name = %s", KindName(99))
	}
	if IsStatic(KindZombie) {
		t.Error("zombies are not static")
	}
}
