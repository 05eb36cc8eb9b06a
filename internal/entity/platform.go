package entity

import (
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// Platform is static level geometry. Ground, walls, water, ladders and
// gravestones are all platforms that differ in kind, contact surfaces and
// contact damage.
type Platform struct {
	kind     arena.Kind
	name     string
	body     core.Box
	surfaces core.Surfaces
	damage   float64
}

func newPlatform(kind arena.Kind, name string, body core.Box, damage float64, surfaces core.Surfaces) (*Platform, error) {
	if body.W <= 0 || body.H <= 0 {
		return nil, invalid("%s %q: size %vx%v", KindName(kind), name, body.W, body.H)
	}
	if damage < 0 {
		return nil, invalid("%s %q: negative damage %v", KindName(kind), name, damage)
	}
	return &Platform{kind: kind, name: name, body: body, surfaces: surfaces, damage: damage}, nil
}

// NewPlatform creates a ground or hazard block.
func NewPlatform(name string, body core.Box, damage float64, surfaces core.Surfaces) (*Platform, error) {
	return newPlatform(KindPlatform, name, body, damage, surfaces)
}

// NewLadder creates a climbable, non-solid area.
func NewLadder(name string, body core.Box) (*Platform, error) {
	return newPlatform(KindLadder, name, body, 0, core.NoSurfaces)
}

// NewGraveStone creates a solid block that walkers pass through.
func NewGraveStone(name string, body core.Box) (*Platform, error) {
	return newPlatform(KindGraveStone, name, body, 0, core.AllSurfaces)
}

func (p *Platform) Kind() arena.Kind        { return p.kind }
func (p *Platform) Body() core.Box          { return p.body }
func (p *Platform) Move(arena.World)        {}
func (p *Platform) Name() string            { return p.name }
func (p *Platform) Surfaces() core.Surfaces { return p.surfaces }

// Damage is the contact damage, 0 for solid ground.
func (p *Platform) Damage() float64 { return p.damage }

// Resolve returns the push-out for body, honoring the contact surfaces.
func (p *Platform) Resolve(body core.Box) core.Contact {
	return core.Resolve(p.body, p.surfaces, body)
}
