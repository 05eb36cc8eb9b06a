package game

import (
	"fmt"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// leadFactor places the followed target a bit left of the view center, so
// more of the world ahead is visible.
const leadFactor = 3.5

// Camera is a view rectangle in world pixels that follows a target and never
// leaves the world.
type Camera struct {
	X, Y float64
	W, H float64
}

// NewCamera creates a camera of the given view size at the world origin.
func NewCamera(w, h float64) (*Camera, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("game: camera view %vx%v", w, h)
	}
	return &Camera{W: w, H: h}, nil
}

// Follow moves the view toward target, clamped to a world of the given size.
// A world smaller than the view pins the camera to 0.
func (c *Camera) Follow(target core.Box, worldW, worldH float64) {
	x := target.X - c.W/leadFactor
	y := target.Y - c.H/2
	c.X = core.ClampF(x, 0, max(0, worldW-c.W))
	c.Y = core.ClampF(y, 0, max(0, worldH-c.H))
}

// Project converts a world box into view coordinates.
func (c *Camera) Project(b core.Box) core.Box {
	b.X -= c.X
	b.Y -= c.Y
	return b
}

// Visible reports whether any part of b is inside the view.
func (c *Camera) Visible(b core.Box) bool {
	return b.Overlaps(core.Box{X: c.X, Y: c.Y, W: c.W, H: c.H})
}
