// Package core holds the pure building blocks shared by the simulation and the
// terminal front end: world geometry, key sets, the screen buffer and runtime
// settings. It imports nothing outside the standard library and never touches
// Bubble Tea, so everything above it stays testable without a terminal.
package core

// Direction is one of the four axis directions used for facing and for
// collision resolution.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Sign returns -1 for left, +1 for right and 0 otherwise.
func (d Direction) Sign() float64 {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// Surfaces is the set of resolution directions a platform honors.
type Surfaces uint8

// NoSurfaces makes a platform non-solid: it still overlaps, it never pushes.
const NoSurfaces Surfaces = 0

// AllSurfaces is a fully solid block.
const AllSurfaces = Surfaces(1<<DirUp | 1<<DirDown | 1<<DirLeft | 1<<DirRight)

// SurfacesOf builds a set from the given directions.
func SurfacesOf(dirs ...Direction) Surfaces {
	var s Surfaces
	for _, d := range dirs {
		if d != DirNone {
			s |= 1 << d
		}
	}
	return s
}

// Has reports whether d is in the set.
func (s Surfaces) Has(d Direction) bool {
	return d != DirNone && s&(1<<d) != 0
}

// Box is an axis-aligned rectangle in world pixels. X grows right, Y grows down.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Overlaps reports whether both projections intersect with strict inequality.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Resize changes the size while keeping the bottom edge in place.
func (b *Box) Resize(w, h float64) {
	bottom := b.Bottom()
	b.W = w
	b.H = h
	b.Y = bottom - h
}

// Contact is the outcome of pushing a body out of a platform.
type Contact struct {
	Dir    Direction // side of the platform the body was pushed to
	DX, DY float64   // offset to add to the body position
}

// OK reports whether the contact carries a resolution.
func (c Contact) OK() bool { return c.Dir != DirNone }

// Resolve computes the push-out of body from a static platform. The axis with
// the smaller overlap wins; ties resolve vertically. The side is picked by
// comparing centers. A side missing from surfaces voids the contact.
func Resolve(platform Box, surfaces Surfaces, body Box) Contact {
	if !body.Overlaps(platform) {
		return Contact{}
	}

	ox := min(body.Right(), platform.Right()) - max(body.X, platform.X)
	oy := min(body.Bottom(), platform.Bottom()) - max(body.Y, platform.Y)

	var c Contact
	if ox < oy {
		if body.CenterX() < platform.CenterX() {
			c = Contact{Dir: DirLeft, DX: -ox}
		} else {
			c = Contact{Dir: DirRight, DX: ox}
		}
	} else {
		if body.CenterY() < platform.CenterY() {
			c = Contact{Dir: DirUp, DY: -oy}
		} else {
			c = Contact{Dir: DirDown, DY: oy}
		}
	}

	if !surfaces.Has(c.Dir) {
		return Contact{}
	}
	return c
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Clamp restricts an int value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
