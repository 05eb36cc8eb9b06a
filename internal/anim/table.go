package anim

// Frame describes one animation frame: a source region in a sprite sheet plus
// a blinking flag set by actors that want the renderer to flicker them.
type Frame struct {
	X, Y     int
	W, H     int
	Blinking bool
}

// Table maps states to frame lists. A Table is immutable once built; every
// actor of a kind shares the same one.
type Table struct {
	frames map[State][]Frame
}

// NewTable copies the given lists into a new table.
func NewTable(src map[State][]Frame) Table {
	t := Table{frames: make(map[State][]Frame, len(src))}
	for s, list := range src {
		t.frames[s] = append([]Frame(nil), list...)
	}
	return t
}

// Len returns the number of frames for s, 0 when s has no entry.
func (t Table) Len(s State) int {
	return len(t.frames[s])
}

// At returns frame i of s.
func (t Table) At(s State, i int) (Frame, bool) {
	list := t.frames[s]
	if i < 0 || i >= len(list) {
		return Frame{}, false
	}
	return list[i], true
}

// First returns the first frame of s.
func (t Table) First(s State) (Frame, bool) {
	return t.At(s, 0)
}

// States returns the number of states with an entry.
func (t Table) States() int {
	return len(t.frames)
}
