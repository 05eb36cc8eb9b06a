package core

import (
	"sort"
	"strings"
)

// Key identifies a pressed key. Mouse buttons appear as virtual keys.
type Key string

// Keys understood by the simulation.
const (
	KeyUp      Key = "ArrowUp"
	KeyDown    Key = "ArrowDown"
	KeyLeft    Key = "ArrowLeft"
	KeyRight   Key = "ArrowRight"
	KeyThrow   Key = "1"
	KeyPointer Key = "LeftButton"
	KeyPause   Key = "Pause"
	KeyRestart Key = "Restart"
)

// KeySet is the set of keys held during one tick.
type KeySet map[Key]struct{}

// NewKeySet creates a set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is held. A nil set holds nothing.
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Add marks k as held.
func (s KeySet) Add(k Key) {
	s[k] = struct{}{}
}

// Clone returns an independent copy.
func (s KeySet) Clone() KeySet {
	c := make(KeySet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// String lists the keys in sorted order, for logs and test failures.
func (s KeySet) String() string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return "{" + strings.Join(names, ",") + "}"
}

// Input is the input snapshot for one tick: held keys plus the cursor in
// world coordinates.
type Input struct {
	Keys             KeySet
	CursorX, CursorY float64
}

// NewInput creates an input snapshot with the given keys held.
func NewInput(keys ...Key) Input {
	return Input{Keys: NewKeySet(keys...)}
}

// Has reports whether k is held in this snapshot.
func (in Input) Has(k Key) bool {
	return in.Keys.Has(k)
}
