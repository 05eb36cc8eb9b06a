// Package assets owns the animation tables of every actor kind. Tables are
// built once, never modified, and shared by all actors of a kind.
package assets

import (
	"slices"
	"sync"

	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// Table names, one per animated actor kind.
const (
	Player  = "player"
	Zombie  = "zombie"
	Plant   = "plant"
	Torch   = "torch"
	EyeBall = "eyeball"
	Flame   = "flame"
	Door    = "door"
)

// Atlas is a read-only set of named animation tables.
type Atlas struct {
	tables map[string]anim.Table
}

var (
	defaultAtlas *Atlas
	buildOnce    sync.Once
)

// Default returns the process-wide atlas, building it on first use.
func Default() *Atlas {
	buildOnce.Do(func() {
		defaultAtlas = build()
	})
	return defaultAtlas
}

// Table returns the table for a kind. Unknown kinds get an empty table, which
// makes every frame lookup report "no frame".
func (a *Atlas) Table(kind string) anim.Table {
	if t, ok := a.tables[kind]; ok {
		return t
	}
	return anim.Table{}
}

// Kinds lists the table names in sorted order.
func (a *Atlas) Kinds() []string {
	names := make([]string, 0, len(a.tables))
	for name := range a.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func f(x, y, w, h int) anim.Frame {
	return anim.Frame{X: x, Y: y, W: w, H: h}
}

func st(a anim.Action, d core.Direction) anim.State {
	return anim.State{Action: a, Direction: d}
}

func repeat(frames []anim.Frame, n int) []anim.Frame {
	out := make([]anim.Frame, 0, len(frames)*n)
	for range n {
		out = append(out, frames...)
	}
	return out
}

func reversed(frames []anim.Frame) []anim.Frame {
	out := slices.Clone(frames)
	slices.Reverse(out)
	return out
}

const (
	left  = core.DirLeft
	right = core.DirRight
)

func build() *Atlas {
	return &Atlas{tables: map[string]anim.Table{
		Player:  anim.NewTable(playerFrames()),
		Zombie:  anim.NewTable(zombieFrames()),
		Plant:   anim.NewTable(plantFrames()),
		Torch:   anim.NewTable(torchFrames()),
		EyeBall: anim.NewTable(eyeBallFrames()),
		Flame:   anim.NewTable(flameFrames()),
		Door:    anim.NewTable(doorFrames()),
	}}
}

// Sheet coordinates below are regions of the character sprite sheet.

func playerFrames() map[anim.State][]anim.Frame {
	walkR := []anim.Frame{f(41, 42, 22, 32), f(67, 42, 18, 32), f(89, 42, 18, 32), f(110, 42, 23, 32)}
	walkL := []anim.Frame{f(449, 42, 22, 32), f(427, 42, 18, 32), f(405, 42, 18, 32), f(379, 42, 23, 32)}
	climbR := f(150, 132, 22, 31)
	climbL := f(340, 132, 22, 31)

	return map[anim.State][]anim.Frame{
		st(anim.ActionIdle, right): {f(7, 42, 19, 32)},
		st(anim.ActionIdle, left):  {f(486, 42, 19, 32)},

		// walk cycle bounces back through the middle frames
		st(anim.ActionWalking, right): append(slices.Clone(walkR), walkR[2], walkR[1]),
		st(anim.ActionWalking, left):  append(slices.Clone(walkL), walkL[2], walkL[1]),

		st(anim.ActionJumping, right): append(repeat([]anim.Frame{f(144, 29, 32, 32)}, 3), f(181, 29, 26, 32)),
		st(anim.ActionJumping, left):  append(repeat([]anim.Frame{f(336, 29, 32, 32)}, 3), f(305, 29, 26, 32)),

		st(anim.ActionCrouching, right): {f(223, 51, 22, 23)},
		st(anim.ActionCrouching, left):  {f(267, 51, 22, 23)},

		st(anim.ActionClimbing, right): {climbR, climbL},
		st(anim.ActionClimbing, left):  {climbL, climbR},

		st(anim.ActionClimbingPose, right): {climbR},
		st(anim.ActionClimbingPose, left):  {climbL},

		st(anim.ActionAttacking, right): {f(5, 131, 23, 32), f(30, 131, 23, 32)},
		st(anim.ActionAttacking, left):  {f(484, 131, 23, 32), f(459, 131, 23, 32)},

		st(anim.ActionAttackingCrouched, right): {f(75, 140, 22, 23), f(101, 140, 27, 23)},
		st(anim.ActionAttackingCrouched, left):  {f(415, 140, 22, 23), f(384, 140, 27, 23)},
	}
}

func zombieFrames() map[anim.State][]anim.Frame {
	emergeL := []anim.Frame{f(512, 65, 16, 32), f(533, 65, 25, 32), f(562, 65, 18, 32), f(610, 65, 18, 32)}
	emergeR := []anim.Frame{f(778, 65, 16, 32), f(748, 65, 25, 32), f(726, 65, 18, 32), f(678, 65, 18, 32)}

	return map[anim.State][]anim.Frame{
		st(anim.ActionEmerging, left):   emergeL,
		st(anim.ActionEmerging, right):  emergeR,
		st(anim.ActionImmersing, left):  reversed(emergeL),
		st(anim.ActionImmersing, right): reversed(emergeR),
		st(anim.ActionWalking, left):    {f(585, 65, 21, 32), f(610, 65, 18, 32), f(631, 65, 20, 32)},
		st(anim.ActionWalking, right):   {f(700, 65, 21, 32), f(678, 65, 18, 32), f(655, 65, 20, 32)},
	}
}

func plantFrames() map[anim.State][]anim.Frame {
	growing := func(x int) []anim.Frame {
		return []anim.Frame{f(x, 207, 16, 8), f(x, 207, 16, 16), f(x, 207, 16, 24), f(x, 207, 16, 32)}
	}

	return map[anim.State][]anim.Frame{
		st(anim.ActionSpawning, right):  growing(726),
		st(anim.ActionSpawning, left):   growing(564),
		st(anim.ActionIdle, right):      {f(726, 207, 16, 32)},
		st(anim.ActionIdle, left):       {f(564, 207, 16, 32)},
		st(anim.ActionAttacking, right): {f(708, 207, 16, 32), f(690, 207, 16, 32), f(672, 207, 16, 32), f(654, 207, 16, 32)},
		st(anim.ActionAttacking, left):  {f(582, 207, 16, 32), f(600, 207, 16, 32), f(618, 207, 16, 32), f(636, 207, 16, 32)},
	}
}

func torchFrames() map[anim.State][]anim.Frame {
	flyR := []anim.Frame{f(18, 398, 16, 16), f(39, 398, 16, 16), f(57, 399, 16, 16), f(77, 398, 16, 16)}
	flyL := []anim.Frame{f(478, 398, 16, 16), f(457, 398, 16, 16), f(439, 399, 16, 16), f(419, 398, 16, 16)}

	return map[anim.State][]anim.Frame{
		st(anim.ActionAttacking, right): append(slices.Clone(flyR), flyR[2], flyR[1]),
		st(anim.ActionAttacking, left):  append(slices.Clone(flyL), flyL[2], flyL[1]),
	}
}

func eyeBallFrames() map[anim.State][]anim.Frame {
	return map[anim.State][]anim.Frame{
		st(anim.ActionAttacking, right): {f(552, 219, 8, 8)},
		st(anim.ActionAttacking, left):  {f(746, 219, 8, 8)},
	}
}

func flameFrames() map[anim.State][]anim.Frame {
	return map[anim.State][]anim.Frame{
		st(anim.ActionBig, right):   repeat([]anim.Frame{f(116, 427, 34, 33), f(152, 427, 26, 33)}, 2),
		st(anim.ActionBig, left):    repeat([]anim.Frame{f(362, 427, 34, 33), f(334, 427, 26, 33)}, 2),
		st(anim.ActionSmall, right): repeat([]anim.Frame{f(209, 442, 18, 18), f(228, 442, 12, 18)}, 2),
		st(anim.ActionSmall, left):  repeat([]anim.Frame{f(285, 442, 18, 18), f(272, 442, 12, 18)}, 2),
	}
}

func doorFrames() map[anim.State][]anim.Frame {
	closed := f(2, 261, 48, 64)
	half := f(53, 261, 48, 64)
	open := f(104, 261, 48, 64)

	return map[anim.State][]anim.Frame{
		st(anim.ActionClose, core.DirDown): {open, half, closed},
		st(anim.ActionOpen, core.DirDown):  {closed, half, open},
	}
}
