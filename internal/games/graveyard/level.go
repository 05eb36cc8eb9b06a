package graveyard

import (
	"fmt"

	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/entity"
)

// Slab is one piece of static geometry in a layout.
type Slab struct {
	Name     string
	Box      core.Box
	Damage   float64
	Surfaces core.Surfaces
}

// Spot is a position in world pixels.
type Spot struct {
	X, Y float64
}

// Level is a static layout: world size, player start and geometry. Enemies
// are not part of a layout; they spawn during the run.
type Level struct {
	ID     string
	Title  string
	Width  float64
	Height float64

	Player      Spot
	Platforms   []Slab
	Ladders     []Slab
	GraveStones []Slab
	Doors       []Spot
}

// Walls and surfaces shared by the layouts.
const (
	wallThickness = 10
	groundY       = 192
	waterDamage   = 16
)

var wallSurfaces = core.SurfacesOf(core.DirLeft, core.DirRight, core.DirDown)

func walls(width, height float64) []Slab {
	return []Slab{
		{Name: "Wall Left", Box: core.Box{X: -wallThickness, Y: 0, W: wallThickness, H: height}, Surfaces: wallSurfaces},
		{Name: "Wall Right", Box: core.Box{X: width, Y: 0, W: wallThickness, H: height}, Surfaces: wallSurfaces},
	}
}

func ground(name string, x, w float64) Slab {
	return Slab{Name: name, Box: core.Box{X: x, Y: groundY, W: w, H: 48}, Surfaces: core.AllSurfaces}
}

func water(name string, x, w float64) Slab {
	return Slab{Name: name, Box: core.Box{X: x, Y: 208, W: w, H: 32}, Damage: waterDamage, Surfaces: core.NoSurfaces}
}

func ledge(name string, x, y, w float64) Slab {
	return Slab{Name: name, Box: core.Box{X: x, Y: y, W: w, H: 12}, Surfaces: core.AllSurfaces}
}

func ladder(name string, x, y, h float64) Slab {
	return Slab{Name: name, Box: core.Box{X: x, Y: y, W: 18, H: h}}
}

func stone(name string, x, y, w, h float64) Slab {
	return Slab{Name: name, Box: core.Box{X: x, Y: y, W: w, H: h}}
}

// Graveyard is the full level: a long stretch of ground broken by water, a
// row of floating platforms reached by ladders, and the exit door at the far
// end.
func Graveyard() *Level {
	const width, height = 3584, 240
	l := &Level{
		ID:     "graveyard",
		Title:  "Graveyard",
		Width:  width,
		Height: height,
		Player: Spot{X: 50, Y: 50},
	}
	l.Platforms = append(walls(width, height),
		ground("Ground 1", 0, 1664),
		ground("Ground 2", 1792, 160),
		ground("Ground 3", 1984, 32),
		ground("Ground 4", 2048, 400),
		ground("Ground 5", 2480, 224),
		ground("Ground 6", 2736, 848),

		water("Water 1", 1664, 128),
		water("Water 2", 1952, 32),
		water("Water 3", 2016, 32),
		water("Water 4", 2448, 32),
		water("Water 5", 2704, 32),

		ledge("FloatingPlatform 1", 608, 112, 108),
		ledge("FloatingPlatform 2", 740, 112, 168),
		ledge("FloatingPlatform 3", 932, 112, 136),
		ledge("FloatingPlatform 4", 1092, 112, 27),
	)
	l.Ladders = []Slab{
		ladder("Ladder 1", 719, 112, 80),
		ladder("Ladder 2", 911, 112, 80),
		ladder("Ladder 3", 1071, 112, 80),
	}
	l.GraveStones = []Slab{
		stone("GraveStone 1", 48, 176, 16, 16),
		stone("GraveStone 2", 240, 176, 16, 16),
		stone("GraveStone 3", 528, 176, 16, 16),
		stone("GraveStone 4", 752, 176, 16, 16),
		stone("GraveStone 5", 960, 176, 16, 16),
		stone("GraveStone 6", 1104, 176, 16, 16),
		stone("GraveStone 7", 1520, 176, 16, 16),
		stone("GraveStone 8", 864, 96, 16, 16),
		stone("GraveStone 9", 416, 178, 17, 14),
		stone("GraveStone 10", 768, 98, 17, 14),
		stone("GraveStone 11", 960, 98, 17, 14),
		stone("GraveStone 12", 1264, 178, 17, 14),
	}
	l.Doors = []Spot{{X: 3456, Y: 128}}
	return l
}

// Crypt is a short level for quick runs: one water gap, one ladder up to a
// ledge and the door.
func Crypt() *Level {
	const width, height = 1280, 240
	l := &Level{
		ID:     "crypt",
		Title:  "Crypt",
		Width:  width,
		Height: height,
		Player: Spot{X: 50, Y: 50},
	}
	l.Platforms = append(walls(width, height),
		ground("Ground 1", 0, 560),
		ground("Ground 2", 624, 656),
		water("Water 1", 560, 64),
		ledge("Ledge 1", 220, 112, 100),
		ledge("Ledge 2", 338, 112, 120),
	)
	l.Ladders = []Slab{
		ladder("Ladder 1", 320, 112, 80),
	}
	l.GraveStones = []Slab{
		stone("GraveStone 1", 160, 176, 16, 16),
		stone("GraveStone 2", 400, 96, 16, 16),
		stone("GraveStone 3", 760, 178, 17, 14),
		stone("GraveStone 4", 980, 176, 16, 16),
	}
	l.Doors = []Spot{{X: 1180, Y: 128}}
	return l
}

var layouts = []func() *Level{Graveyard, Crypt}

// Levels returns a fresh copy of every built-in layout.
func Levels() []*Level {
	levels := make([]*Level, 0, len(layouts))
	for _, build := range layouts {
		levels = append(levels, build())
	}
	return levels
}

// Goal returns the x of the first door, or the world width without one.
func (l *Level) Goal() float64 {
	if len(l.Doors) == 0 {
		return l.Width
	}
	return l.Doors[0].X
}

// Queue builds the spawn queue for a run: player first, then geometry and
// doors in layout order.
func (l *Level) Queue(s config.Settings) ([]arena.Actor, error) {
	queue := make([]arena.Actor, 0, 1+len(l.Platforms)+len(l.Ladders)+len(l.GraveStones)+len(l.Doors))

	player, err := entity.NewPlayer(l.Player.X, l.Player.Y, s.Player.Defaults,
		entity.WithWeapon(s.Torch.Defaults, s.Flame.Defaults))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	queue = append(queue, player)

	for _, slab := range l.Platforms {
		p, err := entity.NewPlatform(slab.Name, slab.Box, slab.Damage, slab.Surfaces)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
		queue = append(queue, p)
	}
	for _, slab := range l.Ladders {
		p, err := entity.NewLadder(slab.Name, slab.Box)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
		queue = append(queue, p)
	}
	for _, slab := range l.GraveStones {
		p, err := entity.NewGraveStone(slab.Name, slab.Box)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
		queue = append(queue, p)
	}
	for _, spot := range l.Doors {
		d, err := entity.NewDoor(spot.X, spot.Y, s.Door.Defaults)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
		queue = append(queue, d)
	}
	return queue, nil
}
