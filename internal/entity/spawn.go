package entity

import (
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// Candidate is a horizontal range on top of a platform where an actor may
// appear, with its distance from the player and the facing that looks back at
// the player.
type Candidate struct {
	MinX, MaxX float64
	Top        float64
	Distance   float64
	Facing     core.Direction
}

// SpawnPoint is the chosen position for a new actor.
type SpawnPoint struct {
	X, Y   float64
	Facing core.Direction
}

// spawnable reports whether a can host a spawn: a damage-free platform
// (not a ladder or gravestone) that can be stood on.
func spawnable(a arena.Actor) (*Platform, bool) {
	p, ok := a.(*Platform)
	if !ok || p.Kind() != KindPlatform {
		return nil, false
	}
	if math.Round(p.damage) != 0 || !p.surfaces.Has(core.DirUp) {
		return nil, false
	}
	return p, true
}

// SpawnCandidates lists the ranges within band of the player's center, on
// either side, that are wider than width.
func SpawnCandidates(player core.Box, actors []arena.Actor, band config.Band, width float64) []Candidate {
	cx := player.X + math.Floor(player.W/2)
	feet := player.Bottom()

	var out []Candidate
	for _, a := range actors {
		p, ok := spawnable(a)
		if !ok {
			continue
		}
		b := p.body
		dy := math.Abs(b.Y - feet)

		// left side: [cx-max, cx-min]
		if lo, hi := max(b.X, cx-band.Max), min(b.Right(), cx-band.Min); lo <= hi && hi-lo > width {
			out = append(out, Candidate{MinX: lo, MaxX: hi, Top: b.Y, Distance: dy + (cx - hi), Facing: core.DirRight})
		}
		// right side: [cx+min, cx+max]
		if lo, hi := max(b.X, cx+band.Min), min(b.Right(), cx+band.Max); lo <= hi && hi-lo > width {
			out = append(out, Candidate{MinX: lo, MaxX: hi, Top: b.Y, Distance: dy + (lo - cx), Facing: core.DirLeft})
		}
	}
	return out
}

// PickSpawn picks uniformly among the shortlist closest candidates and a
// uniform x inside the chosen range. It reports false when there is nothing to
// pick from.
func PickSpawn(rng *rand.Rand, candidates []Candidate, shortlist int, width, height float64) (SpawnPoint, bool) {
	if len(candidates) == 0 || rng == nil {
		return SpawnPoint{}, false
	}
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Candidate) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	if shortlist < 1 {
		shortlist = 1
	}
	if shortlist < len(sorted) {
		sorted = sorted[:shortlist]
	}
	c := sorted[rng.Intn(len(sorted))]
	x := c.MinX + rng.Float64()*(c.MaxX-width-c.MinX)
	return SpawnPoint{X: x, Y: c.Top - height, Facing: c.Facing}, true
}

// AutoZombie creates a zombie near the player, standing on an eligible
// platform. It reports false when no platform qualifies.
func AutoZombie(rng *rand.Rand, player core.Box, actors []arena.Actor, cfg config.ZombieDefaults, shortlist int) (*Zombie, bool) {
	const w, h = 21, 32
	cands := SpawnCandidates(player, actors, cfg.SpawnBand, w)
	pt, ok := PickSpawn(rng, cands, shortlist, w, h)
	if !ok {
		return nil, false
	}
	z, err := NewZombie(pt.X, pt.Y, pt.Facing, cfg, rng)
	if err != nil {
		return nil, false
	}
	return z, true
}

// AutoPlant creates a plant near the player, standing on an eligible
// platform. It reports false when no platform qualifies.
func AutoPlant(rng *rand.Rand, player core.Box, actors []arena.Actor, cfg config.PlantDefaults, eyeBall config.EyeBallDefaults, shortlist int) (*Plant, bool) {
	cands := SpawnCandidates(player, actors, cfg.SpawnBand, plantWidth)
	pt, ok := PickSpawn(rng, cands, shortlist, plantWidth, plantHeight)
	if !ok {
		return nil, false
	}
	p, err := NewPlant(pt.X, pt.Y, pt.Facing, cfg, eyeBall)
	if err != nil {
		return nil, false
	}
	return p, true
}
