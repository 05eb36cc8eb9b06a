package config

import "github.com/vovakirdan/tui-graveyard/internal/core"

// DifficultyManager turns the progress of a run into a difficulty level and
// scales spawn chances and enemy damage with it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: core.ClampF(cfg.InitialLevel, 0, 1)}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [0, 1]. It rises linearly from the initial
// level to 1 as the score or the tick count reaches max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}

	var reached int
	switch d.cfg.Progression.Type {
	case "score":
		reached = score
	case "time":
		reached = ticks
	default:
		return d.start
	}

	progress := 1.0
	if maxAt := d.cfg.Progression.MaxAt; maxAt > 0 {
		progress = core.ClampF(float64(reached)/float64(maxAt), 0, 1)
	}
	return d.start + progress*(1-d.start)
}

// SpawnChance returns the per-tick spawn probability, capped at 1.
func (d *DifficultyManager) SpawnChance(base float64, score, ticks int) float64 {
	return core.ClampF(d.scale(base, d.cfg.Scaling.SpawnMultiplier, score, ticks), 0, 1)
}

// Damage returns the damage dealt by a newly spawned enemy.
func (d *DifficultyManager) Damage(base float64, score, ticks int) float64 {
	return d.scale(base, d.cfg.Scaling.DamageMultiplier, score, ticks)
}

func (d *DifficultyManager) scale(base, factor float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*factor)
}
