package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpawnMultiplier: 1, DamageMultiplier: 0.5},
	}

	tests := []struct {
		name  string
		ticks int
		want  float64
	}{
		{"start", 0, 0.2},
		{"halfway", 50, 0.6},
		{"max", 100, 1.0},
		{"beyond max", 500, 1.0},
	}
	d := NewDifficultyManager(cfg)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Level(0, tc.ticks); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Level = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if got := d.Level(1000, 1000); got != 0.7 {
		t.Errorf("Level = %v, expected 0.7", got)
	}
	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpawnMultiplier: 1, DamageMultiplier: 0.5},
	})

	if got := d.SpawnChance(0.1, 10, 0); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("SpawnChance at max = %v, expected 0.2", got)
	}
	if got := d.SpawnChance(0.8, 10, 0); got != 1 {
		t.Errorf("SpawnChance should cap at 1, got %v", got)
	}
	if got := d.Damage(30, 0, 0); got != 30 {
		t.Errorf("Damage at level 0 = %v, expected 30", got)
	}
	if got := d.Damage(30, 10, 0); got != 45 {
		t.Errorf("Damage at max = %v, expected 45", got)
	}
}
