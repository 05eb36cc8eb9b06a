package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded fallback settings. The embedded
// defaults/settings.yaml carries the same values.
func DefaultSettings() Settings {
	return Settings{
		Player: PlayerSection{Defaults: PlayerDefaults{
			Speed:             5,
			Gravity:           0.7,
			JumpSpeed:         10,
			MaxHealth:         100,
			InvincibilityTime: 60,
			ThrowInterval:     10,
			CycleSpeed:        4,
		}},
		Zombie: ZombieSection{Defaults: ZombieDefaults{
			MaxHealth:       70,
			Speed:           1,
			Gravity:         0.7,
			Damage:          30,
			AttackInterval:  50,
			MinWalkDistance: 150,
			MaxWalkDistance: 300,
			CycleSpeed:      6,
			SpawnBand:       Band{Min: 50, Max: 300},
		}},
		Plant: PlantSection{Defaults: PlantDefaults{
			MaxHealth:        40,
			Damage:           10,
			DamageInterval:   60,
			AttackInterval:   180,
			ProjectileSpeed:  2,
			ProjectileDamage: 20,
			CycleSpeed:       6,
			SpawnBand:        Band{Min: 100, Max: 250},
		}},
		Torch: TorchSection{Defaults: TorchDefaults{
			Damage:     50,
			Speed:      7,
			Gravity:    0.7,
			Lift:       5,
			CycleSpeed: 4,
		}},
		Flame: FlameSection{Defaults: FlameDefaults{
			Life:       60,
			Damage:     1,
			CycleSpeed: 6,
		}},
		EyeBall: EyeBallSection{Defaults: EyeBallDefaults{
			Speed:       2,
			Damage:      10,
			MaxDistance: 400,
			CycleSpeed:  6,
		}},
		Door: DoorSection{Defaults: DoorDefaults{
			PassageDelay: 60,
			CycleSpeed:   6,
		}},
		Game: GameSection{Defaults: GameDefaults{
			ZombieSpawnChance: 0.01,
			PlantSpawnChance:  0.01,
			SpawnShortlist:    3,
			CullDistance:      640,
			KeyHold:           6,
		}},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200,
			},
			Scaling: ScalingConfig{
				SpawnMultiplier:  1.0,
				DamageMultiplier: 0.5,
			},
		},
	}
}
