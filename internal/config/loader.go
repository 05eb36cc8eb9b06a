package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where Load found the settings.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// settingsFile is the file name searched for in the config directories.
const settingsFile = "settings.yaml"

// Load loads the game settings.
// Search order: customPath -> ~/.graveyard/configs/settings.yaml -> ./configs/settings.yaml -> embedded default -> hardcoded
//
// Every file is decoded on top of DefaultSettings, so missing keys keep their
// fallback value. Only a failing custom path is an error.
func Load(customPath string) (Settings, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSettings(), SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultSettings(), SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultSettings(), SourceCustom, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(settingsFile); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", settingsFile)); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	if cfg, err := decode(defaultSettingsYAML); err == nil && cfg.Validate() == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultSettings(), SourceBuiltin, nil
}

func tryFile(path string) (Settings, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, false
	}
	cfg, err := decode(data)
	if err != nil || cfg.Validate() != nil {
		return Settings{}, false
	}
	return cfg, true
}

func decode(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".graveyard", "configs", filename)
}

// Validate reports every out-of-range value.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := s.Player.Defaults
	check(p.MaxHealth > 0, "player.max_health must be positive, got %v", p.MaxHealth)
	check(p.Speed >= 0, "player.speed must not be negative, got %v", p.Speed)
	check(p.Gravity >= 0, "player.gravity must not be negative, got %v", p.Gravity)
	check(p.JumpSpeed >= 0, "player.jump_speed must not be negative, got %v", p.JumpSpeed)
	check(p.InvincibilityTime >= 0, "player.invincibility_time must not be negative, got %d", p.InvincibilityTime)
	check(p.ThrowInterval >= 0, "player.throw_interval must not be negative, got %d", p.ThrowInterval)
	check(p.CycleSpeed >= 1, "player.cycle_speed must be at least 1, got %d", p.CycleSpeed)

	z := s.Zombie.Defaults
	check(z.MaxHealth > 0, "zombie.max_health must be positive, got %v", z.MaxHealth)
	check(z.Speed >= 0, "zombie.speed must not be negative, got %v", z.Speed)
	check(z.Damage >= 0, "zombie.damage must not be negative, got %v", z.Damage)
	check(z.MinWalkDistance >= 0 && z.MinWalkDistance <= z.MaxWalkDistance,
		"zombie walk distance range [%v, %v] is invalid", z.MinWalkDistance, z.MaxWalkDistance)
	check(z.CycleSpeed >= 1, "zombie.cycle_speed must be at least 1, got %d", z.CycleSpeed)
	errs = append(errs, z.SpawnBand.validate("zombie.spawn_band"))

	pl := s.Plant.Defaults
	check(pl.MaxHealth > 0, "plant.max_health must be positive, got %v", pl.MaxHealth)
	check(pl.Damage >= 0, "plant.damage must not be negative, got %v", pl.Damage)
	check(pl.ProjectileDamage >= 0, "plant.projectile_damage must not be negative, got %v", pl.ProjectileDamage)
	check(pl.CycleSpeed >= 1, "plant.cycle_speed must be at least 1, got %d", pl.CycleSpeed)
	errs = append(errs, pl.SpawnBand.validate("plant.spawn_band"))

	check(s.Torch.Defaults.CycleSpeed >= 1, "torch.cycle_speed must be at least 1, got %d", s.Torch.Defaults.CycleSpeed)
	check(s.Torch.Defaults.Damage >= 0, "torch.damage must not be negative, got %v", s.Torch.Defaults.Damage)
	check(s.Flame.Defaults.Life > 0, "flame.life must be positive, got %d", s.Flame.Defaults.Life)
	check(s.Flame.Defaults.CycleSpeed >= 1, "flame.cycle_speed must be at least 1, got %d", s.Flame.Defaults.CycleSpeed)
	check(s.EyeBall.Defaults.MaxDistance > 0, "eyeball.max_distance must be positive, got %v", s.EyeBall.Defaults.MaxDistance)
	check(s.EyeBall.Defaults.CycleSpeed >= 1, "eyeball.cycle_speed must be at least 1, got %d", s.EyeBall.Defaults.CycleSpeed)
	check(s.Door.Defaults.PassageDelay > 0, "door.passage_delay must be positive, got %d", s.Door.Defaults.PassageDelay)
	check(s.Door.Defaults.CycleSpeed >= 1, "door.cycle_speed must be at least 1, got %d", s.Door.Defaults.CycleSpeed)

	g := s.Game.Defaults
	check(g.ZombieSpawnChance >= 0 && g.ZombieSpawnChance <= 1, "game.zombie_spawn_chance must be in [0, 1], got %v", g.ZombieSpawnChance)
	check(g.PlantSpawnChance >= 0 && g.PlantSpawnChance <= 1, "game.plant_spawn_chance must be in [0, 1], got %v", g.PlantSpawnChance)
	check(g.SpawnShortlist >= 1, "game.spawn_shortlist must be at least 1, got %d", g.SpawnShortlist)
	check(g.CullDistance >= 0, "game.cull_distance must not be negative, got %v", g.CullDistance)
	check(g.KeyHold >= 1, "game.key_hold must be at least 1, got %d", g.KeyHold)

	switch s.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", s.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

func (b Band) validate(name string) error {
	if b.Min < 0 || b.Min > b.Max {
		return fmt.Errorf("%s [%v, %v] is invalid", name, b.Min, b.Max)
	}
	return nil
}

// ApplyPreset modifies the settings based on a difficulty preset.
func ApplyPreset(cfg *Settings, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Defaults.MaxHealth = 150
		cfg.Player.Defaults.InvincibilityTime = 90
	case DifficultyHard:
		cfg.Player.Defaults.MaxHealth = 70
		cfg.Player.Defaults.ThrowInterval = 15
	}
}
