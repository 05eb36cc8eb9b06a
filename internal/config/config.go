// Package config provides YAML-based settings loading and difficulty
// management for the graveyard game.
package config

// Settings holds every tunable value of the simulation, nested by actor name
// and then a defaults group.
type Settings struct {
	Player     PlayerSection    `yaml:"player"`
	Zombie     ZombieSection    `yaml:"zombie"`
	Plant      PlantSection     `yaml:"plant"`
	Torch      TorchSection     `yaml:"torch"`
	Flame      FlameSection     `yaml:"flame"`
	EyeBall    EyeBallSection   `yaml:"eyeball"`
	Door       DoorSection      `yaml:"door"`
	Game       GameSection      `yaml:"game"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerSection wraps the player defaults.
type PlayerSection struct {
	Defaults PlayerDefaults `yaml:"defaults"`
}

// PlayerDefaults defines the player controller parameters.
type PlayerDefaults struct {
	Speed             float64 `yaml:"speed"`
	Gravity           float64 `yaml:"gravity"`
	JumpSpeed         float64 `yaml:"jump_speed"`
	MaxHealth         float64 `yaml:"max_health"`
	InvincibilityTime int     `yaml:"invincibility_time"` // ticks
	ThrowInterval     int     `yaml:"throw_interval"`     // ticks between torches
	CycleSpeed        int     `yaml:"cycle_speed"`
}

// ZombieSection wraps the walker enemy defaults.
type ZombieSection struct {
	Defaults ZombieDefaults `yaml:"defaults"`
}

// ZombieDefaults defines the walker enemy parameters.
type ZombieDefaults struct {
	MaxHealth       float64 `yaml:"max_health"`
	Speed           float64 `yaml:"speed"`
	Gravity         float64 `yaml:"gravity"`
	Damage          float64 `yaml:"damage"`
	AttackInterval  int     `yaml:"attack_interval"`
	MinWalkDistance float64 `yaml:"min_walk_distance"`
	MaxWalkDistance float64 `yaml:"max_walk_distance"`
	CycleSpeed      int     `yaml:"cycle_speed"`
	SpawnBand       Band    `yaml:"spawn_band"`
}

// PlantSection wraps the turret enemy defaults.
type PlantSection struct {
	Defaults PlantDefaults `yaml:"defaults"`
}

// PlantDefaults defines the turret enemy parameters.
type PlantDefaults struct {
	MaxHealth        float64 `yaml:"max_health"`
	Damage           float64 `yaml:"damage"`          // contact damage
	DamageInterval   int     `yaml:"damage_interval"` // ticks between contact hits
	AttackInterval   int     `yaml:"attack_interval"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileDamage float64 `yaml:"projectile_damage"`
	CycleSpeed       int     `yaml:"cycle_speed"`
	SpawnBand        Band    `yaml:"spawn_band"`
}

// TorchSection wraps the thrown weapon defaults.
type TorchSection struct {
	Defaults TorchDefaults `yaml:"defaults"`
}

// TorchDefaults defines the thrown weapon parameters.
type TorchDefaults struct {
	Damage     float64 `yaml:"damage"`
	Speed      float64 `yaml:"speed"`
	Gravity    float64 `yaml:"gravity"`
	Lift       float64 `yaml:"lift"` // initial upward speed
	CycleSpeed int     `yaml:"cycle_speed"`
}

// FlameSection wraps the ground fire defaults.
type FlameSection struct {
	Defaults FlameDefaults `yaml:"defaults"`
}

// FlameDefaults defines the ground fire parameters.
type FlameDefaults struct {
	Life       int     `yaml:"life"` // ticks
	Damage     float64 `yaml:"damage"`
	CycleSpeed int     `yaml:"cycle_speed"`
}

// EyeBallSection wraps the straight projectile defaults.
type EyeBallSection struct {
	Defaults EyeBallDefaults `yaml:"defaults"`
}

// EyeBallDefaults defines the straight projectile parameters.
type EyeBallDefaults struct {
	Speed       float64 `yaml:"speed"`
	Damage      float64 `yaml:"damage"`
	MaxDistance float64 `yaml:"max_distance"`
	CycleSpeed  int     `yaml:"cycle_speed"`
}

// DoorSection wraps the goal door defaults.
type DoorSection struct {
	Defaults DoorDefaults `yaml:"defaults"`
}

// DoorDefaults defines the goal door parameters.
type DoorDefaults struct {
	PassageDelay int `yaml:"passage_delay"` // consecutive open ticks
	CycleSpeed   int `yaml:"cycle_speed"`
}

// GameSection wraps the world-level defaults.
type GameSection struct {
	Defaults GameDefaults `yaml:"defaults"`
}

// GameDefaults defines spawning, culling and input parameters.
type GameDefaults struct {
	ZombieSpawnChance float64 `yaml:"zombie_spawn_chance"` // per tick
	PlantSpawnChance  float64 `yaml:"plant_spawn_chance"`  // per tick
	SpawnShortlist    int     `yaml:"spawn_shortlist"`
	CullDistance      float64 `yaml:"cull_distance"` // 0 disables
	KeyHold           int     `yaml:"key_hold"`      // ticks a terminal key press stays held
}

// Band is a [min, max] horizontal distance from the player.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier  float64 `yaml:"spawn_multiplier"`  // Added to spawn chance factor at max difficulty
	DamageMultiplier float64 `yaml:"damage_multiplier"` // Added to enemy damage factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
