// Package config provides YAML-based game configuration loading and
// difficulty management for Neon Void.
package config

// ShooterConfig contains every tunable constant of the simulation.
type ShooterConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Waves      WavesConfig      `yaml:"waves"`
	Combat     CombatConfig     `yaml:"combat"`
	Drops      DropsConfig      `yaml:"drops"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the simulated playfield, in arena units.
type ArenaConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Stars     int     `yaml:"stars"`
	StarSpeed float64 `yaml:"star_speed"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	StartY       float64 `yaml:"start_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	MaxHP        int     `yaml:"max_hp"`
	FireCooldown int     `yaml:"fire_cooldown"`
}

// WeaponsConfig defines the bullets fired by each weapon mode.
type WeaponsConfig struct {
	UpgradeDuration int          `yaml:"upgrade_duration"`
	Laser           BulletConfig `yaml:"laser"`
	Spread          SpreadConfig `yaml:"spread"`
	Charge          BulletConfig `yaml:"charge"`
}

// BulletConfig describes a single straight shot.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// SpreadConfig describes the three-way spread shot.
type SpreadConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	LateralSpeed float64 `yaml:"lateral_speed"`
	Offset       float64 `yaml:"offset"` // Horizontal muzzle offset per unit of lateral speed
}

// EnemiesConfig defines enemy classes.
type EnemiesConfig struct {
	Width           float64     `yaml:"width"`
	Height          float64     `yaml:"height"`
	ZigzagAmplitude float64     `yaml:"zigzag_amplitude"`
	ZigzagPhaseStep float64     `yaml:"zigzag_phase_step"`
	Standard        EnemyConfig `yaml:"standard"`
	Zigzag          EnemyConfig `yaml:"zigzag"`
	Tank            EnemyConfig `yaml:"tank"`
}

// EnemyConfig defines stats for one enemy class.
type EnemyConfig struct {
	HP     int     `yaml:"hp"`
	Speed  float64 `yaml:"speed"`
	Weight int     `yaml:"weight"` // Relative spawn weight within a wave
}

// WavesConfig defines wave generation and spawn pacing.
type WavesConfig struct {
	BaseCount    int      `yaml:"base_count"`
	PerWave      int      `yaml:"per_wave"`
	SpawnDelay   int      `yaml:"spawn_delay"`
	AnchorY      float64  `yaml:"anchor_y"`
	Spacing      float64  `yaml:"spacing"`
	VStep        float64  `yaml:"v_step"`
	SwoopRadiusX float64  `yaml:"swoop_radius_x"`
	SwoopRadiusY float64  `yaml:"swoop_radius_y"`
	Patterns     []string `yaml:"patterns"`
}

// CombatConfig defines damage and scoring.
type CombatConfig struct {
	BulletDamage    int `yaml:"bullet_damage"`
	CollisionDamage int `yaml:"collision_damage"`
	KillScore       int `yaml:"kill_score"`
}

// DropsConfig defines power-up drops.
type DropsConfig struct {
	Chance     float64 `yaml:"chance"`
	HealAmount int     `yaml:"heal_amount"`
	Size       float64 `yaml:"size"`
	FallSpeed  float64 `yaml:"fall_speed"`
}

// ParticlesConfig defines explosion bursts.
type ParticlesConfig struct {
	Burst    int     `yaml:"burst"`
	MaxSpeed float64 `yaml:"max_speed"`
	MinLife  int     `yaml:"min_life"`
	MaxLife  int     `yaml:"max_life"`
	Size     float64 `yaml:"size"`
}

// DifficultyConfig defines dynamic difficulty settings.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 to 1.0
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave" or "none"
	MaxAt int    `yaml:"max_at"` // Wave at which max difficulty is reached
}

// ScalingConfig defines how parameters scale with difficulty level.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Enemy speed *= (1 + level*multiplier)
	SpawnDelayReduction int     `yaml:"spawn_delay_reduction"` // Ticks removed from spawn delay at max level
}

// DifficultyPreset represents predefined difficulty settings.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the starting difficulty level for a preset.
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
