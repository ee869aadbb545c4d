package config

import "math"

// minSpawnDelay keeps waves from spawning every tick at max difficulty.
const minSpawnDelay = 10

// DifficultyManager calculates dynamic game parameters based on wave progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a wave number.
func (d *DifficultyManager) Level(wave int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	if d.cfg.Progression.Type != "wave" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		maxAt = 2 // Prevent division by zero
	}

	// Wave 1 is the starting point
	progress := clampF(float64(wave-1)/(maxAt-1), 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed returns the enemy speed for the given wave.
// When progression is disabled the base speed is returned unchanged.
func (d *DifficultyManager) EnemySpeed(base float64, wave int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base * (1.0 + d.Level(wave)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnDelay returns the ticks between individual enemy spawns for the given wave.
func (d *DifficultyManager) SpawnDelay(base int, wave int) int {
	if !d.cfg.Enabled {
		return base
	}
	reduction := int(d.Level(wave) * float64(d.cfg.Scaling.SpawnDelayReduction))
	result := base - reduction
	if result < minSpawnDelay {
		result = min(base, minSpawnDelay)
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
