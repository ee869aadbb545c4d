package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in config directories.
const FileName = "neonvoid.yaml"

// Load loads the shooter configuration.
// Search order: customPath -> ~/.neonvoid/configs/neonvoid.yaml -> ./configs/neonvoid.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonvoid", "configs", filename)
}

// Validate reports the first setting that would break the simulation.
func (c ShooterConfig) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if c.Player.MaxHP <= 0 {
		errs = append(errs, fmt.Errorf("player.max_hp must be positive, got %d", c.Player.MaxHP))
	}
	if c.Player.Width <= 0 || c.Player.Width > c.Arena.Width {
		errs = append(errs, fmt.Errorf("player.width must be in (0, arena.width], got %v", c.Player.Width))
	}
	if c.Player.FireCooldown < 0 {
		errs = append(errs, fmt.Errorf("player.fire_cooldown must not be negative, got %d", c.Player.FireCooldown))
	}
	if c.Weapons.UpgradeDuration <= 0 {
		errs = append(errs, fmt.Errorf("weapons.upgrade_duration must be positive, got %d", c.Weapons.UpgradeDuration))
	}
	for name, e := range map[string]EnemyConfig{
		"standard": c.Enemies.Standard,
		"zigzag":   c.Enemies.Zigzag,
		"tank":     c.Enemies.Tank,
	} {
		if e.HP <= 0 {
			errs = append(errs, fmt.Errorf("enemies.%s.hp must be positive, got %d", name, e.HP))
		}
		if e.Weight < 0 {
			errs = append(errs, fmt.Errorf("enemies.%s.weight must not be negative, got %d", name, e.Weight))
		}
	}
	if c.Enemies.Standard.Weight+c.Enemies.Zigzag.Weight+c.Enemies.Tank.Weight <= 0 {
		errs = append(errs, errors.New("enemy weights must sum to a positive value"))
	}
	if c.Waves.SpawnDelay <= 0 {
		errs = append(errs, fmt.Errorf("waves.spawn_delay must be positive, got %d", c.Waves.SpawnDelay))
	}
	if c.Waves.BaseCount < 0 || c.Waves.PerWave < 0 {
		errs = append(errs, errors.New("waves.base_count and waves.per_wave must not be negative"))
	}
	if len(c.Waves.Patterns) == 0 {
		errs = append(errs, errors.New("waves.patterns must list at least one pattern"))
	}
	for _, p := range c.Waves.Patterns {
		switch p {
		case "line", "v", "swoop":
		default:
			errs = append(errs, fmt.Errorf("waves.patterns: unknown pattern %q", p))
		}
	}
	if c.Drops.Chance < 0 || c.Drops.Chance > 1 {
		errs = append(errs, fmt.Errorf("drops.chance must be within [0, 1], got %v", c.Drops.Chance))
	}
	if c.Particles.Burst < 0 {
		errs = append(errs, fmt.Errorf("particles.burst must not be negative, got %d", c.Particles.Burst))
	}
	if c.Particles.MinLife <= 0 || c.Particles.MaxLife < c.Particles.MinLife {
		errs = append(errs, fmt.Errorf("particles life range [%d, %d] is invalid", c.Particles.MinLife, c.Particles.MaxLife))
	}

	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Waves.SpawnDelay = 60
		cfg.Drops.Chance = 0.5
	case DifficultyHard:
		cfg.Waves.SpawnDelay = 30
		cfg.Drops.Chance = 0.2
	}
}
