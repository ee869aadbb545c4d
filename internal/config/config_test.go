package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded YAML and DefaultShooterConfig() diverged:\nyaml: %+v\ngo:   %+v", cfg, DefaultShooterConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "waves:\n  spawn_delay: 30\ncombat:\n  kill_score: 25\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Waves.SpawnDelay != 30 {
		t.Errorf("spawn_delay = %d, expected 30", cfg.Waves.SpawnDelay)
	}
	if cfg.Combat.KillScore != 25 {
		t.Errorf("kill_score = %d, expected 25", cfg.Combat.KillScore)
	}
	// Untouched keys keep their defaults
	if cfg.Combat.BulletDamage != 20 {
		t.Errorf("bullet_damage = %d, expected default 20", cfg.Combat.BulletDamage)
	}
	if cfg.Player.MaxHP != 100 {
		t.Errorf("max_hp = %d, expected default 100", cfg.Player.MaxHP)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("drops:\n  chance: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() with an invalid drop chance should fail")
	}
	if !strings.Contains(err.Error(), "drops.chance") {
		t.Errorf("error should name the offending key, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		want   string
	}{
		{"zero arena", func(c *ShooterConfig) { c.Arena.Width = 0 }, "arena size"},
		{"no hp", func(c *ShooterConfig) { c.Player.MaxHP = 0 }, "player.max_hp"},
		{"unknown pattern", func(c *ShooterConfig) { c.Waves.Patterns = []string{"spiral"} }, "unknown pattern"},
		{"zero weights", func(c *ShooterConfig) {
			c.Enemies.Standard.Weight = 0
			c.Enemies.Zigzag.Weight = 0
			c.Enemies.Tank.Weight = 0
		}, "weights"},
		{"inverted life", func(c *ShooterConfig) { c.Particles.MaxLife = 5 }, "life range"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}

	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Error("empty preset should leave config untouched")
	}

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset should enable progression at 0.7, got %+v", cfg.Difficulty)
	}
	if cfg.Waves.SpawnDelay != 30 {
		t.Errorf("hard spawn delay = %d, expected 30", cfg.Waves.SpawnDelay)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("easy should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should parse as empty")
	}
}
