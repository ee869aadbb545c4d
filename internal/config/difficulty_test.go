package config

import "testing"

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultShooterConfig().Difficulty)

	for _, wave := range []int{1, 5, 50} {
		if got := d.EnemySpeed(1.2, wave); got != 1.2 {
			t.Errorf("EnemySpeed(wave %d) = %v, expected 1.2", wave, got)
		}
		if got := d.SpawnDelay(45, wave); got != 45 {
			t.Errorf("SpawnDelay(wave %d) = %d, expected 45", wave, got)
		}
	}
}

func TestDifficultyWaveProgression(t *testing.T) {
	cfg := DefaultShooterConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	tests := []struct {
		wave  int
		level float64
		delay int
	}{
		{1, 0.0, 45},
		{10, 1.0, 25},
		{40, 1.0, 25}, // Clamped past max_at
	}

	for _, tc := range tests {
		if got := d.Level(tc.wave); got != tc.level {
			t.Errorf("Level(%d) = %v, expected %v", tc.wave, got, tc.level)
		}
		if got := d.SpawnDelay(45, tc.wave); got != tc.delay {
			t.Errorf("SpawnDelay(45, %d) = %d, expected %d", tc.wave, got, tc.delay)
		}
	}

	if got := d.EnemySpeed(1.0, 10); got != 1.5 {
		t.Errorf("EnemySpeed at max level = %v, expected 1.5", got)
	}
}

func TestDifficultySpawnDelayFloor(t *testing.T) {
	cfg := DefaultShooterConfig().Difficulty
	cfg.Enabled = true
	cfg.Scaling.SpawnDelayReduction = 100
	d := NewDifficultyManager(cfg)

	if got := d.SpawnDelay(45, 10); got != minSpawnDelay {
		t.Errorf("SpawnDelay should floor at %d, got %d", minSpawnDelay, got)
	}
}
