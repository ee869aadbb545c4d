package config

import (
	_ "embed"
)

//go:embed defaults/neonvoid.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration.
// It mirrors defaults/neonvoid.yaml and is used when the embedded file cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ArenaConfig{
			Width:     800,
			Height:    600,
			Stars:     50,
			StarSpeed: 1.5,
		},
		Player: PlayerConfig{
			StartY:       520,
			Width:        36, // 9x7 art at scale 4
			Height:       28,
			Speed:        3,
			MaxHP:        100,
			FireCooldown: 15,
		},
		Weapons: WeaponsConfig{
			UpgradeDuration: 600, // 10 seconds
			Laser:           BulletConfig{Width: 4, Height: 12, Speed: 8},
			Spread: SpreadConfig{
				Width:        4,
				Height:       12,
				Speed:        5,
				LateralSpeed: 2,
				Offset:       8,
			},
			Charge: BulletConfig{Width: 10, Height: 16, Speed: 8},
		},
		Enemies: EnemiesConfig{
			Width:           27, // 9x7 art at scale 3
			Height:          21,
			ZigzagAmplitude: 3,
			ZigzagPhaseStep: 0.1,
			Standard:        EnemyConfig{HP: 30, Speed: 1.2, Weight: 5},
			Zigzag:          EnemyConfig{HP: 30, Speed: 1.0, Weight: 3},
			Tank:            EnemyConfig{HP: 60, Speed: 0.6, Weight: 2},
		},
		Waves: WavesConfig{
			BaseCount:    6,
			PerWave:      2,
			SpawnDelay:   45,
			AnchorY:      -120,
			Spacing:      80,
			VStep:        40,
			SwoopRadiusX: 240,
			SwoopRadiusY: 140,
			Patterns:     []string{"line", "v", "swoop"},
		},
		Combat: CombatConfig{
			BulletDamage:    20,
			CollisionDamage: 20,
			KillScore:       10,
		},
		Drops: DropsConfig{
			Chance:     0.35,
			HealAmount: 25,
			Size:       16,
			FallSpeed:  1,
		},
		Particles: ParticlesConfig{
			Burst:    12,
			MaxSpeed: 2,
			MinLife:  20,
			MaxLife:  40,
			Size:     4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     0.5,
				SpawnDelayReduction: 20,
			},
		},
	}
}
