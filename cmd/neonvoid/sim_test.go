package main

import (
	"testing"

	"github.com/vovakirdan/neon-void/internal/config"
	"github.com/vovakirdan/neon-void/internal/core"
	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
	"github.com/vovakirdan/neon-void/internal/logging"
)

func simConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func TestSimulateStopsAtTickLimit(t *testing.T) {
	game := neonvoid.NewWithConfig(config.DefaultShooterConfig())
	simulate(game, simConfig(9), 200, logging.Discard())

	stats := game.Stats()
	if !game.State().GameOver {
		t.Fatal("simulate should always end the match")
	}
	if stats.Ticks > 200 {
		t.Errorf("Ticks = %d, want at most 200", stats.Ticks)
	}
	if stats.Ticks == 200 && stats.EndReason != neonvoid.EndQuit {
		t.Errorf("EndReason = %q, want %q at the tick limit", stats.EndReason, neonvoid.EndQuit)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() uint64 {
		game := neonvoid.NewWithConfig(config.DefaultShooterConfig())
		simulate(game, simConfig(11), 1500, logging.Discard())
		return game.Snapshot().Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced hashes %x and %x", a, b)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"123e4567-e89b-12d3-a456-426614174000", "123e4567"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortID(tt.in); got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
