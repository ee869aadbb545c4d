package neonvoid

import (
	"testing"

	"github.com/vovakirdan/neon-void/internal/config"
	"github.com/vovakirdan/neon-void/internal/core"
)

// fixedRand always returns the same values, which forces every
// probabilistic branch one way.
type fixedRand struct {
	f float64 // Returned by Float64
	i int     // Returned by Intn, clamped to n-1
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	return min(r.i, n-1)
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// newTestGame starts a match on the default configuration.
func newTestGame(t *testing.T, rng Rand) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultShooterConfig())
	g.ResetWithRand(testRuntime(1), rng)
	return g
}

// placeEnemy adds a stationary enemy of the given class.
func placeEnemy(g *Game, class EnemyClass, pos core.Vec2) *Entity {
	return g.world.add(newEnemy(g.cfg.Enemies, class, pos, 0))
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func holding(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func pressing(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
