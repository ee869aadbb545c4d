package neonvoid

import (
	"testing"

	"github.com/vovakirdan/neon-void/internal/core"
)

func TestAutopilotSteering(t *testing.T) {
	tests := []struct {
		name    string
		enemies []core.Vec2
		left    bool
		right   bool
	}{
		{"no enemies stays centered", nil, false, false},
		{"enemy to the right", []core.Vec2{core.V(600, 100)}, false, true},
		{"enemy to the left", []core.Vec2{core.V(100, 100)}, true, false},
		{"within dead zone", []core.Vec2{core.V(405, 100)}, false, false},
		{"lowest enemy wins", []core.Vec2{core.V(700, 50), core.V(150, 300)}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, fixedRand{f: 0.9})
			for _, pos := range tt.enemies {
				placeEnemy(g, EnemyStandard, pos)
			}

			in := NewAutopilot().Next(g)
			if in.IsHeld(core.ActionLeft) != tt.left || in.IsHeld(core.ActionRight) != tt.right {
				t.Errorf("held = %v, want left=%v right=%v", in.Held, tt.left, tt.right)
			}
			if !in.IsHeld(core.ActionFire) {
				t.Error("autopilot should always fire")
			}
		})
	}
}

func TestAutopilotPlaysAMatch(t *testing.T) {
	g := newTestGame(t, NewRand(42))
	pilot := NewAutopilot()

	for i := 0; i < 3000 && !g.State().GameOver; i++ {
		g.Step(pilot.Next(g))
	}

	if g.Stats().Shots == 0 {
		t.Error("autopilot never fired")
	}
	if g.Stats().Kills == 0 {
		t.Error("autopilot never destroyed an enemy")
	}
}
