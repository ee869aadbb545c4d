package neonvoid

import (
	"github.com/vovakirdan/neon-void/internal/core"
)

// Autopilot is a scripted input source for headless runs. It steers under
// the enemy closest to the bottom of the arena and keeps the trigger held.
type Autopilot struct {
	// DeadZone is how far off target the ship may be before it steers.
	DeadZone float64
}

// NewAutopilot returns an autopilot with a dead zone of a quarter ship width.
func NewAutopilot() *Autopilot {
	return &Autopilot{DeadZone: 9}
}

// Next builds the input frame for the next tick of g.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	in.Hold(core.ActionFire)

	p := g.Player()
	if p == nil || p.Dead {
		return in
	}

	targetX := g.cfg.Arena.Width / 2
	var target *Entity
	for _, e := range g.Entities(KindEnemy) {
		if target == nil || e.Pos.Y > target.Pos.Y {
			target = e
		}
	}
	if target != nil {
		targetX = target.Pos.X
	}

	switch dx := targetX - p.Pos.X; {
	case dx < -a.DeadZone:
		in.Hold(core.ActionLeft)
	case dx > a.DeadZone:
		in.Hold(core.ActionRight)
	}
	return in
}
