package neonvoid

import (
	"math"

	"github.com/vovakirdan/neon-void/internal/config"
	"github.com/vovakirdan/neon-void/internal/core"
)

// starSeedMask derives the starfield seed from the match seed.
const starSeedMask = 0x5f3759df

// Starfield is the drifting background. Stars never collide and never
// consume simulation randomness after creation.
type Starfield struct {
	stars  []core.Vec2
	speed  float64
	height float64
}

// NewStarfield scatters cfg.Stars points over the arena.
func NewStarfield(cfg config.ArenaConfig, rng Rand) *Starfield {
	s := &Starfield{
		stars:  make([]core.Vec2, cfg.Stars),
		speed:  cfg.StarSpeed,
		height: cfg.Height,
	}
	for i := range s.stars {
		s.stars[i] = core.V(
			float64(rng.Intn(int(cfg.Width)+1)),
			float64(rng.Intn(int(cfg.Height)+1)),
		)
	}
	return s
}

// Update moves every star down, wrapping at the bottom edge.
func (s *Starfield) Update() {
	if s.height <= 0 {
		return
	}
	for i := range s.stars {
		s.stars[i].Y = math.Mod(s.stars[i].Y+s.speed, s.height)
	}
}

// Stars returns the current star positions.
func (s *Starfield) Stars() []core.Vec2 {
	return s.stars
}
