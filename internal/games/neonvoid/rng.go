package neonvoid

import "math/rand"

// Rand is the randomness source consumed by the simulation. *rand.Rand
// satisfies it; tests substitute a fixed source to force probabilistic branches.
type Rand interface {
	Float64() float64 // Uniform in [0, 1)
	Intn(n int) int   // Uniform in [0, n)
}

// NewRand returns a seeded source. The same seed always replays the same match.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not security
}

// uniform samples a real number in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// between samples an integer in [lo, hi], both ends inclusive.
func between(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// chance returns true with probability p.
func chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// weighted picks an index with probability proportional to its weight.
// Zero-weight entries are never chosen; an all-zero table yields index 0.
func weighted(r Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	roll := r.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return 0
}
