package neonvoid

import (
	"github.com/vovakirdan/neon-void/internal/config"
	"github.com/vovakirdan/neon-void/internal/core"
)

// SpawnRecord is one queued enemy of a wave.
type SpawnRecord struct {
	Pos   core.Vec2
	Class EnemyClass
}

// WavePhase is the scheduler's position in the wave cycle.
type WavePhase uint8

const (
	PhaseBuilding WavePhase = iota // Queue generated, enemies still being spawned
	PhaseActive                    // Queue exhausted, enemies still alive
	PhaseCleared                   // Everything spawned and destroyed; next wave pending
)

// String returns the name of the phase.
func (p WavePhase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhaseActive:
		return "active"
	case PhaseCleared:
		return "cleared"
	default:
		return "?"
	}
}

// WaveScheduler generates waves and releases their enemies one at a time.
type WaveScheduler struct {
	cfg        config.WavesConfig
	shape      FormationShape
	patterns   []Pattern
	weights    []int // Indexed by EnemyClass
	anchor     core.Vec2
	difficulty *config.DifficultyManager
	rng        Rand

	wave    int
	pattern Pattern
	queue   []SpawnRecord
	cursor  int
	timer   int
	delay   int
	phase   WavePhase
}

// NewWaveScheduler creates a scheduler and builds wave 1.
func NewWaveScheduler(cfg config.ShooterConfig, difficulty *config.DifficultyManager, rng Rand) *WaveScheduler {
	patterns := make([]Pattern, 0, len(cfg.Waves.Patterns))
	for _, name := range cfg.Waves.Patterns {
		if p, ok := ParsePattern(name); ok {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		patterns = []Pattern{PatternLine, PatternV, PatternSwoop}
	}

	s := &WaveScheduler{
		cfg:      cfg.Waves,
		shape:    shapeFromConfig(cfg.Waves),
		patterns: patterns,
		weights: []int{
			EnemyStandard: cfg.Enemies.Standard.Weight,
			EnemyZigzag:   cfg.Enemies.Zigzag.Weight,
			EnemyTank:     cfg.Enemies.Tank.Weight,
		},
		anchor:     core.V(cfg.Arena.Width/2, cfg.Waves.AnchorY),
		difficulty: difficulty,
		rng:        rng,
		wave:       1,
	}
	s.prepare()
	return s
}

// WaveSize returns the number of enemies in the given wave.
func (s *WaveScheduler) WaveSize(wave int) int {
	return s.cfg.BaseCount + s.cfg.PerWave*wave
}

// prepare builds the queue for the current wave number.
func (s *WaveScheduler) prepare() {
	s.pattern = s.patterns[s.rng.Intn(len(s.patterns))]
	positions := Formation(s.anchor, s.pattern, s.WaveSize(s.wave), s.shape)

	s.queue = make([]SpawnRecord, 0, len(positions))
	for _, pos := range positions {
		s.queue = append(s.queue, SpawnRecord{
			Pos:   pos,
			Class: EnemyClass(weighted(s.rng, s.weights)),
		})
	}

	s.cursor = 0
	s.delay = s.cfg.SpawnDelay
	if s.difficulty != nil {
		s.delay = s.difficulty.SpawnDelay(s.cfg.SpawnDelay, s.wave)
	}
	s.phase = PhaseBuilding
}

// Tick advances the spawn timer by one tick. When the delay has elapsed and
// records remain, the next record is returned and the timer restarts.
func (s *WaveScheduler) Tick() (SpawnRecord, bool) {
	s.timer++
	if s.timer < s.delay || s.Exhausted() {
		return SpawnRecord{}, false
	}

	rec := s.queue[s.cursor]
	s.cursor++
	s.timer = 0
	if s.Exhausted() {
		s.phase = PhaseActive
	}
	return rec, true
}

// Advance moves to the next wave when the queue is exhausted and no enemy is
// alive. Returns true if a new wave was built.
func (s *WaveScheduler) Advance(liveEnemies int) bool {
	if !s.Exhausted() {
		return false
	}
	if liveEnemies > 0 {
		s.phase = PhaseActive
		return false
	}

	s.phase = PhaseCleared
	s.wave++
	s.prepare()
	return true
}

// Exhausted reports whether every queued record has been spawned.
func (s *WaveScheduler) Exhausted() bool {
	return s.cursor >= len(s.queue)
}

// Wave returns the current wave number, starting at 1.
func (s *WaveScheduler) Wave() int { return s.wave }

// Pattern returns the formation of the current wave.
func (s *WaveScheduler) Pattern() Pattern { return s.pattern }

// Phase returns the current phase.
func (s *WaveScheduler) Phase() WavePhase { return s.phase }

// Cursor returns the index of the next record to spawn.
func (s *WaveScheduler) Cursor() int { return s.cursor }

// Delay returns the ticks between spawns for the current wave.
func (s *WaveScheduler) Delay() int { return s.delay }

// Queue returns a copy of the current wave's records.
func (s *WaveScheduler) Queue() []SpawnRecord {
	out := make([]SpawnRecord, len(s.queue))
	copy(out, s.queue)
	return out
}
