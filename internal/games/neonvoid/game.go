// Package neonvoid implements the Neon Void arcade shooter simulation.
// The player ship moves along the bottom of the arena and shoots down waves
// of enemies that descend in formation. Everything here is pure logic driven
// one fixed tick at a time; platforms supply input and draw the result.
package neonvoid

import (
	"github.com/vovakirdan/neon-void/internal/config"
	"github.com/vovakirdan/neon-void/internal/core"
	"github.com/vovakirdan/neon-void/internal/registry"
)

// GameID is the registry identifier of the shooter.
const GameID = "neonvoid"

// Reasons a match ends.
const (
	EndDestroyed = "destroyed" // Player hit points reached zero
	EndQuit      = "quit"      // Quit requested from the input source
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is the explicit match state threaded through every tick.
type Game struct {
	cfg        config.ShooterConfig
	fixedCfg   bool // cfg was supplied by the caller; Reset does not reload it
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	rng   Rand // Simulation randomness
	world *World
	waves *WaveScheduler
	stars *Starfield

	tick      int
	score     int
	kills     int
	shots     int
	gameOver  bool
	paused    bool
	endReason string
	events    []core.Event
}

// New creates a new Neon Void game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Void"
}

// Reset starts a new match seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ResetWithRand(runtime, NewRand(runtime.Seed))
}

// ResetWithRand starts a new match drawing all simulation randomness from rng.
func (g *Game) ResetWithRand(runtime core.RuntimeConfig, rng Rand) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultShooterConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rng
	g.world = NewWorld()
	g.world.add(newPlayer(g.cfg))

	// Stars draw from their own source so the background never shifts the
	// simulation's random sequence.
	g.stars = NewStarfield(g.cfg.Arena, NewRand(runtime.Seed^starSeedMask))

	g.tick = 0
	g.score = 0
	g.kills = 0
	g.shots = 0
	g.gameOver = false
	g.paused = false
	g.endReason = ""
	g.events = nil

	g.waves = NewWaveScheduler(g.cfg, g.difficulty, g.rng)
}

// Step advances the match by one tick in fixed order: input events, held
// input, entity updates, collisions, spawning, cooldown, then cleanup.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		return g.result()
	}

	// A quit request ends the match even while paused.
	if in.Has(core.ActionQuit) {
		g.endMatch(EndQuit)
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return g.result()
	}

	g.tick++

	p := g.world.player
	dir := 0
	if in.IsHeld(core.ActionLeft) {
		dir--
	}
	if in.IsHeld(core.ActionRight) {
		dir++
	}
	p.Move(dir, g.cfg.Player.Speed, g.cfg.Arena.Width)

	if in.Has(core.ActionFire) || in.IsHeld(core.ActionFire) {
		g.tryFire()
	}

	for _, e := range g.world.all {
		if !e.Dead {
			g.updateEntity(e)
		}
	}
	g.stars.Update()

	g.resolveCollisions()

	if !g.gameOver {
		g.runSpawner()
	}

	if p.Cooldown > 0 {
		p.Cooldown--
	}

	g.world.sweep()
	return g.result()
}

// runSpawner releases queued enemies and moves to the next wave once the
// current one is fully spawned and destroyed.
func (g *Game) runSpawner() {
	if rec, ok := g.waves.Tick(); ok {
		g.spawnEnemy(rec)
	}

	cleared := g.waves.Wave()
	if g.waves.Advance(g.world.liveEnemies()) {
		center := core.V(g.cfg.Arena.Width/2, g.cfg.Arena.Height/2)
		g.emit(core.EventWaveCleared, center, cleared, "")
		g.emit(core.EventWaveStarted, center, g.waves.Wave(), g.waves.Pattern().String())
	}
}

// endMatch stops the simulation. Only the first reason is kept.
func (g *Game) endMatch(reason string) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.endReason = reason
	g.emit(core.EventGameOver, g.world.player.Pos, g.score, reason)
}

// emit records an event for this tick's StepResult.
func (g *Game) emit(kind core.EventKind, pos core.Vec2, value int, detail string) {
	g.events = append(g.events, core.Event{
		Kind:   kind,
		Tick:   g.tick,
		Pos:    pos,
		Value:  value,
		Detail: detail,
	})
}

// result packages the state and a copy of this tick's events.
func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = make([]core.Event, len(g.events))
		copy(events, g.events)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	hp := 0
	if g.world != nil && g.world.player != nil {
		hp = g.world.player.Health.HP
	}
	wave := 0
	if g.waves != nil {
		wave = g.waves.Wave()
	}
	return core.GameState{
		Score:    g.score,
		Wave:     wave,
		HP:       hp,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Stats returns the summary of the current match.
func (g *Game) Stats() registry.MatchStats {
	return registry.MatchStats{
		Score:     g.score,
		Wave:      g.State().Wave,
		Kills:     g.kills,
		Shots:     g.shots,
		Ticks:     g.tick,
		EndReason: g.endReason,
	}
}

// Config returns the configuration the current match runs with.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Tick returns the number of simulated ticks in this match.
func (g *Game) Tick() int {
	return g.tick
}

// Player returns the player entity.
func (g *Game) Player() *Entity {
	return g.world.player
}

// Waves returns the wave scheduler.
func (g *Game) Waves() *WaveScheduler {
	return g.waves
}

// Count returns how many entities of kind k are in the world.
func (g *Game) Count(k Kind) int {
	return g.world.Count(k)
}

// Entities returns the live entities of kind k in creation order.
func (g *Game) Entities(k Kind) []*Entity {
	var src []*Entity
	switch k {
	case KindPlayer:
		if g.world.player != nil {
			src = []*Entity{g.world.player}
		}
	case KindEnemy:
		src = g.world.enemies
	case KindBullet:
		src = g.world.bullets
	case KindParticle:
		src = g.world.particles
	case KindPowerUp:
		src = g.world.powerups
	}
	out := make([]*Entity, len(src))
	copy(out, src)
	return out
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
