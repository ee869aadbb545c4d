// Package window runs Neon Void in a desktop window with Ebitengine.
// The simulation runs one tick per Update; ebiten's TPS is set to the tick rate.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/neon-void/internal/core"
	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
	"github.com/vovakirdan/neon-void/internal/logging"
	"github.com/vovakirdan/neon-void/internal/storage"
)

const starSize = 2

var (
	backgroundColor = colornames.Black
	starColor       = colornames.Lightgray
	overlayColor    = color.RGBA{0, 0, 0, 170}
)

// Game adapts the simulation to ebiten.Game.
type Game struct {
	sim     *neonvoid.Game
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	sprites *spriteSheet
	saved   bool
	lastID  string
}

// NewGame creates a window game and starts the first match.
func NewGame(sim *neonvoid.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	g := &Game{
		sim:     sim,
		store:   store,
		logger:  logger,
		config:  cfg,
		sprites: newSpriteSheet(),
	}
	g.sim.Reset(cfg)
	g.logger.Info("match started", "game", sim.ID(), "seed", cfg.Seed)
	return g
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	return g.step(readKeys())
}

// step applies one tick of key state. It returns ebiten.Termination after a
// quit request has been recorded.
func (g *Game) step(keys keyState) error {
	if keys.Restart && g.sim.State().GameOver {
		g.restart()
		return nil
	}

	result := g.sim.Step(keys.frame())
	for _, e := range result.Events {
		g.logger.Debug(e.Kind.String(), "tick", e.Tick, "value", e.Value, "detail", e.Detail)
	}

	if result.State.GameOver {
		g.record()
	}
	if keys.Quit {
		return ebiten.Termination
	}
	return nil
}

// restart begins a new match with a fresh seed.
func (g *Game) restart() {
	g.config.Seed = time.Now().UnixNano()
	g.sim.Reset(g.config)
	g.saved = false
	g.logger.Info("match restarted", "seed", g.config.Seed)
}

// record saves the finished match once.
func (g *Game) record() {
	if g.saved {
		return
	}
	g.saved = true

	stats := g.sim.Stats()
	g.logger.Info("match over", "score", stats.Score, "wave", stats.Wave, "kills", stats.Kills, "reason", stats.EndReason)
	if g.store == nil || stats.Ticks == 0 {
		return
	}

	id, err := g.store.RecordMatch(storage.MatchRecord{
		GameID:    g.sim.ID(),
		Score:     stats.Score,
		Wave:      stats.Wave,
		Kills:     stats.Kills,
		Shots:     stats.Shots,
		Ticks:     stats.Ticks,
		EndReason: stats.EndReason,
		Seed:      g.config.Seed,
	})
	if err != nil {
		g.logger.Warn("could not save match", "error", err)
		return
	}
	g.lastID = id
}

// Draw renders the arena, sprites and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, s := range g.sim.Stars() {
		vector.FillRect(screen, float32(s.X), float32(s.Y), starSize, starSize, starColor, false)
	}

	for _, s := range g.sim.Sprites() {
		g.drawSprite(screen, s)
	}

	hud := g.sim.HUD()
	ebitenutil.DebugPrintAt(screen, hud.Line(), 8, 8)

	arena := g.sim.Arena()
	switch {
	case hud.GameOver:
		vector.FillRect(screen, 0, 0, float32(arena.X), float32(arena.Y), overlayColor, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", 8, 90)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Wave: %d  Kills: %d", hud.Score, hud.Wave, hud.Kills), 8, 110)
		ebitenutil.DebugPrintAt(screen, "Press R to restart, Esc to quit", 8, 130)
	case hud.Paused:
		vector.FillRect(screen, 0, 0, float32(arena.X), float32(arena.Y), overlayColor, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED", 8, 90)
		ebitenutil.DebugPrintAt(screen, "Press P to resume", 8, 110)
	}
}

// drawSprite scales the visual's pixel art to the sprite's box.
func (g *Game) drawSprite(screen *ebiten.Image, s neonvoid.Sprite) {
	img := g.sprites.image(s.Visual)
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Size.X/float64(b.Dx()), s.Size.Y/float64(b.Dy()))
	op.GeoM.Translate(s.Pos.X-s.Size.X/2, s.Pos.Y-s.Size.Y/2)
	screen.DrawImage(img, op)
}

// Layout maps the window to the arena, so one screen pixel is one arena unit.
func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	arena := g.sim.Arena()
	return int(arena.X), int(arena.Y)
}

// LastMatchID returns the ID of the most recently saved match, if any.
func (g *Game) LastMatchID() string {
	return g.lastID
}

// Run opens the window and blocks until it is closed.
func Run(sim *neonvoid.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := NewGame(sim, store, cfg, logger)

	arena := sim.Arena()
	ebiten.SetWindowSize(int(arena.X), int(arena.Y))
	ebiten.SetWindowTitle(sim.Title())
	ebiten.SetTPS(g.config.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	// Closing the window mid-match still records it.
	if !g.sim.State().GameOver {
		_ = g.step(keyState{Quit: true})
	}
	return nil
}
