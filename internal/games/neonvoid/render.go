package neonvoid

import (
	"fmt"

	"github.com/vovakirdan/neon-void/internal/core"
)

// Sprite is one entry of the render hand-off: where an entity is, how big
// its box is and which visual it uses. Positions are box centers in arena units.
type Sprite struct {
	Pos    core.Vec2
	Size   core.Vec2
	Visual Visual
}

// visualOf picks the visual of an entity.
func visualOf(e *Entity) Visual {
	switch e.Kind {
	case KindPlayer:
		return VisualPlayer
	case KindEnemy:
		switch e.Class {
		case EnemyZigzag:
			return VisualZigzag
		case EnemyTank:
			return VisualTank
		default:
			return VisualEnemy
		}
	case KindBullet:
		if e.Weapon == WeaponCharge {
			return VisualChargeShot
		}
		return VisualLaser
	case KindParticle:
		return VisualParticle
	case KindPowerUp:
		if e.Drop == PowerUpHeal {
			return VisualHealDrop
		}
		return VisualWeaponDrop
	default:
		return VisualParticle
	}
}

// Sprites returns every live entity as a sprite, in creation order.
// A destroyed player is left out.
func (g *Game) Sprites() []Sprite {
	out := make([]Sprite, 0, len(g.world.all))
	for _, e := range g.world.all {
		if e.Dead {
			continue
		}
		out = append(out, Sprite{Pos: e.Pos, Size: e.Size, Visual: visualOf(e)})
	}
	return out
}

// Stars returns the background star positions.
func (g *Game) Stars() []core.Vec2 {
	return g.stars.Stars()
}

// Arena returns the playfield size in arena units.
func (g *Game) Arena() core.Vec2 {
	return core.V(g.cfg.Arena.Width, g.cfg.Arena.Height)
}

// HUD is the status line data shown by every platform.
type HUD struct {
	Score       int
	Wave        int
	HP          int
	MaxHP       int
	Weapon      WeaponMode
	WeaponTicks int
	Kills       int
	Paused      bool
	GameOver    bool
	EndReason   string
}

// HUD returns the current status line data.
func (g *Game) HUD() HUD {
	p := g.world.player
	return HUD{
		Score:       g.score,
		Wave:        g.waves.Wave(),
		HP:          max(p.Health.HP, 0),
		MaxHP:       p.Health.Max,
		Weapon:      p.Weapon,
		WeaponTicks: p.WeaponTimer,
		Kills:       g.kills,
		Paused:      g.paused,
		GameOver:    g.gameOver,
		EndReason:   g.endReason,
	}
}

// glyph returns the terminal text and color of a visual.
func glyph(v Visual) (string, core.Color) {
	switch v {
	case VisualPlayer:
		return "/A\\", core.ColorBrightCyan
	case VisualEnemy:
		return "<V>", core.ColorBrightRed
	case VisualZigzag:
		return "~V~", core.ColorMagenta
	case VisualTank:
		return "[#]", core.ColorOrange
	case VisualLaser:
		return "|", core.ColorBrightYellow
	case VisualChargeShot:
		return "!", core.ColorYellow
	case VisualParticle:
		return "*", core.ColorRed
	case VisualHealDrop:
		return "+", core.ColorBrightGreen
	case VisualWeaponDrop:
		return "W", core.ColorOrange
	default:
		return "?", core.ColorDefault
	}
}

// Render draws the current game state to the screen.
// Row 0 holds the HUD; the rest of the screen shows the scaled arena.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 1 {
		return
	}

	for _, s := range g.stars.Stars() {
		x, y := g.toCell(s, w, h)
		dst.SetColor(x, y, '.', core.ColorGray)
	}

	// The ship is drawn last so its own shots never hide it.
	var ship *Sprite
	for _, s := range g.Sprites() {
		if s.Visual == VisualPlayer {
			ship = &s
			continue
		}
		g.drawSprite(dst, s, w, h)
	}
	if ship != nil {
		g.drawSprite(dst, *ship, w, h)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Wave: %d  |  Press R to restart", g.score, g.waves.Wave()))
	}
}

// drawSprite draws one sprite's glyph centered on its cell.
func (g *Game) drawSprite(dst *core.Screen, s Sprite, w, h int) {
	text, color := glyph(s.Visual)
	x, y := g.toCell(s.Pos, w, h)
	dst.DrawTextColor(x-len(text)/2, y, text, color)
}

// toCell maps an arena position to a screen cell below the HUD row.
func (g *Game) toCell(p core.Vec2, w, h int) (int, int) {
	x := int(p.X / g.cfg.Arena.Width * float64(w))
	y := 1 + int(p.Y/g.cfg.Arena.Height*float64(h-1))
	return x, y
}

// Line formats the status line shared by every platform.
func (h HUD) Line() string {
	weapon := h.Weapon.String()
	if h.WeaponTicks > 0 {
		weapon = fmt.Sprintf("%s %ds", weapon, (h.WeaponTicks+59)/60)
	}
	return fmt.Sprintf("Score: %d  Wave: %d  HP: %d/%d  Weapon: %s", h.Score, h.Wave, h.HP, h.MaxHP, weapon)
}

// drawHUD renders the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, " "+g.HUD().Line()+" ", core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
