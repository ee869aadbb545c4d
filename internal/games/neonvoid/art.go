package neonvoid

import "image/color"

// Visual identifies how a sprite is drawn. Renderers map it to glyphs or
// pixel art; the simulation only picks the value.
type Visual uint8

const (
	VisualPlayer Visual = iota
	VisualEnemy
	VisualZigzag
	VisualTank
	VisualLaser
	VisualChargeShot
	VisualParticle
	VisualHealDrop
	VisualWeaponDrop
)

// Pixel art rows: 'X' is a filled pixel, anything else is transparent.
var (
	playerArt = []string{
		"....X....",
		"....X....",
		".X.XXX.X.",
		".X.XXX.X.",
		"XXXXXXXXX",
		"X..X.X..X",
		"X.......X",
	}
	enemyArt = []string{
		"..X...X..",
		"...XXX...",
		".XX.X.XX.",
		"X.XXXXX.X",
		"X.XXXXX.X",
		".XXXXXXX.",
		"..X...X..",
	}
	tankArt = []string{
		"XXXXXXXXX",
		"XXXXXXXXX",
		"X.XXXXX.X",
		"X..XXX..X",
		"X...X...X",
		".X.....X.",
		"..X...X..",
	}
	dropArt = []string{
		"..XX..",
		".XXXX.",
		"XXXXXX",
		"XXXXXX",
		".XXXX.",
		"..XX..",
	}
	particleArt = []string{
		".X.",
		"XXX",
		".X.",
	}
	shotArt = []string{"X"}
)

// TitleArt is the NEON VOID logo shown by the title screens.
var TitleArt = []string{
	"XX    XX  XXXXXX  XXXXXX  XX    XX",
	"XXX   XX  XX      XX  XX  XXX   XX",
	"XXXX  XX  XXXX    XX  XX  XXXX  XX",
	"XX XX XX  XX      XX  XX  XX XX XX",
	"XX  XXXX  XX      XX  XX  XX  XXXX",
	"XX   XXX  XX      XX  XX  XX   XXX",
	"XX    XX  XXXXXX  XXXXXX  XX    XX",
	"                                  ",
	"  XX  XX  XXXXXX  XX  XXXX    XXXX",
	"  XX  XX  XX  XX  XX  XX  XX  XX  ",
	"  XX  XX  XX  XX  XX  XX  XX  XXXX",
	"  XX  XX  XX  XX  XX  XX  XX  XX  ",
	"   XXXX   XXXXXX  XX  XXXX    XXXX",
}

// Art returns the pixel pattern of a visual.
func Art(v Visual) []string {
	switch v {
	case VisualPlayer:
		return playerArt
	case VisualEnemy, VisualZigzag:
		return enemyArt
	case VisualTank:
		return tankArt
	case VisualHealDrop, VisualWeaponDrop:
		return dropArt
	case VisualParticle:
		return particleArt
	default:
		return shotArt
	}
}

// Palette returns the display color of a visual.
func Palette(v Visual) color.RGBA {
	switch v {
	case VisualPlayer:
		return color.RGBA{0, 200, 255, 255}
	case VisualEnemy:
		return color.RGBA{255, 60, 60, 255}
	case VisualZigzag:
		return color.RGBA{255, 100, 100, 255}
	case VisualTank:
		return color.RGBA{255, 140, 0, 255}
	case VisualLaser, VisualChargeShot:
		return color.RGBA{255, 255, 0, 255}
	case VisualParticle:
		return color.RGBA{255, 50, 50, 255}
	case VisualHealDrop:
		return color.RGBA{0, 255, 0, 255}
	case VisualWeaponDrop:
		return color.RGBA{255, 165, 0, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}
