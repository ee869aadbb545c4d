package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
)

// artImage rasterizes pixel art rows into an RGBA image, one pixel per cell.
func artImage(rows []string, c color.RGBA) *image.RGBA {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(len(rows), 1)))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == 'X' {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

// spriteSheet holds one ebiten image per visual, created on first use.
type spriteSheet struct {
	images map[neonvoid.Visual]*ebiten.Image
}

func newSpriteSheet() *spriteSheet {
	return &spriteSheet{images: make(map[neonvoid.Visual]*ebiten.Image)}
}

// image returns the image for v. Images must be created on the main thread,
// so this is only called from Draw.
func (s *spriteSheet) image(v neonvoid.Visual) *ebiten.Image {
	if img, ok := s.images[v]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(artImage(neonvoid.Art(v), neonvoid.Palette(v)))
	s.images[v] = img
	return img
}
