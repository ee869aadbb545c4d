package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-void/internal/core"
)

// keyState is the keyboard state read once per tick.
type keyState struct {
	Left        bool
	Right       bool
	Fire        bool // Fire key held
	FirePressed bool // Fire key went down this tick
	Pause       bool
	Restart     bool
	Quit        bool
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readKeys samples the keyboard.
func readKeys() keyState {
	return keyState{
		Left:        anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:       anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Fire:        anyPressed(ebiten.KeySpace),
		FirePressed: anyJustPressed(ebiten.KeySpace),
		Pause:       anyJustPressed(ebiten.KeyP),
		Restart:     anyJustPressed(ebiten.KeyR),
		Quit:        anyJustPressed(ebiten.KeyEscape, ebiten.KeyQ),
	}
}

// frame converts key state into the input frame for one tick.
// Window input has real key state, so steering and fire are reported as held.
func (k keyState) frame() core.InputFrame {
	f := core.NewInputFrame()
	if k.Left {
		f.Hold(core.ActionLeft)
	}
	if k.Right {
		f.Hold(core.ActionRight)
	}
	if k.Fire {
		f.Hold(core.ActionFire)
	}
	if k.FirePressed {
		f.Set(core.ActionFire)
	}
	if k.Pause {
		f.Set(core.ActionPause)
	}
	if k.Quit {
		f.Set(core.ActionQuit)
	}
	return f
}
