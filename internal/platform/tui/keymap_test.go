package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-void/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldLatchExpires(t *testing.T) {
	l := NewHoldLatch(3)
	l.Press(core.ActionLeft)

	for i := 0; i < 3; i++ {
		if !l.Held(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
		l.Tick()
	}
	if l.Held(core.ActionLeft) {
		t.Error("left should be released after the window")
	}
}

func TestHoldLatchRepeatExtends(t *testing.T) {
	l := NewHoldLatch(3)
	l.Press(core.ActionRight)
	l.Tick()
	l.Tick()
	l.Press(core.ActionRight)
	l.Tick()
	l.Tick()

	if !l.Held(core.ActionRight) {
		t.Error("a repeated press should extend the hold")
	}
}

func TestHoldLatchOppositeReleases(t *testing.T) {
	l := NewHoldLatch(DefaultHoldTicks)
	l.Press(core.ActionLeft)
	l.Press(core.ActionRight)

	if l.Held(core.ActionLeft) {
		t.Error("pressing right should release left")
	}

	frame := core.NewInputFrame()
	l.Apply(&frame)
	if !frame.IsHeld(core.ActionRight) || frame.IsHeld(core.ActionLeft) {
		t.Errorf("frame held = %v, want only right", frame.Held)
	}

	l.Release()
	if l.Held(core.ActionRight) {
		t.Error("Release should drop every action")
	}
}

func TestNewHoldLatchDefaultsWindow(t *testing.T) {
	l := NewHoldLatch(0)
	l.Press(core.ActionLeft)
	for i := 0; i < DefaultHoldTicks-1; i++ {
		l.Tick()
	}
	if !l.Held(core.ActionLeft) {
		t.Error("zero window should fall back to the default")
	}
}
