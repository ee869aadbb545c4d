package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-void/internal/core"
	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
	"github.com/vovakirdan/neon-void/internal/registry"
	"github.com/vovakirdan/neon-void/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestGameModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	game, err := registry.Create(neonvoid.GameID)
	if err != nil {
		t.Fatalf("registry.Create: %v", err)
	}
	m := NewGameModel(game, store, testConfig(), nil)
	m.Init()
	return m
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(msg)
}

func tick(t *testing.T, m tea.Model, n int) tea.Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	return m
}

func TestGameModelQuitRecordsMatch(t *testing.T) {
	store := openStore(t)
	var m tea.Model = newTestGameModel(t, store)

	m = tick(t, m, 10)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}

	gm := m.(GameModel)
	if !gm.IsQuitting() {
		t.Fatal("model should be quitting")
	}
	if !gm.State().GameOver {
		t.Error("quitting should end the match")
	}
	if gm.LastMatchID() == "" {
		t.Fatal("match should have been saved")
	}

	rec, err := store.MatchByID(gm.LastMatchID())
	if err != nil || rec == nil {
		t.Fatalf("MatchByID: %v, %v", rec, err)
	}
	if rec.EndReason != neonvoid.EndQuit {
		t.Errorf("EndReason = %q, want %q", rec.EndReason, neonvoid.EndQuit)
	}
	if rec.Ticks != 10 {
		t.Errorf("Ticks = %d, want 10", rec.Ticks)
	}
	if rec.Seed != 7 {
		t.Errorf("Seed = %d, want 7", rec.Seed)
	}
}

func TestGameModelPauseFreezesTicks(t *testing.T) {
	var m tea.Model = newTestGameModel(t, nil)

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m, 1)
	if !m.(GameModel).State().Paused {
		t.Fatal("game should be paused")
	}

	reporter := m.(GameModel).game.(registry.StatsReporter)
	before := reporter.Stats().Ticks
	m = tick(t, m, 5)
	if after := reporter.Stats().Ticks; after != before {
		t.Errorf("ticks advanced while paused: %d -> %d", before, after)
	}
}

func TestGameModelBackOnlyWhenPaused(t *testing.T) {
	var m tea.Model = newTestGameModel(t, nil)
	m = tick(t, m, 1)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.(GameModel).BackToMenu() {
		t.Fatal("back should be ignored during play")
	}

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m, 1)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(GameModel).BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestGameModelResizeKeepsMatch(t *testing.T) {
	var m tea.Model = newTestGameModel(t, nil)
	m = tick(t, m, 20)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	reporter := m.(GameModel).game.(registry.StatsReporter)
	if ticks := reporter.Stats().Ticks; ticks != 20 {
		t.Errorf("resize restarted the match: ticks = %d", ticks)
	}
	if view := m.View(); view == "" {
		t.Error("view should not be empty")
	}
}

func TestSessionPlayAndReturn(t *testing.T) {
	var m tea.Model = NewSessionModel(neonvoid.GameID, nil, testConfig(), nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("starting a game should schedule a tick")
	}
	if m.(SessionModel).screen != screenGame {
		t.Fatalf("screen = %v, want game", m.(SessionModel).screen)
	}

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m, 1)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	s := m.(SessionModel)
	if s.screen != screenMenu {
		t.Errorf("screen = %v, want menu", s.screen)
	}
	if s.game != nil {
		t.Error("game model should be dropped on return")
	}
	if s.IsQuitting() {
		t.Error("returning to the menu should not quit")
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(neonvoid.GameID, 1200); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	var m tea.Model = NewSessionModel(neonvoid.GameID, store, testConfig(), nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	s := m.(SessionModel)
	if s.screen != screenScores {
		t.Fatalf("screen = %v, want scores", s.screen)
	}
	if len(s.scores.scores) != 1 {
		t.Errorf("loaded %d scores, want 1", len(s.scores.scores))
	}

	m, _ = update(t, m, runeKey('b'))
	if m.(SessionModel).screen != screenMenu {
		t.Error("back should return to the menu")
	}
	if got := m.(SessionModel).menu.highScore; got != 1200 {
		t.Errorf("menu high score = %d, want 1200", got)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	var m tea.Model = NewSessionModel(neonvoid.GameID, nil, testConfig(), nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.(SessionModel).IsQuitting() {
		t.Error("session should be quitting")
	}
	if m.View() != "" {
		t.Error("a quitting session renders nothing")
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveMatch(storage.MatchRecord{GameID: neonvoid.GameID, Score: 300, Wave: 2, Kills: 3, Ticks: 3600, EndReason: "destroyed"}); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}

	var m tea.Model = NewScoreboardModel(neonvoid.GameID, store, 80, 24, 60)
	if m.(ScoreboardModel).Tab() != TabTopScores {
		t.Fatal("scoreboard should open on top scores")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	sb := m.(ScoreboardModel)
	if sb.Tab() != TabRecentMatches {
		t.Fatalf("tab = %v, want recent matches", sb.Tab())
	}
	if rows := sb.table.Rows(); len(rows) != 1 || rows[0][3] != "1:00" {
		t.Errorf("rows = %v, want one match lasting 1:00", rows)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.(ScoreboardModel).Tab() != TabTopScores {
		t.Error("shift+tab should wrap back to top scores")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{125 * time.Second, "2:05"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
