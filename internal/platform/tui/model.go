package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-void/internal/core"
	"github.com/vovakirdan/neon-void/internal/logging"
	"github.com/vovakirdan/neon-void/internal/registry"
	"github.com/vovakirdan/neon-void/internal/storage"
)

// GameModel runs one game inside Bubble Tea: it feeds ticks and input to the
// simulation, renders it and records the result when a match ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	latch      *HoldLatch
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	saved      bool // Whether the current match has been recorded
	lastSaved  string
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		latch:      NewHoldLatch(DefaultHoldTicks),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("match started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena is measured in its own units, so a resize only rescales
		// the view and never restarts the match.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finishMatch()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action)
	case core.ActionFire, core.ActionPause:
		m.inputFrame.Set(action)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishMatch()
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.latch.Release()
		m.inputFrame.Clear()
		m.logger.Info("match restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.latch.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	if m.gameState.GameOver {
		m.recordMatch()
	}

	m.latch.Tick()
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishMatch ends a running match with a quit request so that it is
// recorded with its final statistics.
func (m *GameModel) finishMatch() {
	if m.gameState.GameOver || m.saved {
		return
	}
	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	result := m.game.Step(quit)
	m.gameState = result.State
	m.logEvents(result.Events)
	if m.gameState.GameOver {
		m.recordMatch()
	}
}

// recordMatch stores the score and match summary once per match.
func (m *GameModel) recordMatch() {
	if m.saved {
		return
	}
	m.saved = true

	if m.store == nil {
		return
	}

	record := storage.MatchRecord{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if reporter, ok := m.game.(registry.StatsReporter); ok {
		stats := reporter.Stats()
		record.Score = stats.Score
		record.Wave = stats.Wave
		record.Kills = stats.Kills
		record.Shots = stats.Shots
		record.Ticks = stats.Ticks
		record.EndReason = stats.EndReason
	}
	if record.Ticks == 0 && record.Score == 0 {
		return
	}

	id, err := m.store.RecordMatch(record)
	if err != nil {
		m.logger.Warn("could not save match", "error", err)
		return
	}
	m.lastSaved = id
	m.logger.Info("match saved", "match", id, "score", record.Score, "wave", record.Wave, "reason", record.EndReason)
}

// logEvents writes simulation events to the debug log.
func (m *GameModel) logEvents(events []core.Event) {
	for _, e := range events {
		m.logger.Debug(e.Kind.String(),
			"tick", e.Tick,
			"value", e.Value,
			"detail", e.Detail,
			"x", int(e.Pos.X),
			"y", int(e.Pos.Y),
		)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".neonvoid", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LastMatchID returns the ID of the most recently saved match, if any.
func (m GameModel) LastMatchID() string {
	return m.lastSaved
}

// Run starts a single game without the title menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
