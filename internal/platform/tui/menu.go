package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-void/internal/core"
	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
	"github.com/vovakirdan/neon-void/internal/storage"
)

// MenuChoice is the entry picked on the title screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// menuItem is one selectable line of the title menu.
type menuItem struct {
	label  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Play", ChoicePlay},
	{"High Scores", ChoiceScores},
	{"Quit", ChoiceQuit},
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	itemStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	highScore int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	choice    MenuChoice
}

// NewMenuModel creates a new title menu. The high score is read once from store.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	high := 0
	if store != nil {
		if h, err := store.HighScore(neonvoid.GameID); err == nil {
			high = h
		}
	}

	return MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		highScore: high,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.choice = ChoiceQuit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.choice = menuItems[m.cursor].choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	for _, line := range titleLines(m.width) {
		b.WriteString(centerText(titleStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.highScore > 0 {
		b.WriteString(centerText(highlightStyle.Render(fmt.Sprintf("High score: %d", m.highScore)), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := itemStyle.Render("  " + item.label + "  ")
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.label + " <")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(footerStyle.Render(controls), m.width))
	b.WriteString("\n\n")

	// In-game controls
	b.WriteString(centerText(m.help.View(m.keyMapper.Keys()), m.width))
	b.WriteString("\n")

	return b.String()
}

// titleLines renders the logo as block characters, or as spaced text when
// the terminal is too narrow for it.
func titleLines(width int) []string {
	art := neonvoid.TitleArt
	if len(art) == 0 || width < len(art[0])+2 {
		return []string{"N E O N   V O I D"}
	}

	lines := make([]string, len(art))
	for i, row := range art {
		lines[i] = strings.NewReplacer("X", "█").Replace(row)
	}
	return lines
}

// Choice returns the picked entry, or ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
