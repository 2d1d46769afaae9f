package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-concentration/internal/core"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
	"github.com/vovakirdan/tui-concentration/internal/storage"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuHighScores
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{MenuPlay, "Play"},
	{MenuHighScores, "High scores"},
	{MenuQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	stats     string // Career line from the score database, empty without one
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice // Set when the user picks an entry or uses a shortcut
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		stats:     statsLine(store),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// statsLine summarizes past games, or returns "" when there are none.
func statsLine(store *storage.Store) string {
	if store == nil {
		return ""
	}
	stats, err := store.GetGameStats(concentration.ID)
	if err != nil || stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games won: %d  |  Best score: %d", stats.GamesCount, stats.HighScore)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.choice = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice
		return m, tea.Quit // Exit menu to act on the choice

	case MenuActionScoreboard:
		m.choice = MenuHighScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.IsQuitting() {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText("  C O N C E N T R A T I O N  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Find every matching pair", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	if m.stats != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.stats, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Highlighted returns the item under the cursor.
func (m MenuModel) Highlighted() MenuItem {
	return m.items[m.cursor]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.choice == MenuQuit
}

// WantsPlay returns true if user chose to start a game.
func (m MenuModel) WantsPlay() bool {
	return m.choice == MenuPlay
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.choice == MenuHighScores
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the user's choice. A menu closed
// without a choice reports MenuQuit.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
