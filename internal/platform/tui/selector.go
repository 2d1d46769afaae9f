package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-concentration/internal/config"
	"github.com/vovakirdan/tui-concentration/internal/core"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
)

// randomThemeLabel is the theme row that picks a theme per game.
const randomThemeLabel = "Random"

// ConcentrationSelection holds the user's choices before a game.
type ConcentrationSelection struct {
	Difficulty config.Difficulty
	Theme      string // Theme name or concentration.ThemeRandom
}

// SelectorModel lets users choose the difficulty, then the theme.
type SelectorModel struct {
	difficulties []config.Difficulty
	themes       []string
	cursor       int
	themeCursor  int
	inThemes     bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    ConcentrationSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewSelectorModel creates a selector over the given theme names.
// The cursor starts on the default difficulty.
func NewSelectorModel(def config.Difficulty, themes []string, width, height int) SelectorModel {
	m := SelectorModel{
		difficulties: config.Difficulties(),
		themes:       append(append([]string(nil), themes...), randomThemeLabel),
		width:        width,
		height:       height,
		keyMapper:    NewKeyMapper(),
		choosing:     true,
	}
	for i, d := range m.difficulties {
		if d == def {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inThemes {
			return m.handleThemeKey(action)
		}
		return m.handleDifficultyKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SelectorModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.difficulties)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = m.difficulties[m.cursor]
		m.inThemes = true
		m.themeCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SelectorModel) handleThemeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case MenuActionDown:
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
		}
	case MenuActionSelect:
		name := m.themes[m.themeCursor]
		if m.themeCursor == len(m.themes)-1 {
			name = concentration.ThemeRandom
		}
		m.selection.Theme = name
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.inThemes = false
	}
	return m, nil
}

// View renders the current step.
func (m SelectorModel) View() string {
	if m.quitting || m.back || !m.choosing {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("C O N C E N T R A T I O N", m.width))
	b.WriteString("\n\n")

	if m.inThemes {
		b.WriteString(centerText("Select theme:", m.width))
		b.WriteString("\n\n")
		for i, name := range m.themes {
			b.WriteString(centerText(menuLine(i == m.themeCursor, name), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select difficulty:", m.width))
		b.WriteString("\n\n")
		for i, d := range m.difficulties {
			line := fmt.Sprintf("%-9s %2d cards", d.Title(), d.Cards())
			b.WriteString(centerText(menuLine(i == m.cursor, line), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func menuLine(selected bool, text string) string {
	if selected {
		return "> " + text
	}
	return "  " + text
}

// Selected returns the selection, or nil if still choosing.
func (m SelectorModel) Selected() *ConcentrationSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SelectorModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user left the selector from its first step.
func (m SelectorModel) WantsBack() bool {
	return m.back
}

// RunSelector runs the difficulty and theme selection.
// Returns nil when the user backs out or quits.
func RunSelector(cfg core.RuntimeConfig, def config.Difficulty, themes []string) (*ConcentrationSelection, error) {
	p := tea.NewProgram(
		NewSelectorModel(def, themes, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SelectorModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
