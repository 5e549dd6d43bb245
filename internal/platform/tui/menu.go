package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/registry"
	"github.com/vovakirdan/stackout/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one game in the picker with its stored history.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
	Played int
	Wins   int
}

func (it MenuItem) history() string {
	switch {
	case it.Played == 0:
		return "not played yet"
	case it.Wins == 0:
		return fmt.Sprintf("%d played · best %d", it.Played, it.Best)
	}
	return fmt.Sprintf("%d played · %d won · best %d", it.Played, it.Wins, it.Best)
}

// menuItems lists registered games joined with their stats. A failing
// store only costs the history column.
func menuItems(store *storage.Store) []MenuItem {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if st := stats[g.ID]; st != nil {
			items[i].Best, items[i].Played, items[i].Wins = st.HighScore, st.GamesCount, st.Wins
		}
	}
	return items
}

// MenuModel is the game picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	selected       *MenuItem
	openScoreboard bool
	quitting       bool
}

func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems(store),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		n := len(m.items)
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
			}
		case MenuActionDown:
			if n > 0 {
				m.cursor = (m.cursor + 1) % n
			}
		case MenuActionSelect:
			if n > 0 {
				it := m.items[m.cursor]
				m.selected = &it
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.openScoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		centerText(menuTitleStyle.Render("A R C A D E"), w),
		"",
	}
	if len(m.items) == 0 {
		lines = append(lines, centerText(menuHintStyle.Render("no games registered"), w))
	}

	// Pad titles to one width so the highlight bars line up.
	titleW := 0
	for _, it := range m.items {
		titleW = max(titleW, lipgloss.Width(it.Title))
	}
	for i, it := range m.items {
		style := menuItemStyle
		if i == m.cursor {
			style = menuCursorStyle
		}
		lines = append(lines, centerText(style.Render(fmt.Sprintf(" %-*s ", titleW, it.Title)), w))
	}

	if len(m.items) > 0 {
		lines = append(lines, "", centerText(menuHintStyle.Render(m.items[m.cursor].history()), w))
	}
	lines = append(lines, "",
		centerText(menuHintStyle.Render("↑/↓ move · enter play · tab scores · q quit"), w), "")
	return strings.Join(lines, "\n")
}

// Selected returns the chosen game, or nil before a choice.
func (m MenuModel) Selected() *MenuItem { return m.selected }

func (m MenuModel) IsQuitting() bool { return m.quitting }

func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// Config returns the runtime config with the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText left-pads text to center it within width cells. Styled text
// is measured without its escape sequences.
func centerText(text string, width int) string {
	tw := lipgloss.Width(text)
	if tw >= width {
		return text
	}
	return strings.Repeat(" ", (width-tw)/2) + text
}

// MenuResult is what the standalone menu program decided.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.config, WantsScoreboard: m.openScoreboard}
	switch {
	case r.WantsScoreboard:
	case m.selected != nil && !m.quitting:
		r.GameID = m.selected.GameID
	default:
		r.Quit = true
	}
	return r
}

// RunMenu runs the picker as its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
