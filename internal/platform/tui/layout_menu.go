package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/games/breakout"
)

// LayoutSelection holds the user's choice from the Breakout layout menu.
type LayoutSelection struct {
	LayoutID string
	Practice bool
}

// LayoutModel lets users pick a block layout and toggle practice mode.
// The last row of the list is the practice toggle.
type LayoutModel struct {
	layouts   []*breakout.Layout
	cursor    int
	practice  bool
	width     int
	height    int
	keyMapper *KeyMapper
	selection *LayoutSelection
	quitting  bool
	back      bool
}

// NewLayoutModel creates a new layout selection model.
func NewLayoutModel(width, height int, practice bool) LayoutModel {
	return LayoutModel{
		layouts:   breakout.BuiltinLayouts(),
		practice:  practice,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LayoutModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LayoutModel) practiceRow() int {
	return len(m.layouts)
}

func (m LayoutModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.practiceRow() {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == m.practiceRow() {
			m.practice = !m.practice
			return m, nil
		}
		m.selection = &LayoutSelection{
			LayoutID: m.layouts[m.cursor].ID,
			Practice: m.practice,
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the layout list.
func (m LayoutModel) View() string {
	if m.quitting || m.selection != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B R E A K O U T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select layout:", m.width))
	b.WriteString("\n\n")

	for i, l := range m.layouts {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-10s %3d blocks", cursor, l.Name, l.Blocks())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	cursor := "  "
	if m.cursor == m.practiceRow() {
		cursor = "> "
	}
	check := "[ ]"
	if m.practice {
		check = "[x]"
	}
	b.WriteString(centerText(fmt.Sprintf("%s%s Practice (ball bounces off the floor)", cursor, check), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if the user left without choosing.
func (m LayoutModel) Selected() *LayoutSelection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LayoutModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LayoutModel) WantsBack() bool {
	return m.back
}

// RunLayoutSelector runs the Breakout layout menu and returns the selection.
// A nil selection means the user backed out or quit.
func RunLayoutSelector(cfg core.RuntimeConfig, practice bool) (*LayoutSelection, error) {
	p := tea.NewProgram(
		NewLayoutModel(cfg.ScreenW, cfg.ScreenH, practice),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LayoutModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
