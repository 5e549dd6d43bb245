package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/registry"
	"github.com/vovakirdan/stackout/internal/storage"
)

const (
	scoreboardLimit = 100
	// Rows taken by the title, tabs, summary, frame and help.
	scoreboardChrome = 9
)

var (
	boardTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTabStyle = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardMutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	boardFrameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 3)
)

// scoreboardKeys are the bindings the table does not handle itself.
type scoreboardKeys struct {
	Scroll   key.Binding // help only, the table scrolls
	Next     key.Binding
	Prev     key.Binding
	WinsOnly key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.WinsOnly, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		Next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		WinsOnly: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wins only")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows stored results per game, one game at a time.
type ScoreboardModel struct {
	store    *storage.Store
	games    []registry.GameInfo
	current  int
	winsOnly bool

	entries []storage.ScoreEntry
	stats   *storage.GameStats
	loadErr error

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens on the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		games: registry.List(),
		table: table.New(table.WithFocused(true), table.WithStyles(scoreTableStyles())),
		help:  help.New(),
		keys:  newScoreboardKeys(),
	}
	m.resize(width, height)
	m.reload()
	return m
}

func scoreTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

// scoreColumns lets the date column take up to 20 cells of spare width.
func scoreColumns(width int) []table.Column {
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Result", Width: 6},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: core.Clamp(width-48, 12, 20)},
	}
}

func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			outcomeLabel(e.Outcome),
			strconv.Itoa(e.Ticks),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// outcomeLabel renders a stored outcome. Rows saved before outcomes were
// recorded carry none.
func outcomeLabel(o string) string {
	switch o {
	case core.OutcomeWin.String():
		return "WIN"
	case core.OutcomeLoss.String():
		return "lost"
	}
	return "-"
}

func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.table.SetColumns(scoreColumns(width))
	m.table.SetHeight(max(height-scoreboardChrome, 3))
	m.help.Width = width
}

// reload fetches the current game's results and refills the table.
func (m *ScoreboardModel) reload() {
	m.entries, m.stats, m.loadErr = nil, nil, nil
	defer func() {
		m.table.SetRows(scoreRows(m.entries))
		m.table.GotoTop()
	}()

	if m.store == nil || len(m.games) == 0 {
		return
	}
	id := m.games[m.current].ID

	entries, err := m.store.TopScores(id, scoreboardLimit)
	if err != nil {
		m.loadErr = err
		return
	}
	if m.winsOnly {
		entries = slices.DeleteFunc(entries, func(e storage.ScoreEntry) bool {
			return e.Outcome != core.OutcomeWin.String()
		})
	}
	m.entries = entries
	m.stats, m.loadErr = m.store.GetGameStats(id)
}

func (m *ScoreboardModel) cycle(step int) {
	if n := len(m.games); n > 0 {
		m.current = (m.current + step + n) % n
		m.reload()
	}
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.WinsOnly):
			m.winsOnly = !m.winsOnly
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	body := m.table.View()
	if len(m.entries) == 0 {
		body = boardEmptyStyle.Render(m.emptyText())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		center(boardTitleStyle.Render("HIGH SCORES")),
		center(m.tabs()),
		center(m.summary()),
		center(boardFrameStyle.Render(body)),
		boardMutedStyle.Render(m.help.View(m.keys)),
	)
}

// tabs lists the games with the current one highlighted, or just the
// current title when the list does not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return boardMutedStyle.Render("no games registered")
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		style := boardTabStyle
		if i == m.current {
			style = boardActiveTabStyle
		}
		parts[i] = style.Render(g.Title)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if m.width > 0 && lipgloss.Width(line) > m.width {
		return boardActiveTabStyle.Render("< " + m.games[m.current].Title + " >")
	}
	return line
}

func (m ScoreboardModel) summary() string {
	switch {
	case m.loadErr != nil:
		return boardErrorStyle.Render("scores unavailable: " + m.loadErr.Error())
	case m.store == nil:
		return boardMutedStyle.Render("scores are not being recorded")
	case m.stats == nil || m.stats.GamesCount == 0:
		return ""
	}

	parts := []string{
		fmt.Sprintf("%d played", m.stats.GamesCount),
		fmt.Sprintf("%d won", m.stats.Wins),
		fmt.Sprintf("best %d", m.stats.HighScore),
		fmt.Sprintf("avg %.0f", m.stats.AvgScore),
	}
	if m.winsOnly {
		parts = append(parts, "showing wins")
	}
	return boardMutedStyle.Render(strings.Join(parts, " · "))
}

func (m ScoreboardModel) emptyText() string {
	if m.winsOnly {
		return "No wins recorded yet."
	}
	return "No scores recorded yet.\nPlay a game to set a high score!"
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the user asked to leave the arcade.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard in its own program and reports
// whether the user went back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
