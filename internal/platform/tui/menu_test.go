package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/storage"
)

func pressMenu(m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func newTestMenu(store *storage.Store) MenuModel {
	registerScripted()
	return NewMenuModel(store, core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
}

func TestMenuItemsCarryHistory(t *testing.T) {
	store := openStore(t)
	saveResults(t, store,
		storage.Result{GameID: "scripted", Score: 80, Outcome: "loss"},
		storage.Result{GameID: "scripted", Score: 120, Outcome: "win"},
	)
	m := newTestMenu(store)

	i := slices.IndexFunc(m.items, func(it MenuItem) bool { return it.GameID == "scripted" })
	require.GreaterOrEqual(t, i, 0)
	it := m.items[i]
	assert.Equal(t, 120, it.Best)
	assert.Equal(t, 2, it.Played)
	assert.Equal(t, 1, it.Wins)
	assert.Equal(t, "2 played · 1 won · best 120", it.history())

	assert.Equal(t, "not played yet", MenuItem{}.history())
	assert.Equal(t, "3 played · best 40", MenuItem{Played: 3, Best: 40}.history())
}

func TestMenuCursorWraps(t *testing.T) {
	m := newTestMenu(nil)
	n := len(m.items)
	require.Positive(t, n)

	m, _ = pressMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, n-1, m.cursor)

	m, _ = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.cursor)
}

func TestMenuSelect(t *testing.T) {
	m := newTestMenu(nil)

	m, cmd := pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Selected())
	assert.NotNil(t, cmd)

	r := m.result()
	assert.Equal(t, m.items[0].GameID, r.GameID)
	assert.False(t, r.Quit)
	assert.False(t, r.WantsScoreboard)
}

func TestMenuResults(t *testing.T) {
	m, _ := pressMenu(newTestMenu(nil), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, MenuResult{Config: m.Config(), WantsScoreboard: true}, m.result())

	m, _ = pressMenu(newTestMenu(nil), runeKey('q'))
	assert.True(t, m.result().Quit)
	assert.Empty(t, m.View())

	// Leaving without a choice is a quit too.
	assert.True(t, newTestMenu(nil).result().Quit)
}

func TestMenuTracksResize(t *testing.T) {
	m, _ := pressMenu(newTestMenu(nil), tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}

func TestCenterTextIgnoresEscapes(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "toolong", centerText("toolong", 4))

	styled := "\x1b[1mab\x1b[0m"
	assert.Equal(t, "   "+styled, centerText(styled, 8))
}
