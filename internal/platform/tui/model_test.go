package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/storage"
)

// scriptedGame ends with the given outcome after a fixed number of steps.
type scriptedGame struct {
	steps   int
	endAt   int
	score   int
	outcome core.Outcome
	resized bool
	events  core.Events
	seen    []core.InputFrame
}

func (g *scriptedGame) ID() string                  { return "scripted" }
func (g *scriptedGame) Title() string               { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig)    { g.steps = 0 }
func (g *scriptedGame) Render(dst *core.Screen)     { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) Resize(int, int)             { g.resized = true }
func (g *scriptedGame) SetEvents(e core.Events)     { g.events = e }
func (g *scriptedGame) TickInterval() time.Duration { return 25 * time.Millisecond }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.seen = append(g.seen, in.Clone())
	if in.Has(core.ActionRestart) && g.steps >= g.endAt {
		g.steps = 0
		return core.StepResult{State: g.State()}
	}
	if g.steps < g.endAt {
		g.steps++
		if g.steps == g.endAt {
			g.events.EmitEnd(g.outcome)
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) State() core.GameState {
	over := g.steps >= g.endAt
	st := core.GameState{Score: g.score, Ticks: g.steps, GameOver: over}
	if over {
		st.Outcome = g.outcome
	}
	return st
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{Gen: m.gen, At: time.Now()})
	require.NotNil(t, cmd, "tick did not reschedule")
	return next.(Model)
}

func press(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func newTestModel(g *scriptedGame, store *storage.Store) Model {
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m
}

func TestModelSavesResultOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{endAt: 3, score: 120, outcome: core.OutcomeLoss}
	m := newTestModel(g, store)

	for range 6 {
		m = tick(t, m)
	}

	scores, err := store.AllScores("scripted")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 120, scores[0].Score)
	assert.Equal(t, "loss", scores[0].Outcome)
	assert.Equal(t, 3, scores[0].Ticks)
}

func TestModelSaveRules(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		outcome core.Outcome
		want    int
	}{
		{"empty loss skipped", 0, core.OutcomeLoss, 0},
		{"scored loss saved", 10, core.OutcomeLoss, 1},
		{"empty win saved", 0, core.OutcomeWin, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(t)
			m := newTestModel(&scriptedGame{endAt: 1, score: tt.score, outcome: tt.outcome}, store)
			tick(t, m)

			scores, err := store.AllScores("scripted")
			require.NoError(t, err)
			assert.Len(t, scores, tt.want)
		})
	}
}

func TestModelRestartSavesAgain(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{endAt: 1, score: 50, outcome: core.OutcomeLoss}
	m := newTestModel(g, store)

	m = tick(t, m)
	m = press(m, runeKey('r'))
	m = tick(t, m) // restart
	tick(t, m)     // second game over

	scores, err := store.AllScores("scripted")
	require.NoError(t, err)
	assert.Len(t, scores, 2, "one result per finished game")
}

func TestModelIgnoresRestartWhilePlaying(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := newTestModel(g, nil)

	m = press(m, runeKey('r'))
	tick(t, m)

	require.Len(t, g.seen, 1)
	assert.False(t, g.seen[0].Has(core.ActionRestart), "restart reached a running game")
}

func TestModelInputIsPerTick(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := newTestModel(g, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)
	tick(t, m)

	require.Len(t, g.seen, 2)
	assert.True(t, g.seen[0].Has(core.ActionLeft), "first tick missed the key")
	assert.False(t, g.seen[1].Has(core.ActionLeft), "key leaked into the next tick")
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := newTestModel(g, nil)

	next, cmd := m.Update(TickMsg{Gen: m.gen + 1})
	assert.Nil(t, cmd, "stale tick rescheduled")
	assert.Empty(t, g.seen)
	assert.Zero(t, next.(Model).gameState.Ticks)
}

func TestModelBack(t *testing.T) {
	m := newTestModel(&scriptedGame{endAt: 100}, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(Model).WantsBack())
	assert.NotNil(t, cmd, "standalone back quits the program")

	m = newTestModel(&scriptedGame{endAt: 100}, nil)
	m.embedded = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(Model).WantsBack())
	assert.Nil(t, cmd, "embedded back hands control to the parent")
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := newTestModel(g, nil)
	m = tick(t, m)

	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, g.resized)
	assert.Equal(t, 1, g.steps, "resize reset the game")
	assert.Equal(t, 100, m.screen.Width())
}

func TestModelUsesGameInterval(t *testing.T) {
	m := newTestModel(&scriptedGame{endAt: 100}, nil)
	assert.Equal(t, 25*time.Millisecond, m.tickInterval())
}
