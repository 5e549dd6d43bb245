package stacker

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: seed})
	return g
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists("stacker"))

	g, err := registry.Create("stacker")
	require.NoError(t, err)
	assert.Equal(t, "Stacker", g.Title())

	_, paced := g.(registry.Paced)
	_, drawer := g.(registry.Drawer)
	assert.True(t, paced)
	assert.True(t, drawer)
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		switch {
		case i%7 == 0:
			inputs[i] = core.FrameOf(core.ActionRotate)
		case i%5 < 2:
			inputs[i] = core.FrameOf(core.ActionLeft, core.ActionDrop)
		default:
			inputs[i] = core.FrameOf(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	assert.Equal(t, s1.Hash(), s2.Hash())
	assert.Equal(t, s1.Score, s2.Score)
	assert.Positive(t, s1.Score, "drops should have placed pieces")
}

func TestGameHeldKeyOnlyLastsOneTick(t *testing.T) {
	g := newTestGame(t, 1)
	x := g.Session().Piece().X

	g.Step(core.FrameOf(core.ActionLeft))
	require.Equal(t, x-1, g.Session().Piece().X)

	g.Step(core.NewInputFrame())
	assert.Equal(t, x-1, g.Session().Piece().X, "released key stops the piece")
	assert.Equal(t, DirNone, g.Session().Piece().Direction)
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame())

	st := g.Step(core.FrameOf(core.ActionPause)).State
	require.True(t, st.Paused)
	ticks := st.Ticks

	g.Step(core.NewInputFrame())
	assert.Equal(t, ticks, g.State().Ticks, "paused game does not tick")

	g.Step(core.FrameOf(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Equal(t, ticks+1, g.State().Ticks)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	for range 30 {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, screen.Row(0), "Stacker")
	assert.Contains(t, out, string(PieceGlyph))
	assert.Equal(t, '┌', screen.Get(g.board.X, g.board.Y))
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	g.Resize(20, 10)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "too small"))

	ticks := g.State().Ticks
	g.Step(core.NewInputFrame())
	assert.Equal(t, ticks, g.State().Ticks)
}

func TestGameTickInterval(t *testing.T) {
	g := newTestGame(t, 1)
	assert.Equal(t, 100*time.Millisecond, g.TickInterval())
	assert.Equal(t, 100*time.Millisecond, registry.Interval(g, 60))
}

func TestGameDifficultyPreset(t *testing.T) {
	require.Error(t, SetDifficultyPreset("impossible"))
	require.NoError(t, SetDifficultyPreset("hard"))
	t.Cleanup(func() { _ = SetDifficultyPreset("") })

	g := newTestGame(t, 1)
	assert.Equal(t, 2, g.Session().Piece().FallEvery)
}
