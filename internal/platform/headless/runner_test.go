package headless

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/stackout/internal/core"
	_ "github.com/vovakirdan/stackout/internal/games/breakout"
	_ "github.com/vovakirdan/stackout/internal/games/stacker"
	"github.com/vovakirdan/stackout/internal/registry"
	"github.com/vovakirdan/stackout/internal/scheduler"
)

func newRunner(t *testing.T, id string, seed int64) *Runner {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create(id)
	require.NoError(t, err)
	pilot, err := PilotFor(id, seed)
	require.NoError(t, err)
	return NewRunner(g, pilot, seed)
}

func TestPilotForUnknownGame(t *testing.T) {
	_, err := PilotFor("pinball", 1)
	assert.Error(t, err)
}

// drawOnly exposes fixed descriptors to a pilot.
type drawOnly struct {
	registry.Game
	ds []core.Drawable
}

func (d drawOnly) Draw() []core.Drawable { return d.ds }

func TestBreakoutPilotTracksBall(t *testing.T) {
	paddle := core.Drawable{Kind: core.KindPaddle, X: 100, W: 80, H: 10}
	ballAt := func(x float64) core.Drawable {
		return core.Drawable{Kind: core.KindBall, X: x, W: 16, H: 16, Radius: 8}
	}

	tests := []struct {
		name  string
		ballX float64
		want  core.Action
	}{
		{"ball right", 300, core.ActionRight},
		{"ball left", 10, core.ActionLeft},
		{"ball centered", 132, core.ActionNone},
	}

	p := NewBreakoutPilot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := p.Next(drawOnly{ds: []core.Drawable{paddle, ballAt(tt.ballX)}})
			assert.Equal(t, tt.want == core.ActionRight, in.Has(core.ActionRight))
			assert.Equal(t, tt.want == core.ActionLeft, in.Has(core.ActionLeft))
		})
	}
}

func TestStackerPilotAlwaysDrops(t *testing.T) {
	p := NewStackerPilot(7)
	for range 100 {
		in := p.Next(nil)
		require.True(t, in.Has(core.ActionDrop))
		require.False(t, in.Has(core.ActionLeft) && in.Has(core.ActionRight))
	}
}

func TestRunnerStackerPlaysToTopOut(t *testing.T) {
	r := newRunner(t, "stacker", 42)
	m := &scheduler.Manual{MaxTicks: 100_000}

	require.NoError(t, m.Run(context.Background(), r))

	res := r.Result()
	assert.False(t, r.Active())
	assert.Equal(t, "stacker", res.GameID)
	assert.Equal(t, core.OutcomeLoss, res.Outcome)
	assert.Positive(t, res.Score)
	assert.Equal(t, m.Stats().Ticks, res.Ticks)
}

func TestRunnerBreakoutScores(t *testing.T) {
	r := newRunner(t, "breakout", 3)
	m := &scheduler.Manual{}

	n := m.Step(r, 600)
	require.Positive(t, n)
	assert.Positive(t, r.Result().Score, "the pilot returns the ball into the blocks")
}

func TestRunnerDeterminism(t *testing.T) {
	for _, id := range []string{"breakout", "stacker"} {
		t.Run(id, func(t *testing.T) {
			run := func() Result {
				r := newRunner(t, id, 99)
				(&scheduler.Manual{}).Step(r, 1500)
				return r.Result()
			}
			assert.Equal(t, run(), run())
		})
	}
}
