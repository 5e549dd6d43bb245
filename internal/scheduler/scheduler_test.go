package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/games/stacker"
)

type countdown struct {
	left  int
	ticks int
}

func (c *countdown) Tick() {
	c.ticks++
	c.left--
}

func (c *countdown) Active() bool { return c.left > 0 }

func TestTickerStopsWhenInactive(t *testing.T) {
	s := &countdown{left: 5}
	frames := 0

	tk := NewTicker(time.Millisecond, nil)
	tk.OnFrame = func() { frames++ }

	require.NoError(t, tk.Run(context.Background(), s))
	assert.Equal(t, 5, s.ticks)
	assert.Equal(t, 5, frames, "one frame per tick")
	assert.Equal(t, 5, tk.Stats().Ticks)
}

func TestTickerCancel(t *testing.T) {
	s := &countdown{left: 1 << 30}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewTicker(time.Millisecond, nil).Run(ctx, s)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, s.ticks)
}

func TestTickerRejectsZeroInterval(t *testing.T) {
	assert.Error(t, NewTicker(0, nil).Run(context.Background(), &countdown{left: 1}))
}

func TestTickerInactiveSessionNeverTicks(t *testing.T) {
	s := &countdown{}
	require.NoError(t, NewTicker(time.Hour, nil).Run(context.Background(), s))
	assert.Zero(t, s.ticks)
}

func TestManual(t *testing.T) {
	t.Run("runs to completion", func(t *testing.T) {
		s := &countdown{left: 100}
		m := &Manual{}
		require.NoError(t, m.Run(context.Background(), s))
		assert.Equal(t, 100, m.Stats().Ticks)
		assert.Zero(t, m.Stats().Overruns)
	})

	t.Run("tick limit", func(t *testing.T) {
		s := &countdown{left: 100}
		m := &Manual{MaxTicks: 10}
		assert.ErrorIs(t, m.Run(context.Background(), s), ErrTickLimit)
		assert.Equal(t, 10, s.ticks)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := &countdown{left: 100}
		assert.ErrorIs(t, (&Manual{}).Run(ctx, s), context.Canceled)
		assert.Zero(t, s.ticks)
	})

	t.Run("step", func(t *testing.T) {
		s := &countdown{left: 3}
		m := &Manual{}
		assert.Equal(t, 2, m.Step(s, 2))
		assert.Equal(t, 1, m.Step(s, 5), "stops once the session ends")
	})
}

func TestManualDrivesStackerToTopOut(t *testing.T) {
	opts := stacker.DefaultOptions(3)
	opts.Colors = core.NewPalette(core.ColorRed)
	s := stacker.NewSession(opts)

	m := &Manual{MaxTicks: 100_000}
	require.NoError(t, m.Run(context.Background(), s))

	assert.Equal(t, core.OutcomeLoss, s.State())
	assert.Equal(t, s.Ticks(), m.Stats().Ticks)
	assert.Positive(t, s.Score())
}
