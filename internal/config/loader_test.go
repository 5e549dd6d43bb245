package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	st, err := LoadStacker("")
	require.NoError(t, err)
	assert.Equal(t, DefaultStackerConfig(), st, "embedded stacker.yaml")

	br, err := LoadBreakout("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBreakoutConfig(), br, "embedded breakout.yaml")
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stacker.yaml")
	data := []byte("board:\n  width: 10\ntiming:\n  fall_every: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadStacker(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 2, cfg.Timing.FallEvery)

	// Unnamed fields keep their defaults
	assert.Equal(t, 24, cfg.Board.Height)
	assert.Equal(t, 100, cfg.Scoring.PerLine)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadBreakout(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "missing custom config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("world: [1, 2"), 0o600))
	_, err = LoadBreakout(bad)
	assert.Error(t, err, "malformed custom config")
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	data := []byte("blocks:\n  layout: pyramid\nrules:\n  bottom_bounce: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "breakout.yaml"), data, 0o600))

	cfg, err := LoadBreakout("")
	require.NoError(t, err)
	assert.Equal(t, "pyramid", cfg.Blocks.Layout)
	assert.True(t, cfg.Rules.BottomBounce)
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultStackerConfig().Validate())
	require.NoError(t, DefaultBreakoutConfig().Validate())

	stacker := func(edit func(*StackerConfig)) error {
		c := DefaultStackerConfig()
		edit(&c)
		return c.Validate()
	}
	breakout := func(edit func(*BreakoutConfig)) error {
		c := DefaultBreakoutConfig()
		edit(&c)
		return c.Validate()
	}

	tests := []struct {
		name string
		err  error
	}{
		{"narrow board", stacker(func(c *StackerConfig) { c.Board.Width = 3 })},
		{"zero fall_every", stacker(func(c *StackerConfig) { c.Timing.FallEvery = 0 })},
		{"spawn inside the board", stacker(func(c *StackerConfig) { c.Board.SpawnRow = 2 })},
		{"paddle wider than world", breakout(func(c *BreakoutConfig) { c.Paddle.Width = 700 })},
		{"negative ball speed", breakout(func(c *BreakoutConfig) { c.Ball.Speed = -1 })},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, ErrInvalid)
		})
	}

	assert.NoError(t, stacker(func(c *StackerConfig) { c.Board.SpawnRow = 0 }), "spawning on the top row is allowed")
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in        string
		expected  DifficultyPreset
		fallEvery int
		paddleW   float64
	}{
		{"easy", DifficultyEasy, 6, 110},
		{"Normal", DifficultyNormal, 4, 80},
		{" hard ", DifficultyHard, 2, 56},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParsePreset(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.expected, p)

			st := DefaultStackerConfig()
			ApplyStackerPreset(&st, p)
			assert.Equal(t, tc.fallEvery, st.Timing.FallEvery)

			br := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&br, p)
			assert.Equal(t, tc.paddleW, br.Paddle.Width)
		})
	}

	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = ParsePreset("nightmare")
	assert.ErrorIs(t, err, ErrInvalid)
}
