package stacker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/stackout/internal/core"
)

var (
	red  = core.RGB{R: 200}
	blue = core.RGB{B: 200}
)

func fillRow(g *Grid, y int, c core.RGB) {
	for x := range g.Width() {
		g.Merge([]Cell{{}}, x, y, c)
	}
}

func TestCanPlaceAtHorizontalBounds(t *testing.T) {
	g := NewGrid(16, 24)
	cells := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 3, 5, true},
		{"left edge", 0, 5, true},
		{"past left edge", -1, 5, false},
		{"right edge", 14, 5, true},
		{"past right edge", 15, 5, false},
		{"above the board", 3, -10, true},
		{"above the board, past left edge", -1, -10, false},
		{"below the board", 3, 100, true},
		{"below the board, past right edge", 15, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.CanPlaceAt(cells, tc.x, tc.y))
		})
	}
}

func TestCanPlaceAtOccupied(t *testing.T) {
	g := NewGrid(16, 24)
	g.Merge([]Cell{{}}, 4, 10, red)

	assert.False(t, g.CanPlaceAt([]Cell{{X: 1, Y: 0}}, 3, 10))
	assert.True(t, g.CanPlaceAt([]Cell{{X: 1, Y: 0}}, 3, 9))
}

func TestWillCollideAt(t *testing.T) {
	g := NewGrid(16, 24)
	cells := []Cell{{X: 0, Y: 1}}

	assert.False(t, g.WillCollideAt(cells, 0, 22), "row 23 is the last valid row")
	assert.True(t, g.WillCollideAt(cells, 0, 23), "row 24 is past the floor")
	assert.True(t, g.WillCollideAt(cells, 0, 500))
	assert.False(t, g.WillCollideAt(cells, 0, -5), "cells above the board never collide")

	g.Merge([]Cell{{}}, 0, 12, red)
	assert.True(t, g.WillCollideAt(cells, 0, 11))
}

func TestMergeSkipsOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)
	g.Merge([]Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}, 1, -1, red)

	assert.Equal(t, 2, g.Filled())
	assert.True(t, g.Occupied(1, 0))
	assert.True(t, g.Occupied(1, 1))

	c, ok := g.CellAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, red, c)

	_, ok = g.CellAt(-1, 0)
	assert.False(t, ok)
	_, ok = g.CellAt(0, 4)
	assert.False(t, ok)
}

func TestClearFullRows(t *testing.T) {
	t.Run("single row shifts the row above down", func(t *testing.T) {
		g := NewGrid(16, 24)
		fillRow(g, 23, red)
		g.Merge([]Cell{{}}, 3, 22, blue)

		require.Equal(t, 1, g.ClearFullRows())

		assert.Equal(t, 1, g.Filled())
		c, ok := g.CellAt(3, 23)
		require.True(t, ok)
		assert.Equal(t, blue, c)
		assert.False(t, g.Occupied(3, 22))
	})

	t.Run("top row becomes empty", func(t *testing.T) {
		g := NewGrid(4, 4)
		fillRow(g, 0, red)

		require.Equal(t, 1, g.ClearFullRows())
		assert.Zero(t, g.Filled())
	})

	t.Run("stacked full rows", func(t *testing.T) {
		g := NewGrid(8, 10)
		fillRow(g, 9, red)
		fillRow(g, 8, red)
		g.Merge([]Cell{{}}, 5, 7, blue)

		require.Equal(t, 2, g.ClearFullRows())
		assert.Equal(t, 1, g.Filled())
		assert.True(t, g.Occupied(5, 9))
	})

	t.Run("separated full rows", func(t *testing.T) {
		g := NewGrid(8, 10)
		fillRow(g, 9, red)
		g.Merge([]Cell{{}}, 0, 8, blue)
		fillRow(g, 7, red)
		g.Merge([]Cell{{}}, 5, 6, blue)

		require.Equal(t, 2, g.ClearFullRows())
		assert.Equal(t, 2, g.Filled())
		assert.True(t, g.Occupied(0, 9), "column 0 survives the re-check")
		assert.True(t, g.Occupied(5, 8))
	})

	t.Run("no full rows", func(t *testing.T) {
		g := NewGrid(8, 10)
		g.Merge([]Cell{{}, {X: 1}}, 0, 9, red)

		assert.Zero(t, g.ClearFullRows())
		assert.Equal(t, 2, g.Filled())
	})
}

func TestGridReset(t *testing.T) {
	g := NewGrid(4, 4)
	fillRow(g, 2, red)
	g.Reset()

	assert.Zero(t, g.Filled())
	assert.False(t, g.RowFull(2))
}
