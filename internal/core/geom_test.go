package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "reversed")
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(29, 24))
	// Right and bottom edges are exclusive
	assert.False(t, r.Contains(30, 25))
	assert.False(t, r.Contains(9, 15))
}

func TestRectFIntersects(t *testing.T) {
	ball := RectF{X: 350, Y: 380, W: 16, H: 16}

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"paddle below, overlapping", RectF{X: 340, Y: 390, W: 80, H: 10}, true},
		{"paddle exactly at ball bottom", RectF{X: 340, Y: 396, W: 80, H: 10}, false},
		{"block to the right edge", RectF{X: 366, Y: 380, W: 30, H: 14}, false},
		{"block overlapping by a fraction", RectF{X: 365.5, Y: 370, W: 30, H: 14}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ball.Intersects(tc.other))
		})
	}
}

func TestViewportProject(t *testing.T) {
	v := Viewport{OriginX: 1, OriginY: 2, ScaleX: 0.125, ScaleY: 0.0625}

	assert.Equal(t, Rect{X: 3, Y: 4, W: 2, H: 1}, v.Project(RectF{X: 16, Y: 32, W: 16, H: 16}))

	tiny := v.Project(RectF{X: 0, Y: 0, W: 1, H: 1})
	assert.Equal(t, 1, tiny.W, "tiny boxes still cover a cell")
	assert.Equal(t, 1, tiny.H)
}

func TestViewportPaintSkipsInvisible(t *testing.T) {
	s := NewScreen(10, 10)
	v := Viewport{ScaleX: 1, ScaleY: 1}

	v.Paint(s, Drawable{Kind: KindBlock, X: 1, Y: 1, W: 2, H: 1, Color: ColorRed}, '#')
	assert.Equal(t, ' ', s.Get(1, 1), "invisible drawable painted")

	v.Paint(s, Drawable{Kind: KindBlock, X: 1, Y: 1, W: 2, H: 1, Color: ColorRed, Visible: true}, '#')
	assert.Equal(t, " ##       ", s.Row(1))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.lo, tc.hi), "Clamp(%d, %d, %d)", tc.val, tc.lo, tc.hi)
	}

	assert.Equal(t, 0.0, ClampF(-5.5, 0, 560))
	assert.Equal(t, 560.0, ClampF(600, 0, 560))
}

func TestPaletteCycles(t *testing.T) {
	p := NewPalette(ColorRed, ColorGreen)

	assert.Equal(t, []RGB{ColorRed, ColorGreen, ColorRed}, []RGB{p.Next(), p.Next(), p.Next()})
	assert.Equal(t, ColorWhite, NewPalette().Next(), "empty palette")
}

func TestRandomColorsDeterministic(t *testing.T) {
	a, b := NewRandomColors(42), NewRandomColors(42)
	for range 10 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#ff0800", RGB{R: 255, G: 8, B: 0}.Hex())
}

func TestOutcome(t *testing.T) {
	assert.False(t, OutcomePlaying.Terminal())
	assert.True(t, OutcomeWin.Terminal())
	assert.True(t, OutcomeLoss.Terminal())
	assert.Equal(t, "loss", OutcomeLoss.String())
	assert.Equal(t, "win", OutcomeWin.String())

	var e Events
	assert.NotPanics(t, func() {
		e.EmitScore(10, 10)
		e.EmitLines(1)
		e.EmitEnd(OutcomeLoss)
	}, "nil hooks")
}
