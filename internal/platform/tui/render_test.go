package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/stackout/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	assert.Equal(t, "ab  \n cd ", RenderScreen(s))
}

func TestRenderScreenColorRuns(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	s := core.NewScreen(5, 1)
	s.SetColored(0, 0, '#', core.ColorRed)
	s.SetColored(1, 0, '#', core.ColorRed)
	s.SetColored(2, 0, '#', core.ColorGreen)
	s.Set(3, 0, 'x')

	got := RenderScreen(s)
	assert.Contains(t, got, "##", "equal colors share one run")
	// Red and green runs each open one escape sequence.
	assert.Equal(t, 2, strings.Count(got, "\x1b[38;2;"), "%q", got)
	assert.True(t, strings.HasSuffix(got, "x "), "uncolored tail was styled: %q", got)
}
