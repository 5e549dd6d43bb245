package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stackout/internal/core"
)

var plainStyle = lipgloss.NewStyle()

// styleFor returns the foreground style for a cell. Styles are built per run,
// since entity colors are arbitrary 24-bit values.
func styleFor(c core.Cell) lipgloss.Style {
	if !c.Colored {
		return plainStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color.Hex()))
}

func sameColor(a, b core.Cell) bool {
	return a.Colored == b.Colored && (!a.Colored || a.Color == b.Color)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameColor(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
