// Package breakout implements a paddle-and-ball block breaker.
//
// The world is continuous: positions are float64 world units with the
// origin at the top-left. The session owns a paddle, a ball and a block
// field built from an ASCII layout; the registry adapter in game.go maps
// terminal input to paddle intents and projects the world onto a screen.
package breakout

import (
	"errors"
	"fmt"
)

// ErrUnknownLayout is returned when a layout id is not built in.
var ErrUnknownLayout = errors.New("breakout: unknown layout")

// Layout is a grid of block weights parsed from ASCII art.
type Layout struct {
	ID   string
	Name string
	Cols int
	Rows int

	weights [][]int // 0 empty, -1 plain block, 1-9 digit weight
}

// Weight returns the cell weight at (col, row): 0 for no block, -1 for a
// plain block and 1-9 for a block worth 10 times the digit.
func (l *Layout) Weight(col, row int) int {
	if row < 0 || row >= len(l.weights) || col < 0 || col >= len(l.weights[row]) {
		return 0
	}
	return l.weights[row][col]
}

// Blocks returns the number of filled cells.
func (l *Layout) Blocks() int {
	n := 0
	for _, row := range l.weights {
		for _, w := range row {
			if w != 0 {
				n++
			}
		}
	}
	return n
}

// ParseLayout creates a Layout from an ASCII map.
// Characters:
//
//	'#' = plain block (configured points)
//	'.' or ' ' = empty
//	'1'-'9' = block worth 10 * digit
//
// Short lines are padded with empty cells.
func ParseLayout(id, name string, lines []string) (*Layout, error) {
	cols := 0
	for _, line := range lines {
		cols = max(cols, len(line))
	}

	l := &Layout{
		ID:      id,
		Name:    name,
		Cols:    cols,
		Rows:    len(lines),
		weights: make([][]int, len(lines)),
	}

	for row, line := range lines {
		l.weights[row] = make([]int, cols)
		for col := range len(line) {
			switch ch := line[col]; {
			case ch == '#':
				l.weights[row][col] = -1
			case ch >= '1' && ch <= '9':
				l.weights[row][col] = int(ch - '0')
			case ch == '.' || ch == ' ':
			default:
				return nil, fmt.Errorf("breakout: layout %q row %d col %d: unexpected %q", id, row, col, ch)
			}
		}
	}

	if l.Blocks() == 0 {
		return nil, fmt.Errorf("breakout: layout %q has no blocks", id)
	}
	return l, nil
}

func mustParse(id, name string, lines []string) *Layout {
	l, err := ParseLayout(id, name, lines)
	if err != nil {
		panic(err)
	}
	return l
}

// BuiltinLayouts returns all built-in layouts.
func BuiltinLayouts() []*Layout {
	return []*Layout{
		mustParse("classic", "Classic", []string{
			"55555555555555555555",
			"44444444444444444444",
			"33333333333333333333",
			"22222222222222222222",
			"11111111111111111111",
		}),

		mustParse("pyramid", "Pyramid", []string{
			"........####........",
			"......########......",
			"....############....",
			"..################..",
			"####################",
		}),

		mustParse("checker", "Checkerboard", []string{
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
		}),

		mustParse("diamond", "Diamond", []string{
			".........99.........",
			"........#99#........",
			".......##99##.......",
			"......########......",
			".....##########.....",
			"......########......",
			".......######.......",
			"........####........",
			".........##.........",
		}),

		mustParse("striped", "Striped", []string{
			"####################",
			"....................",
			"####################",
			"....................",
			"####################",
			"....................",
			"####################",
		}),

		mustParse("invaders", "Invaders", []string{
			"..#..........#......",
			".###........###.....",
			"#####......#####....",
			"#.#.#......#.#.#....",
			"#####......#####....",
			"....................",
			"......#..........#..",
			".....###........###.",
			"....#####......#####",
			"....#.#.#......#.#.#",
			"....#####......#####",
		}),

		mustParse("heart", "Heart", []string{
			"...##....##.........",
			"..####..####........",
			".############.......",
			".############.......",
			"..##########........",
			"...########.........",
			"....######..........",
			".....####...........",
			"......##............",
		}),
	}
}

// LayoutByID returns a built-in layout by its id.
func LayoutByID(id string) (*Layout, error) {
	for _, l := range BuiltinLayouts() {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, id)
}

// LayoutIDs returns the ids of the built-in layouts in menu order.
func LayoutIDs() []string {
	layouts := BuiltinLayouts()
	ids := make([]string, len(layouts))
	for i, l := range layouts {
		ids[i] = l.ID
	}
	return ids
}
