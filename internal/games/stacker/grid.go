package stacker

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/stackout/internal/core"
)

// Grid is the stacker board. It records which cells hold settled blocks
// and in what color. Origin is top-left and y grows downward.
type Grid struct {
	width  int
	height int
	cells  *intmap.Map[int, core.RGB]
}

// NewGrid creates an empty board.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  intmap.New[int, core.RGB](width * height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int { return g.cells.Len() }

// Reset empties the board.
func (g *Grid) Reset() {
	g.cells = intmap.New[int, core.RGB](g.width * g.height)
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) key(x, y int) int {
	return y*g.width + x
}

// CellAt returns the color stored at (x, y). Out-of-range and empty
// cells report false.
func (g *Grid) CellAt(x, y int) (core.RGB, bool) {
	if !g.inside(x, y) {
		return core.RGB{}, false
	}
	return g.cells.Get(g.key(x, y))
}

// Occupied reports whether (x, y) holds a settled block.
func (g *Grid) Occupied(x, y int) bool {
	_, ok := g.CellAt(x, y)
	return ok
}

func (g *Grid) set(x, y int, c core.RGB) {
	g.cells.Put(g.key(x, y), c)
}

func (g *Grid) clear(x, y int) {
	g.cells.Del(g.key(x, y))
}

// CanPlaceAt reports whether cells can sit at (x, y) horizontally: every
// column must be on the board and no cell may overlap the stack.
// Vertical bounds are left to WillCollideAt.
func (g *Grid) CanPlaceAt(cells []Cell, x, y int) bool {
	for _, c := range cells {
		ax, ay := x+c.X, y+c.Y
		if ax < 0 || ax >= g.width {
			return false
		}
		if g.Occupied(ax, ay) {
			return false
		}
	}
	return true
}

// WillCollideAt reports whether cells at (x, y) would reach the floor or
// overlap the stack.
func (g *Grid) WillCollideAt(cells []Cell, x, y int) bool {
	for _, c := range cells {
		ax, ay := x+c.X, y+c.Y
		if ay >= g.height {
			return true
		}
		if g.Occupied(ax, ay) {
			return true
		}
	}
	return false
}

// Merge writes color into every board cell covered by cells at (x, y).
// Cells above the top edge are dropped.
func (g *Grid) Merge(cells []Cell, x, y int, color core.RGB) {
	for _, c := range cells {
		ax, ay := x+c.X, y+c.Y
		if !g.inside(ax, ay) {
			continue
		}
		g.set(ax, ay, color)
	}
}

// RowFull reports whether every column of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	for x := range g.width {
		if !g.Occupied(x, y) {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down,
// and returns how many rows were removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := g.height - 1; y >= 0; {
		if !g.RowFull(y) {
			y--
			continue
		}
		g.collapse(y)
		cleared++
		// Row y now holds what was above it; check it again.
	}
	return cleared
}

// collapse copies each row above row into the row below it and leaves
// an empty row at the top.
func (g *Grid) collapse(row int) {
	for y := row; y > 0; y-- {
		for x := range g.width {
			if c, ok := g.CellAt(x, y-1); ok {
				g.set(x, y, c)
			} else {
				g.clear(x, y)
			}
		}
	}
	for x := range g.width {
		g.clear(x, 0)
	}
}
