// Package stacker implements a falling-block stacking puzzle.
//
// The simulation is split into shape geometry, a board grid, the falling
// piece and a session that ties them together. Nothing in the package
// depends on a terminal; the registry adapter in game.go renders draw
// descriptors into a core.Screen.
package stacker

import (
	"errors"
	"sync"
)

// CellKind marks a cell of a shape definition.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellFilled
	CellOrigin // filled, and the pivot rotations are computed around
)

// Cell is one filled cell of a shape, as an offset in the shape's frame.
type Cell struct {
	X, Y int
	Kind CellKind
}

// ShapeID identifies one of the canonical shapes.
type ShapeID int

const (
	ShapeS ShapeID = iota
	ShapeJ
	ShapeL
	ShapeZ
	ShapeI
	ShapeO
	ShapeT

	ShapeCount = 7
)

// String returns the conventional letter for the shape.
func (id ShapeID) String() string {
	if !id.Valid() {
		return "?"
	}
	return string("SJLZIOT"[id])
}

// Valid reports whether id names a canonical shape.
func (id ShapeID) Valid() bool {
	return id >= 0 && id < ShapeCount
}

// ErrUnknownShape is returned when a shape id has no definition.
var ErrUnknownShape = errors.New("stacker: unknown shape")

// Rotations holds the four rotation states of a shape, indexed 0-3.
// The slices are shared from the cache and must not be modified.
type Rotations [4][]Cell

// definitions are the canonical 4x4 patterns: 0 empty, 1 filled, 2 origin.
var definitions = [ShapeCount][4][4]CellKind{
	ShapeS: {
		{0, 0, 0, 0},
		{0, 2, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeJ: {
		{1, 0, 0, 0},
		{1, 2, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeL: {
		{0, 0, 1, 0},
		{1, 2, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeZ: {
		{1, 2, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeI: {
		{0, 0, 0, 0},
		{1, 1, 2, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeO: {
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeT: {
		{0, 1, 0, 0},
		{0, 2, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	},
}

type rotationEntry struct {
	once sync.Once
	rot  Rotations
}

var rotationCache [ShapeCount]rotationEntry

// RotationsOf returns the four rotation states of a shape, computing them
// on first use. It returns false for an unknown id.
func RotationsOf(id ShapeID) (Rotations, bool) {
	if !id.Valid() {
		return Rotations{}, false
	}
	e := &rotationCache[id]
	e.once.Do(func() {
		e.rot = buildRotations(definitions[id])
	})
	return e.rot, true
}

func buildRotations(def [4][4]CellKind) Rotations {
	var rot Rotations
	ox, oy, hasOrigin := 0, 0, false

	for y := range 4 {
		for x := range 4 {
			kind := def[y][x]
			if kind == CellEmpty {
				continue
			}
			if kind == CellOrigin {
				ox, oy, hasOrigin = x, y, true
			}
			rot[0] = append(rot[0], Cell{X: x, Y: y, Kind: kind})
		}
	}

	for r := 1; r < 4; r++ {
		if !hasOrigin {
			rot[r] = rot[0]
			continue
		}
		rot[r] = Rotate(rot[r-1], ox, oy)
	}
	return rot
}

// Rotate turns every cell 90 degrees around (ox, oy) in the y-down board frame.
// Flipping y into a y-up frame, applying x' = -y, y' = x and flipping back
// reduces to x' = ox + dy, y' = oy - dx for offsets (dx, dy) from the pivot.
func Rotate(cells []Cell, ox, oy int) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		dx, dy := c.X-ox, c.Y-oy
		out[i] = Cell{X: ox + dy, Y: oy - dx, Kind: c.Kind}
	}
	return out
}

// Origin returns the pivot cell of a shape definition, if it has one.
func Origin(id ShapeID) (x, y int, ok bool) {
	if !id.Valid() {
		return 0, 0, false
	}
	for cy := range 4 {
		for cx := range 4 {
			if definitions[id][cy][cx] == CellOrigin {
				return cx, cy, true
			}
		}
	}
	return 0, 0, false
}
