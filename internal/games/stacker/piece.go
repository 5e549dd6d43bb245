package stacker

import (
	"fmt"

	"github.com/vovakirdan/stackout/internal/core"
)

// Direction is the horizontal movement intent of a piece.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// StepOutcome reports what a piece did during one tick.
type StepOutcome int

const (
	PieceFalling   StepOutcome = iota // still in flight
	PieceLanded                       // touched the floor or stack below the spawn row
	PieceToppedOut                    // blocked before ever moving below the top
	PieceIdle                         // destroyed pieces do nothing
)

// DefaultFallEvery is the number of ticks between gravity steps.
const DefaultFallEvery = 4

// Piece is the falling shape controlled by the player.
type Piece struct {
	Shape     ShapeID
	X, Y      int
	Rotation  int
	Direction Direction
	FastFall  bool
	Destroyed bool
	Color     core.RGB
	Speed     int // columns per horizontal step
	FallEvery int // ticks per gravity step when not fast-falling

	rotations Rotations
}

// NewPiece creates a piece of the given shape at (x, y).
func NewPiece(id ShapeID, x, y int, color core.RGB) (*Piece, error) {
	rot, ok := RotationsOf(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, id)
	}
	return &Piece{
		Shape:     id,
		X:         x,
		Y:         y,
		Color:     color,
		Speed:     1,
		FallEvery: DefaultFallEvery,
		rotations: rot,
	}, nil
}

// Cells returns the cell offsets for the current rotation.
// A destroyed piece has no cells.
func (p *Piece) Cells() []Cell {
	if p.Destroyed {
		return nil
	}
	return p.rotations[p.Rotation]
}

// CellsFor returns the cell offsets for an arbitrary rotation state.
func (p *Piece) CellsFor(rotation int) []Cell {
	return p.rotations[((rotation%4)+4)%4]
}

// MoveLeft sets the horizontal intent to left.
func (p *Piece) MoveLeft() { p.Direction = DirLeft }

// MoveRight sets the horizontal intent to right.
func (p *Piece) MoveRight() { p.Direction = DirRight }

// Fall turns on fast-fall.
func (p *Piece) Fall() { p.FastFall = true }

// Stop clears both the horizontal intent and fast-fall.
func (p *Piece) Stop() {
	p.Direction = DirNone
	p.FastFall = false
}

// Destroy retires the piece. It reports no cells afterwards.
func (p *Piece) Destroy() { p.Destroyed = true }

// Rotate advances to the next rotation state if the rotated cells fit at
// the current position. It reports whether the rotation happened.
func (p *Piece) Rotate(g *Grid) bool {
	if p.Destroyed {
		return false
	}
	next := (p.Rotation + 1) % 4
	if !g.CanPlaceAt(p.CellsFor(next), p.X, p.Y) {
		return false
	}
	p.Rotation = next
	return true
}

// Step advances the piece by one tick with tick index i.
// Landing is reported but not applied; the session merges the piece.
func (p *Piece) Step(i int, g *Grid) StepOutcome {
	if p.Destroyed {
		return PieceIdle
	}

	cells := p.Cells()
	y := p.Y
	if p.FastFall || p.FallEvery <= 0 || i%p.FallEvery == 0 {
		y++
	}

	x := p.X
	switch p.Direction {
	case DirLeft:
		x -= p.Speed
	case DirRight:
		x += p.Speed
	}
	if x != p.X && g.CanPlaceAt(cells, x, p.Y) {
		p.X = x
	}

	if g.WillCollideAt(cells, p.X, y) {
		if p.Y <= 0 {
			return PieceToppedOut
		}
		return PieceLanded
	}

	p.Y = y
	return PieceFalling
}
