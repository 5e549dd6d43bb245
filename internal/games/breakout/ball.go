package breakout

import (
	"math"

	"github.com/vovakirdan/stackout/internal/core"
)

// BottomRule decides what happens when the ball reaches the floor.
type BottomRule int

const (
	BottomLoses   BottomRule = iota // the session is lost
	BottomBounces                   // practice: the floor reflects like a wall
)

// World is the playfield. Origin is top-left and y grows downward.
type World struct {
	W, H   float64
	Bottom BottomRule
}

// BallEvent reports what the ball touched during one step.
type BallEvent struct {
	Lost   bool // passed the floor under BottomLoses; nothing else was evaluated
	Wall   bool
	Paddle bool
	Block  int // index of the block destroyed this step, or -1
	Points int
}

// Ball is a circle tracked by the top-left corner of its bounding box.
// DX and DY scale Speed per axis; DX may be fractional after a paddle hit.
type Ball struct {
	X, Y   float64
	Radius float64
	DX, DY float64
	Speed  float64
	Color  core.RGB
}

// NewBall creates a ball at (x, y) heading up and to the right.
func NewBall(x, y, radius, speed float64) *Ball {
	return &Ball{
		X:      x,
		Y:      y,
		Radius: radius,
		DX:     1,
		DY:     -1,
		Speed:  speed,
		Color:  core.ColorWhite,
	}
}

// Size returns the side of the ball's bounding box.
func (b *Ball) Size() float64 { return 2 * b.Radius }

// Box returns the ball's bounding box.
func (b *Ball) Box() core.RectF {
	d := b.Size()
	return core.RectF{X: b.X, Y: b.Y, W: d, H: d}
}

// Step moves the ball and resolves collisions in order: floor, walls,
// paddle, blocks. The paddle takes priority over blocks, and at most one
// block is destroyed per step. A nil paddle or field is skipped.
func (b *Ball) Step(w World, p *Paddle, f *BlockField) BallEvent {
	ev := BallEvent{Block: -1}

	b.X += b.Speed * b.DX
	b.Y += b.Speed * b.DY

	d := b.Size()
	if b.Y+d > w.H && w.Bottom == BottomLoses {
		ev.Lost = true
		return ev
	}

	// Reflection points the velocity away from the crossed bound, so a ball
	// that is still outside on the next step is not flipped back out.
	switch {
	case b.X < 0:
		b.DX = math.Abs(b.DX)
		ev.Wall = true
	case b.X+d > w.W:
		b.DX = -math.Abs(b.DX)
		ev.Wall = true
	}
	switch {
	case b.Y < 0:
		b.DY = math.Abs(b.DY)
		ev.Wall = true
	case b.Y+d > w.H:
		b.DY = -math.Abs(b.DY)
		ev.Wall = true
	}

	box := b.Box()
	if p != nil && box.Intersects(p.Rect()) {
		b.DX = (b.X - p.X - p.Width/2) / p.Width
		b.DY = -math.Abs(b.DY)
		ev.Paddle = true
		return ev
	}

	if f != nil {
		if i, ok := f.Hit(box); ok {
			b.DY = -b.DY
			ev.Block = i
			ev.Points = f.Block(i).Points
		}
	}
	return ev
}
