package breakout

import "github.com/vovakirdan/stackout/internal/core"

// Intent is the paddle's movement request for the next tick.
type Intent int

const (
	IntentStopped Intent = iota
	IntentLeft
	IntentRight
)

// Paddle is the player-controlled rectangle. It only moves horizontally.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // world units per tick
	Intent        Intent
	Color         core.RGB
}

// NewPaddle creates a stopped paddle with its top-left corner at (x, y).
func NewPaddle(x, y, width, height, speed float64) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Speed:  speed,
		Color:  core.ColorGray,
	}
}

// MoveLeft sets the intent to left.
func (p *Paddle) MoveLeft() { p.Intent = IntentLeft }

// MoveRight sets the intent to right.
func (p *Paddle) MoveRight() { p.Intent = IntentRight }

// Stop clears the intent.
func (p *Paddle) Stop() { p.Intent = IntentStopped }

// Step applies one tick of movement. With clamp set the paddle stays
// within [0, worldW-Width].
func (p *Paddle) Step(worldW float64, clamp bool) {
	switch p.Intent {
	case IntentLeft:
		p.X -= p.Speed
	case IntentRight:
		p.X += p.Speed
	}
	if clamp {
		p.X = core.ClampF(p.X, 0, max(worldW-p.Width, 0))
	}
}

// Rect returns the paddle's box.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
