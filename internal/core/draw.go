package core

// EntityKind tags a draw descriptor.
type EntityKind int

const (
	KindPaddle EntityKind = iota // breakout player paddle
	KindBlock                    // breakout block
	KindBall                     // breakout ball
	KindCell                     // settled stacker cell
	KindPiece                    // cell of the falling stacker piece
)

// String returns a short name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPaddle:
		return "player"
	case KindBlock:
		return "block"
	case KindBall:
		return "ball"
	case KindCell:
		return "puzzle-cell"
	case KindPiece:
		return "active-piece"
	default:
		return "unknown"
	}
}

// Drawable is a render-agnostic snapshot of one entity for one frame.
// Coordinates are in the game's world units. Radius is only set for balls.
type Drawable struct {
	Kind    EntityKind
	X, Y    float64
	W, H    float64
	Radius  float64
	Color   RGB
	Visible bool
}

// Bounds returns the descriptor's box.
func (d Drawable) Bounds() RectF {
	return RectF{X: d.X, Y: d.Y, W: d.W, H: d.H}
}

// Viewport projects world units onto screen cells.
type Viewport struct {
	OriginX, OriginY int     // Screen cell of world (0, 0)
	ScaleX, ScaleY   float64 // Cells per world unit
}

// Project converts a world box to the screen cells it covers.
// Every visible box covers at least one cell.
func (v Viewport) Project(r RectF) Rect {
	x0 := v.OriginX + int(r.X*v.ScaleX)
	y0 := v.OriginY + int(r.Y*v.ScaleY)
	x1 := v.OriginX + int((r.X+r.W)*v.ScaleX)
	y1 := v.OriginY + int((r.Y+r.H)*v.ScaleY)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Paint fills the projected area of d with glyph in d's color.
// Invisible descriptors are skipped.
func (v Viewport) Paint(dst *Screen, d Drawable, glyph rune) {
	if !d.Visible {
		return
	}
	dst.FillRect(v.Project(d.Bounds()), glyph, d.Color)
}
