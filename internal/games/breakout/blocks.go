package breakout

import "github.com/vovakirdan/stackout/internal/core"

// Block is one destructible rectangle.
type Block struct {
	X, Y, W, H float64
	Points     int
	Color      core.RGB
	Destroyed  bool
}

// Rect returns the block's box.
func (b Block) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// FieldGeometry places layout cells in the world.
type FieldGeometry struct {
	BlockW, BlockH float64
	Gap            float64 // space between neighbouring blocks
	Top            float64 // y of the first row
	WorldW         float64 // the layout is centered horizontally
	Points         int     // points for a plain block
}

// BlockField is a fixed population of blocks stored in row-major order.
// Restarting a game re-enables the same blocks instead of rebuilding them.
type BlockField struct {
	blocks    []Block
	remaining int
}

// NewBlockField builds one block per filled layout cell. Each block gets
// its color from colors once, at creation.
func NewBlockField(layout *Layout, geom FieldGeometry, colors core.ColorSource) *BlockField {
	stepX := geom.BlockW + geom.Gap
	stepY := geom.BlockH + geom.Gap
	totalW := float64(layout.Cols)*stepX - geom.Gap
	left := (geom.WorldW - totalW) / 2

	f := &BlockField{}
	for row := range layout.Rows {
		for col := range layout.Cols {
			weight := layout.Weight(col, row)
			if weight == 0 {
				continue
			}
			points := geom.Points
			if weight > 0 {
				points = weight * 10
			}
			f.blocks = append(f.blocks, Block{
				X:      left + float64(col)*stepX,
				Y:      geom.Top + float64(row)*stepY,
				W:      geom.BlockW,
				H:      geom.BlockH,
				Points: points,
				Color:  colors.Next(),
			})
		}
	}
	f.remaining = len(f.blocks)
	return f
}

// Enable restores every block. Positions and colors are kept.
func (f *BlockField) Enable() {
	for i := range f.blocks {
		f.blocks[i].Destroyed = false
	}
	f.remaining = len(f.blocks)
}

// Len returns the total number of blocks.
func (f *BlockField) Len() int { return len(f.blocks) }

// Remaining returns the number of blocks not yet destroyed.
func (f *BlockField) Remaining() int { return f.remaining }

// Block returns a copy of block i.
func (f *BlockField) Block(i int) Block { return f.blocks[i] }

// Hit destroys the first live block overlapping box, scanning in row-major
// order, and returns its index.
func (f *BlockField) Hit(box core.RectF) (int, bool) {
	for i := range f.blocks {
		b := &f.blocks[i]
		if b.Destroyed || !box.Intersects(b.Rect()) {
			continue
		}
		b.Destroyed = true
		f.remaining--
		return i, true
	}
	return -1, false
}

// Destroyed reports whether block i is gone.
func (f *BlockField) Destroyed(i int) bool { return f.blocks[i].Destroyed }
