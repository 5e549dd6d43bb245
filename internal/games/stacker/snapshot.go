package stacker

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      int
	Score     int
	Lines     int
	Outcome   string
	Shape     int
	PieceX    int
	PieceY    int
	Rotation  int
	Width     int
	Height    int
	BoardData []int // row-major, 0 empty, otherwise packed 0xRRGGBB + 1
}

// Snapshot returns the current game state.
func (s *Session) Snapshot() Snapshot {
	w, h := s.grid.Width(), s.grid.Height()
	board := make([]int, w*h)
	for y := range h {
		for x := range w {
			if c, ok := s.grid.CellAt(x, y); ok {
				board[y*w+x] = (int(c.R)<<16 | int(c.G)<<8 | int(c.B)) + 1
			}
		}
	}

	p := s.piece
	return Snapshot{
		Tick:      s.ticks,
		Score:     s.score,
		Lines:     s.lines,
		Outcome:   s.outcome.String(),
		Shape:     int(p.Shape),
		PieceX:    p.X,
		PieceY:    p.Y,
		Rotation:  p.Rotation,
		Width:     w,
		Height:    h,
		BoardData: board,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shape)          //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.PieceX))  //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.PieceY))  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rotation)       //#nosec G115 -- hash computation
	for _, r := range snap.Outcome {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BoardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
