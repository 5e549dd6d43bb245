package breakout

import "math"

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      int
	Score     int
	Outcome   string
	PaddleX   float64
	BallX     float64
	BallY     float64
	BallDX    float64
	BallDY    float64
	Remaining int

	// Block states in row-major order, 1 = alive
	BlockData []int
}

// Snapshot returns the current game state.
func (s *Session) Snapshot() Snapshot {
	blocks := make([]int, s.field.Len())
	for i := range blocks {
		if !s.field.Destroyed(i) {
			blocks[i] = 1
		}
	}

	return Snapshot{
		Tick:      s.ticks,
		Score:     s.score,
		Outcome:   s.outcome.String(),
		PaddleX:   s.paddle.X,
		BallX:     s.ball.X,
		BallY:     s.ball.Y,
		BallDX:    s.ball.DX,
		BallDY:    s.ball.DY,
		Remaining: s.field.Remaining(),
		BlockData: blocks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)

	for _, r := range snap.Outcome {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
