package stacker

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/stackout/internal/core"
)

// ShapeSource picks the shape of each newly spawned piece.
type ShapeSource interface {
	NextShape() ShapeID
}

// RandomShapes picks shapes uniformly at random.
type RandomShapes struct {
	rng *rand.Rand
}

// NewRandomShapes creates a seeded shape source.
func NewRandomShapes(seed int64) *RandomShapes {
	//#nosec G115 -- seed bits are reinterpreted, not narrowed
	return &RandomShapes{rng: rand.New(rand.NewPCG(uint64(seed), 0x5851f42d4c957f2d))}
}

// NextShape returns a random canonical shape.
func (r *RandomShapes) NextShape() ShapeID {
	return ShapeID(r.rng.IntN(ShapeCount))
}

// SequenceShapes repeats a fixed list of shapes.
type SequenceShapes struct {
	ids  []ShapeID
	next int
}

// NewSequenceShapes creates a source that cycles through ids.
// An empty list always yields the I shape.
func NewSequenceShapes(ids ...ShapeID) *SequenceShapes {
	return &SequenceShapes{ids: ids}
}

// NextShape returns the next shape in the sequence.
func (s *SequenceShapes) NextShape() ShapeID {
	if len(s.ids) == 0 {
		return ShapeI
	}
	id := s.ids[s.next%len(s.ids)]
	s.next++
	return id
}

// Options configures a Session.
type Options struct {
	Width       int
	Height      int
	CellSize    int // world pixels per board cell in draw descriptors
	FallEvery   int
	SpawnRow    int // positive rows are clamped to 0
	PlacePoints int
	LinePoints  int

	Colors core.ColorSource
	Shapes ShapeSource
}

// DefaultOptions returns the classic 16x24 board with random shapes and colors.
func DefaultOptions(seed int64) Options {
	return Options{
		Width:       16,
		Height:      24,
		CellSize:    16,
		FallEvery:   DefaultFallEvery,
		SpawnRow:    -2,
		PlacePoints: 10,
		LinePoints:  100,
		Colors:      core.NewRandomColors(seed),
		Shapes:      NewRandomShapes(seed),
	}
}

// Session owns one stacker game: the board, the active piece and the score.
type Session struct {
	opts    Options
	grid    *Grid
	piece   *Piece
	score   int
	lines   int
	ticks   int
	outcome core.Outcome
	events  core.Events
	err     error
}

// NewSession creates a session and spawns the first piece.
func NewSession(opts Options) *Session {
	if opts.Colors == nil {
		opts.Colors = core.NewPalette(core.ColorWhite)
	}
	if opts.Shapes == nil {
		opts.Shapes = NewSequenceShapes()
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 16
	}
	// A piece must start at or above row 0 for a blocked spawn to top out.
	opts.SpawnRow = min(opts.SpawnRow, 0)
	s := &Session{
		opts: opts,
		grid: NewGrid(opts.Width, opts.Height),
	}
	s.spawn()
	return s
}

// SetEvents registers score and lifecycle callbacks.
func (s *Session) SetEvents(e core.Events) { s.events = e }

// Restart clears the board and score and spawns a fresh piece.
func (s *Session) Restart() {
	s.grid.Reset()
	s.score = 0
	s.lines = 0
	s.ticks = 0
	s.outcome = core.OutcomePlaying
	s.spawn()
}

// SpawnX returns the column new pieces start at.
func (s *Session) SpawnX() int {
	return (s.opts.Width - 4) / 2
}

func (s *Session) spawn() {
	id := s.opts.Shapes.NextShape()
	color := s.opts.Colors.Next()
	if !id.Valid() {
		s.err = fmt.Errorf("%w: source returned %d, spawned %s instead", ErrUnknownShape, id, ShapeI)
		id = ShapeI
	}
	p, err := NewPiece(id, s.SpawnX(), s.opts.SpawnRow, color)
	if err != nil {
		panic(err) // id was checked above
	}
	if s.opts.FallEvery > 0 {
		p.FallEvery = s.opts.FallEvery
	}
	s.piece = p
}

// Err returns the last shape source error, if a spawn had to fall back.
func (s *Session) Err() error { return s.err }

// Tick advances the game by one step. It does nothing once the game is over.
func (s *Session) Tick() {
	if !s.Active() {
		return
	}

	i := s.ticks
	s.ticks++

	switch s.piece.Step(i, s.grid) {
	case PieceToppedOut:
		s.finish(core.OutcomeLoss)
	case PieceLanded:
		s.land()
	}
}

func (s *Session) land() {
	p := s.piece
	s.award(s.opts.PlacePoints)
	s.grid.Merge(p.Cells(), p.X, p.Y, p.Color)
	p.Destroy()

	n := s.grid.ClearFullRows()
	if n > 0 {
		s.lines += n
		s.events.EmitLines(n)
		s.award(s.opts.LinePoints * n)
	}
	s.spawn()
}

func (s *Session) award(points int) {
	if points == 0 {
		return
	}
	s.score += points
	s.events.EmitScore(points, s.score)
}

func (s *Session) finish(o core.Outcome) {
	s.outcome = o
	s.events.EmitEnd(o)
}

// MoveLeft sets the active piece moving left.
func (s *Session) MoveLeft() { s.piece.MoveLeft() }

// MoveRight sets the active piece moving right.
func (s *Session) MoveRight() { s.piece.MoveRight() }

// Stop clears the active piece's movement and fast-fall.
func (s *Session) Stop() { s.piece.Stop() }

// Fall turns on fast-fall for the active piece.
func (s *Session) Fall() { s.piece.Fall() }

// Rotate turns the active piece if it fits.
func (s *Session) Rotate() bool {
	if !s.Active() {
		return false
	}
	return s.piece.Rotate(s.grid)
}

// Active reports whether the game is still running.
func (s *Session) Active() bool { return s.outcome == core.OutcomePlaying }

// State returns the lifecycle state.
func (s *Session) State() core.Outcome { return s.outcome }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lines returns the number of rows cleared so far.
func (s *Session) Lines() int { return s.lines }

// Ticks returns the number of ticks played.
func (s *Session) Ticks() int { return s.ticks }

// Grid returns the board.
func (s *Session) Grid() *Grid { return s.grid }

// Piece returns the active piece.
func (s *Session) Piece() *Piece { return s.piece }

// CellSize returns the world size of one board cell.
func (s *Session) CellSize() int { return s.opts.CellSize }

// Draw returns one descriptor per settled cell followed by one per cell of
// the active piece, in world pixels. Piece cells above the board are hidden.
func (s *Session) Draw() []core.Drawable {
	size := float64(s.opts.CellSize)
	out := make([]core.Drawable, 0, s.grid.Filled()+4)

	for y := range s.grid.Height() {
		for x := range s.grid.Width() {
			c, ok := s.grid.CellAt(x, y)
			if !ok {
				continue
			}
			out = append(out, core.Drawable{
				Kind:    core.KindCell,
				X:       float64(x) * size,
				Y:       float64(y) * size,
				W:       size,
				H:       size,
				Color:   c,
				Visible: true,
			})
		}
	}

	p := s.piece
	for _, c := range p.Cells() {
		ax, ay := p.X+c.X, p.Y+c.Y
		out = append(out, core.Drawable{
			Kind:    core.KindPiece,
			X:       float64(ax) * size,
			Y:       float64(ay) * size,
			W:       size,
			H:       size,
			Color:   p.Color,
			Visible: ay >= 0,
		})
	}
	return out
}
