package breakout

import "github.com/vovakirdan/stackout/internal/core"

// Options configures a Session. All sizes are world units.
type Options struct {
	WorldW, WorldH float64
	Bottom         BottomRule

	PaddleW, PaddleH float64
	PaddleSpeed      float64
	PaddleOffset     float64 // distance from the paddle top to the floor
	ClampPaddle      bool

	BallRadius float64
	BallSpeed  float64

	Layout   *Layout
	Geometry FieldGeometry

	Colors core.ColorSource // block colors
}

// DefaultOptions returns the 640x480 world with the classic layout.
func DefaultOptions(seed int64) Options {
	layout, _ := LayoutByID("classic")
	return Options{
		WorldW:       640,
		WorldH:       480,
		PaddleW:      80,
		PaddleH:      10,
		PaddleSpeed:  8,
		PaddleOffset: 30,
		ClampPaddle:  true,
		BallRadius:   8,
		BallSpeed:    4,
		Layout:       layout,
		Geometry: FieldGeometry{
			BlockW: 30,
			BlockH: 14,
			Gap:    2,
			Top:    48,
			WorldW: 640,
			Points: 10,
		},
		Colors: core.NewRandomColors(seed),
	}
}

// Session owns one breakout game.
type Session struct {
	opts    Options
	world   World
	paddle  *Paddle
	ball    *Ball
	field   *BlockField
	score   int
	ticks   int
	outcome core.Outcome
	events  core.Events
}

// NewSession creates a session with a fresh paddle, ball and block field.
func NewSession(opts Options) *Session {
	if opts.Colors == nil {
		opts.Colors = core.NewPalette(core.ColorRed)
	}
	if opts.Layout == nil {
		opts.Layout, _ = LayoutByID("classic")
	}
	if opts.Geometry.WorldW == 0 {
		opts.Geometry.WorldW = opts.WorldW
	}

	s := &Session{
		opts:  opts,
		world: World{W: opts.WorldW, H: opts.WorldH, Bottom: opts.Bottom},
		field: NewBlockField(opts.Layout, opts.Geometry, opts.Colors),
	}
	s.place()
	return s
}

// place puts the paddle centered above the floor and the ball just above it.
func (s *Session) place() {
	o := s.opts
	s.paddle = NewPaddle((o.WorldW-o.PaddleW)/2, o.WorldH-o.PaddleOffset, o.PaddleW, o.PaddleH, o.PaddleSpeed)
	d := 2 * o.BallRadius
	s.ball = NewBall(o.WorldW/2-o.BallRadius, s.paddle.Y-d-1, o.BallRadius, o.BallSpeed)
}

// SetEvents registers score and lifecycle callbacks.
func (s *Session) SetEvents(e core.Events) { s.events = e }

// Restart returns to a fresh game on the same block field.
func (s *Session) Restart() {
	s.place()
	s.field.Enable()
	s.score = 0
	s.ticks = 0
	s.outcome = core.OutcomePlaying
}

// Tick moves the paddle, then the ball, and settles the outcome.
// It does nothing once the game is over.
func (s *Session) Tick() {
	if !s.Active() {
		return
	}
	s.ticks++

	s.paddle.Step(s.world.W, s.opts.ClampPaddle)

	ev := s.ball.Step(s.world, s.paddle, s.field)
	if ev.Lost {
		s.finish(core.OutcomeLoss)
		return
	}
	if ev.Block >= 0 && ev.Points != 0 {
		s.score += ev.Points
		s.events.EmitScore(ev.Points, s.score)
	}
	if s.field.Remaining() == 0 {
		s.finish(core.OutcomeWin)
	}
}

func (s *Session) finish(o core.Outcome) {
	s.outcome = o
	s.events.EmitEnd(o)
}

// MoveLeft starts moving the paddle left.
func (s *Session) MoveLeft() { s.paddle.MoveLeft() }

// MoveRight starts moving the paddle right.
func (s *Session) MoveRight() { s.paddle.MoveRight() }

// Stop halts the paddle.
func (s *Session) Stop() { s.paddle.Stop() }

// Active reports whether the game is still running.
func (s *Session) Active() bool { return s.outcome == core.OutcomePlaying }

// State returns the lifecycle state.
func (s *Session) State() core.Outcome { return s.outcome }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Ticks returns the number of ticks played.
func (s *Session) Ticks() int { return s.ticks }

// World returns the playfield bounds and floor rule.
func (s *Session) World() World { return s.world }

// Paddle returns the paddle.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Ball returns the ball.
func (s *Session) Ball() *Ball { return s.ball }

// Field returns the block field.
func (s *Session) Field() *BlockField { return s.field }

// Layout returns the layout the field was built from.
func (s *Session) Layout() *Layout { return s.opts.Layout }

// Draw returns the paddle, every block and the ball, in that order.
// Destroyed blocks are reported invisible.
func (s *Session) Draw() []core.Drawable {
	out := make([]core.Drawable, 0, s.field.Len()+2)

	p := s.paddle
	out = append(out, core.Drawable{
		Kind:    core.KindPaddle,
		X:       p.X,
		Y:       p.Y,
		W:       p.Width,
		H:       p.Height,
		Color:   p.Color,
		Visible: true,
	})

	for i := range s.field.Len() {
		b := s.field.Block(i)
		out = append(out, core.Drawable{
			Kind:    core.KindBlock,
			X:       b.X,
			Y:       b.Y,
			W:       b.W,
			H:       b.H,
			Color:   b.Color,
			Visible: !b.Destroyed,
		})
	}

	ball := s.ball
	out = append(out, core.Drawable{
		Kind:    core.KindBall,
		X:       ball.X,
		Y:       ball.Y,
		W:       ball.Size(),
		H:       ball.Size(),
		Radius:  ball.Radius,
		Color:   ball.Color,
		Visible: true,
	})
	return out
}
