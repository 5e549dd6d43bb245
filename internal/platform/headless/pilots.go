package headless

import (
	"math/rand/v2"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/registry"
)

// BreakoutPilot keeps the paddle under the ball.
type BreakoutPilot struct {
	// Deadzone is how far the ball center may drift from the paddle center
	// before the paddle moves, in world units.
	Deadzone float64
}

// NewBreakoutPilot creates a breakout autopilot.
func NewBreakoutPilot() *BreakoutPilot {
	return &BreakoutPilot{Deadzone: 6}
}

// Next tracks the ball descriptor. Games that expose no descriptors get no input.
func (p *BreakoutPilot) Next(g registry.Game) core.InputFrame {
	d, ok := g.(registry.Drawer)
	if !ok {
		return core.NewInputFrame()
	}

	var ball, paddle *core.Drawable
	ds := d.Draw()
	for i := range ds {
		switch ds[i].Kind {
		case core.KindBall:
			ball = &ds[i]
		case core.KindPaddle:
			paddle = &ds[i]
		}
	}
	if ball == nil || paddle == nil {
		return core.NewInputFrame()
	}

	offset := ball.Bounds().CenterX() - paddle.Bounds().CenterX()
	switch {
	case offset > p.Deadzone:
		return core.FrameOf(core.ActionRight)
	case offset < -p.Deadzone:
		return core.FrameOf(core.ActionLeft)
	}
	return core.NewInputFrame()
}

// StackerPilot drifts and rotates pieces at random and always soft-drops.
type StackerPilot struct {
	rng *rand.Rand
}

// NewStackerPilot creates a seeded stacker autopilot.
func NewStackerPilot(seed int64) *StackerPilot {
	//#nosec G115 -- seed bits are reinterpreted, not narrowed
	return &StackerPilot{rng: rand.New(rand.NewPCG(uint64(seed), 0xda3e39cb94b95bdb))}
}

// Next picks one of: nothing, left, right or rotate, plus a drop.
func (p *StackerPilot) Next(registry.Game) core.InputFrame {
	in := core.FrameOf(core.ActionDrop)
	switch p.rng.IntN(8) {
	case 0, 1:
		in.Set(core.ActionLeft)
	case 2, 3:
		in.Set(core.ActionRight)
	case 4:
		in.Set(core.ActionRotate)
	}
	return in
}
