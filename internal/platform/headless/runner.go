// Package headless runs registered games without a terminal, driven by an
// Autopilot instead of a player. It backs the sim command and soak tests.
package headless

import (
	"fmt"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/registry"
	"github.com/vovakirdan/stackout/internal/scheduler"
)

// Screen size handed to games, large enough for every game's minimum.
const (
	ScreenW = 120
	ScreenH = 40
)

// Autopilot produces the input for the next tick from the game's current state.
type Autopilot interface {
	Next(g registry.Game) core.InputFrame
}

// Result summarizes a finished or interrupted run.
type Result struct {
	GameID  string
	Score   int
	Outcome core.Outcome
	Ticks   int
}

// Runner adapts a game and an autopilot into a scheduler.Session.
type Runner struct {
	game  registry.Game
	pilot Autopilot
	state core.GameState
}

var _ scheduler.Session = (*Runner)(nil)

// NewRunner resets g with the given seed and returns a runner ready to tick.
func NewRunner(g registry.Game, pilot Autopilot, seed int64) *Runner {
	g.Reset(core.RuntimeConfig{ScreenW: ScreenW, ScreenH: ScreenH, TickRate: 60, Seed: seed})
	return &Runner{game: g, pilot: pilot, state: g.State()}
}

// Tick asks the autopilot for input and steps the game once.
func (r *Runner) Tick() {
	r.state = r.game.Step(r.pilot.Next(r.game)).State
}

// Active reports whether the game is still being played.
func (r *Runner) Active() bool {
	return !r.state.GameOver
}

// Game returns the driven game.
func (r *Runner) Game() registry.Game { return r.game }

// Result returns the current score, outcome and tick count.
func (r *Runner) Result() Result {
	return Result{
		GameID:  r.game.ID(),
		Score:   r.state.Score,
		Outcome: r.state.Outcome,
		Ticks:   r.state.Ticks,
	}
}

// PilotFor returns the built-in autopilot for a game.
func PilotFor(gameID string, seed int64) (Autopilot, error) {
	switch gameID {
	case "breakout":
		return NewBreakoutPilot(), nil
	case "stacker":
		return NewStackerPilot(seed), nil
	}
	return nil, fmt.Errorf("headless: no autopilot for %q", gameID)
}
