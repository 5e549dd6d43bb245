// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// StackerConfig contains all configuration for the Stacker game.
type StackerConfig struct {
	Board   StackerBoard   `yaml:"board"`
	Timing  StackerTiming  `yaml:"timing"`
	Scoring StackerScoring `yaml:"scoring"`
}

// StackerBoard defines the board geometry.
type StackerBoard struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	SpawnRow int `yaml:"spawn_row"`
	CellSize int `yaml:"cell_size"` // world pixels per cell
}

// StackerTiming defines tick pacing.
type StackerTiming struct {
	IntervalMS int `yaml:"interval_ms"`
	FallEvery  int `yaml:"fall_every"` // ticks per gravity step
}

// StackerScoring defines point awards.
type StackerScoring struct {
	Placement int `yaml:"placement"`
	PerLine   int `yaml:"per_line"`
}

// Validate reports impossible boards.
func (c StackerConfig) Validate() error {
	switch {
	case c.Board.Width < 4:
		return fmt.Errorf("%w: stacker board width %d is narrower than a piece", ErrInvalid, c.Board.Width)
	case c.Board.Height < 4:
		return fmt.Errorf("%w: stacker board height %d is shorter than a piece", ErrInvalid, c.Board.Height)
	case c.Board.SpawnRow > 0:
		return fmt.Errorf("%w: stacker spawn_row %d must be 0 or above the board", ErrInvalid, c.Board.SpawnRow)
	case c.Board.CellSize <= 0:
		return fmt.Errorf("%w: stacker cell size must be positive", ErrInvalid)
	case c.Timing.IntervalMS <= 0:
		return fmt.Errorf("%w: stacker interval must be positive", ErrInvalid)
	case c.Timing.FallEvery <= 0:
		return fmt.Errorf("%w: stacker fall_every must be positive", ErrInvalid)
	}
	return nil
}

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	World  BreakoutWorld  `yaml:"world"`
	Timing BreakoutTiming `yaml:"timing"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
	Blocks BreakoutBlocks `yaml:"blocks"`
	Rules  BreakoutRules  `yaml:"rules"`
}

// BreakoutWorld defines the playfield size in world units.
type BreakoutWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutTiming defines tick pacing.
type BreakoutTiming struct {
	IntervalMS int `yaml:"interval_ms"`
}

// BreakoutPaddle defines paddle geometry and movement.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // distance from the paddle top to the world bottom
	Clamp        bool    `yaml:"clamp"`
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// BreakoutBlocks defines the block field.
type BreakoutBlocks struct {
	Layout string  `yaml:"layout"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Gap    float64 `yaml:"gap"`
	Top    float64 `yaml:"top"`
	Points int     `yaml:"points"`
}

// BreakoutRules toggles rule variants.
type BreakoutRules struct {
	BottomBounce bool `yaml:"bottom_bounce"` // practice mode: the floor reflects
}

// Validate reports impossible worlds.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: breakout world must have positive size", ErrInvalid)
	case c.Timing.IntervalMS <= 0:
		return fmt.Errorf("%w: breakout interval must be positive", ErrInvalid)
	case c.Paddle.Width <= 0 || c.Paddle.Width > c.World.Width:
		return fmt.Errorf("%w: breakout paddle width %.0f does not fit world width %.0f",
			ErrInvalid, c.Paddle.Width, c.World.Width)
	case c.Paddle.BottomOffset >= c.World.Height:
		return fmt.Errorf("%w: breakout paddle sits above the world", ErrInvalid)
	case c.Ball.Radius <= 0 || c.Ball.Speed <= 0:
		return fmt.Errorf("%w: breakout ball needs positive radius and speed", ErrInvalid)
	case 4*c.Ball.Radius >= c.World.Width || 4*c.Ball.Radius >= c.World.Height:
		return fmt.Errorf("%w: breakout ball of radius %.0f does not fit the world", ErrInvalid, c.Ball.Radius)
	case c.Blocks.Width <= 0 || c.Blocks.Height <= 0:
		return fmt.Errorf("%w: breakout blocks need positive size", ErrInvalid)
	}
	return nil
}
