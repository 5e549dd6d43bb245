package config

import (
	_ "embed"
)

//go:embed defaults/stacker.yaml
var defaultStackerYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultStackerConfig returns the default Stacker configuration.
func DefaultStackerConfig() StackerConfig {
	return StackerConfig{
		Board: StackerBoard{
			Width:    16,
			Height:   24,
			SpawnRow: -2,
			CellSize: 16,
		},
		Timing: StackerTiming{
			IntervalMS: 100,
			FallEvery:  4,
		},
		Scoring: StackerScoring{
			Placement: 10,
			PerLine:   100,
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: BreakoutWorld{
			Width:  640,
			Height: 480,
		},
		Timing: BreakoutTiming{
			IntervalMS: 40,
		},
		Paddle: BreakoutPaddle{
			Width:        80,
			Height:       10,
			Speed:        8,
			BottomOffset: 30,
			Clamp:        true,
		},
		Ball: BreakoutBall{
			Radius: 8,
			Speed:  4,
		},
		Blocks: BreakoutBlocks{
			Layout: "classic",
			Width:  30,
			Height: 14,
			Gap:    2,
			Top:    48,
			Points: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "stacker":
		return defaultStackerYAML
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
