package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in increasing difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value into a preset. The empty string
// means "keep the file's values" and returns an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// ApplyStackerPreset adjusts gravity for a preset. Unknown or empty presets
// leave the config untouched.
func ApplyStackerPreset(cfg *StackerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.FallEvery = 6
	case DifficultyNormal:
		cfg.Timing.FallEvery = 4
	case DifficultyHard:
		cfg.Timing.FallEvery = 2
	}
}

// ApplyBreakoutPreset adjusts paddle width and ball speed for a preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 110
		cfg.Ball.Speed = 3
	case DifficultyNormal:
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 4
	case DifficultyHard:
		cfg.Paddle.Width = 56
		cfg.Ball.Speed = 6
	}
}
