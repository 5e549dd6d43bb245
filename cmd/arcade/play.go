package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/games/breakout"
	"github.com/vovakirdan/stackout/internal/games/stacker"
	"github.com/vovakirdan/stackout/internal/platform/tui"
	"github.com/vovakirdan/stackout/internal/registry"
	"github.com/vovakirdan/stackout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagPractice   bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Up/W/K      - Rotate (stacker)
  Down/S/J    - Soft drop while held (stacker)
  P           - Pause
  R           - Restart (after game over)
  B/Esc       - Back
  Ctrl+S      - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy    - slower falling pieces, wider paddle and slower ball
  normal  - the defaults
  hard    - faster falling pieces, narrow paddle and fast ball

Breakout shows a layout picker unless --layout is given.
--practice makes the breakout ball bounce off the floor instead of losing.

Examples:
  arcade play stacker
  arcade play stacker --difficulty hard
  arcade play breakout --layout invaders
  arcade play breakout --practice
  arcade play breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Breakout block layout (see 'arcade list')")
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Breakout: the ball bounces off the floor")
}

// applyGameSettings pushes command-line settings into the game package
// before the game is created.
func applyGameSettings(gameID string) error {
	switch gameID {
	case "stacker":
		stacker.SetConfigPath(flagConfig)
		return stacker.SetDifficultyPreset(flagDifficulty)
	case "breakout":
		breakout.SetConfigPath(flagConfig)
		breakout.SetPractice(flagPractice)
		if err := breakout.SetDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
		return breakout.SetLayout(flagLayout)
	}
	return nil
}

// chooseLayout shows the layout picker for breakout when no layout was given.
// It returns false if the user backed out.
func chooseLayout(gameID string, cfg core.RuntimeConfig) (bool, error) {
	if gameID != "breakout" || flagLayout != "" {
		return true, nil
	}
	selection, err := tui.RunLayoutSelector(cfg, flagPractice)
	if err != nil || selection == nil {
		return false, err
	}
	breakout.SetPractice(selection.Practice)
	return true, breakout.SetLayout(selection.LayoutID)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameSettings(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	ok, err := chooseLayout(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
