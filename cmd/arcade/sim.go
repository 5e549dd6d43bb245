package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/platform/headless"
	"github.com/vovakirdan/stackout/internal/platform/tui"
	"github.com/vovakirdan/stackout/internal/registry"
	"github.com/vovakirdan/stackout/internal/scheduler"
	"github.com/vovakirdan/stackout/internal/storage"
)

var (
	flagSimTicks    int
	flagSimRealtime bool
	flagSimSpeed    float64
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Let an autopilot play a game",
	Long: `Run a game with a built-in autopilot instead of a player.

By default the game runs headless as fast as possible and prints the result.
With --realtime it runs at the game's own pace (divided by --speed) and
draws every frame to the terminal.

Examples:
  arcade sim stacker
  arcade sim breakout --layout heart --seed 7
  arcade sim breakout --realtime --speed 2
  arcade sim stacker --ticks 2000 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 100_000, "Stop after this many ticks (0 = until the game ends)")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Run at game pace and draw frames")
	simCmd.Flags().Float64Var(&flagSimSpeed, "speed", 1, "Speed multiplier for --realtime")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the scores database")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().StringVar(&flagLayout, "layout", "", "Breakout block layout")
	simCmd.Flags().BoolVar(&flagPractice, "practice", false, "Breakout: the ball bounces off the floor")
}

func runSim(_ *cobra.Command, args []string) {
	if err := simulate(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func simulate(gameID string) error {
	logger := newLogger(os.Stderr).With("game", gameID)

	if err := applyGameSettings(gameID); err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pilot, err := headless.PilotFor(gameID, seed)
	if err != nil {
		return err
	}
	runner := headless.NewRunner(game, pilot, seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulation started", "seed", seed, "realtime", flagSimRealtime)
	start := time.Now()

	var stats scheduler.Stats
	if flagSimRealtime {
		stats, err = runRealtime(ctx, runner, logger)
	} else {
		m := &scheduler.Manual{MaxTicks: flagSimTicks}
		err = m.Run(ctx, runner)
		stats = m.Stats()
	}

	switch {
	case errors.Is(err, scheduler.ErrTickLimit):
		logger.Info("tick limit reached", "ticks", flagSimTicks)
	case errors.Is(err, context.Canceled):
		logger.Info("interrupted")
	case err != nil:
		return err
	}

	res := runner.Result()
	logger.Info("simulation finished",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"avg_tick", stats.AvgDuration(),
		"max_tick", stats.MaxDuration,
		"overruns", stats.Overruns,
	)
	fmt.Printf("%s: score %d, outcome %s, %d ticks\n", gameID, res.Score, res.Outcome, res.Ticks)

	if flagSimSave && res.Outcome.Terminal() {
		return saveSimResult(res)
	}
	return nil
}

// runRealtime paces the runner with a Ticker and redraws the terminal each frame.
func runRealtime(ctx context.Context, runner *headless.Runner, logger *log.Logger) (scheduler.Stats, error) {
	speed := flagSimSpeed
	if speed <= 0 {
		speed = 1
	}
	interval := time.Duration(float64(registry.Interval(runner.Game(), flagFPS)) / speed)

	w, h := terminalSize()
	screen := core.NewScreen(w, h)
	if r, ok := runner.Game().(registry.Resizable); ok {
		r.Resize(w, h)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ticker := scheduler.NewTicker(interval, logger)
	frames := 0
	ticker.OnFrame = func() {
		draw(runner, screen)
		frames++
		if flagSimTicks > 0 && frames >= flagSimTicks {
			cancel(scheduler.ErrTickLimit)
		}
	}

	fmt.Print("\x1b[2J\x1b[?25l")
	defer fmt.Print("\x1b[?25h\n")

	logger.Debug("pacing", "interval", interval)
	err := ticker.Run(ctx, runner)
	if err != nil && errors.Is(context.Cause(ctx), scheduler.ErrTickLimit) {
		err = scheduler.ErrTickLimit
	}
	return ticker.Stats(), err
}

func draw(runner *headless.Runner, screen *core.Screen) {
	runner.Game().Render(screen)
	fmt.Print("\x1b[H" + tui.RenderScreen(screen))
}

func saveSimResult(res headless.Result) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveResult(storage.Result{
		GameID:  res.GameID,
		Score:   res.Score,
		Outcome: res.Outcome.String(),
		Ticks:   res.Ticks,
	})
	return err
}
