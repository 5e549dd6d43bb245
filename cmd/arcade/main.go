// arcade is a terminal arcade with a falling-block stacker and breakout.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade sim <game>        - Let an autopilot play a game headless
//
// Global flags:
//
//	--fps <rate>          - Fallback tick rate for games without their own pace (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//
// ARCADE_DB, ARCADE_LOG_LEVEL and ARCADE_SEED set flag defaults, and are also
// read from a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Import games to register them
	_ "github.com/vovakirdan/stackout/internal/games/breakout"
	_ "github.com/vovakirdan/stackout/internal/games/stacker"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()
	registerGlobalFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "TUI Arcade - Stacker and Breakout in your terminal",
	Long: `TUI Arcade is a terminal-based gaming platform with two games:
a falling-block stacker and breakout.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Watch an autopilot play, or run it headless

Examples:
  arcade list
  arcade play stacker
  arcade play breakout --layout pyramid
  arcade menu
  arcade serve --ssh :2222
  arcade scores breakout --stats
  arcade sim stacker --ticks 5000`,
	SilenceUsage: true,
}

// registerGlobalFlags runs after .env is loaded so env defaults apply.
func registerGlobalFlags() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Fallback tick rate for games without their own interval")
	flags.Int64Var(&flagSeed, "seed", envInt64("ARCADE_SEED", 0), "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", envString("ARCADE_DB", "~/.arcade/scores.db"), "Path to scores database")
	flags.StringVar(&flagLogLevel, "log-level", envString("ARCADE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: %v\n", key, v, err)
		return fallback
	}
	return n
}

// newLogger builds the root logger writing to w at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.arcade/arcade.log so the alt-screen stays clean.
// It falls back to discarding output. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
