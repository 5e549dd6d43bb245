package stacker

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/stackout/internal/config"
	"github.com/vovakirdan/stackout/internal/core"
	"github.com/vovakirdan/stackout/internal/registry"
)

// Visual characters for rendering
const (
	CellGlyph  = '█'
	PieceGlyph = '▓'
)

// Board cells are drawn two columns wide so they look square in a terminal.
const (
	colsPerCell = 2
	hudRows     = 2
)

var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset selects a difficulty preset for new games.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = p
	return nil
}

// loadConfig resolves the effective configuration for a new game.
func loadConfig() config.StackerConfig {
	settingsMu.RLock()
	path, preset := configPath, difficultyPreset
	settingsMu.RUnlock()

	cfg, err := config.LoadStacker(path)
	if err != nil {
		cfg = config.DefaultStackerConfig()
	}
	config.ApplyStackerPreset(&cfg, preset)
	if cfg.Validate() != nil {
		cfg = config.DefaultStackerConfig()
		config.ApplyStackerPreset(&cfg, preset)
	}
	return cfg
}

func init() {
	registry.Register("stacker", func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the arcade platform.
type Game struct {
	session *Session
	cfg     config.StackerConfig
	runtime core.RuntimeConfig
	events  core.Events
	paused  bool

	// Layout (computed from screen size)
	board    core.Rect
	view     core.Viewport
	tooSmall bool
}

// New creates a new Stacker game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "stacker" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Stacker" }

// SetEvents registers score and lifecycle callbacks for this and later sessions.
func (g *Game) SetEvents(e core.Events) {
	g.events = e
	if g.session != nil {
		g.session.SetEvents(e)
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = loadConfig()
	g.paused = false

	g.session = NewSession(Options{
		Width:       g.cfg.Board.Width,
		Height:      g.cfg.Board.Height,
		CellSize:    g.cfg.Board.CellSize,
		FallEvery:   g.cfg.Timing.FallEvery,
		SpawnRow:    g.cfg.Board.SpawnRow,
		PlacePoints: g.cfg.Scoring.Placement,
		LinePoints:  g.cfg.Scoring.PerLine,
		Colors:      core.NewRandomColors(runtime.Seed),
		Shapes:      NewRandomShapes(runtime.Seed),
	})
	g.session.SetEvents(g.events)

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize recomputes the board placement without touching the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height

	bw := g.cfg.Board.Width*colsPerCell + 2
	bh := g.cfg.Board.Height + 2
	g.tooSmall = width < bw || height < bh+hudRows

	g.board = core.NewRect((width-bw)/2, hudRows, bw, bh)
	size := float64(g.cfg.Board.CellSize)
	g.view = core.Viewport{
		OriginX: g.board.X + 1,
		OriginY: g.board.Y + 1,
		ScaleX:  colsPerCell / size,
		ScaleY:  1 / size,
	}
}

// TickInterval returns the fixed simulation interval.
func (g *Game) TickInterval() time.Duration {
	ms := g.cfg.Timing.IntervalMS
	if ms <= 0 {
		ms = config.DefaultStackerConfig().Timing.IntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session { return g.session }

// Draw returns the current draw descriptors.
func (g *Game) Draw() []core.Drawable { return g.session.Draw() }

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot { return g.session.Snapshot() }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	// Handle restart
	if in.Has(core.ActionRestart) && !s.Active() {
		s.Restart()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && s.Active() {
		g.paused = !g.paused
	}
	if g.paused || !s.Active() || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Terminals report no key release, so intent only lasts while the key repeats.
	s.Stop()
	switch {
	case in.Has(core.ActionLeft):
		s.MoveLeft()
	case in.Has(core.ActionRight):
		s.MoveRight()
	}
	if in.Has(core.ActionDrop) {
		s.Fall()
	}
	if in.Has(core.ActionRotate) {
		s.Rotate()
	}

	s.Tick()
	return core.StepResult{State: g.State()}
}

// Render draws the board, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(g.board)
	for _, d := range g.session.Draw() {
		glyph := CellGlyph
		if d.Kind == core.KindPiece {
			glyph = PieceGlyph
		}
		g.view.Paint(dst, d, glyph)
	}

	switch {
	case g.session.State() == core.OutcomeLoss:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d", g.session.Score()), "Press R to restart")
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Stacker | Score: %d  Lines: %d", g.session.Score(), g.session.Lines())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		GameOver: !s.Active(),
		Paused:   g.paused,
		Ticks:    s.Ticks(),
		Outcome:  s.State(),
	}
}
