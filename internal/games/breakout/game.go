package breakout

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
	PaddleChar = '='
	BallChar   = '●'
	BlockChar  = '█'
)

const (
	hudRows    = 2
	minScreenW = 40
	minScreenH = 16
)

var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	layoutOverride   string
	practice         bool
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

// SetLayout overrides the configured block layout. An empty id restores
// the configured one.
func SetLayout(id string) error {
	if id != "" {
		if _, err := LayoutByID(id); err != nil {
			return err
		}
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	layoutOverride = id
	return nil
}

// SetPractice turns the bouncing floor on for new games.
func SetPractice(on bool) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	practice = on
}

// loadConfig resolves the effective configuration for a new game.
func loadConfig() config.BreakoutConfig {
	settingsMu.RLock()
	path, preset, layout, floor := configPath, difficultyPreset, layoutOverride, practice
	settingsMu.RUnlock()

	cfg, err := config.LoadBreakout(path)
	if err != nil || cfg.Validate() != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if layout != "" {
		cfg.Blocks.Layout = layout
	}
	if floor {
		cfg.Rules.BottomBounce = true
	}
	return cfg
}

// OptionsFromConfig converts a config into session options.
// Unknown layouts fall back to the classic one.
func OptionsFromConfig(cfg config.BreakoutConfig, seed int64) Options {
	layout, err := LayoutByID(cfg.Blocks.Layout)
	if err != nil {
		layout, _ = LayoutByID("classic")
	}
	bottom := BottomLoses
	if cfg.Rules.BottomBounce {
		bottom = BottomBounces
	}

	return Options{
		WorldW:       cfg.World.Width,
		WorldH:       cfg.World.Height,
		Bottom:       bottom,
		PaddleW:      cfg.Paddle.Width,
		PaddleH:      cfg.Paddle.Height,
		PaddleSpeed:  cfg.Paddle.Speed,
		PaddleOffset: cfg.Paddle.BottomOffset,
		ClampPaddle:  cfg.Paddle.Clamp,
		BallRadius:   cfg.Ball.Radius,
		BallSpeed:    cfg.Ball.Speed,
		Layout:       layout,
		Geometry: FieldGeometry{
			BlockW: cfg.Blocks.Width,
			BlockH: cfg.Blocks.Height,
			Gap:    cfg.Blocks.Gap,
			Top:    cfg.Blocks.Top,
			WorldW: cfg.World.Width,
			Points: cfg.Blocks.Points,
		},
		Colors: core.NewRandomColors(seed),
	}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the arcade platform.
type Game struct {
	session *Session
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	events  core.Events
	paused  bool

	// Layout (computed from screen size)
	frame    core.Rect
	view     core.Viewport
	tooSmall bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Breakout" }

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

	g.session = NewSession(OptionsFromConfig(g.cfg, runtime.Seed))
	g.session.SetEvents(g.events)

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize fits the world into the area below the HUD.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = width < minScreenW || height < minScreenH

	g.frame = core.NewRect(0, hudRows, width, height-hudRows)
	g.view = core.Viewport{
		OriginX: g.frame.X + 1,
		OriginY: g.frame.Y + 1,
		ScaleX:  float64(g.frame.W-2) / g.cfg.World.Width,
		ScaleY:  float64(g.frame.H-2) / g.cfg.World.Height,
	}
}

// TickInterval returns the fixed simulation interval.
func (g *Game) TickInterval() time.Duration {
	ms := g.cfg.Timing.IntervalMS
	if ms <= 0 {
		ms = config.DefaultBreakoutConfig().Timing.IntervalMS
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

	s.Stop()
	switch {
	case in.Has(core.ActionLeft):
		s.MoveLeft()
	case in.Has(core.ActionRight):
		s.MoveRight()
	}

	s.Tick()
	return core.StepResult{State: g.State()}
}

// Render draws the playfield, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(g.frame)
	for _, d := range g.session.Draw() {
		var glyph rune
		switch d.Kind {
		case core.KindPaddle:
			glyph = PaddleChar
		case core.KindBall:
			glyph = BallChar
		default:
			glyph = BlockChar
		}
		g.view.Paint(dst, d, glyph)
	}

	s := g.session
	switch {
	case s.State() == core.OutcomeWin:
		dst.DrawOverlay("You Win!", fmt.Sprintf("Final Score: %d", s.Score()), "Press R to play again")
	case s.State() == core.OutcomeLoss:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d", s.Score()), "Press R to restart")
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	hud := fmt.Sprintf(" Breakout | %s | Score: %d  Blocks: %d/%d",
		s.Layout().Name, s.Score(), s.Field().Remaining(), s.Field().Len())
	if s.World().Bottom == BottomBounces {
		hud += "  [practice]"
	}
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
