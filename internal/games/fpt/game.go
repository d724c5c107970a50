// Package fpt wires the falling-block core into the platform's game loop.
// The default mode draws the field from the falling piece's point of view:
// the piece stays in the middle of the screen and the field turns with it.
package fpt

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fpt/internal/config"
	"github.com/vovakirdan/fpt/internal/core"
	"github.com/vovakirdan/fpt/internal/registry"
	"github.com/vovakirdan/fpt/internal/tetris"
)

// Game IDs.
const (
	IDRotating = "fpt"
	IDFixed    = "fpt_fixed"
)

// Package-level settings applied on the next Reset, set by the CLI before the
// game is created.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config file. Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used for game events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(IDRotating, func() registry.Game {
		return New()
	})
	registry.Register(IDFixed, func() registry.Game {
		return NewFixed()
	})
}

// Game drives one tetris.Board from platform ticks.
type Game struct {
	view    string
	cfg     config.FPTConfig
	palette config.Palette
	log     *log.Logger

	board        *tetris.Board
	clock        *tetris.ManualClock
	tickInterval time.Duration
	tick         uint64
	locked       int // Pieces locked into the field this game

	paused  bool
	screenW int
	screenH int
}

// New creates a game with the rotating, piece-centered view.
func New() *Game {
	return &Game{view: config.ViewRotating}
}

// NewFixed creates a game with the classic upright view.
func NewFixed() *Game {
	return &Game{view: config.ViewFixed}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.view == config.ViewFixed {
		return IDFixed
	}
	return IDRotating
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.view == config.ViewFixed {
		return "FPT (Fixed View)"
	}
	return "FPT"
}

// View returns the view mode, config.ViewRotating or config.ViewFixed.
func (g *Game) View() string {
	return g.view
}

// Reset starts a new game on an empty field.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.log = logger.With("game", g.ID())

	fcfg, err := config.Load(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
	}
	g.cfg = fcfg
	g.palette = fcfg.Palette()

	g.tickInterval = cfg.TickInterval()

	// The board sees simulated time that advances one tick interval per
	// Step, so a seeded game replays identically at any real frame rate.
	g.clock = tetris.NewManualClock(time.Unix(0, 0))
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.board = tetris.New(tetris.NewRandomSource(rng), tetris.WithClock(g.clock))

	g.tick = 0
	g.locked = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.log.Debug("game reset", "seed", cfg.Seed, "gravity", g.cfg.GravityInterval(), "tick", g.tickInterval)
}

// Step applies one frame of input and lets gravity act.
// Before the first Reset it does nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.board == nil || g.board.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.clock.Advance(g.tickInterval)

	for range in.Count(core.ActionRotateCCW) {
		g.board.Rotate(true)
	}
	for range in.Count(core.ActionRotateCW) {
		g.board.Rotate(false)
	}
	for range in.Count(core.ActionForward) {
		g.board.Move(true)
	}
	for range in.Count(core.ActionBackward) {
		g.board.Move(false)
	}
	for range in.Count(core.ActionDrop) {
		g.gravity(0)
	}
	g.gravity(g.cfg.GravityInterval())

	return core.StepResult{State: g.State()}
}

// gravity runs one gravity tick and logs state transitions.
func (g *Game) gravity(threshold time.Duration) {
	before := g.board.State()
	g.board.GravityTick(threshold)
	after := g.board.State()
	if before == after {
		return
	}

	switch after {
	case tetris.StateEmpty:
		g.locked++
		g.log.Debug("piece locked", "tick", g.tick, "locked", g.locked)
	case tetris.StateFalling:
		p, _ := g.board.Piece()
		g.log.Debug("piece spawned", "tick", g.tick, "shape", p.Shape)
	case tetris.StateGameOver:
		g.log.Info("game over", "tick", g.tick, "locked", g.locked)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.board != nil && g.board.IsGameOver(),
		Paused:   g.paused,
	}
}
