// Package window drives a core.Simulation in a desktop window with ebiten.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Options configures the window driver.
type Options struct {
	Title  string
	Width  int     // Logical width in pixels
	Height int     // Logical height in pixels
	Scale  float64 // Window size multiplier
	TPS    int     // Simulation frames per second
}

// DefaultOptions returns an 800x600 window at 60 TPS.
func DefaultOptions() Options {
	return Options{
		Title:  "Breakout",
		Width:  800,
		Height: 600,
		Scale:  1,
		TPS:    60,
	}
}

// bindings maps simulation keys to the physical keys that press them.
var bindings = map[core.Key][]ebiten.Key{
	core.KeyLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.KeyConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

// keyState reports whether a physical key is down.
type keyState func(ebiten.Key) bool

// Game adapts a core.Simulation to ebiten.Game.
type Game struct {
	sim     core.Simulation
	surface *Surface
	logger  *log.Logger
	opts    Options
	watcher core.Watcher
	pressed keyState

	// err holds a render failure until the next Update can return it.
	err error
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a window driver for sim. A nil logger discards output.
func NewGame(sim core.Simulation, surface *Surface, opts Options, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.TPS <= 0 {
		opts.TPS = DefaultOptions().TPS
	}
	return &Game{
		sim:     sim,
		surface: surface,
		logger:  logger,
		opts:    opts,
		pressed: ebiten.IsKeyPressed,
	}
}

// pollInput reads the keyboard state for this frame.
func pollInput(pressed keyState) core.InputFrame {
	frame := core.NewInputFrame()
	for k, keys := range bindings {
		for _, physical := range keys {
			if pressed(physical) {
				frame.Set(k)
				break
			}
		}
	}
	return frame
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.sim.Advance(1.0/float64(g.opts.TPS), pollInput(g.pressed))

	switch t, state := g.watcher.Observe(g.sim); t {
	case core.TransitionOver:
		g.logger.Info("round over", "score", state.Score, "high_score", state.HighScore)
	case core.TransitionReset:
		g.logger.Info("round reset", "high_score", state.HighScore)
	}
	return nil
}

// Draw renders the simulation onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	if err := g.sim.Render(g.surface); err != nil {
		g.err = fmt.Errorf("render: %w", err)
	}
}

// Layout fixes the logical screen to the world size regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Run opens a window and drives sim until it is closed.
func Run(sim core.Simulation, opts Options, logger *log.Logger) error {
	defaults := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = defaults.Width, defaults.Height
	}
	if opts.Scale <= 0 {
		opts.Scale = defaults.Scale
	}
	if opts.TPS <= 0 {
		opts.TPS = defaults.TPS
	}

	face, err := LoadFace(DefaultFontSize)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(float64(opts.Width)*opts.Scale), int(float64(opts.Height)*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)

	game := NewGame(sim, NewSurface(face), opts, logger)
	game.logger.Info("opening window", "width", opts.Width, "height", opts.Height, "tps", opts.TPS)

	err = ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
