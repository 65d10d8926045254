// Package window runs a game in a desktop window using ebiten.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/registry"
)

// ErrGameOver ends the ebiten loop when the game finishes.
var ErrGameOver = errors.New("window: game over")

// Options configures the window.
type Options struct {
	Config core.RuntimeConfig
	Scale  float64 // Window pixels per world unit
	Logger *log.Logger
}

// Result reports how a windowed session ended.
type Result struct {
	State  core.GameState
	Frames uint64 // Frames the simulation advanced
}

// runner adapts a registry.Game to ebiten.Game.
type runner struct {
	game   registry.Game
	opts   Options
	canvas *imageCanvas
	keys   []ebiten.Key
	input  core.InputFrame
	frames uint64
	ticks  int
	state  core.GameState
}

// Run opens a window and plays g until the player quits or the game ends.
func Run(g registry.Game, opts Options) (Result, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	w, h := start(g, opts)

	r := &runner{
		game:   g,
		opts:   opts,
		canvas: newImageCanvas(opts.Scale),
		input:  core.NewInputFrame(),
	}

	ebiten.SetTPS(opts.Config.TickRate)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("fps: 0")

	opts.Logger.Debug("window opened", "game", g.ID(), "tps", opts.Config.TickRate, "scale", opts.Scale)

	err := ebiten.RunGame(r)
	res := Result{State: r.state, Frames: r.frames}
	if err != nil && !errors.Is(err, ErrGameOver) {
		return res, fmt.Errorf("window: %w", err)
	}
	return res, nil
}

// start resets g and returns the window size in pixels. The viewport is
// read after Reset since the game may load its well size there.
func start(g registry.Game, opts Options) (int, int) {
	g.Reset(opts.Config)
	vw, vh := g.Viewport()
	return int(float64(vw) * opts.Scale), int(float64(vh) * opts.Scale)
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	r.input.Clear()
	for _, k := range r.keys {
		a := actionFor(k)
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		r.input.Set(a)
	}

	res := r.game.Step(r.input)
	r.state = res.State
	if !res.State.Paused {
		r.frames++
	}

	r.ticks++
	if r.ticks >= r.opts.Config.TickRate {
		r.ticks = 0
		ebiten.SetWindowTitle(fmt.Sprintf("fps: %.1f", ebiten.ActualFPS()))
	}

	if res.State.GameOver {
		return ErrGameOver
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	r.canvas.dst = screen
	r.game.Render(r.canvas)
}

// Layout implements ebiten.Game.
func (r *runner) Layout(_, _ int) (int, int) {
	w, h := r.game.Viewport()
	return int(float64(w) * r.opts.Scale), int(float64(h) * r.opts.Scale)
}
