// Package snapshot runs a game without a display and saves a frame as PNG.
package snapshot

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/registry"
)

// Options configures a headless run.
type Options struct {
	Config core.RuntimeConfig
	Frames int     // Frames to simulate before drawing
	Scale  float64 // Output pixels per world unit
	Logger *log.Logger
}

// Render resets g, advances it up to opts.Frames with no input, and
// writes the final frame to w as PNG. It stops early if the game ends.
func Render(g registry.Game, opts Options, w io.Writer) (core.GameState, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	g.Reset(opts.Config)
	vw, vh := g.Viewport()

	in := core.NewInputFrame()
	state := g.State()
	frames := 0
	for frames < opts.Frames && !state.GameOver {
		state = g.Step(in).State
		frames++
	}
	opts.Logger.Debug("snapshot simulated", "game", g.ID(), "frames", frames, "score", state.Score)

	dc := gg.NewContext(int(float64(vw)*opts.Scale), int(float64(vh)*opts.Scale))
	defer dc.Close()

	canvas := &contextCanvas{dc: dc, scale: opts.Scale}
	g.Render(canvas)
	if canvas.err != nil {
		return state, fmt.Errorf("snapshot: draw: %w", canvas.err)
	}

	if err := dc.EncodePNG(w); err != nil {
		return state, fmt.Errorf("snapshot: encode: %w", err)
	}
	return state, nil
}

// contextCanvas draws onto a gg context. The first drawing error sticks.
type contextCanvas struct {
	dc    *gg.Context
	scale float64
	err   error
}

func (c *contextCanvas) Clear(col core.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

func (c *contextCanvas) FillPolygon(p core.Polygon, col core.Color) {
	if len(p) < 3 || c.err != nil {
		return
	}
	for i, v := range p {
		v = v.Scale(c.scale)
		if i == 0 {
			c.dc.MoveTo(v.X, v.Y)
		} else {
			c.dc.LineTo(v.X, v.Y)
		}
	}
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.err = c.dc.Fill()
}

func (c *contextCanvas) StrokeLine(a, b core.Vec, width float64, col core.Color) {
	if c.err != nil {
		return
	}
	a, b = a.Scale(c.scale), b.Scale(c.scale)
	c.dc.MoveTo(a.X, a.Y)
	c.dc.LineTo(b.X, b.Y)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width * c.scale)
	c.err = c.dc.Stroke()
}
