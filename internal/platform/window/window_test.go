package window

import (
	"testing"

	"github.com/vovakirdan/tumble/internal/core"
)

// sizedGame only learns its viewport on Reset, like a game that loads
// its size from a config file.
type sizedGame struct {
	w, h   int
	resets int
}

func (g *sizedGame) ID() string            { return "sized" }
func (g *sizedGame) Title() string         { return "Sized" }
func (g *sizedGame) Viewport() (int, int)  { return g.w, g.h }
func (g *sizedGame) Render(core.Canvas)    {}
func (g *sizedGame) State() core.GameState { return core.GameState{} }
func (g *sizedGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}
func (g *sizedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.w, g.h = 200, 320
}

func TestStartSizesWindowAfterReset(t *testing.T) {
	g := &sizedGame{}

	w, h := start(g, Options{Scale: 1.5})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if w != 300 || h != 480 {
		t.Errorf("window = %dx%d, want 300x480", w, h)
	}
}
