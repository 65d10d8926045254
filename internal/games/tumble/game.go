// Package tumble implements a falling-piece stacking game driven by
// rigid-body physics: pieces drop into a curved well, land, and pile up
// until one comes to rest near the top.
package tumble

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tumble/internal/config"
	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/registry"
)

// Variant selects the wall profile.
type Variant string

const (
	VariantBowl   Variant = "bowl"
	VariantBucket Variant = "bucket"
)

// Game implements the Tumble game.
type Game struct {
	variant Variant
	cfg     config.TumbleConfig
	fixed   bool // cfg was given explicitly, skip loading on Reset

	world   *World
	actors  *Registry
	spawner *Spawner
	jitter  *rand.Rand // Outline wobble, kept apart from the spawn sequence

	frame    uint64
	paused   bool
	gameOver bool
}

// Package-level settings, set by the CLI before games are created.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the config file path used on Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger games report spawns and results to.
func SetLogger(l *log.Logger) {
	logger = l
}

// New creates a Tumble game with the curved well.
func New() *Game {
	return &Game{variant: VariantBowl}
}

// NewBucket creates a Tumble game with a flat-bottomed well.
func NewBucket() *Game {
	return &Game{variant: VariantBucket}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(variant Variant, cfg config.TumbleConfig) *Game {
	return &Game{variant: variant, cfg: cfg, fixed: true}
}

func init() {
	registry.Register("tumble", func() registry.Game {
		return New()
	})
	registry.Register("tumble_bucket", func() registry.Game {
		return NewBucket()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantBucket {
		return "tumble_bucket"
	}
	return "tumble"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantBucket {
		return "Tumble (Bucket)"
	}
	return "Tumble"
}

// Viewport returns the size of the well in world units.
func (g *Game) Viewport() (int, int) {
	if g.cfg.Well.Width == 0 {
		def := config.DefaultTumbleConfig()
		return def.Well.Width, def.Well.Height
	}
	return g.cfg.Well.Width, g.cfg.Well.Height
}

// Reset builds a fresh well with the wall and the first piece.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.fixed {
		cfg, err := config.LoadTumble(configPath)
		if err != nil {
			logger.Warn("using default config", "err", err)
			cfg = config.DefaultTumbleConfig()
		}
		g.cfg = cfg
	}

	g.world = NewWorld(g.cfg.Physics)
	g.actors = NewRegistry()
	g.spawner = NewSpawner(rc.Seed, Catalog)
	g.jitter = rand.New(rand.NewPCG(uint64(rc.Seed), 1))
	g.frame = 0
	g.paused = false
	g.gameOver = false

	g.addWall()
	g.spawn()
}

func (g *Game) profile() ProfileFunc {
	if g.variant == VariantBucket {
		return BucketProfile
	}
	return BowlProfile
}

func (g *Game) addWall() {
	quads := BuildProfile(g.cfg.Well.Width, g.profile())
	polys := make([]core.Polygon, len(quads))
	for i, q := range quads {
		polys[i] = q.Polygon()
	}

	id := g.actors.NextID()
	wall := &Actor{
		ID:    id,
		Name:  "wall",
		Color: core.ColorGray,
		Body:  g.world.AddStatic(id, polys),
		Local: polys,
	}
	g.actors.Add(wall)
	logger.Debug("wall built", "quads", len(quads))
}

// spawn drops a new random piece and makes it the active one.
func (g *Game) spawn() *Actor {
	_, t := g.spawner.Next()
	polys := t.Polygons(g.cfg.Pieces.Scale)
	pos := core.V(g.cfg.Pieces.SpawnX, g.cfg.Pieces.SpawnY)

	id := g.actors.NextID()
	a := &Actor{
		ID:      id,
		Name:    t.Name,
		Color:   t.Color,
		Outline: true,
		Body:    g.world.AddDynamic(id, g.cfg.Pieces.Mass, pos, polys),
		Local:   polys,
	}
	g.actors.Add(a)
	g.actors.SetActive(a)
	logger.Debug("spawned", "id", id, "piece", t.Name)
	return a
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		switch a {
		case core.ActionPause:
			g.paused = !g.paused
		case core.ActionLeft, core.ActionRight, core.ActionRotateCW, core.ActionRotateCCW:
			if !g.paused {
				g.push(a)
			}
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	landed := 0
	for range g.cfg.Physics.Substeps {
		n, over := g.resolve(g.world.Step())
		landed += n
		if over {
			return core.StepResult{State: g.State(), Landed: landed}
		}
	}

	if active := g.actors.Active(); active != nil && active.Position().Y < g.cfg.Well.LostDepth {
		logger.Debug("piece lost", "id", active.ID)
		g.spawn()
		landed++
	}

	return core.StepResult{State: g.State(), Landed: landed}
}

// resolve applies contacts in order. It reports how many pieces landed
// and whether the game ended.
func (g *Game) resolve(contacts []Contact) (int, bool) {
	landed := 0
	for _, c := range contacts {
		switch React(c, g.actors.Active(), g.cfg.Well.WinHeight) {
		case OutcomeRespawn:
			landed++
			logger.Debug("landed", "id", g.actors.Active().ID)
			g.spawn()
		case OutcomeGameOver:
			g.gameOver = true
			g.actors.SetActive(nil)
			logger.Info("game over", "score", g.actors.Len(), "frames", g.frame)
			return landed, true
		}
	}
	return landed, false
}

// push applies the impulse bound to a at the active piece.
func (g *Game) push(a core.Action) {
	active := g.actors.Active()
	if active == nil {
		return
	}

	p := g.cfg.Pieces
	var impulse, offset cp.Vector
	switch a {
	case core.ActionLeft:
		impulse = cp.Vector{X: -p.PushImpulse}
	case core.ActionRight:
		impulse = cp.Vector{X: p.PushImpulse}
	case core.ActionRotateCW:
		impulse = cp.Vector{X: p.SpinImpulse}
		offset = cp.Vector{Y: p.SpinOffset}
	case core.ActionRotateCCW:
		impulse = cp.Vector{X: -p.SpinImpulse}
		offset = cp.Vector{Y: p.SpinOffset}
	default:
		return
	}
	active.Body.ApplyImpulseAtWorldPoint(impulse, active.Body.Position().Add(offset))
}

// Render draws every actor in spawn order, wall first.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorWhite)
	if g.actors == nil {
		return
	}

	for _, a := range g.actors.All() {
		for _, poly := range a.Polygons() {
			screen := g.toScreen(poly)
			dst.FillPolygon(screen, a.Color)
			if a.Outline && g.cfg.Pieces.Outline {
				g.outline(dst, screen)
			}
		}
	}
}

// toScreen flips world y-up coordinates into y-down viewport coordinates.
func (g *Game) toScreen(p core.Polygon) core.Polygon {
	h := float64(g.cfg.Well.Height)
	out := make(core.Polygon, len(p))
	for i, v := range p {
		out[i] = core.Vec{X: v.X, Y: h - v.Y}
	}
	return out
}

// outline strokes each edge of p as a three-segment path. The corners
// stay put; the two inner points wander by less than one unit.
func (g *Game) outline(dst core.Canvas, p core.Polygon) {
	for i, a := range p {
		b := p[(i+1)%len(p)]
		ja := a.Add(g.wobble())
		jb := b.Add(g.wobble())
		dst.StrokeLine(a, ja, 1, core.ColorBlack)
		dst.StrokeLine(ja, jb, 1, core.ColorBlack)
		dst.StrokeLine(jb, b, 1, core.ColorBlack)
	}
}

// wobble returns an offset with both components in [-1, 1).
func (g *Game) wobble() core.Vec {
	return core.V(g.jitter.Float64()*2-1, g.jitter.Float64()*2-1)
}

// State returns the current game state. The score is the number of
// actors in the well, wall included.
func (g *Game) State() core.GameState {
	score := 0
	if g.actors != nil {
		score = g.actors.Len()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Actors returns the actor registry.
func (g *Game) Actors() *Registry {
	return g.actors
}
