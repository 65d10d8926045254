package tumble

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tumble/internal/core"
)

// ActorID identifies an actor. IDs follow spawn order; the wall is 0.
type ActorID uint32

// WallID is the ID of the wall, always the first actor.
const WallID ActorID = 0

// Actor is one body in the well with the polygons it owns.
type Actor struct {
	ID      ActorID
	Name    string
	Color   core.Color
	Outline bool // Draw a sketchy outline around each polygon
	Body    *cp.Body
	Local   []core.Polygon // Body-local polygons
}

// Position returns the body origin in world space.
func (a *Actor) Position() core.Vec {
	p := a.Body.Position()
	return core.Vec{X: p.X, Y: p.Y}
}

// Polygons returns the actor's polygons in world space.
func (a *Actor) Polygons() []core.Polygon {
	out := make([]core.Polygon, len(a.Local))
	for i, local := range a.Local {
		world := make(core.Polygon, len(local))
		for j, v := range local {
			p := a.Body.LocalToWorld(cp.Vector{X: v.X, Y: v.Y})
			world[j] = core.Vec{X: p.X, Y: p.Y}
		}
		out[i] = world
	}
	return out
}

// Spawner picks piece templates uniformly at random.
type Spawner struct {
	rng     *rand.Rand
	catalog []Template
}

// NewSpawner returns a spawner over catalog. An empty catalog cannot
// produce pieces and panics.
func NewSpawner(seed int64, catalog []Template) *Spawner {
	if len(catalog) == 0 {
		panic("tumble: piece catalog is empty")
	}
	return &Spawner{
		rng:     rand.New(rand.NewPCG(uint64(seed), 0x7475_6d62_6c65)),
		catalog: catalog,
	}
}

// Next returns the index and template of the next piece.
func (s *Spawner) Next() (int, Template) {
	i := s.rng.IntN(len(s.catalog))
	return i, s.catalog[i]
}

// Registry is the spawn-ordered list of actors plus the falling one.
type Registry struct {
	actors []*Actor
	byID   *intmap.Map[ActorID, *Actor]
	active *Actor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: intmap.New[ActorID, *Actor](64),
	}
}

// Add appends a to the history. It panics if the ID is already taken
// or out of spawn order.
func (r *Registry) Add(a *Actor) {
	if int(a.ID) != len(r.actors) || r.byID.Has(a.ID) {
		panic("tumble: actor added out of order")
	}
	r.actors = append(r.actors, a)
	r.byID.Put(a.ID, a)
}

// NextID returns the ID the next added actor must carry.
func (r *Registry) NextID() ActorID {
	return ActorID(len(r.actors))
}

// SetActive marks a as the falling actor. a must already be in history.
func (r *Registry) SetActive(a *Actor) {
	if a != nil && !r.byID.Has(a.ID) {
		panic("tumble: active actor is not in history")
	}
	r.active = a
}

// Active returns the falling actor, or nil.
func (r *Registry) Active() *Actor {
	return r.active
}

// Get looks up an actor by ID.
func (r *Registry) Get(id ActorID) (*Actor, bool) {
	return r.byID.Get(id)
}

// All returns actors in spawn order. The slice must not be modified.
func (r *Registry) All() []*Actor {
	return r.actors
}

// Len returns the number of actors, wall included.
func (r *Registry) Len() int {
	return len(r.actors)
}
