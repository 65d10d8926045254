package tumble

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tumble/internal/config"
	"github.com/vovakirdan/tumble/internal/core"
)

// Contact records that two actors started touching during a step.
type Contact struct {
	A, B ActorID
}

// Involves reports whether id is one side of the contact.
func (c Contact) Involves(id ActorID) bool {
	return c.A == id || c.B == id
}

// World wraps the rigid-body space. It never touches game state:
// new contacts are queued and handed back from Step.
type World struct {
	space    *cp.Space
	dt       float64
	contacts []Contact
	surface  config.TumblePhysics
}

// NewWorld creates an empty space with the given physics settings.
func NewWorld(p config.TumblePhysics) *World {
	w := &World{
		space:   cp.NewSpace(),
		dt:      p.SubstepDT(),
		surface: p,
	}
	w.space.SetGravity(cp.Vector{X: 0, Y: p.Gravity})
	w.space.Iterations = uint(p.Iterations)

	handler := w.space.NewCollisionHandler(0, 0)
	handler.BeginFunc = w.begin
	return w
}

// begin runs inside Step while the space is locked, so it only records.
func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	idA, okA := a.UserData.(ActorID)
	idB, okB := b.UserData.(ActorID)
	if okA && okB {
		w.contacts = append(w.contacts, Contact{A: idA, B: idB})
	}
	return true
}

// AddStatic creates an immovable body owning polys.
func (w *World) AddStatic(id ActorID, polys []core.Polygon) *cp.Body {
	body := w.space.AddBody(cp.NewStaticBody())
	body.UserData = id
	w.addShapes(body, polys)
	return body
}

// AddDynamic creates a body of the given mass at pos owning polys.
// Mass is spread over the polygons by area.
func (w *World) AddDynamic(id ActorID, mass float64, pos core.Vec, polys []core.Polygon) *cp.Body {
	body := w.space.AddBody(cp.NewBody(mass, momentFor(mass, polys)))
	body.UserData = id
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	w.addShapes(body, polys)
	return body
}

func (w *World) addShapes(body *cp.Body, polys []core.Polygon) {
	for _, p := range polys {
		verts := toVectors(p)
		shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
		shape.SetFriction(w.surface.Friction)
		shape.SetElasticity(w.surface.Elasticity)
		w.space.AddShape(shape)
	}
}

// Step advances the simulation by one sub-step and returns the contacts
// that began during it, in the order the solver found them.
func (w *World) Step() []Contact {
	w.contacts = w.contacts[:0]
	w.space.Step(w.dt)
	if len(w.contacts) == 0 {
		return nil
	}
	out := make([]Contact, len(w.contacts))
	copy(out, w.contacts)
	return out
}

// momentFor sums the moment of each polygon about the body origin,
// giving each polygon its share of mass by area.
func momentFor(mass float64, polys []core.Polygon) float64 {
	var total float64
	for _, p := range polys {
		total += p.Area()
	}
	if total == 0 {
		return cp.INFINITY
	}

	var moment float64
	for _, p := range polys {
		verts := toVectors(p)
		moment += cp.MomentForPoly(mass*p.Area()/total, len(verts), verts, cp.Vector{}, 0)
	}
	return moment
}

func toVectors(p core.Polygon) []cp.Vector {
	verts := make([]cp.Vector, len(p))
	for i, v := range p {
		verts[i] = cp.Vector{X: v.X, Y: v.Y}
	}
	return verts
}
