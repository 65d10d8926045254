package tumble

// BodySnapshot is the kinematic state of one actor.
type BodySnapshot struct {
	ID       ActorID
	Name     string
	X, Y     float64
	Angle    float64
	VX, VY   float64
	Rotation float64 // Angular velocity
}

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Frame     uint64
	Score     int
	Active    ActorID
	HasActive bool
	Paused    bool
	GameOver  bool
	Bodies    []BodySnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:    g.frame,
		Score:    g.State().Score,
		Paused:   g.paused,
		GameOver: g.gameOver,
	}
	if g.actors == nil {
		return s
	}
	if a := g.actors.Active(); a != nil {
		s.Active = a.ID
		s.HasActive = true
	}

	s.Bodies = make([]BodySnapshot, 0, g.actors.Len())
	for _, a := range g.actors.All() {
		p := a.Body.Position()
		v := a.Body.Velocity()
		s.Bodies = append(s.Bodies, BodySnapshot{
			ID:       a.ID,
			Name:     a.Name,
			X:        p.X,
			Y:        p.Y,
			Angle:    a.Body.Angle(),
			VX:       v.X,
			VY:       v.Y,
			Rotation: a.Body.AngularVelocity(),
		})
	}
	return s
}
