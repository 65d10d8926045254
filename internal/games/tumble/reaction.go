package tumble

// Outcome is what a contact means for the game.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Contact between settled bodies
	OutcomeRespawn                 // The falling piece landed
	OutcomeGameOver                // The falling piece landed high enough to win
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeRespawn:
		return "respawn"
	case OutcomeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// React decides what a contact does given the falling actor.
// active may be nil, in which case nothing happens.
func React(c Contact, active *Actor, winHeight float64) Outcome {
	if active == nil || !c.Involves(active.ID) {
		return OutcomeNone
	}
	if active.Position().Y >= winHeight {
		return OutcomeGameOver
	}
	return OutcomeRespawn
}
