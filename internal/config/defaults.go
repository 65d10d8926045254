package config

import (
	_ "embed"
)

//go:embed defaults/tumble.yaml
var defaultTumbleYAML []byte

// WinHeight is the drop height at which a touching-down piece ends the game.
// It sits just under the well's 400 unit top edge.
const WinHeight = 390

// DefaultTumbleConfig returns the default Tumble configuration.
func DefaultTumbleConfig() TumbleConfig {
	return TumbleConfig{
		Physics: TumblePhysics{
			Gravity:     -900,
			Substeps:    5,
			SubstepRate: 300,
			Iterations:  10,
			Friction:    0,
			Elasticity:  0,
		},
		Well: TumbleWell{
			Width:     300,
			Height:    400,
			WinHeight: WinHeight,
			LostDepth: -400,
		},
		Pieces: TumblePieces{
			Mass:        1,
			Scale:       20,
			SpawnX:      110,
			SpawnY:      400,
			PushImpulse: 100,
			SpinImpulse: 1,
			SpinOffset:  1000,
			Outline:     true,
		},
		Window: TumbleWindow{
			Scale:    1,
			TickRate: 50,
		},
	}
}
