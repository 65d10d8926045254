// Package config provides YAML-based game configuration loading
// for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// TumbleConfig contains all configuration for the Tumble game.
type TumbleConfig struct {
	Physics TumblePhysics `yaml:"physics"`
	Well    TumbleWell    `yaml:"well"`
	Pieces  TumblePieces  `yaml:"pieces"`
	Window  TumbleWindow  `yaml:"window"`
}

// TumblePhysics defines the rigid-body simulation parameters.
type TumblePhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Vertical acceleration, negative is down
	Substeps    int     `yaml:"substeps"`     // Physics steps per rendered frame
	SubstepRate int     `yaml:"substep_rate"` // Physics steps per simulated second
	Iterations  int     `yaml:"iterations"`   // Solver iterations per step
	Friction    float64 `yaml:"friction"`
	Elasticity  float64 `yaml:"elasticity"`
}

// TumbleWell defines the playfield.
type TumbleWell struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	WinHeight float64 `yaml:"win_height"` // A piece touching down at or above this ends the game
	LostDepth float64 `yaml:"lost_depth"` // A piece falling below this is given up on
}

// TumblePieces defines the falling pieces and their controls.
type TumblePieces struct {
	Mass        float64 `yaml:"mass"`
	Scale       float64 `yaml:"scale"` // Side of one unit square
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	PushImpulse float64 `yaml:"push_impulse"` // Lateral impulse for left/right
	SpinImpulse float64 `yaml:"spin_impulse"` // Impulse applied off-center for rotation
	SpinOffset  float64 `yaml:"spin_offset"`  // Vertical lever arm for the spin impulse
	Outline     bool    `yaml:"outline"`      // Draw sketchy outlines around pieces
}

// TumbleWindow defines the windowed frontend.
type TumbleWindow struct {
	Scale    float64 `yaml:"scale"`
	TickRate int     `yaml:"tick_rate"`
}

// SubstepDT returns the duration of a single physics step in seconds.
func (p TumblePhysics) SubstepDT() float64 {
	return 1.0 / float64(p.SubstepRate)
}

// Validate reports settings the game cannot run with.
func (c TumbleConfig) Validate() error {
	var errs []error
	if c.Physics.Substeps <= 0 {
		errs = append(errs, fmt.Errorf("physics.substeps must be positive, got %d", c.Physics.Substeps))
	}
	if c.Physics.SubstepRate <= 0 {
		errs = append(errs, fmt.Errorf("physics.substep_rate must be positive, got %d", c.Physics.SubstepRate))
	}
	if c.Physics.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("physics.iterations must be positive, got %d", c.Physics.Iterations))
	}
	if c.Well.Width <= 0 || c.Well.Height <= 0 {
		errs = append(errs, fmt.Errorf("well size must be positive, got %dx%d", c.Well.Width, c.Well.Height))
	}
	if c.Pieces.Mass <= 0 {
		errs = append(errs, fmt.Errorf("pieces.mass must be positive, got %g", c.Pieces.Mass))
	}
	if c.Pieces.Scale <= 0 {
		errs = append(errs, fmt.Errorf("pieces.scale must be positive, got %g", c.Pieces.Scale))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %g", c.Window.Scale))
	}
	if c.Window.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("window.tick_rate must be positive, got %d", c.Window.TickRate))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tumble config: %w", err)
	}
	return nil
}
