package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tumble/internal/core"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.Action
	}{
		{ebiten.KeyA, core.ActionLeft},
		{ebiten.KeyD, core.ActionRight},
		{ebiten.KeyW, core.ActionRotateCW},
		{ebiten.KeyS, core.ActionRotateCCW},
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeySpace, core.ActionPause},
		{ebiten.KeyEscape, core.ActionQuit},
		{ebiten.KeyQ, core.ActionQuit},
		{ebiten.KeyR, core.ActionNone},
		{ebiten.KeyEnter, core.ActionNone},
	}

	for _, tt := range tests {
		if got := actionFor(tt.key); got != tt.want {
			t.Errorf("actionFor(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
