package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tumble/internal/core"
)

// actionFor maps a pressed key to a game action.
func actionFor(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyA, ebiten.KeyArrowLeft:
		return core.ActionLeft
	case ebiten.KeyD, ebiten.KeyArrowRight:
		return core.ActionRight
	case ebiten.KeyW, ebiten.KeyArrowUp:
		return core.ActionRotateCW
	case ebiten.KeyS, ebiten.KeyArrowDown:
		return core.ActionRotateCCW
	case ebiten.KeySpace:
		return core.ActionPause
	case ebiten.KeyEscape, ebiten.KeyQ:
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}
