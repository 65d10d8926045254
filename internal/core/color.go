package core

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha RGBA color shared by every render backend.
// It implements color.Color so it can be handed to ebiten and gg directly.
type Color struct {
	R, G, B, A uint8
}

// Named colors used by the game. Values follow the X11 color names.
var (
	ColorWhite    = Color{255, 255, 255, 255}
	ColorBlack    = Color{0, 0, 0, 255}
	ColorGray     = Color{190, 190, 190, 255}
	ColorDarkGray = Color{169, 169, 169, 255}
	ColorMaroon   = Color{176, 48, 96, 255}
	ColorMagenta  = Color{255, 0, 255, 255}
	ColorDarkBlue = Color{0, 0, 139, 255}
	ColorGreen    = Color{0, 255, 0, 255}
	ColorBrown    = Color{165, 42, 42, 255}
	ColorCyan     = Color{0, 255, 255, 255}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex returns the color as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Floats returns the channels scaled to [0, 1].
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
