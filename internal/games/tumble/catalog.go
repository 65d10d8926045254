package tumble

import (
	"github.com/vovakirdan/tumble/internal/core"
)

// Offset is a unit-square position inside a piece, in squares.
type Offset struct {
	X, Y int
}

// Template describes one kind of piece.
type Template struct {
	Name    string
	Color   core.Color
	Squares [4]Offset
}

// Catalog is the fixed set of pieces the game draws from.
var Catalog = []Template{
	{"I", core.ColorMaroon, [4]Offset{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}}},
	{"J", core.ColorDarkGray, [4]Offset{{-2, 0}, {-1, 0}, {0, 0}, {0, -1}}},
	{"L", core.ColorMagenta, [4]Offset{{-2, 0}, {-1, 0}, {0, 0}, {-2, -1}}},
	{"O", core.ColorDarkBlue, [4]Offset{{-1, 0}, {0, 0}, {-1, -1}, {0, -1}}},
	{"S", core.ColorGreen, [4]Offset{{-2, -1}, {-1, 0}, {-1, -1}, {0, 0}}},
	{"T", core.ColorBrown, [4]Offset{{-2, 0}, {-1, 0}, {0, 0}, {-1, -1}}},
	{"Z", core.ColorCyan, [4]Offset{{-2, 0}, {-1, 0}, {-1, -1}, {0, -1}}},
}

// Polygons returns the template's squares as body-local polygons,
// each side scale units long.
func (t Template) Polygons(scale float64) []core.Polygon {
	polys := make([]core.Polygon, 0, len(t.Squares))
	for _, sq := range t.Squares {
		polys = append(polys, square(sq, scale))
	}
	return polys
}

func square(o Offset, scale float64) core.Polygon {
	x := float64(o.X) * scale
	y := float64(o.Y) * scale
	return core.Polygon{
		{X: x, Y: y},
		{X: x + scale, Y: y},
		{X: x + scale, Y: y + scale},
		{X: x, Y: y + scale},
	}
}
