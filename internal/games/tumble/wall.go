package tumble

import (
	"math"

	"github.com/vovakirdan/tumble/internal/core"
)

// Quad is one wall column run: a rectangle standing on y=0.
type Quad struct {
	X      int     // Left edge
	Width  int     // Columns covered
	Height float64 // Top edge
}

// Polygon returns the quad's corners in the order
// (x,0), (x,h), (x+w,h), (x+w,0).
func (q Quad) Polygon() core.Polygon {
	x0 := float64(q.X)
	x1 := float64(q.X + q.Width)
	return core.Polygon{
		{X: x0, Y: 0},
		{X: x0, Y: q.Height},
		{X: x1, Y: q.Height},
		{X: x1, Y: 0},
	}
}

// ProfileFunc gives the wall height for an integer column.
type ProfileFunc func(x int) float64

// BuildProfile merges runs of equal-height columns in [0, width) into quads.
// The result tiles [0, width) left to right with one quad per maximal run.
// height is never called outside [0, width).
func BuildProfile(width int, height ProfileFunc) []Quad {
	if width <= 0 {
		panic("tumble: profile width must be positive")
	}

	var quads []Quad
	x := 0
	for x < width {
		h := height(x)
		w := 1
		for x+w < width && height(x+w) == h {
			w++
		}
		quads = append(quads, Quad{X: x, Width: w, Height: h})
		x += w
	}
	return quads
}

// BowlProfile is the curved well: tall side walls with a round floor
// of radius 100 centered on x=110.
func BowlProfile(x int) float64 {
	if x <= 10 || x >= 210 {
		return 400
	}
	return 110 - math.Cos(math.Asin(float64(x-110)/100))*100
}

// BucketProfile keeps the bowl's side walls but has a flat floor.
func BucketProfile(x int) float64 {
	if x <= 10 || x >= 210 {
		return 400
	}
	return 10
}
