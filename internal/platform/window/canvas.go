package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tumble/internal/core"
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(core.ColorWhite)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// imageCanvas draws onto an ebiten image, scaling world units to pixels.
type imageCanvas struct {
	dst      *ebiten.Image
	scale    float32
	vertices []ebiten.Vertex
	indices  []uint16
}

func newImageCanvas(scale float64) *imageCanvas {
	return &imageCanvas{scale: float32(scale)}
}

func (c *imageCanvas) Clear(col core.Color) {
	c.dst.Fill(col)
}

func (c *imageCanvas) FillPolygon(p core.Polygon, col core.Color) {
	if len(p) < 3 {
		return
	}

	var path vector.Path
	for i, v := range p {
		x, y := c.point(v)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r, g, b, a := col.Floats()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

func (c *imageCanvas) StrokeLine(a, b core.Vec, width float64, col core.Color) {
	x0, y0 := c.point(a)
	x1, y1 := c.point(b)
	vector.StrokeLine(c.dst, x0, y0, x1, y1, float32(width)*c.scale, col, true)
}

func (c *imageCanvas) point(v core.Vec) (float32, float32) {
	return float32(v.X) * c.scale, float32(v.Y) * c.scale
}
