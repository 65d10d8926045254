package core

import (
	"math"
	"strings"
)

// Glyphs used when rasterizing into terminal cells.
const (
	FillRune    = '█'
	OutlineRune = '▓'
)

// Cell is a single terminal character with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
	Set   bool // false for cells that hold only background
}

// Screen is a 2D character buffer for rendering game graphics in a terminal.
// It implements Canvas by sampling each cell's center against the shapes,
// so a game written for pixel viewports renders unchanged at cell resolution.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	bg     Color

	// Logical viewport mapped onto the cell grid.
	viewW float64
	viewH float64
}

// NewScreen creates a new screen buffer with the given dimensions.
// The viewport defaults to one unit per cell.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		viewW:  float64(width),
		viewH:  float64(height),
	}
	s.allocate()
	s.Clear(ColorWhite)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Background returns the color passed to the last Clear.
func (s *Screen) Background() Color {
	return s.bg
}

// SetViewport sets the logical size that Canvas coordinates refer to.
func (s *Screen) SetViewport(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.viewW = w
	s.viewH = h
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(s.bg)
}

// Clear resets every cell to a blank on the given background.
func (s *Screen) Clear(bg Color) {
	s.bg = bg
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: bg}
		}
	}
}

// Set places a rune at the given position with the given color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c, Set: true}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: s.bg}
	}
	return s.cells[y][x]
}

// toCell maps a viewport point to fractional cell coordinates.
func (s *Screen) toCell(v Vec) (float64, float64) {
	return v.X * float64(s.width) / s.viewW, v.Y * float64(s.height) / s.viewH
}

// cellCenter maps the center of cell (x, y) back to viewport units.
func (s *Screen) cellCenter(x, y int) Vec {
	return Vec{
		X: (float64(x) + 0.5) * s.viewW / float64(s.width),
		Y: (float64(y) + 0.5) * s.viewH / float64(s.height),
	}
}

// FillPolygon implements Canvas. A cell is filled when its center is inside p.
func (s *Screen) FillPolygon(p Polygon, c Color) {
	if len(p) < 3 {
		return
	}
	lo, hi := p.Bounds()
	x0, y0 := s.toCell(lo)
	x1, y1 := s.toCell(hi)

	minX := Clamp(int(math.Floor(x0)), 0, s.width-1)
	maxX := Clamp(int(math.Ceil(x1)), 0, s.width-1)
	minY := Clamp(int(math.Floor(y0)), 0, s.height-1)
	maxY := Clamp(int(math.Ceil(y1)), 0, s.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if p.Contains(s.cellCenter(x, y)) {
				s.Set(x, y, FillRune, c)
			}
		}
	}
}

// StrokeLine implements Canvas. Cells along the segment get OutlineRune;
// filled cells keep their color so outlines read as shading.
func (s *Screen) StrokeLine(a, b Vec, _ float64, c Color) {
	ax, ay := s.toCell(a)
	bx, by := s.toCell(b)
	steps := int(math.Max(math.Abs(bx-ax), math.Abs(by-ay))*2) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(ax + (bx-ax)*t))
		y := int(math.Floor(ay + (by-ay)*t))
		if x < 0 || x >= s.width || y < 0 || y >= s.height {
			continue
		}
		cell := s.cells[y][x]
		if cell.Set {
			s.Set(x, y, OutlineRune, cell.Color)
		} else {
			s.Set(x, y, OutlineRune, c)
		}
	}
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.Set(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	s.Set(r.X, r.Y, '┌', c)
	s.Set(r.Right()-1, r.Y, '┐', c)
	s.Set(r.X, r.Bottom()-1, '└', c)
	s.Set(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─', c)
		s.Set(x, r.Bottom()-1, '─', c)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│', c)
		s.Set(r.Right()-1, y, '│', c)
	}
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
