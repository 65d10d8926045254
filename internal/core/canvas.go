package core

// Canvas is the drawing surface a game renders into. Coordinates are in the
// game's viewport units with the origin at the top-left and y growing down.
// Each platform backend (window, terminal, image) provides its own Canvas.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillPolygon fills a convex or simple polygon.
	FillPolygon(p Polygon, c Color)

	// StrokeLine draws an anti-aliased line segment where the backend supports it.
	StrokeLine(a, b Vec, width float64, c Color)
}
