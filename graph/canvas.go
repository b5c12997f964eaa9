package graph

// Canvas is the drawing surface the engine renders into. Coordinates are
// screen pixels local to the plotting area. Implementations should clip
// out-of-bounds primitives.
type Canvas interface {
	// Polyline connects consecutive points with line segments.
	Polyline(pts []Vec2, c Color, thickness float64)
	// Line draws a single segment.
	Line(a, b Vec2, c Color, thickness float64)
	// FillCircle draws a filled dot centered at p.
	FillCircle(p Vec2, radius float64, c Color)
	// Text draws s with its baseline starting at p.
	Text(p Vec2, c Color, s string)
}
