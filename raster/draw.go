package raster

import (
	"math"

	"github.com/guptanshuman124/ImGraph/graph"
)

// coordLimit bounds rasterized coordinates. Samplers may legitimately produce
// huge or infinite values (e.g. 1/x near zero); clamping keeps the Bresenham
// walk finite while preserving the on-screen portion of the segment.
const coordLimit = 1 << 13

// Line draws a segment between two points with the given stroke width.
// Segments with a non-finite endpoint are dropped.
func (t *Target) Line(a, b graph.Vec2, c graph.Color, thickness float64) {
	if !finiteVec(a) || !finiteVec(b) {
		return
	}
	x0 := roundClamp(a.X)
	y0 := roundClamp(a.Y)
	x1 := roundClamp(b.X)
	y1 := roundClamp(b.Y)
	t.bresenham(x0, y0, x1, y1, c, thickness)
}

// Polyline connects consecutive points. Non-finite points break the line into
// separate runs rather than producing bogus segments.
func (t *Target) Polyline(pts []graph.Vec2, c graph.Color, thickness float64) {
	for i := 1; i < len(pts); i++ {
		t.Line(pts[i-1], pts[i], c, thickness)
	}
}

// FillCircle draws a filled dot centered at p.
func (t *Target) FillCircle(p graph.Vec2, radius float64, c graph.Color) {
	if !finiteVec(p) || !isFinite(radius) || radius <= 0 {
		return
	}
	cx := roundClamp(p.X)
	cy := roundClamp(p.Y)
	r := int(math.Ceil(radius))
	r2 := radius * radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) <= r2 {
				t.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

// bresenham walks the segment, stamping either a single pixel or a disc of
// the stroke radius at each step.
func (t *Target) bresenham(x0, y0, x1, y1 int, c graph.Color, thickness float64) {
	stamp := func(x, y int) { t.SetPixel(x, y, c) }
	if thickness > 1.5 {
		r := int(thickness / 2)
		r2 := (thickness / 2) * (thickness / 2)
		stamp = func(x, y int) {
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					if float64(dx*dx+dy*dy) <= r2 {
						t.SetPixel(x+dx, y+dy, c)
					}
				}
			}
		}
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		stamp(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func roundClamp(v float64) int {
	if v > coordLimit {
		v = coordLimit
	}
	if v < -coordLimit {
		v = -coordLimit
	}
	return int(math.Round(v))
}

func finiteVec(v graph.Vec2) bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
