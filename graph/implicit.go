package graph

import (
	"math"

	"github.com/guptanshuman124/ImGraph/graph/eval"
)

// implicitDotRadius is the screen radius of zero-crossing dots.
const implicitDotRadius = 2.5

// inequalityAlpha is the fill alpha of the region point cloud.
const inequalityAlpha = 180

// RenderInequality approximates the true region of a boolean expression by a
// point cloud: a grid scan over the visible world rectangle, drawing a dot
// wherever the expression holds. Density and dot size scale with zoom.
//
// The equality check against 1.0 is exact by contract: eval coerces boolean
// results to exactly 1.0/0.0.
func RenderInequality(c Canvas, vp *Viewport, f *eval.Evaluable, col Color) {
	xmin, ymin, xmax, ymax := vp.WorldRect()
	step := math.Max(0.025, 1.5/vp.Zoom)
	radius := math.Max(1.5, vp.Zoom/60)
	dot := col.WithAlpha(inequalityAlpha)

	for y := ymin; y <= ymax; y += step {
		f.Set("y", y)
		for x := xmin; x <= xmax; x += step {
			f.Set("x", x)
			if f.Value() == 1.0 {
				c.FillCircle(vp.WorldToScreen(Vec2{X: x, Y: y}), radius, dot)
			}
		}
	}
}

// RenderImplicit locates the zero level set of g(x,y) by sign changes between
// consecutive grid samples. Two independent scans (x-major and y-major) are
// both required: a single direction misses segments that run parallel to it.
// Duplicate dots near corners are acceptable and not deduplicated.
//
// Only a strict sign flip between consecutive finite samples counts; a zero
// or NaN sample is never a crossing by itself.
func RenderImplicit(c Canvas, vp *Viewport, g *eval.Evaluable, col Color) {
	xmin, ymin, xmax, ymax := vp.WorldRect()
	step := math.Max(0.008, 1.0/vp.Zoom)

	// Horizontal scan: fixed y, sweep x.
	for y := ymin; y <= ymax; y += step {
		g.Set("y", y)
		prev := 0.0
		first := true
		for x := xmin; x <= xmax; x += step {
			g.Set("x", x)
			curr := g.Value()
			if !first && isCrossing(prev, curr) {
				t := prev / (prev - curr)
				zero := Vec2{X: (x - step) + t*step, Y: y}
				c.FillCircle(vp.WorldToScreen(zero), implicitDotRadius, col)
			}
			prev = curr
			first = false
		}
	}

	// Vertical scan: fixed x, sweep y.
	for x := xmin; x <= xmax; x += step {
		g.Set("x", x)
		prev := 0.0
		first := true
		for y := ymin; y <= ymax; y += step {
			g.Set("y", y)
			curr := g.Value()
			if !first && isCrossing(prev, curr) {
				t := prev / (prev - curr)
				zero := Vec2{X: x, Y: (y - step) + t*step}
				c.FillCircle(vp.WorldToScreen(zero), implicitDotRadius, col)
			}
			prev = curr
			first = false
		}
	}
}

func isCrossing(prev, curr float64) bool {
	if math.IsNaN(prev) || math.IsInf(prev, 0) || math.IsNaN(curr) || math.IsInf(curr, 0) {
		return false
	}
	return prev*curr < 0
}
