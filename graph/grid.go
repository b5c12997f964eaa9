package graph

import (
	"math"
	"strconv"
)

const (
	axisThickness = 2.0
	gridThickness = 1.0
	tickHalfLen   = 3.0

	// lightGridMinSpacing is the minimum on-screen gridline spacing, in
	// pixels, for the light (no-functions) grid pass.
	lightGridMinSpacing = 20.0
)

var (
	axisColor      = RGB(0, 0, 0)
	gridLineColor  = RGBA(0, 0, 0, 36)
	lightGridColor = RGB(200, 200, 200)
	labelColor     = RGB(60, 60, 60)
)

// DrawGrid renders gridlines and axes for the current viewport. When at least
// one expression plotted this frame, the full adaptive tick pass (breakpoint
// table, labels) runs; otherwise the simpler light pass (integer step doubled
// to a 20-pixel minimum, no labels) is used instead.
func DrawGrid(c Canvas, vp *Viewport, plotted bool) {
	if plotted {
		drawTicks(c, vp)
	} else {
		drawLightGrid(c, vp)
	}
	drawAxes(c, vp)
}

// tickStep selects the world-space tick spacing from the zoom breakpoint
// table (pixels per world unit).
func tickStep(zoom float64) float64 {
	switch {
	case zoom > 400:
		return 0.1
	case zoom > 200:
		return 0.25
	case zoom > 100:
		return 0.5
	case zoom > 50:
		return 1.0
	case zoom > 20:
		return 2.0
	case zoom > 10:
		return 5.0
	default:
		return 10.0
	}
}

// lightGridStep doubles a unit step until the on-screen spacing exceeds the
// 20-pixel minimum.
func lightGridStep(zoom float64) float64 {
	step := 1.0
	for step*zoom < lightGridMinSpacing {
		step *= 2.0
	}
	return step
}

func drawTicks(c Canvas, vp *Viewport) {
	step := tickStep(vp.Zoom)
	xmin, ymin, xmax, ymax := vp.WorldRect()

	// Round bounds outward to step multiples so edge ticks are not lost.
	x0 := math.Floor(xmin/step) * step
	x1 := math.Ceil(xmax/step) * step
	y0 := math.Floor(ymin/step) * step
	y1 := math.Ceil(ymax/step) * step

	h := float64(vp.H)
	w := float64(vp.W)

	for x := x0; x <= x1; x += step {
		sp := vp.WorldToScreen(Vec2{X: x, Y: 0})
		c.Line(Vec2{X: sp.X, Y: 0}, Vec2{X: sp.X, Y: h}, gridLineColor, gridThickness)
		if isOrigin(x, step) {
			continue
		}
		c.Line(Vec2{X: sp.X, Y: sp.Y - tickHalfLen}, Vec2{X: sp.X, Y: sp.Y + tickHalfLen}, axisColor, gridThickness)
		c.Text(Vec2{X: sp.X + 2, Y: sp.Y + 12}, labelColor, formatTick(x))
	}

	for y := y0; y <= y1; y += step {
		sp := vp.WorldToScreen(Vec2{X: 0, Y: y})
		c.Line(Vec2{X: 0, Y: sp.Y}, Vec2{X: w, Y: sp.Y}, gridLineColor, gridThickness)
		if isOrigin(y, step) {
			continue
		}
		c.Line(Vec2{X: sp.X - tickHalfLen, Y: sp.Y}, Vec2{X: sp.X + tickHalfLen, Y: sp.Y}, axisColor, gridThickness)
		c.Text(Vec2{X: sp.X + 5, Y: sp.Y - 3}, labelColor, formatTick(y))
	}
}

// drawLightGrid walks integer multiples outward from the origin, the way the
// reference renderer does when nothing is plotted.
func drawLightGrid(c Canvas, vp *Viewport) {
	step := lightGridStep(vp.Zoom)
	origin := vp.WorldToScreen(Vec2{})
	w := float64(vp.W)
	h := float64(vp.H)

	for x := step; ; x += step {
		d := x * vp.Zoom
		if origin.X+d >= w && origin.X-d < 0 {
			break
		}
		c.Line(Vec2{X: origin.X + d, Y: 0}, Vec2{X: origin.X + d, Y: h}, lightGridColor, gridThickness)
		c.Line(Vec2{X: origin.X - d, Y: 0}, Vec2{X: origin.X - d, Y: h}, lightGridColor, gridThickness)
	}
	for y := step; ; y += step {
		d := y * vp.Zoom
		if origin.Y+d >= h && origin.Y-d < 0 {
			break
		}
		c.Line(Vec2{X: 0, Y: origin.Y + d}, Vec2{X: w, Y: origin.Y + d}, lightGridColor, gridThickness)
		c.Line(Vec2{X: 0, Y: origin.Y - d}, Vec2{X: w, Y: origin.Y - d}, lightGridColor, gridThickness)
	}
}

func drawAxes(c Canvas, vp *Viewport) {
	origin := vp.WorldToScreen(Vec2{})
	c.Line(Vec2{X: 0, Y: origin.Y}, Vec2{X: float64(vp.W), Y: origin.Y}, axisColor, axisThickness)
	c.Line(Vec2{X: origin.X, Y: 0}, Vec2{X: origin.X, Y: float64(vp.H)}, axisColor, axisThickness)
}

// isOrigin suppresses the tick and label at the axis crossing, which would
// otherwise overlap the axes. Stepping accumulates floating error, so the
// comparison is against half a step rather than zero.
func isOrigin(v, step float64) bool {
	return math.Abs(v) < step*0.5
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
