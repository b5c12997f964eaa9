package graph

import (
	"math"

	"github.com/guptanshuman124/ImGraph/graph/eval"
)

// Sampling constants. The explicit sampler covers only the visible world-x
// window; the parametric and polar ranges are fixed in parameter space and do
// not depend on zoom or pan.
const (
	explicitStepX = 0.05

	parametricTMin = -10.0
	parametricTMax = 10.0
	parametricStep = 0.02

	polarThetaMin = 0.0
	polarStep     = 0.02
)

var polarThetaMax = 4 * math.Pi

// SampleExplicit samples y=f(x) over the visible world-x range and returns
// the screen-space polyline. Non-finite values participate in point
// construction unchanged; clipping is the canvas's concern.
func SampleExplicit(vp *Viewport, f *eval.Evaluable) []Vec2 {
	xmin, _, xmax, _ := vp.WorldRect()
	pts := make([]Vec2, 0, int((xmax-xmin)/explicitStepX)+1)
	for x := xmin; x <= xmax; x += explicitStepX {
		f.Set("x", x)
		pts = append(pts, vp.WorldToScreen(Vec2{X: x, Y: f.Value()}))
	}
	return pts
}

// SampleParametric samples (f(t), g(t)) for t in [-10, 10].
func SampleParametric(vp *Viewport, fx, fy *eval.Evaluable) []Vec2 {
	pts := make([]Vec2, 0, int((parametricTMax-parametricTMin)/parametricStep)+1)
	for t := parametricTMin; t <= parametricTMax; t += parametricStep {
		fx.Set("t", t)
		fy.Set("t", t)
		pts = append(pts, vp.WorldToScreen(Vec2{X: fx.Value(), Y: fy.Value()}))
	}
	return pts
}

// SamplePolar samples r=f(theta) for theta in [0, 4π] and converts to
// Cartesian coordinates.
func SamplePolar(vp *Viewport, f *eval.Evaluable) []Vec2 {
	pts := make([]Vec2, 0, int((polarThetaMax-polarThetaMin)/polarStep)+1)
	for theta := polarThetaMin; theta <= polarThetaMax; theta += polarStep {
		f.Set("theta", theta)
		r := f.Value()
		pts = append(pts, vp.WorldToScreen(Vec2{
			X: r * math.Cos(theta),
			Y: r * math.Sin(theta),
		}))
	}
	return pts
}
