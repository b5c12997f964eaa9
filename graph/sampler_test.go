package graph

import (
	"math"
	"testing"

	"github.com/guptanshuman124/ImGraph/graph/eval"
)

func TestSampleExplicitCoversVisibleRange(t *testing.T) {
	f, err := eval.Compile("x*x", "x")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	vp := NewViewport(400, 400) // x in [-2, 2]
	pts := SampleExplicit(vp, f)

	wantLen := int(4/explicitStepX) + 1
	if len(pts) < wantLen-1 || len(pts) > wantLen+1 {
		t.Fatalf("sample count %d, want ~%d", len(pts), wantLen)
	}

	for _, p := range pts {
		w := vp.ScreenToWorld(p)
		if math.Abs(w.Y-w.X*w.X) > 1e-9 {
			t.Fatalf("sample %v does not lie on the curve", w)
		}
	}
}

func TestSampleExplicitFollowsViewport(t *testing.T) {
	f, err := eval.Compile("x", "x")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	vp := NewViewport(400, 400)
	vp.PanBy(Vec2{X: -500}) // shift view right by 5 world units

	pts := SampleExplicit(vp, f)
	first := vp.ScreenToWorld(pts[0])
	if first.X < 2.9 {
		t.Fatalf("sampling did not follow the pan: first x = %g", first.X)
	}
}

func TestSampleParametricCircle(t *testing.T) {
	fx, err := eval.Compile("cos(t)", "t")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	fy, err := eval.Compile("sin(t)", "t")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	vp := NewViewport(400, 400)
	pts := SampleParametric(vp, fx, fy)

	wantLen := int((parametricTMax-parametricTMin)/parametricStep) + 1
	if len(pts) < wantLen-1 || len(pts) > wantLen+1 {
		t.Fatalf("sample count %d, want ~%d", len(pts), wantLen)
	}
	for _, p := range pts {
		w := vp.ScreenToWorld(p)
		if math.Abs(math.Hypot(w.X, w.Y)-1) > 1e-9 {
			t.Fatalf("parametric sample off the unit circle: %v", w)
		}
	}
}

func TestSamplePolarConstantRadius(t *testing.T) {
	f, err := eval.Compile("2", "theta")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	vp := NewViewport(400, 400)
	pts := SamplePolar(vp, f)

	if len(pts) == 0 {
		t.Fatal("no polar samples")
	}
	for _, p := range pts {
		w := vp.ScreenToWorld(p)
		if math.Abs(math.Hypot(w.X, w.Y)-2) > 1e-9 {
			t.Fatalf("polar sample off radius 2: %v", w)
		}
	}
	// Two full revolutions of theta.
	if got := int(polarThetaMax / polarStep); len(pts) < got-1 {
		t.Fatalf("polar range truncated: %d samples", len(pts))
	}
}

func TestSampleExplicitKeepsNonFinite(t *testing.T) {
	f, err := eval.Compile("1/x", "x")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	vp := NewViewport(400, 400)
	pts := SampleExplicit(vp, f)
	if len(pts) == 0 {
		t.Fatal("no samples")
	}
	// Samples straddling the pole must still be present; the canvas clips.
	if len(pts) < int(4/explicitStepX)-1 {
		t.Fatalf("pole dropped samples: %d", len(pts))
	}
}
