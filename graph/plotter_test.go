package graph

import (
	"strings"
	"testing"
)

func TestRenderDrawsVisibleExpressions(t *testing.T) {
	reg := NewRegistry()
	reg.Add().SetText("sin(x)")
	reg.Add().SetText("(cos(t), sin(t))")

	p := NewPlotter()
	vp := NewViewport(400, 400)
	rec := &recCanvas{}
	p.Render(rec, vp, reg)

	if len(rec.polylines) != 2 {
		t.Fatalf("polylines = %d, want 2", len(rec.polylines))
	}
	// Curves carry the expression's color and thickness.
	for _, pl := range rec.polylines {
		if pl.c != DefaultColor || pl.thickness != DefaultThickness {
			t.Fatalf("curve style %+v %g", pl.c, pl.thickness)
		}
	}
}

func TestRenderSkipsBrokenExpression(t *testing.T) {
	reg := NewRegistry()
	bad := reg.Add()
	bad.SetText("sin(x") // does not compile
	good := reg.Add()
	good.SetText("x")

	p := NewPlotter()
	vp := NewViewport(400, 400)
	rec := &recCanvas{}
	p.Render(rec, vp, reg)

	if len(rec.polylines) != 1 {
		t.Fatalf("polylines = %d, want 1", len(rec.polylines))
	}
	if d := p.Diagnostic(bad.ID); d == "" || !strings.Contains(d, "sin(x") {
		t.Fatalf("diagnostic = %q", d)
	}
	if d := p.Diagnostic(good.ID); d != "" {
		t.Fatalf("good expression has diagnostic %q", d)
	}
}

func TestRenderSkipsInvisible(t *testing.T) {
	reg := NewRegistry()
	e := reg.Add()
	e.SetText("x^2")
	e.Visible = false

	p := NewPlotter()
	vp := NewViewport(400, 400)
	rec := &recCanvas{}
	p.Render(rec, vp, reg)

	if len(rec.polylines) != 0 {
		t.Fatalf("invisible expression drew %d polylines", len(rec.polylines))
	}
	// Nothing plotted, so the light grid (no labels) is used.
	if len(rec.texts) != 0 {
		t.Fatalf("light grid pass drew %d labels", len(rec.texts))
	}
}

func TestRenderGridModeFollowsPlots(t *testing.T) {
	reg := NewRegistry()
	reg.Add().SetText("x")

	p := NewPlotter()
	vp := NewViewport(400, 400)
	rec := &recCanvas{}
	p.Render(rec, vp, reg)
	if len(rec.texts) == 0 {
		t.Fatal("plotted frame missing tick labels")
	}
}

func TestPlanCacheInvalidatesOnTextChange(t *testing.T) {
	reg := NewRegistry()
	e := reg.Add()
	e.SetText("sin(x")

	p := NewPlotter()
	vp := NewViewport(200, 200)

	p.Render(&recCanvas{}, vp, reg)
	if p.Diagnostic(e.ID) == "" {
		t.Fatal("want diagnostic for broken text")
	}

	e.SetText("sin(x)")
	rec := &recCanvas{}
	p.Render(rec, vp, reg)
	if p.Diagnostic(e.ID) != "" {
		t.Fatalf("stale diagnostic after edit: %q", p.Diagnostic(e.ID))
	}
	if len(rec.polylines) != 1 {
		t.Fatalf("edited expression not drawn: %d polylines", len(rec.polylines))
	}
}

func TestForgetDropsDiagnostic(t *testing.T) {
	reg := NewRegistry()
	e := reg.Add()
	e.SetText("sin(x")

	p := NewPlotter()
	p.Render(&recCanvas{}, NewViewport(200, 200), reg)
	reg.Remove(e.ID)
	p.Forget(e.ID)
	if p.Diagnostic(e.ID) != "" {
		t.Fatalf("diagnostic survived Forget: %q", p.Diagnostic(e.ID))
	}
}

func TestRenderEveryFormKind(t *testing.T) {
	texts := []string{
		"x^2",                    // explicit
		"(cos(t), sin(t))",       // parametric
		"x^2+y^2 < 1",            // inequality
		"x^2+y^2 = 1",            // implicit
		"r = 1 + 0.5*cos(theta)", // polar
	}
	reg := NewRegistry()
	for _, s := range texts {
		reg.Add().SetText(s)
	}

	p := NewPlotter()
	vp := NewViewport(400, 400)
	rec := &recCanvas{}
	p.Render(rec, vp, reg)

	if len(rec.polylines) != 3 {
		t.Fatalf("polylines = %d, want 3 (explicit, parametric, polar)", len(rec.polylines))
	}
	if len(rec.circles) == 0 {
		t.Fatal("implicit/inequality forms drew no dots")
	}
}
