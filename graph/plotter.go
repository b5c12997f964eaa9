package graph

import (
	"github.com/guptanshuman124/ImGraph/graph/eval"
)

// plan is one expression's compiled form for the frame: the classified kind
// plus the evaluable sub-expression(s) it needs.
type plan struct {
	kind FormKind
	f    *eval.Evaluable // primary: explicit/polar/inequality/implicit/parametric-x
	g    *eval.Evaluable // parametric-y
}

type cacheEntry struct {
	text string
	pl   *plan // nil when the text failed to compile
	err  error
}

// Plotter renders the expression registry into a canvas each frame.
//
// Compiled forms are memoized per expression, keyed by the expression ID and
// invalidated whenever the text changes, so unchanged formulas are not
// recompiled every frame. The cache is an optimization only: output is
// identical to classifying and compiling from scratch.
type Plotter struct {
	cache map[int]cacheEntry
}

func NewPlotter() *Plotter {
	return &Plotter{cache: make(map[int]cacheEntry)}
}

// Render draws one frame: gridlines and axes, then every visible expression
// that classified and compiled. The full tick pass runs when at least one
// expression plots; the light grid pass runs otherwise. Invisible expressions
// are skipped entirely and failed compiles contribute nothing, without
// affecting other expressions.
func (p *Plotter) Render(c Canvas, vp *Viewport, reg *Registry) {
	type item struct {
		ex *Expression
		pl *plan
	}
	var items []item
	for i := 0; i < reg.Len(); i++ {
		ex := reg.At(i)
		if !ex.Visible {
			continue
		}
		if pl := p.plan(ex); pl != nil {
			items = append(items, item{ex: ex, pl: pl})
		}
	}

	DrawGrid(c, vp, len(items) > 0)

	for _, it := range items {
		drawPlan(c, vp, it.ex, it.pl)
	}
}

// Diagnostic returns the compile error text for an expression, or "" when it
// compiled (or has not been rendered yet). Purely informational: drawing
// behavior is unaffected.
func (p *Plotter) Diagnostic(id int) string {
	if e, ok := p.cache[id]; ok && e.err != nil {
		return e.err.Error()
	}
	return ""
}

// Forget drops the cached form for an expression, e.g. after removal.
func (p *Plotter) Forget(id int) {
	delete(p.cache, id)
}

func (p *Plotter) plan(ex *Expression) *plan {
	if ex.ID < 0 {
		// Unset identity: nothing to key the cache on.
		pl, _ := compileForm(Classify(ex.Text))
		return pl
	}
	if e, ok := p.cache[ex.ID]; ok && e.text == ex.Text {
		return e.pl
	}
	pl, err := compileForm(Classify(ex.Text))
	p.cache[ex.ID] = cacheEntry{text: ex.Text, pl: pl, err: err}
	return pl
}

// compileForm builds the binding set the classified form requires and
// compiles its sub-expression(s). Any failure yields a nil plan; there is no
// fallback to a later classification branch.
func compileForm(form Form) (*plan, error) {
	switch form.Kind {
	case FormParametric:
		f, err := eval.Compile(form.X, "t")
		if err != nil {
			return nil, err
		}
		g, err := eval.Compile(form.Y, "t")
		if err != nil {
			return nil, err
		}
		return &plan{kind: form.Kind, f: f, g: g}, nil
	case FormInequality, FormImplicit:
		f, err := eval.Compile(form.X, "x", "y")
		if err != nil {
			return nil, err
		}
		return &plan{kind: form.Kind, f: f}, nil
	case FormPolar:
		f, err := eval.Compile(form.X, "theta")
		if err != nil {
			return nil, err
		}
		return &plan{kind: form.Kind, f: f}, nil
	default:
		f, err := eval.Compile(form.X, "x")
		if err != nil {
			return nil, err
		}
		return &plan{kind: FormExplicit, f: f}, nil
	}
}

func drawPlan(c Canvas, vp *Viewport, ex *Expression, pl *plan) {
	switch pl.kind {
	case FormParametric:
		c.Polyline(SampleParametric(vp, pl.f, pl.g), ex.Color, ex.Thickness)
	case FormInequality:
		RenderInequality(c, vp, pl.f, ex.Color)
	case FormImplicit:
		RenderImplicit(c, vp, pl.f, ex.Color)
	case FormPolar:
		c.Polyline(SamplePolar(vp, pl.f), ex.Color, ex.Thickness)
	default:
		c.Polyline(SampleExplicit(vp, pl.f), ex.Color, ex.Thickness)
	}
}
