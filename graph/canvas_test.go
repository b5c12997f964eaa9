package graph

// recCanvas records emitted primitives for assertions.
type recCanvas struct {
	lines     []recLine
	polylines []recPolyline
	circles   []recCircle
	texts     []recText
}

type recLine struct {
	a, b      Vec2
	c         Color
	thickness float64
}

type recPolyline struct {
	pts       []Vec2
	c         Color
	thickness float64
}

type recCircle struct {
	p      Vec2
	radius float64
	c      Color
}

type recText struct {
	p Vec2
	c Color
	s string
}

func (r *recCanvas) Line(a, b Vec2, c Color, thickness float64) {
	r.lines = append(r.lines, recLine{a: a, b: b, c: c, thickness: thickness})
}

func (r *recCanvas) Polyline(pts []Vec2, c Color, thickness float64) {
	r.polylines = append(r.polylines, recPolyline{pts: pts, c: c, thickness: thickness})
}

func (r *recCanvas) FillCircle(p Vec2, radius float64, c Color) {
	r.circles = append(r.circles, recCircle{p: p, radius: radius, c: c})
}

func (r *recCanvas) Text(p Vec2, c Color, s string) {
	r.texts = append(r.texts, recText{p: p, c: c, s: s})
}
