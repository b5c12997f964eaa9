package graph

const (
	// MinZoom and MaxZoom bound the zoom scalar (pixels per world unit).
	MinZoom = 10.0
	MaxZoom = 1000.0

	// WheelZoomStep is the fixed factor applied per discrete wheel notch:
	// multiplied on wheel-up, divided on wheel-down.
	WheelZoomStep = 1.1
)

// Viewport is the affine world↔screen transform for one plotting canvas.
//
// World y grows upward, screen y grows downward:
//
//	screen = center + Pan + (world.X*Zoom, -world.Y*Zoom)
type Viewport struct {
	Zoom float64 // pixels per world unit, kept in [MinZoom, MaxZoom]
	Pan  Vec2    // pixel offset of the world origin from the canvas center
	W, H int     // canvas size in pixels
}

func NewViewport(w, h int) *Viewport {
	return &Viewport{Zoom: 100, W: w, H: h}
}

func (v *Viewport) center() Vec2 {
	return Vec2{X: float64(v.W) * 0.5, Y: float64(v.H) * 0.5}
}

func (v *Viewport) WorldToScreen(p Vec2) Vec2 {
	c := v.center()
	return Vec2{
		X: c.X + v.Pan.X + p.X*v.Zoom,
		Y: c.Y + v.Pan.Y - p.Y*v.Zoom,
	}
}

func (v *Viewport) ScreenToWorld(p Vec2) Vec2 {
	c := v.center()
	return Vec2{
		X: (p.X - c.X - v.Pan.X) / v.Zoom,
		Y: -(p.Y - c.Y - v.Pan.Y) / v.Zoom,
	}
}

// PanBy shifts the view by a pixel delta.
func (v *Viewport) PanBy(delta Vec2) {
	v.Pan = v.Pan.Add(delta)
}

// ZoomAt scales the zoom by factor while keeping the world point under the
// cursor visually fixed. The cursor is in canvas-local pixels.
func (v *Viewport) ZoomAt(cursor Vec2, factor float64) {
	w := v.ScreenToWorld(cursor)

	z := v.Zoom * factor
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	v.Zoom = z

	// Re-solve Pan so that WorldToScreen(w) == cursor under the new zoom.
	c := v.center()
	v.Pan.X = cursor.X - c.X - w.X*v.Zoom
	v.Pan.Y = cursor.Y - c.Y + w.Y*v.Zoom
}

// WorldRect returns the visible world rectangle (xmin, ymin, xmax, ymax).
func (v *Viewport) WorldRect() (xmin, ymin, xmax, ymax float64) {
	tl := v.ScreenToWorld(Vec2{X: 0, Y: 0})
	br := v.ScreenToWorld(Vec2{X: float64(v.W), Y: float64(v.H)})
	return tl.X, br.Y, br.X, tl.Y
}
