package app

import (
	"github.com/guptanshuman124/ImGraph/graph"
	"github.com/guptanshuman124/ImGraph/hal"
	"github.com/guptanshuman124/ImGraph/internal/buildinfo"
	"github.com/guptanshuman124/ImGraph/raster"
)

var canvasBG = graph.RGB(0xFF, 0xFF, 0xFF)

// session is the per-run application state: the engine-owned registry and
// viewport plus the editor and pan/zoom interaction state. Everything runs on
// the single host frame thread.
type session struct {
	log   hal.Logger
	fb    hal.Framebuffer
	keys  <-chan hal.KeyEvent
	ptr   hal.Pointer
	ticks <-chan uint64
	now   uint64 // latest host tick (1ms)

	reg     *graph.Registry
	vp      *graph.Viewport
	plotter *graph.Plotter

	panel  *raster.Target
	canvas *raster.Target
	panelW int

	sel     int // selected registry row
	panning bool
	lastPtr hal.PointerState
}

func newSession(h hal.HAL, cfg Config) *session {
	fb := h.Display().Framebuffer()
	w := fb.Width()
	hh := fb.Height()
	panelW := w / 4

	root := raster.New(fb.Buffer(), fb.StrideBytes(), w, hh)

	s := &session{
		log:     h.Logger(),
		fb:      fb,
		reg:     graph.NewRegistry(),
		vp:      graph.NewViewport(w-panelW, hh),
		plotter: graph.NewPlotter(),
		panel:   root.Sub(0, 0, panelW, hh),
		canvas:  root.Sub(panelW, 0, w-panelW, hh),
		panelW:  panelW,
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
		s.ptr = in.Pointer()
	}
	if tm := h.Time(); tm != nil {
		s.ticks = tm.Ticks()
	}

	text := cfg.Expr
	if text == "" {
		text = DefaultExpression
	}
	s.reg.Add().SetText(text)

	if s.log != nil {
		s.log.WriteLineString("imgraph " + buildinfo.Short() + ": session started")
	}
	return s
}

// step advances one frame: drain input and time, apply pan/zoom, render.
func (s *session) step() error {
	s.drainTicks()
	s.handleKeys()
	s.handlePointer()
	s.render()
	return s.fb.Present()
}

// caretBlinkTicks is the caret half-period in host ticks (1ms each).
const caretBlinkTicks = 500

// drainTicks consumes the host tick stream, keeping only the newest count.
// A nil channel (no time device) leaves the caret in its initial phase.
func (s *session) drainTicks() {
	for {
		select {
		case n := <-s.ticks:
			s.now = n
		default:
			return
		}
	}
}

func (s *session) caretOn() bool {
	return (s.now/caretBlinkTicks)%2 == 0
}

func (s *session) handlePointer() {
	if s.ptr == nil {
		return
	}
	st := s.ptr.State()
	defer func() { s.lastPtr = st }()

	local := graph.V2(float64(st.X-s.panelW), float64(st.Y))
	inCanvas := st.X >= s.panelW && st.X < s.panelW+s.vp.W && st.Y >= 0 && st.Y < s.vp.H

	// One fixed factor per wheel notch; direction decides multiply vs divide.
	if inCanvas && st.Wheel != 0 {
		if st.Wheel > 0 {
			s.vp.ZoomAt(local, graph.WheelZoomStep)
		} else {
			s.vp.ZoomAt(local, 1/graph.WheelZoomStep)
		}
	}

	// Panning starts on a press inside the canvas and ends on release,
	// regardless of where the pointer has moved to.
	if st.Pressed && !s.lastPtr.Pressed && inCanvas {
		s.panning = true
	}
	if !st.Pressed {
		s.panning = false
	}
	if s.panning && s.lastPtr.Pressed {
		s.vp.PanBy(graph.V2(float64(st.X-s.lastPtr.X), float64(st.Y-s.lastPtr.Y)))
	}
}

func (s *session) render() {
	s.canvas.Fill(canvasBG)
	s.plotter.Render(s.canvas, s.vp, s.reg)
	s.renderPanel()
}
