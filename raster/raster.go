// Package raster is a small software 2-D rasterizer over an RGB565
// framebuffer. It implements the graph.Canvas drawing surface: thick lines,
// polylines, filled circles and glyph text, with per-pixel clipping and
// source-over alpha blending.
//
// The package requires no host services; callers provide the backing buffer
// and layout (stride), and may carve translated sub-regions out of a target.
package raster

import "github.com/guptanshuman124/ImGraph/graph"

// Target renders into an RGB565 pixel buffer. The zero value is not usable;
// construct with New or Sub.
type Target struct {
	buf    []byte
	stride int // bytes per row in the root buffer

	// Sub-region placement: local (0,0) maps to root (offX, offY).
	offX, offY int
	w, h       int
}

// New wraps a full RGB565 buffer as a render target.
func New(buf []byte, stride, w, h int) *Target {
	return &Target{buf: buf, stride: stride, w: w, h: h}
}

// Sub returns a target for a translated, clipped region sharing the same
// backing buffer. Coordinates passed into the sub-target are local to it.
func (t *Target) Sub(x, y, w, h int) *Target {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > t.w {
		w = t.w - x
	}
	if y+h > t.h {
		h = t.h - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Target{
		buf:    t.buf,
		stride: t.stride,
		offX:   t.offX + x,
		offY:   t.offY + y,
		w:      w,
		h:      h,
	}
}

// Size returns the target dimensions in pixels.
func (t *Target) Size() (w, h int) { return t.w, t.h }

// SetPixel writes one pixel in local coordinates, blending when the color
// carries alpha. Out-of-bounds coordinates are clipped.
func (t *Target) SetPixel(x, y int, c graph.Color) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	off := (y+t.offY)*t.stride + (x+t.offX)*2
	if off < 0 || off+1 >= len(t.buf) {
		return
	}
	if c.A < 0xFF {
		bg := uint16(t.buf[off]) | uint16(t.buf[off+1])<<8
		c = blendOver(c, bg)
	}
	p := rgb565From888(c.R, c.G, c.B)
	t.buf[off] = byte(p)
	t.buf[off+1] = byte(p >> 8)
}

// Fill floods the whole target region with a solid color (alpha ignored).
func (t *Target) Fill(c graph.Color) {
	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.h; y++ {
		row := (y + t.offY) * t.stride
		for x := 0; x < t.w; x++ {
			off := row + (x+t.offX)*2
			if off < 0 || off+1 >= len(t.buf) {
				continue
			}
			t.buf[off] = lo
			t.buf[off+1] = hi
		}
	}
}

// FillRect fills an axis-aligned rectangle in local coordinates.
func (t *Target) FillRect(x, y, w, h int, c graph.Color) {
	x0 := clampInt(x, 0, t.w)
	y0 := clampInt(y, 0, t.h)
	x1 := clampInt(x+w, 0, t.w)
	y1 := clampInt(y+h, 0, t.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			t.SetPixel(px, py, c)
		}
	}
}

// blendOver composites src over an RGB565 background pixel.
func blendOver(src graph.Color, bg565 uint16) graph.Color {
	br, bgc, bb := rgb888From565(bg565)
	a := uint32(src.A)
	ia := 255 - a
	mix := func(s, b uint8) uint8 {
		return uint8((uint32(s)*a + uint32(b)*ia) / 255)
	}
	return graph.Color{R: mix(src.R, br), G: mix(src.G, bgc), B: mix(src.B, bb), A: 0xFF}
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) (r, g, b uint8) {
	r5 := uint8((p >> 11) & 0x1F)
	g6 := uint8((p >> 5) & 0x3F)
	b5 := uint8(p & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
