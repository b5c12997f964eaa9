package graph

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color in 8-bit channels. The canonical storage form is the
// 7-character hex string; Hex and ParseHex convert losslessly both ways.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

// Hex returns the canonical "#rrggbb" form. Alpha is not part of the stored
// form; it is a rendering concern.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ParseHex parses "#rrggbb" (case-insensitive) into a fully opaque Color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}

// DefaultColor is assigned to newly added expressions.
var DefaultColor = RGB(0xC7, 0x44, 0x40) // #c74440

// Palette is the ordered set of stroke colors the editor cycles through.
var Palette = []Color{
	RGB(0xC7, 0x44, 0x40), // red
	RGB(0x2D, 0x70, 0xB3), // blue
	RGB(0x38, 0x8C, 0x46), // green
	RGB(0x60, 0x42, 0xA6), // purple
	RGB(0xFA, 0x7E, 0x19), // orange
	RGB(0x00, 0x00, 0x00), // black
}

// NextPaletteColor returns the palette entry after c, or the first entry when
// c is not a palette color.
func NextPaletteColor(c Color) Color {
	for i, p := range Palette {
		if p == c {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
