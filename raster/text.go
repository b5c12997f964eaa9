package raster

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/guptanshuman124/ImGraph/graph"
)

// font is the single UI face; small enough for tick labels, readable in the
// expression panel.
var font tinyfont.Fonter = &proggy.TinySZ8pt7b

// LineHeight is the vertical advance for one row of text.
const LineHeight = 13

// Text draws s with its baseline starting at p.
func (t *Target) Text(p graph.Vec2, c graph.Color, s string) {
	if !finiteVec(p) {
		return
	}
	tinyfont.WriteLine(displayer{t}, font, int16(roundClamp(p.X)), int16(roundClamp(p.Y)), s,
		color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
}

// TextWidth measures the advance of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}

// displayer adapts a Target to the drivers.Displayer contract tinyfont draws
// through.
type displayer struct {
	t *Target
}

func (d displayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), graph.RGB(c.R, c.G, c.B))
}

func (d displayer) Display() error { return nil }
