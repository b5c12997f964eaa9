package app

import (
	"strconv"
	"strings"

	"github.com/guptanshuman124/ImGraph/graph"
	"github.com/guptanshuman124/ImGraph/hal"
	"github.com/guptanshuman124/ImGraph/raster"
)

// Panel theme.
var (
	panelBG    = graph.RGB(0x18, 0x18, 0x18)
	panelFG    = graph.RGB(0xEE, 0xEE, 0xEE)
	panelDim   = graph.RGB(0x88, 0x88, 0x88)
	panelSelBG = graph.RGB(0x30, 0x30, 0x30)
	panelErr   = graph.RGB(0xE0, 0x70, 0x50)
)

const (
	rowHeight  = raster.LineHeight + 9
	rowPadding = 4
	swatchSize = 10
)

func (s *session) handleKeys() {
	if s.keys == nil {
		return
	}
	for {
		select {
		case ev := <-s.keys:
			if ev.Press {
				s.handleKey(ev)
			}
		default:
			return
		}
	}
}

func (s *session) handleKey(ev hal.KeyEvent) {
	if ev.Code == hal.KeyUnknown && ev.Rune != 0 {
		s.editRune(ev.Rune)
		return
	}

	switch ev.Code {
	case hal.KeyUp:
		if s.sel > 0 {
			s.sel--
		}
	case hal.KeyDown:
		if s.sel < s.reg.Len()-1 {
			s.sel++
		}
	case hal.KeyBackspace:
		if ex := s.selected(); ex != nil && len(ex.Text) > 0 {
			ex.SetText(trimLastRune(ex.Text))
		}
	case hal.KeyEnter:
		s.reg.Add()
		s.sel = s.reg.Len() - 1
		if s.log != nil {
			s.log.WriteLineString("imgraph: expression added")
		}
	case hal.KeyDelete:
		if ex := s.selected(); ex != nil {
			s.reg.Remove(ex.ID)
			s.plotter.Forget(ex.ID)
			if s.sel >= s.reg.Len() {
				s.sel = s.reg.Len() - 1
			}
			if s.log != nil {
				s.log.WriteLineString("imgraph: expression removed")
			}
		}
	case hal.KeyTab:
		if ex := s.selected(); ex != nil {
			ex.Visible = !ex.Visible
		}
	case hal.KeyF1:
		if ex := s.selected(); ex != nil {
			ex.Color = graph.NextPaletteColor(ex.Color)
		}
	}
}

func (s *session) editRune(r rune) {
	ex := s.selected()
	if ex == nil {
		return
	}
	if r < 0x20 || r == 0x7F {
		return
	}
	ex.SetText(ex.Text + string(r))
}

func (s *session) selected() *graph.Expression {
	if s.sel < 0 || s.sel >= s.reg.Len() {
		return nil
	}
	return s.reg.At(s.sel)
}

func trimLastRune(s string) string {
	rs := []rune(s)
	return string(rs[:len(rs)-1])
}

// renderPanel draws the expression list and the footer help/status lines.
func (s *session) renderPanel() {
	s.panel.Fill(panelBG)
	w, h := s.panel.Size()

	s.panel.Text(graph.V2(rowPadding, 14), panelFG, "ImGraph")
	s.panel.Text(graph.V2(rowPadding, 28), panelDim, "zoom "+strconv.FormatFloat(s.vp.Zoom, 'f', 1, 64)+" px/unit")

	top := 40
	for i := 0; i < s.reg.Len(); i++ {
		ex := s.reg.At(i)
		y := top + i*rowHeight
		if y+rowHeight > h-2*rowHeight {
			break
		}
		if i == s.sel {
			s.panel.FillRect(0, y, w, rowHeight, panelSelBG)
		}

		sy := y + (rowHeight-swatchSize)/2
		s.panel.FillRect(rowPadding, sy, swatchSize, swatchSize, ex.Color)

		marker := "o"
		col := panelFG
		if !ex.Visible {
			marker = "-"
			col = panelDim
		}
		s.panel.Text(graph.V2(rowPadding+swatchSize+6, float64(y+15)), col, marker)

		text := ex.Text
		if text == "" && i != s.sel {
			text = "(empty)"
			col = panelDim
		}
		text = fitText(text, w-swatchSize-30)
		if i == s.sel && s.caretOn() {
			text += "_"
		}
		s.panel.Text(graph.V2(rowPadding+swatchSize+18, float64(y+15)), col, text)
	}

	// Footer: compile diagnostic for the selected row, then key help.
	if ex := s.selected(); ex != nil {
		if d := s.plotter.Diagnostic(ex.ID); d != "" {
			s.panel.Text(graph.V2(rowPadding, float64(h-rowHeight-8)), panelErr, fitText("! "+firstLine(d), w-2*rowPadding))
		}
	}
	s.panel.Text(graph.V2(rowPadding, float64(h-8)), panelDim, "enter:add del:rm tab:vis f1:color")
}

// fitText truncates s, on rune boundaries, until its measured glyph advance
// fits in maxPixels.
func fitText(s string, maxPixels int) string {
	if raster.TextWidth(s) <= maxPixels {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 {
		rs = rs[:len(rs)-1]
		if raster.TextWidth(string(rs)) <= maxPixels {
			break
		}
	}
	return string(rs)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
