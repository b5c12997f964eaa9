package graph

import (
	"strings"
	"testing"
)

func TestRegistryAddDefaults(t *testing.T) {
	r := NewRegistry()
	e := r.Add()

	if e.ID != 1 {
		t.Fatalf("first id = %d, want 1", e.ID)
	}
	if !e.Visible {
		t.Fatal("new expression not visible")
	}
	if e.Color != DefaultColor {
		t.Fatalf("new color %+v, want %+v", e.Color, DefaultColor)
	}
	if e.Thickness != DefaultThickness {
		t.Fatalf("new thickness %g, want %g", e.Thickness, DefaultThickness)
	}
	if e.Text != "" {
		t.Fatalf("new text %q, want empty", e.Text)
	}
}

func TestRegistryRemovePreservesOrder(t *testing.T) {
	r := NewRegistry()
	a := r.Add()
	b := r.Add()
	c := r.Add()
	a.SetText("a")
	b.SetText("b")
	c.SetText("c")

	if !r.Remove(b.ID) {
		t.Fatal("remove failed")
	}
	if r.Remove(b.ID) {
		t.Fatal("second remove of same id succeeded")
	}
	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	if r.At(0).Text != "a" || r.At(1).Text != "c" {
		t.Fatalf("order broken: %q %q", r.At(0).Text, r.At(1).Text)
	}

	// IDs never recycle.
	d := r.Add()
	if d.ID != 4 {
		t.Fatalf("id after remove = %d, want 4", d.ID)
	}
}

func TestRegistryByID(t *testing.T) {
	r := NewRegistry()
	e := r.Add()
	e.SetText("sin(x)")
	if got := r.ByID(e.ID); got != e {
		t.Fatalf("ByID(%d) = %v", e.ID, got)
	}
	if got := r.ByID(99); got != nil {
		t.Fatalf("ByID(99) = %v, want nil", got)
	}
}

func TestSetTextTruncates(t *testing.T) {
	e := &Expression{}
	e.SetText(strings.Repeat("x", MaxTextLen+100))
	if len(e.Text) != MaxTextLen {
		t.Fatalf("text length %d, want %d", len(e.Text), MaxTextLen)
	}
}

func TestVisibilityToggleKeepsMetadata(t *testing.T) {
	r := NewRegistry()
	e := r.Add()
	e.SetText("x^2")
	e.Color = Palette[2]

	e.Visible = !e.Visible
	if e.Text != "x^2" || e.Color != Palette[2] || e.ID != 1 {
		t.Fatalf("toggle mutated metadata: %+v", e)
	}
}
