package graph

import "testing"

func TestColorHexRoundTrip(t *testing.T) {
	for _, c := range Palette {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("parse %q: %v", c.Hex(), err)
		}
		if got != c {
			t.Fatalf("round trip %q: got %+v, want %+v", c.Hex(), got, c)
		}
	}
}

func TestParseHexCaseInsensitive(t *testing.T) {
	c, err := ParseHex("#C74440")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != DefaultColor {
		t.Fatalf("got %+v, want %+v", c, DefaultColor)
	}
	if c.Hex() != "#c74440" {
		t.Fatalf("canonical form %q", c.Hex())
	}
}

func TestParseHexRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "c74440", "#c744", "#zzzzzz"} {
		if _, err := ParseHex(s); err == nil {
			t.Fatalf("ParseHex(%q) succeeded", s)
		}
	}
}

func TestNextPaletteColorCycles(t *testing.T) {
	c := Palette[0]
	for i := 0; i < len(Palette); i++ {
		c = NextPaletteColor(c)
	}
	if c != Palette[0] {
		t.Fatalf("palette does not wrap: ended at %+v", c)
	}
	if got := NextPaletteColor(RGB(1, 2, 3)); got != Palette[0] {
		t.Fatalf("unknown color: got %+v, want first palette entry", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := DefaultColor.WithAlpha(180)
	if c.A != 180 {
		t.Fatalf("alpha %d, want 180", c.A)
	}
	if DefaultColor.A != 0xFF {
		t.Fatal("WithAlpha mutated the receiver")
	}
}
