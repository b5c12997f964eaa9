package app

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/guptanshuman124/ImGraph/raster"
)

func TestFitTextKeepsShortStrings(t *testing.T) {
	if got := fitText("x+1", 200); got != "x+1" {
		t.Fatalf("short string changed: %q", got)
	}
	if got := fitText("", 200); got != "" {
		t.Fatalf("empty string changed: %q", got)
	}
	if got := fitText("anything", 0); got != "" {
		t.Fatalf("zero budget kept text: %q", got)
	}
}

func TestFitTextTruncatesToBudget(t *testing.T) {
	long := strings.Repeat("x", 200)
	out := fitText(long, 60)
	if out == long {
		t.Fatal("nothing truncated")
	}
	if w := raster.TextWidth(out); w > 60 {
		t.Fatalf("truncated width %d over budget", w)
	}
	if out != long[:len(out)] {
		t.Fatalf("truncation is not a prefix: %q", out)
	}
}

func TestFitTextTruncatesOnRuneBoundary(t *testing.T) {
	mixed := "x^2 + " + strings.Repeat("π", 40)
	out := fitText(mixed, 60)
	if !utf8.ValidString(out) {
		t.Fatalf("truncation split a rune: %q", out)
	}
	if w := raster.TextWidth(out); w > 60 {
		t.Fatalf("truncated width %d over budget", w)
	}
}
