package palette

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultPaletteStartsBlackEndsWhite(t *testing.T) {
	Reset()
	cs := Colors()
	if cs[0].Color != (color.RGBA{A: 255}) {
		t.Fatalf("first colour = %+v", cs[0])
	}
	if last := cs[len(cs)-1]; last.Color != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("last colour = %+v", last)
	}
	for _, e := range cs {
		if e.Color.A != 255 {
			t.Fatalf("%s not resolved: %+v", e.Name, e.Color)
		}
	}
}

func TestParseColor(t *testing.T) {
	Reset()
	tests := map[string]color.RGBA{
		"red":       {255, 0, 0, 255},
		" HotPink ": {255, 105, 180, 255},
		"#102030":   {0x10, 0x20, 0x30, 0xFF},
		"#10203040": {0x10, 0x20, 0x30, 0x40},
	}
	for in, want := range tests {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", in, got, want)
		}
	}
	for _, bad := range []string{"", "#12", "#GGGGGG", "notacolour"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestEnsureAddsCustomColour(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	n := Len()
	col := color.RGBA{1, 2, 3, 255}
	idx := Ensure(col, "")
	if idx != n || At(idx).Name != "#010203" {
		t.Fatalf("Ensure = %d %+v", idx, At(idx))
	}
	if again := Ensure(col, "other"); again != idx {
		t.Fatalf("duplicate colour added at %d", again)
	}
	got, err := ParseColor("#010203")
	if err != nil || got != col {
		t.Fatalf("ParseColor = %+v %v", got, err)
	}
	if Index(col) != idx {
		t.Fatalf("Index = %d", Index(col))
	}
}

func TestAtWraps(t *testing.T) {
	Reset()
	if At(-1) != At(Len()-1) || At(Len()) != At(0) {
		t.Fatalf("At did not wrap")
	}
}

func TestEnsureWidthKeepsOrder(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	idx := EnsureWidth(12)
	want := []float32{3, 6, 10, 12, 15, 20, 30, 45}
	if diff := cmp.Diff(want, Widths()); diff != "" {
		t.Fatalf("widths (-want +got):\n%s", diff)
	}
	if idx != 3 || EnsureWidth(12) != 3 {
		t.Fatalf("index = %d", idx)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{0xAB, 0xCD, 0xEF, 0xFF}); got != "#ABCDEF" {
		t.Fatalf("Hex = %s", got)
	}
	if got := Hex(color.RGBA{1, 2, 3, 4}); got != "#01020304" {
		t.Fatalf("Hex = %s", got)
	}
}
