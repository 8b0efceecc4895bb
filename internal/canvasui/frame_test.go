package canvasui

import (
	"image"
	"strings"
	"testing"

	"github.com/example/freehand/internal/background"
)

func TestDrawFrameLayout(t *testing.T) {
	c, _ := newTestControls(t)
	c.surface.SetBackgroundColor(background.DefaultColor)
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40+statusHeight))
	if err := drawFrame(dst, c.surface, c); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if got := dst.RGBAAt(20, 20); got != background.DefaultColor {
		t.Fatalf("canvas pixel = %v, want background", got)
	}
	if got := dst.RGBAAt(39, 40+statusHeight-1); got != statusBackground {
		t.Fatalf("status pixel = %v, want %v", got, statusBackground)
	}
}

func TestStatusLine(t *testing.T) {
	c, _ := newTestControls(t)
	got := statusLine(c.surface, c)
	for _, want := range []string{"solid", "15px", "#000000", "Ctrl+Z undo"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "  undo  ") {
		t.Errorf("status %q reports undo on an empty history", got)
	}
	drag(c)
	if got := statusLine(c.surface, c); !strings.Contains(got, "#000000  undo") {
		t.Errorf("status %q missing undo", got)
	}
	c.say("note")
	if got := statusLine(c.surface, c); got != "note" {
		t.Errorf("status = %q, want message", got)
	}
}
