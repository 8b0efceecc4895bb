package canvasui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/palette"
	"github.com/example/freehand/internal/surface"
)

const statusHeight = 20

var (
	statusBackground = color.RGBA{220, 220, 220, 255}
	statusText       = color.RGBA{0, 0, 0, 255}
)

// drawFrame renders the canvas and the status bar below it into dst.
func drawFrame(dst *image.RGBA, s *surface.Controller, c *controls) error {
	b := dst.Bounds()
	canvas := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y-statusHeight)
	var err error
	if !canvas.Empty() {
		err = s.Render(dst.SubImage(canvas).(*image.RGBA))
	}
	bar := image.Rect(b.Min.X, b.Max.Y-statusHeight, b.Max.X, b.Max.Y)
	draw.Draw(dst, bar, image.NewUniform(statusBackground), image.Point{}, draw.Src)
	drawText(dst, bar, statusLine(s, c))
	return err
}

func drawText(dst *image.RGBA, r image.Rectangle, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(statusText), Face: face}
	ascent := face.Metrics().Ascent.Ceil()
	y := r.Min.Y + (r.Dy()+ascent)/2 - 1
	d.Dot = fixed.P(r.Min.X+4, y)
	d.DrawString(text)
}

// statusLine describes the brush state, or the transient message when one
// is showing.
func statusLine(s *surface.Controller, c *controls) string {
	if msg := c.Message(); msg != "" {
		return msg
	}
	width := s.BrushWidth()
	if s.LineType() == brush.Eraser {
		width = s.EraserWidth()
	}
	parts := []string{
		s.LineType().String(),
		fmt.Sprintf("%gpx", width),
		palette.Hex(s.Color()),
	}
	if s.CanUndo() {
		parts = append(parts, "undo")
	}
	if s.CanRedo() {
		parts = append(parts, "redo")
	}
	return strings.Join(parts, "  ") + "  |  " + strings.Join(c.Shortcuts(), "  ")
}
