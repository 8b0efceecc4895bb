package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/geometry"
)

func line(x0, y0, x1, y1 float32) *geometry.Path {
	b := geometry.NewBuilder()
	b.Begin(x0, y0)
	b.Extend(x1, y1)
	b.Extend(x1, y1)
	return b.Finish()
}

func solid(width float32) brush.PaintOptions {
	p := brush.NewPaintOptions()
	ctx := brush.NewContext()
	ctx.ApplyLineTypeSwitch(&p, width)
	return p
}

func eraser(width float32) brush.PaintOptions {
	p := brush.NewPaintOptions()
	ctx := brush.NewContext()
	ctx.SetLineType(brush.Eraser)
	ctx.ApplyLineTypeSwitch(&p, width)
	return p
}

func TestInkDrawsSolidStroke(t *testing.T) {
	ink, err := Ink(40, 40, []Stroke{{Path: line(5, 20, 35, 20), Paint: solid(10)}})
	if err != nil {
		t.Fatalf("Ink: %v", err)
	}
	if a := ink.RGBAAt(20, 20).A; a < 250 {
		t.Fatalf("alpha on stroke = %d, want opaque", a)
	}
	if a := ink.RGBAAt(20, 2).A; a != 0 {
		t.Fatalf("alpha off stroke = %d, want 0", a)
	}
}

func TestEraserLeavesTransparentInk(t *testing.T) {
	strokes := []Stroke{
		{Path: line(5, 20, 35, 20), Paint: solid(10)},
		{Path: line(5, 20, 35, 20), Paint: eraser(16)},
	}
	ink, err := Ink(40, 40, strokes)
	if err != nil {
		t.Fatalf("Ink: %v", err)
	}
	if got := ink.RGBAAt(20, 20); got.A > 2 {
		t.Fatalf("erased pixel = %+v, want transparent", got)
	}

	dst := image.NewRGBA(ink.Bounds())
	Flatten(dst, color.RGBA{R: 255, A: 255}, nil, ink)
	if got := dst.RGBAAt(20, 20); got.R < 250 || got.G > 2 || got.B > 2 {
		t.Fatalf("flattened erased pixel = %+v, want background", got)
	}
}

func TestEraserLayerIsOpaque(t *testing.T) {
	rub := eraser(16)
	rub.Alpha = 0x40
	ink, err := Ink(40, 40, []Stroke{
		{Path: line(5, 20, 35, 20), Paint: solid(10)},
		{Path: line(5, 20, 35, 20), Paint: rub},
	})
	if err != nil {
		t.Fatalf("Ink: %v", err)
	}
	if got := ink.RGBAAt(20, 20); got.A > 2 {
		t.Fatalf("pixel under translucent eraser = %+v, want transparent", got)
	}
}

func TestEraseScalesByMaskAlpha(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 1))
	dst.SetRGBA(0, 0, color.RGBA{R: 200, A: 200})
	dst.SetRGBA(1, 0, color.RGBA{G: 100, A: 100})
	mask := image.NewRGBA(dst.Bounds())
	mask.SetRGBA(0, 0, color.RGBA{A: 255})
	Erase(dst, mask)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Fatalf("fully masked pixel = %+v", got)
	}
	if got := dst.RGBAAt(1, 0); got != (color.RGBA{G: 100, A: 100}) {
		t.Fatalf("unmasked pixel = %+v", got)
	}
}

func TestDotStroke(t *testing.T) {
	b := geometry.NewBuilder()
	b.Begin(10, 10)
	ink, err := Ink(20, 20, []Stroke{{Path: b.Finish(), Paint: solid(8)}})
	if err != nil {
		t.Fatalf("Ink: %v", err)
	}
	if a := ink.RGBAAt(10, 10).A; a == 0 {
		t.Fatalf("dot not drawn")
	}
}

func TestEmptyPathDrawsNothing(t *testing.T) {
	ink, err := Ink(8, 8, []Stroke{{Path: &geometry.Path{}, Paint: solid(8)}})
	if err != nil {
		t.Fatalf("Ink: %v", err)
	}
	for _, v := range ink.Pix {
		if v != 0 {
			t.Fatalf("expected blank ink")
		}
	}
}

func TestInkRejectsEmptyCanvas(t *testing.T) {
	if _, err := Ink(0, 10, nil); !errors.Is(err, ErrEmptyCanvas) {
		t.Fatalf("err = %v, want ErrEmptyCanvas", err)
	}
}

func TestFlattenUsesBackdrop(t *testing.T) {
	backdrop := image.NewUniform(color.RGBA{B: 255, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Flatten(dst, color.White, backdrop, nil)
	if got := dst.RGBAAt(3, 3); got != (color.RGBA{B: 255, A: 255}) {
		t.Fatalf("pixel = %+v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	var buf bytes.Buffer
	if err := Encode(&buf, img, PNG); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v", out.Bounds())
	}
}

func TestEncodePDF(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	var buf bytes.Buffer
	if err := Encode(&buf, img, PDF); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a pdf: %q", buf.Bytes()[:8])
	}
}

func TestFormats(t *testing.T) {
	if f := FormatForPath("out/drawing.PDF"); f != PDF {
		t.Fatalf("FormatForPath = %q", f)
	}
	if f := FormatForPath("drawing.png"); f != PNG {
		t.Fatalf("FormatForPath = %q", f)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Fatalf("expected error for gif")
	}
	if f, err := ParseFormat(" PDF "); err != nil || f != PDF {
		t.Fatalf("ParseFormat = %q, %v", f, err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WriteFile(path, image.NewRGBA(image.Rect(0, 0, 2, 2)), FormatForPath(path)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.png"), image.NewRGBA(image.Rect(0, 0, 1, 1)), PNG); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
