package background

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBackgroundKindsAreExclusive(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	b := Flat(red)
	if b.IsImage() || b.ImageID() != "" || b.Color() != red {
		t.Fatalf("flat background = %v", b)
	}
	b = Image("grid")
	if !b.IsImage() || b.ImageID() != "grid" || b.Color() != DefaultColor {
		t.Fatalf("image background = %v", b)
	}
	if Default().Color() != DefaultColor || Default().IsImage() {
		t.Fatalf("default background = %v", Default())
	}
}

func TestResolveBuiltin(t *testing.T) {
	r := &Resolver{}
	img, err := r.Resolve("grid", 50, 30)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 50, 30) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := color.RGBAModel.Convert(img.At(0, 5)).(color.RGBA); got != rule {
		t.Fatalf("grid line pixel = %+v", got)
	}
	if got := color.RGBAModel.Convert(img.At(5, 5)).(color.RGBA); got != paper {
		t.Fatalf("paper pixel = %+v", got)
	}
}

func TestResolveRegisteredIsScaled(t *testing.T) {
	r := &Resolver{}
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	r.Register("tile", src)
	img, err := r.Resolve("tile", 8, 8)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if !r.Known("tile") {
		t.Fatalf("registered id not known")
	}
}

func TestResolveFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 255, 255
	}
	f, err := os.Create(filepath.Join(dir, "sunset.png"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	r := &Resolver{ConfigDir: dir}
	img, err := r.Resolve("sunset", 4, 4)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("pixel = %+v", got)
	}
	if _, err := r.Resolve(filepath.Join(dir, "sunset.png"), 2, 2); err != nil {
		t.Fatalf("Resolve by path: %v", err)
	}
}

func TestResolveUnknown(t *testing.T) {
	r := &Resolver{ConfigDir: t.TempDir()}
	if _, err := r.Resolve("nope", 4, 4); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if r.Known("nope") {
		t.Fatalf("unknown id reported as known")
	}
}

func TestResolveCachesBySize(t *testing.T) {
	r := &Resolver{}
	a, _ := r.Resolve("dots", 10, 10)
	b, _ := r.Resolve("dots", 10, 10)
	if a != b {
		t.Fatalf("expected cached image")
	}
	c, _ := r.Resolve("dots", 12, 10)
	if c == a {
		t.Fatalf("cache ignored size")
	}
}

func TestBuiltins(t *testing.T) {
	got := Builtins()
	want := []string{"dots", "grid", "lined"}
	if len(got) != len(want) {
		t.Fatalf("Builtins = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Builtins = %v", got)
		}
	}
}
