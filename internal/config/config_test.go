package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/freehand/internal/palette"
)

func TestParse(t *testing.T) {
	input := `
line_type = signing
color = "royalblue"
brush_width = 12.5
eraser_width: 40
max_bias = 4
background = image:grid
save_dir = /tmp/drawings

[notify]
export = true
copy = false

[palette.mine]
brick = #884422
mist: #DDEEFF80
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.LineType != "signing" || cfg.Color != "royalblue" {
		t.Errorf("line type %q colour %q", cfg.LineType, cfg.Color)
	}
	if cfg.BrushWidth != 12.5 || cfg.EraserWidth != 40 || cfg.MaxBias != 4 {
		t.Errorf("widths %v %v bias %v", cfg.BrushWidth, cfg.EraserWidth, cfg.MaxBias)
	}
	if id, ok := cfg.BackgroundImage(); !ok || id != "grid" {
		t.Errorf("background image = %q %v", id, ok)
	}
	if cfg.SaveDir != "/tmp/drawings" {
		t.Errorf("Expected save_dir '/tmp/drawings', got '%s'", cfg.SaveDir)
	}
	if !cfg.Notify.Export || cfg.Notify.Copy {
		t.Errorf("notify = %+v", cfg.Notify)
	}

	want := []palette.Entry{
		{Name: "brick", Color: color.RGBA{0x88, 0x44, 0x22, 0xFF}},
		{Name: "mist", Color: color.RGBA{0xDD, 0xEE, 0xFF, 0x80}},
	}
	if diff := cmp.Diff(want, cfg.Palettes["mine"]); diff != "" {
		t.Errorf("palette (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"brush_width = wide",
		"max_bias = -1",
		"[notify]\nexport = maybe",
		"[palette.x]\nbad = #12",
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%q) succeeded", in)
		}
	}
}

func TestBackgroundColourIsNotImage(t *testing.T) {
	cfg := &Config{Background: "papayawhip"}
	if _, ok := cfg.BackgroundImage(); ok {
		t.Fatalf("colour background reported as image")
	}
}

func TestCircular(t *testing.T) {
	input := `line_type = chisel
color = #336699
brush_width = 9
background = white
save_dir = /home/user/drawings

[notify]
export = true
copy = true

[palette.custom]
ink = #101820
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if diff := cmp.Diff(cfg, cfg2); diff != "" {
		t.Errorf("round trip (-first +second):\n%s", diff)
	}
}

func TestApplyPalettes(t *testing.T) {
	palette.Reset()
	t.Cleanup(palette.Reset)
	cfg := New()
	cfg.Palettes["a"] = []palette.Entry{{Name: "sand", Color: color.RGBA{1, 2, 3, 255}}}
	cfg.ApplyPalettes()
	got, err := palette.ParseColor("sand")
	if err != nil || got != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("ParseColor(sand) = %v, %v", got, err)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "freehand.rc")
	cfg := New()
	cfg.LineType = "dash"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	l := NewLoader("v1.0.0", path)
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("GetConfigPath = %q", got)
	}
	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.LineType != "dash" {
		t.Fatalf("line type = %q", loaded.LineType)
	}
}

func TestLoaderDevModeUsesWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	if err := os.WriteFile(filepath.Join(dir, ".freehandrc"), []byte("color = red\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	cfg, err := NewLoader("dev", "").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Color != "red" {
		t.Fatalf("colour = %q", cfg.Color)
	}
	cfg, err = NewLoader("v1", "").Load()
	if err != nil || cfg.Color != "" {
		t.Fatalf("release build read dev config: %+v %v", cfg, err)
	}
}
