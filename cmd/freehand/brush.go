package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/freehand/internal/background"
	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/config"
	"github.com/example/freehand/internal/palette"
	"github.com/example/freehand/internal/surface"
)

// brushFlags are the drawing defaults shared by every drawing command.
type brushFlags struct {
	lineType    string
	color       string
	brushWidth  float64
	eraserWidth float64
	background  string
}

func (b *brushFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&b.lineType, "line", "", "line type (solid, dash, signing, chisel, eraser)")
	fs.StringVar(&b.color, "color", "", "brush colour name or #RRGGBB[AA]")
	fs.Float64Var(&b.brushWidth, "brush-width", 0, "brush width in pixels")
	fs.Float64Var(&b.eraserWidth, "eraser-width", 0, "eraser width in pixels")
	fs.StringVar(&b.background, "background", "", "background colour, or image:<id> for grid, lined, dots or a file")
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func pickWidth(flagValue float64, cfgValue float32) float32 {
	if flagValue > 0 {
		return float32(flagValue)
	}
	return cfgValue
}

// surfaceOptions resolves the brush settings from flags, the environment
// and the config file, in that order.
func surfaceOptions(b brushFlags, cfg *config.Config, width, height int) ([]surface.Option, error) {
	if cfg == nil {
		cfg = config.New()
	}
	opts := []surface.Option{surface.WithSize(width, height)}

	if name := pick(b.lineType, os.Getenv("FREEHAND_LINE_TYPE"), cfg.LineType); name != "" {
		l, err := brush.ParseLineType(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, surface.WithLineType(l))
	}
	if spec := pick(b.color, os.Getenv("FREEHAND_COLOR"), cfg.Color); spec != "" {
		c, err := palette.ParseColor(spec)
		if err != nil {
			return nil, fmt.Errorf("brush color: %w", err)
		}
		opts = append(opts, surface.WithColor(c))
	}
	if w := pickWidth(b.brushWidth, cfg.BrushWidth); w > 0 {
		opts = append(opts, surface.WithBrushWidth(w))
	}
	if w := pickWidth(b.eraserWidth, cfg.EraserWidth); w > 0 {
		opts = append(opts, surface.WithEraserWidth(w))
	}
	if cfg.MaxBias > 0 {
		opts = append(opts, surface.WithMaxBias(cfg.MaxBias))
	}

	bgSpec := pick(b.background, cfg.Background)
	if bgSpec != "" {
		bg, err := parseBackground(bgSpec)
		if err != nil {
			return nil, err
		}
		opts = append(opts, surface.WithBackground(bg))
	}
	return opts, nil
}

func parseBackground(spec string) (background.Background, error) {
	if id, ok := strings.CutPrefix(spec, "image:"); ok {
		id = strings.TrimSpace(id)
		if id == "" {
			return background.Background{}, fmt.Errorf("background image id cannot be empty")
		}
		return background.Image(id), nil
	}
	c, err := palette.ParseColor(spec)
	if err != nil {
		return background.Background{}, fmt.Errorf("background: %w", err)
	}
	return background.Flat(c), nil
}
