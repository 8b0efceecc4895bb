package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/example/freehand/internal/canvasui"
	"github.com/example/freehand/internal/config"
	"github.com/example/freehand/internal/surface"
)

var runWindowFn = func(w *canvasui.Window) { w.Run() }

// drawCmd opens the interactive drawing window.
type drawCmd struct {
	output string
	width  int
	height int
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func defaultOutput(cfg *config.Config) string {
	if cfg != nil && cfg.SaveDir != "" {
		return filepath.Join(cfg.SaveDir, "drawing.png")
	}
	return "drawing.png"
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	var cfg *config.Config
	if r != nil {
		cfg = r.config
	}
	fs.StringVar(&d.output, "output", defaultOutput(cfg), "file written by Ctrl+S (.png or .pdf)")
	fs.IntVar(&d.width, "width", surface.DefaultWidth, "canvas width in pixels")
	fs.IntVar(&d.height, "height", surface.DefaultHeight, "canvas height in pixels")
	fs.Usage = usageFunc(d)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: d}
	}
	if d.width <= 0 || d.height <= 0 {
		return nil, fmt.Errorf("draw: invalid canvas size %dx%d", d.width, d.height)
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	var (
		b   brushFlags
		cfg *config.Config
	)
	if d.root != nil {
		b, cfg = d.root.brush, d.root.config
	}
	opts, err := surfaceOptions(b, cfg, d.width, d.height)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	s := surface.New(opts...)
	w := canvasui.New(s,
		canvasui.WithOutput(d.output),
		canvasui.WithNotifier(d.root.alerts()),
		canvasui.WithTitle(fmt.Sprintf("Freehand - %s", filepath.Base(d.output))),
	)
	runWindowFn(w)
	return nil
}
