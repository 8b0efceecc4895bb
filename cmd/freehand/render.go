package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/freehand/internal/clipboard"
	"github.com/example/freehand/internal/config"
	"github.com/example/freehand/internal/render"
	"github.com/example/freehand/internal/script"
	"github.com/example/freehand/internal/surface"
)

var copyImageFn = clipboard.WriteImage

// renderCmd replays a gesture script and exports the result.
type renderCmd struct {
	scriptPath  string
	output      string
	format      string
	width       int
	height      int
	toClipboard bool
	stdin       io.Reader
	stdout      io.Writer
	*root
	fs *flag.FlagSet
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	c := &renderCmd{root: r, fs: fs, stdin: os.Stdin, stdout: os.Stdout}
	fs.StringVar(&c.scriptPath, "script", "", "gesture script to replay, - for stdin")
	fs.StringVar(&c.output, "output", "drawing.png", "output file, - for stdout")
	fs.StringVar(&c.format, "format", "", "output format (png, pdf); defaults to the output extension")
	fs.IntVar(&c.width, "width", surface.DefaultWidth, "canvas width in pixels")
	fs.IntVar(&c.height, "height", surface.DefaultHeight, "canvas height in pixels")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "also copy the drawing to the clipboard")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.scriptPath == "" {
		return nil, fmt.Errorf("render: -script is required")
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("render: invalid canvas size %dx%d", c.width, c.height)
	}
	if c.format != "" {
		if _, err := render.ParseFormat(c.format); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}
	return c, nil
}

func (c *renderCmd) openScript() (io.ReadCloser, error) {
	if c.scriptPath == "-" {
		return io.NopCloser(c.stdin), nil
	}
	return os.Open(c.scriptPath)
}

func (c *renderCmd) outputFormat() render.Format {
	if c.format != "" {
		f, _ := render.ParseFormat(c.format)
		return f
	}
	if c.output == "-" {
		return render.PNG
	}
	return render.FormatForPath(c.output)
}

func (c *renderCmd) Run() error {
	var (
		b   brushFlags
		cfg *config.Config
	)
	if c.root != nil {
		b, cfg = c.root.brush, c.root.config
	}
	opts, err := surfaceOptions(b, cfg, c.width, c.height)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	s := surface.New(opts...)

	f, err := c.openScript()
	if err != nil {
		return fmt.Errorf("render: open script: %w", err)
	}
	defer f.Close()
	if err := script.Run(f, s); err != nil {
		return fmt.Errorf("render %s: %w", c.scriptPath, err)
	}

	img, err := s.ExportRaster()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	format := c.outputFormat()
	if c.output == "-" {
		if err := render.Encode(c.stdout, img, format); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	} else {
		if err := render.WriteFile(c.output, img, format); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", c.output)
		c.root.notifyExport(c.output, img)
	}

	if c.toClipboard {
		if err := copyImageFn(img); err != nil {
			return fmt.Errorf("render: copy to clipboard: %w", err)
		}
		c.root.notifyCopy("drawing")
	}
	return nil
}
