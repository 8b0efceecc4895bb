package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/palette"
)

type colorsCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	colors := palette.Colors()
	if len(colors) == 0 {
		fmt.Fprintln(c.out, "no colors available")
		return nil
	}
	fmt.Fprintln(c.out, "available palette colors (* marks the default color):")
	defaultIdx := palette.Index(brush.DefaultColor)
	for idx, entry := range colors {
		marker := " "
		if idx == defaultIdx {
			marker = "*"
		}
		hex := palette.Hex(entry.Color)
		name := entry.Name
		if name == "" {
			name = hex
		}
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(c.out, "%s %2d: %-16s %s %s\n", marker, idx, name, hex, block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type widthsCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func parseWidthsCmd(args []string, r *root) (*widthsCmd, error) {
	fs := flag.NewFlagSet("widths", flag.ExitOnError)
	cmd := &widthsCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *widthsCmd) Run() error {
	widths := palette.Widths()
	if len(widths) == 0 {
		fmt.Fprintln(c.out, "no widths available")
		return nil
	}
	fmt.Fprintln(c.out, "available stroke widths (* marks the default width):")
	for _, width := range widths {
		marker := " "
		if width == brush.DefaultStrokeWidth {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %3gpx\n", marker, width)
	}
	fmt.Fprintf(c.out, "widths below %gpx are raised to %gpx\n", brush.MinStrokeWidth, brush.MinStrokeWidth)
	return nil
}

func (c *widthsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
