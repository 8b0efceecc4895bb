package config

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/example/freehand/internal/palette"
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
}

// Config holds the application configuration. Empty strings and zero
// widths mean "use the built-in default".
type Config struct {
	LineType    string
	Color       string
	BrushWidth  float32
	EraserWidth float32
	MaxBias     float32
	Background  string
	SaveDir     string
	Notify      Notify
	Palettes    map[string][]palette.Entry
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Palettes: make(map[string][]palette.Entry),
	}
}

// BackgroundImage splits an "image:<id>" background setting. ok is false
// for colour backgrounds.
func (c *Config) BackgroundImage() (id string, ok bool) {
	id, ok = strings.CutPrefix(c.Background, "image:")
	return strings.TrimSpace(id), ok
}

// PaletteNames returns the custom palette section names in sorted order.
func (c *Config) PaletteNames() []string {
	names := make([]string, 0, len(c.Palettes))
	for name := range c.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPalettes adds every custom colour to the global palette.
func (c *Config) ApplyPalettes() {
	for _, name := range c.PaletteNames() {
		for _, e := range c.Palettes[name] {
			palette.Ensure(e.Color, e.Name)
		}
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.LineType != "" {
		fmt.Fprintf(&sb, "line_type = %s\n", c.LineType)
	}
	if c.Color != "" {
		fmt.Fprintf(&sb, "color = %s\n", c.Color)
	}
	if c.BrushWidth > 0 {
		fmt.Fprintf(&sb, "brush_width = %s\n", formatFloat(c.BrushWidth))
	}
	if c.EraserWidth > 0 {
		fmt.Fprintf(&sb, "eraser_width = %s\n", formatFloat(c.EraserWidth))
	}
	if c.MaxBias > 0 {
		fmt.Fprintf(&sb, "max_bias = %s\n", formatFloat(c.MaxBias))
	}
	if c.Background != "" {
		fmt.Fprintf(&sb, "background = %s\n", c.Background)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	for _, name := range c.PaletteNames() {
		fmt.Fprintf(&sb, "[palette.%s]\n", name)
		for _, e := range c.Palettes[name] {
			fmt.Fprintf(&sb, "%s = %s\n", e.Name, toHex(e.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func toHex(c color.RGBA) string { return palette.Hex(c) }
