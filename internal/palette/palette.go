// Package palette holds the selectable brush colours and width presets.
package palette

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// Entry is a palette colour with its display name.
type Entry struct {
	Name  string
	Color color.RGBA
}

var defaultNames = []string{
	"black", "hotpink", "coral", "deeppink", "salmon", "palevioletred",
	"papayawhip", "gold", "pink", "lightyellow", "peachpuff", "red",
	"orchid", "mediumvioletred", "darkkhaki", "yellowgreen", "darkseagreen",
	"powderblue", "paleturquoise", "olivedrab", "mediumaquamarine",
	"cornflowerblue", "cadetblue", "steelblue", "royalblue", "darkslateblue",
	"seagreen", "darkturquoise", "mediumblue", "white",
}

var (
	mu      sync.RWMutex
	entries = defaultEntries()
	widths  = []float32{3, 6, 10, 15, 20, 30, 45}
)

func defaultEntries() []Entry {
	out := make([]Entry, 0, len(defaultNames))
	for _, n := range defaultNames {
		out = append(out, Entry{Name: n, Color: colornames.Map[n]})
	}
	return out
}

// Reset restores the built-in colours and widths.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	entries = defaultEntries()
	widths = []float32{3, 6, 10, 15, 20, 30, 45}
}

// Colors returns a copy of the palette in display order.
func Colors() []Entry {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// At returns the colour at idx, wrapping around the palette.
func At(idx int) Entry {
	mu.RLock()
	defer mu.RUnlock()
	n := len(entries)
	return entries[((idx%n)+n)%n]
}

// Len reports how many colours the palette holds.
func Len() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(entries)
}

// Ensure adds col to the palette unless it is already present and returns
// its index. Unnamed colours are labelled with their hex value.
func Ensure(col color.RGBA, name string) int {
	mu.Lock()
	defer mu.Unlock()
	for idx, e := range entries {
		if e.Color == col {
			return idx
		}
	}
	if name == "" {
		name = Hex(col)
	}
	entries = append(entries, Entry{Name: name, Color: col})
	return len(entries) - 1
}

// Index returns the palette position of col or -1.
func Index(col color.RGBA) int {
	mu.RLock()
	defer mu.RUnlock()
	for idx, e := range entries {
		if e.Color == col {
			return idx
		}
	}
	return -1
}

// Widths returns the width presets in ascending order.
func Widths() []float32 {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]float32, len(widths))
	copy(out, widths)
	return out
}

// EnsureWidth adds w to the presets and returns its index.
func EnsureWidth(w float32) int {
	mu.Lock()
	defer mu.Unlock()
	if i := indexOf(widths, w); i >= 0 {
		return i
	}
	widths = append(widths, w)
	sort.Slice(widths, func(i, j int) bool { return widths[i] < widths[j] })
	return indexOf(widths, w)
}

func indexOf(ws []float32, w float32) int {
	for i, v := range ws {
		if v == w {
			return i
		}
	}
	return -1
}

// Hex formats col as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(col color.RGBA) string {
	if col.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", col.R, col.G, col.B, col.A)
}

// ParseColor accepts CSS colour names, palette names and #RRGGBB or
// #RRGGBBAA hex values.
func ParseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	for _, e := range Colors() {
		if strings.EqualFold(e.Name, spec) {
			return e.Color, nil
		}
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 9) {
		val, err := strconv.ParseUint(spec[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		if len(spec) == 7 {
			val = val<<8 | 0xFF
		}
		return color.RGBA{
			R: uint8(val >> 24),
			G: uint8(val >> 16),
			B: uint8(val >> 8),
			A: uint8(val),
		}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}
