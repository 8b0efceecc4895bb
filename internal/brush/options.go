package brush

import (
	"fmt"
	"image/color"
)

const (
	// DefaultStrokeWidth is the initial brush and eraser width.
	DefaultStrokeWidth float32 = 15
	// MinStrokeWidth is the smallest width a setter accepts.
	MinStrokeWidth float32 = 3
	// MaxAlpha is fully opaque.
	MaxAlpha uint8 = 255
	// ChiselAlpha is the fixed translucency of the chisel tip.
	ChiselAlpha uint8 = 80
)

// DefaultColor is the initial brush colour.
var DefaultColor = color.RGBA{A: 255}

// ClampWidth raises widths at or below MinStrokeWidth to MinStrokeWidth.
func ClampWidth(w float32) float32 {
	if w <= MinStrokeWidth {
		return MinStrokeWidth
	}
	return w
}

// Cap is the shape of open stroke ends.
type Cap int

const (
	CapRound Cap = iota
	CapSquare
	CapButt
)

func (c Cap) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	case CapButt:
		return "butt"
	}
	return fmt.Sprintf("Cap(%d)", int(c))
}

// Join is the shape where two segments meet.
type Join int

const (
	JoinRound Join = iota
	JoinBevel
	JoinMiter
)

func (j Join) String() string {
	switch j {
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	case JoinMiter:
		return "miter"
	}
	return fmt.Sprintf("Join(%d)", int(j))
}

// TransferMode is how stroke pixels combine with what is already drawn.
type TransferMode int

const (
	// TransferNormal paints source-over.
	TransferNormal TransferMode = iota
	// TransferClear erases covered pixels to full transparency.
	TransferClear
)

func (m TransferMode) String() string {
	switch m {
	case TransferNormal:
		return "normal"
	case TransferClear:
		return "clear"
	}
	return fmt.Sprintf("TransferMode(%d)", int(m))
}

// DashEffect is the dash pattern of a dashed stroke. The on/off intervals
// are [w, 2w, w, 3w] with zero phase. Values are immutable.
type DashEffect struct {
	width float32
}

// NewDashEffect returns the dash pattern for width w.
func NewDashEffect(w float32) *DashEffect { return &DashEffect{width: w} }

// Width is the brush width the pattern was derived from.
func (d *DashEffect) Width() float32 { return d.width }

// Intervals returns the on/off lengths.
func (d *DashEffect) Intervals() [4]float32 {
	w := d.width
	return [4]float32{w, 2 * w, w, 3 * w}
}

// Phase is the offset into the pattern at which dashing starts.
func (d *DashEffect) Phase() float32 { return 0 }

// Equal reports whether both patterns were derived from the same width.
func (d *DashEffect) Equal(o *DashEffect) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.width == o.width
}

func (d *DashEffect) String() string {
	if d == nil {
		return "none"
	}
	return fmt.Sprintf("dash%v", d.Intervals())
}

// PaintOptions describes how one stroke is rendered. It is a plain value:
// copying it freezes the settings, which is how committed strokes are
// snapshotted.
type PaintOptions struct {
	Color     color.RGBA // RGB of the brush; Color.A is ignored in favour of Alpha
	Alpha     uint8
	Width     float32
	WidthBias float32
	Cap       Cap
	Join      Join
	Dash      *DashEffect
	Transfer  TransferMode
	Brush     BrushType
}

// NewPaintOptions returns the settings of a fresh solid black brush.
func NewPaintOptions() PaintOptions {
	return PaintOptions{
		Color:    DefaultColor,
		Alpha:    MaxAlpha,
		Width:    DefaultStrokeWidth,
		Cap:      CapRound,
		Join:     JoinRound,
		Transfer: TransferNormal,
		Brush:    BrushNormal,
	}
}

// SetColor assigns the brush colour. Like most paint APIs this also
// overwrites the alpha with the colour's own alpha channel, so strategies
// with a fixed alpha must re-apply it afterwards.
func (p *PaintOptions) SetColor(c color.RGBA) {
	p.Color = c
	p.Alpha = c.A
}

// EffectiveWidth is the width the stroke is drawn with: the base width plus
// the velocity bias.
func (p PaintOptions) EffectiveWidth() float32 { return p.Width + p.WidthBias }

// NRGBA returns the brush colour combined with the alpha.
func (p PaintOptions) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: p.Alpha}
}

// Erases reports whether the stroke clears pixels instead of painting.
func (p PaintOptions) Erases() bool { return p.Transfer == TransferClear }

// Fresh returns a copy suitable for the next stroke: same style, no bias.
func (p PaintOptions) Fresh() PaintOptions {
	p.WidthBias = 0
	return p
}
