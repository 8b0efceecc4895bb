package brush

import (
	"fmt"
	"image/color"
)

// Strategy updates the derived fields of a PaintOptions for one line type.
// Implementations are stateless apart from the dash cache and are shared by
// every stroke drawn with that line type.
type Strategy interface {
	UpdateAlpha(p *PaintOptions)
	UpdateColor(p *PaintOptions, c color.RGBA)
	UpdateStrokeStyle(p *PaintOptions)
	// UpdatePathEffect sets or clears the dash effect. Size-variant
	// strategies require a width.
	UpdatePathEffect(p *PaintOptions, width *float32)
	UpdateBrushSize(p *PaintOptions, width float32)
	// UpdateTransferMode sets the compositing mode and also applies width.
	UpdateTransferMode(p *PaintOptions, width float32)
}

// baseStrategy is used by the solid and signing line types.
type baseStrategy struct{}

func (baseStrategy) UpdateAlpha(p *PaintOptions) { p.Alpha = MaxAlpha }

func (baseStrategy) UpdateColor(p *PaintOptions, c color.RGBA) { p.SetColor(c) }

func (baseStrategy) UpdateStrokeStyle(p *PaintOptions) {
	p.Cap = CapRound
	p.Join = JoinRound
}

func (baseStrategy) UpdatePathEffect(p *PaintOptions, _ *float32) { p.Dash = nil }

func (baseStrategy) UpdateBrushSize(p *PaintOptions, width float32) { p.Width = width }

func (b baseStrategy) UpdateTransferMode(p *PaintOptions, width float32) {
	b.UpdateBrushSize(p, width)
	p.Transfer = TransferNormal
}

// dashStrategy rebuilds the dash pattern whenever the width changes.
type dashStrategy struct {
	baseStrategy
	cached *DashEffect
}

func (d *dashStrategy) effect(width float32) *DashEffect {
	if d.cached == nil || d.cached.Width() != width {
		d.cached = NewDashEffect(width)
	}
	return d.cached
}

func (d *dashStrategy) UpdatePathEffect(p *PaintOptions, width *float32) {
	if width == nil {
		panic("brush: dash path effect requires a width")
	}
	p.Dash = d.effect(*width)
}

func (d *dashStrategy) UpdateBrushSize(p *PaintOptions, width float32) {
	d.baseStrategy.UpdateBrushSize(p, width)
	d.UpdatePathEffect(p, &width)
}

// chiselStrategy draws a translucent square-tipped marker.
type chiselStrategy struct {
	baseStrategy
}

func (chiselStrategy) UpdateAlpha(p *PaintOptions) { p.Alpha = ChiselAlpha }

func (c chiselStrategy) UpdateColor(p *PaintOptions, col color.RGBA) {
	c.baseStrategy.UpdateColor(p, col)
	c.UpdateAlpha(p)
}

func (chiselStrategy) UpdateStrokeStyle(p *PaintOptions) {
	p.Cap = CapSquare
	p.Join = JoinBevel
}

// eraserStrategy clears the pixels it covers. The colour never affects
// how much is cleared.
type eraserStrategy struct {
	baseStrategy
}

func (e eraserStrategy) UpdateColor(p *PaintOptions, c color.RGBA) {
	e.baseStrategy.UpdateColor(p, c)
	e.UpdateAlpha(p)
}

func (e eraserStrategy) UpdateTransferMode(p *PaintOptions, width float32) {
	e.UpdateBrushSize(p, width)
	p.Transfer = TransferClear
}

// StrategyFor returns a new strategy for l. Dash, chisel and eraser have
// their own strategies; solid and signing share the base behaviour.
func StrategyFor(l LineType) Strategy {
	switch l {
	case Dash:
		return &dashStrategy{}
	case Chisel:
		return chiselStrategy{}
	case Eraser:
		return eraserStrategy{}
	case Solid, Signing:
		return baseStrategy{}
	}
	panic(fmt.Sprintf("brush: no strategy for %v", l))
}
