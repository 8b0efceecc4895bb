package brush

import (
	"image/color"

	"github.com/example/freehand/internal/logging"
)

// Context tracks the selected line type and its strategy.
type Context struct {
	lineType LineType
	strategy Strategy
}

// NewContext returns a context for the solid line type.
func NewContext() *Context {
	return &Context{lineType: Solid, strategy: StrategyFor(Solid)}
}

// LineType returns the selected line type.
func (c *Context) LineType() LineType { return c.lineType }

// Strategy returns the active strategy.
func (c *Context) Strategy() Strategy { return c.strategy }

// SetLineType selects l. The strategy is only replaced when l differs from
// the current line type; the return value reports whether it was.
func (c *Context) SetLineType(l LineType) bool {
	if l == c.lineType {
		return false
	}
	c.strategy = StrategyFor(l)
	logging.Logger().Debug("brush: line type switched", "from", c.lineType, "to", l)
	c.lineType = l
	return true
}

// The Update methods forward to the strategy of the current line type.

// UpdateAlpha sets the alpha of p.
func (c *Context) UpdateAlpha(p *PaintOptions) { c.strategy.UpdateAlpha(p) }

// UpdateColor sets the colour of p.
func (c *Context) UpdateColor(p *PaintOptions, col color.RGBA) { c.strategy.UpdateColor(p, col) }

// UpdateStrokeStyle sets the cap and join of p.
func (c *Context) UpdateStrokeStyle(p *PaintOptions) { c.strategy.UpdateStrokeStyle(p) }

// UpdatePathEffect sets or clears the dash effect of p.
func (c *Context) UpdatePathEffect(p *PaintOptions, width *float32) {
	c.strategy.UpdatePathEffect(p, width)
}

// UpdateBrushSize sets the width of p.
func (c *Context) UpdateBrushSize(p *PaintOptions, width float32) {
	c.strategy.UpdateBrushSize(p, width)
}

// UpdateTransferMode sets the compositing mode and width of p.
func (c *Context) UpdateTransferMode(p *PaintOptions, width float32) {
	c.strategy.UpdateTransferMode(p, width)
}

// ApplyLineTypeSwitch rewrites every derived field of p for the current
// line type: brush type, transfer mode with size, path effect, alpha and
// stroke style, in that order.
func (c *Context) ApplyLineTypeSwitch(p *PaintOptions, width float32) {
	p.Brush = c.lineType.BrushType()
	c.strategy.UpdateTransferMode(p, width)
	c.strategy.UpdatePathEffect(p, &width)
	c.strategy.UpdateAlpha(p)
	c.strategy.UpdateStrokeStyle(p)
}
