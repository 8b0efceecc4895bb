// Package surface turns pointer gestures into committed strokes.
//
// A Controller owns the brush settings, the in-progress stroke and the
// stroke history. It is not safe for concurrent use; callers serialise
// input events and render passes on one goroutine.
package surface

import (
	"image"
	"image/color"
	"time"

	"github.com/example/freehand/internal/background"
	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/geometry"
	"github.com/example/freehand/internal/history"
	"github.com/example/freehand/internal/logging"
	"github.com/example/freehand/internal/velocity"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Controller is the drawing surface.
type Controller struct {
	width, height int

	ctx     *brush.Context
	builder *geometry.Builder
	tracker *velocity.Tracker
	history *history.Store
	bgs     *background.Resolver

	color       color.RGBA
	brushWidth  float32
	eraserWidth float32
	bg          background.Background
	paint       brush.PaintOptions
	pressed     bool

	onPressed []func()
	onUndo    []func(bool)
	onRedo    []func(bool)
	onRedraw  []func()

	ink inkCache
}

// Option modifies a Controller during creation.
type Option func(*Controller)

// WithSize sets the canvas size in pixels.
func WithSize(w, h int) Option { return func(c *Controller) { c.width, c.height = w, h } }

// WithLineType selects the initial line type.
func WithLineType(l brush.LineType) Option {
	return func(c *Controller) { c.ctx.SetLineType(l) }
}

// WithColor sets the initial brush colour.
func WithColor(col color.RGBA) Option { return func(c *Controller) { c.color = col } }

// WithBrushWidth sets the initial brush width.
func WithBrushWidth(w float32) Option {
	return func(c *Controller) { c.brushWidth = brush.ClampWidth(w) }
}

// WithEraserWidth sets the initial eraser width.
func WithEraserWidth(w float32) Option {
	return func(c *Controller) { c.eraserWidth = brush.ClampWidth(w) }
}

// WithMaxBias caps the velocity width bias of the signing line type.
func WithMaxBias(m float32) Option {
	return func(c *Controller) { c.tracker = velocity.NewTracker(m) }
}

// WithBackground sets the initial background.
func WithBackground(b background.Background) Option { return func(c *Controller) { c.bg = b } }

// WithResolver sets how image backgrounds are turned into pixels.
func WithResolver(r *background.Resolver) Option { return func(c *Controller) { c.bgs = r } }

// New creates a Controller with a solid black brush on a white canvas.
func New(opts ...Option) *Controller {
	c := &Controller{
		width:       DefaultWidth,
		height:      DefaultHeight,
		ctx:         brush.NewContext(),
		builder:     geometry.NewBuilder(),
		tracker:     velocity.NewTracker(velocity.MaxStrokeWidthBias),
		history:     history.New(),
		color:       brush.DefaultColor,
		brushWidth:  brush.DefaultStrokeWidth,
		eraserWidth: brush.DefaultStrokeWidth,
		bg:          background.Default(),
		paint:       brush.NewPaintOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.bgs == nil {
		c.bgs = background.NewResolver()
	}
	c.ctx.UpdateColor(&c.paint, c.color)
	c.ctx.ApplyLineTypeSwitch(&c.paint, c.activeWidth())
	c.history.Observe(c.historyChanged)
	return c
}

func (c *Controller) historyChanged(undo, redo bool) {
	c.ink.invalidate()
	for _, fn := range c.onUndo {
		fn(undo)
	}
	for _, fn := range c.onRedo {
		fn(redo)
	}
}

func (c *Controller) activeWidth() float32 {
	if c.ctx.LineType() == brush.Eraser {
		return c.eraserWidth
	}
	return c.brushWidth
}

func (c *Controller) redraw() {
	for _, fn := range c.onRedraw {
		fn()
	}
}

// Press starts a gesture at (x, y).
func (c *Controller) Press(x, y float32) {
	for _, fn := range c.onPressed {
		fn()
	}
	c.tracker.Reset()
	c.paint.WidthBias = 0
	c.builder.Begin(x, y)
	c.pressed = true
	c.redraw()
}

// Move extends the current gesture. t is the sample time measured from any
// fixed epoch. Moves outside a gesture are ignored.
func (c *Controller) Move(x, y float32, t time.Duration) {
	if !c.pressed {
		return
	}
	c.builder.Extend(x, y)
	if c.ctx.LineType().IsVelocityVariant() {
		c.tracker.AddSample(x, y, t)
		c.paint.WidthBias = c.tracker.CurrentBias()
	}
	c.redraw()
}

// Release commits the current gesture as a stroke. Without a preceding
// Press it does nothing.
func (c *Controller) Release() {
	if !c.pressed {
		return
	}
	c.pressed = false
	path := c.builder.Finish()
	c.history.Commit(path, c.paint)
	c.paint = c.paint.Fresh()
	c.tracker.Release()
	c.redraw()
}

// Cancel drops the current gesture without committing it.
func (c *Controller) Cancel() {
	if !c.pressed {
		return
	}
	c.dropGesture()
	logging.Logger().Debug("surface: gesture cancelled")
	c.redraw()
}

func (c *Controller) dropGesture() {
	c.pressed = false
	c.builder.Finish()
	c.paint = c.paint.Fresh()
	c.tracker.Release()
}

// InProgress reports whether a gesture has been pressed and not released.
func (c *Controller) InProgress() bool { return c.pressed }

// SetColor changes the brush colour for this and later strokes.
func (c *Controller) SetColor(col color.RGBA) {
	c.color = col
	c.ctx.UpdateColor(&c.paint, col)
	c.redraw()
}

// SetLineType switches the brush behaviour. Selecting the current line
// type has no effect.
func (c *Controller) SetLineType(l brush.LineType) {
	if !c.ctx.SetLineType(l) {
		return
	}
	c.ctx.ApplyLineTypeSwitch(&c.paint, c.activeWidth())
	if !l.IsVelocityVariant() {
		c.paint.WidthBias = 0
		c.tracker.Release()
	}
	c.redraw()
}

// SetBrushWidth sets the width of every line type except the eraser.
// Widths at or below brush.MinStrokeWidth are raised to it.
func (c *Controller) SetBrushWidth(w float32) {
	c.brushWidth = brush.ClampWidth(w)
	if c.ctx.LineType() != brush.Eraser {
		c.ctx.UpdateBrushSize(&c.paint, c.brushWidth)
	}
	c.redraw()
}

// SetEraserWidth sets the eraser width, independently of the brush width.
func (c *Controller) SetEraserWidth(w float32) {
	c.eraserWidth = brush.ClampWidth(w)
	if c.ctx.LineType() == brush.Eraser {
		c.ctx.UpdateBrushSize(&c.paint, c.eraserWidth)
	}
	c.redraw()
}

// SetBackgroundColor replaces the background with a flat colour.
func (c *Controller) SetBackgroundColor(col color.RGBA) {
	c.bg = background.Flat(col)
	c.redraw()
}

// SetBackgroundImage replaces the background with the image called id.
func (c *Controller) SetBackgroundImage(id string) {
	c.bg = background.Image(id)
	c.redraw()
}

// SetSize changes the canvas size used for rendering and export.
func (c *Controller) SetSize(w, h int) {
	if w == c.width && h == c.height {
		return
	}
	c.width, c.height = w, h
	c.ink.invalidate()
	c.redraw()
}

func (c *Controller) Size() image.Point { return image.Pt(c.width, c.height) }

func (c *Controller) LineType() brush.LineType { return c.ctx.LineType() }

func (c *Controller) Color() color.RGBA { return c.color }

func (c *Controller) BrushWidth() float32 { return c.brushWidth }

func (c *Controller) EraserWidth() float32 { return c.eraserWidth }

func (c *Controller) Background() background.Background { return c.bg }

// Paint returns the settings the current or next stroke is drawn with.
func (c *Controller) Paint() brush.PaintOptions { return c.paint }

// Resolver returns the background resolver.
func (c *Controller) Resolver() *background.Resolver { return c.bgs }

// Undo hides the latest stroke.
func (c *Controller) Undo() {
	c.history.Undo()
	c.redraw()
}

// Redo restores the most recently hidden stroke.
func (c *Controller) Redo() {
	c.history.Redo()
	c.redraw()
}

// ClearCanvas removes every stroke. With withSaving the strokes can be
// brought back one at a time with Redo. Any gesture in progress is dropped.
func (c *Controller) ClearCanvas(withSaving bool) {
	if c.pressed {
		c.dropGesture()
	}
	if withSaving {
		c.history.ClearWithSaving()
	} else {
		c.history.ClearHard()
	}
	c.redraw()
}

func (c *Controller) CanUndo() bool { return c.history.IsUndoAvailable() }

func (c *Controller) CanRedo() bool { return c.history.IsRedoAvailable() }

// Strokes returns the committed strokes in drawing order.
func (c *Controller) Strokes() []*history.Entry { return c.history.Entries() }

// OnPressed registers fn to run at the start of every gesture.
func (c *Controller) OnPressed(fn func()) { c.onPressed = append(c.onPressed, fn) }

// OnUndoAvailabilityChanged registers fn to receive undo availability after
// every history action.
func (c *Controller) OnUndoAvailabilityChanged(fn func(bool)) { c.onUndo = append(c.onUndo, fn) }

// OnRedoAvailabilityChanged registers fn to receive redo availability after
// every history action.
func (c *Controller) OnRedoAvailabilityChanged(fn func(bool)) { c.onRedo = append(c.onRedo, fn) }

// OnRedraw registers fn to run whenever the surface needs repainting.
func (c *Controller) OnRedraw(fn func()) { c.onRedraw = append(c.onRedraw, fn) }

// ClearCallbacks drops every registered callback.
func (c *Controller) ClearCallbacks() {
	c.onPressed = nil
	c.onUndo = nil
	c.onRedo = nil
	c.onRedraw = nil
}
