package surface

import (
	"fmt"
	"image"

	"github.com/example/freehand/internal/background"
	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/render"
)

// inkCache holds the rasterised committed strokes until history changes.
type inkCache struct {
	img   *image.RGBA
	valid bool
}

func (k *inkCache) invalidate() { k.valid = false }

// Snapshot is an immutable view of the surface for rendering.
type Snapshot struct {
	Width, Height int
	Background    background.Background
	Strokes       []render.Stroke
	Live          *render.Stroke
	LineType      brush.LineType
	CanUndo       bool
	CanRedo       bool
}

// Snapshot captures the committed strokes and the in-progress stroke.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Width:      c.width,
		Height:     c.height,
		Background: c.bg,
		Strokes:    c.committed(),
		LineType:   c.ctx.LineType(),
		CanUndo:    c.CanUndo(),
		CanRedo:    c.CanRedo(),
	}
	if c.pressed {
		s.Live = &render.Stroke{Path: c.builder.Current().Clone(), Paint: c.paint}
	}
	return s
}

func (c *Controller) committed() []render.Stroke {
	entries := c.history.Entries()
	out := make([]render.Stroke, len(entries))
	for i, e := range entries {
		out[i] = render.Stroke{Path: e.Path, Paint: e.Paint}
	}
	return out
}

func (c *Controller) committedInk() (*image.RGBA, error) {
	if c.ink.valid && c.ink.img != nil && c.ink.img.Bounds().Size() == c.Size() {
		return c.ink.img, nil
	}
	img, err := render.Ink(c.width, c.height, c.committed())
	if err != nil {
		return nil, err
	}
	c.ink = inkCache{img: img, valid: true}
	return img, nil
}

func (c *Controller) backdrop() (image.Image, error) {
	if !c.bg.IsImage() {
		return nil, nil
	}
	img, err := c.bgs.Resolve(c.bg.ImageID(), c.width, c.height)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return img, nil
}

// Render paints the background, the committed strokes and the stroke in
// progress into dst.
func (c *Controller) Render(dst *image.RGBA) error {
	ink, err := c.committedInk()
	if err != nil {
		return err
	}
	if c.pressed && !c.builder.Current().Empty() {
		live := image.NewRGBA(ink.Bounds())
		copy(live.Pix, ink.Pix)
		if err := render.Apply(live, render.Stroke{Path: c.builder.Current(), Paint: c.paint}); err != nil {
			return err
		}
		ink = live
	}
	bd, err := c.backdrop()
	if err != nil {
		return err
	}
	render.Flatten(dst, c.bg.Color(), bd, ink)
	return nil
}

// ExportRaster flattens the background and all committed strokes into a
// new image. The stroke in progress is not included.
func (c *Controller) ExportRaster() (*image.RGBA, error) {
	ink, err := c.committedInk()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	bd, err := c.backdrop()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	out := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	render.Flatten(out, c.bg.Color(), bd, ink)
	return out, nil
}
