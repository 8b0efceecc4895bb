package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ErrEmptyCanvas is returned when asked to rasterise a canvas with no area.
var ErrEmptyCanvas = errors.New("render: canvas has no area")

// Ink draws strokes in order onto a transparent w×h image. Erasing strokes
// remove what is below them, so the result keeps transparent holes where
// the background is meant to show through.
func Ink(w, h int, strokes []Stroke) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyCanvas
	}
	ink := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := Apply(ink, strokes...); err != nil {
		return nil, err
	}
	return ink, nil
}

// Apply composites strokes onto ink in order.
func Apply(ink *image.RGBA, strokes ...Stroke) error {
	b := ink.Bounds()
	for i, s := range strokes {
		layer, err := Layer(b.Dx(), b.Dy(), s)
		if err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}
		if s.Paint.Erases() {
			Erase(ink, layer)
			continue
		}
		draw.Draw(ink, b, layer, image.Point{}, draw.Over)
	}
	return nil
}

// Erase scales every pixel of dst by the inverse of the mask's alpha
// (destination-out).
func Erase(dst *image.RGBA, mask *image.RGBA) {
	b := dst.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		di := dst.PixOffset(b.Min.X, y)
		mi := mask.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, di, mi = x+1, di+4, mi+4 {
			ma := uint32(mask.Pix[mi+3])
			if ma == 0 {
				continue
			}
			keep := 255 - ma
			for k := 0; k < 4; k++ {
				dst.Pix[di+k] = uint8(uint32(dst.Pix[di+k]) * keep / 255)
			}
		}
	}
}

// Flatten paints the background and then the ink into dst. A nil backdrop
// fills with bg instead.
func Flatten(dst *image.RGBA, bg color.Color, backdrop image.Image, ink *image.RGBA) {
	b := dst.Bounds()
	if backdrop != nil {
		draw.Draw(dst, b, backdrop, backdrop.Bounds().Min, draw.Src)
	} else {
		draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)
	}
	if ink != nil {
		draw.Draw(dst, b, ink, ink.Bounds().Min, draw.Over)
	}
}
