// Package render rasterises strokes and flattens them over a background.
package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gg"

	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/geometry"
)

// Stroke is a path together with the paint it is drawn with.
type Stroke struct {
	Path  *geometry.Path
	Paint brush.PaintOptions
}

func lineCap(c brush.Cap) gg.LineCap {
	switch c {
	case brush.CapSquare:
		return gg.LineCapSquare
	case brush.CapButt:
		return gg.LineCapButt
	}
	return gg.LineCapRound
}

func lineJoin(j brush.Join) gg.LineJoin {
	switch j {
	case brush.JoinBevel:
		return gg.LineJoinBevel
	case brush.JoinMiter:
		return gg.LineJoinMiter
	}
	return gg.LineJoinRound
}

// Layer rasterises s alone onto a transparent w×h image. Paths that never
// leave their anchor are drawn as a dot the size of the brush tip.
func Layer(w, h int, s Stroke) (*image.RGBA, error) {
	start, ok := s.Path.Start()
	if !ok {
		return image.NewRGBA(image.Rect(0, 0, w, h)), nil
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()

	p := s.Paint
	width := float64(p.EffectiveWidth())
	col := p.NRGBA()
	if p.Erases() {
		col.A = brush.MaxAlpha
	}
	dc.SetColor(col)

	var err error
	if s.Path.IsDot() {
		x, y, r := float64(start.X), float64(start.Y), width/2
		if p.Cap == brush.CapRound {
			dc.DrawPoint(x, y, r)
		} else {
			dc.DrawRectangle(x-r, y-r, width, width)
		}
		err = dc.Fill()
	} else {
		dc.SetLineWidth(width)
		dc.SetLineCap(lineCap(p.Cap))
		dc.SetLineJoin(lineJoin(p.Join))
		if p.Dash != nil {
			iv := p.Dash.Intervals()
			dc.SetDash(float64(iv[0]), float64(iv[1]), float64(iv[2]), float64(iv[3]))
			dc.SetDashOffset(float64(p.Dash.Phase()))
		}
		s.Path.Walk(
			func(pt geometry.Point) { dc.MoveTo(float64(pt.X), float64(pt.Y)) },
			func(c, e geometry.Point) {
				dc.QuadraticTo(float64(c.X), float64(c.Y), float64(e.X), float64(e.Y))
			},
		)
		err = dc.Stroke()
	}
	if err != nil {
		return nil, fmt.Errorf("rasterise stroke: %w", err)
	}
	return toRGBA(dc.Image()), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
