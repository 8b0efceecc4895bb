package background

import (
	"image"
	"image/color"
	"image/draw"
	"sort"
)

// Generator paints a procedural background of the given size.
type Generator func(w, h int) *image.RGBA

var (
	paper = color.RGBA{255, 253, 245, 255}
	rule  = color.RGBA{170, 196, 230, 255}
)

const spacing = 24

var builtins = map[string]Generator{
	"grid":  grid,
	"lined": lined,
	"dots":  dots,
}

// Builtins lists the names of the procedural backgrounds.
func Builtins() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)
	return img
}

func grid(w, h int) *image.RGBA {
	img := blank(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%spacing == 0 || y%spacing == 0 {
				img.SetRGBA(x, y, rule)
			}
		}
	}
	return img
}

func lined(w, h int) *image.RGBA {
	img := blank(w, h)
	for y := spacing; y < h; y += spacing {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, rule)
		}
	}
	return img
}

func dots(w, h int) *image.RGBA {
	img := blank(w, h)
	for y := spacing / 2; y < h; y += spacing {
		for x := spacing / 2; x < w; x += spacing {
			img.SetRGBA(x, y, rule)
			if x+1 < w {
				img.SetRGBA(x+1, y, rule)
			}
			if y+1 < h {
				img.SetRGBA(x, y+1, rule)
				if x+1 < w {
					img.SetRGBA(x+1, y+1, rule)
				}
			}
		}
	}
	return img
}
