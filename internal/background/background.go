// Package background describes what is drawn behind the strokes and
// resolves image backgrounds to pixels.
package background

import (
	"fmt"
	"image/color"
)

// DefaultColor is the canvas colour of a fresh surface.
var DefaultColor = color.RGBA{255, 255, 255, 255}

// Kind distinguishes flat colour backgrounds from image backgrounds.
type Kind int

const (
	KindColor Kind = iota
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindImage:
		return "image"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Background is either a flat colour or an image identifier, never both.
// The zero value is a flat transparent background; use Flat or Image.
type Background struct {
	kind  Kind
	color color.RGBA
	image string
}

// Flat returns a flat colour background.
func Flat(c color.RGBA) Background { return Background{kind: KindColor, color: c} }

// Image returns a background showing the image called id. The identifier
// is opaque here and interpreted by a Resolver.
func Image(id string) Background { return Background{kind: KindImage, image: id} }

// Default is the flat white canvas.
func Default() Background { return Flat(DefaultColor) }

func (b Background) Kind() Kind { return b.kind }

// IsImage reports whether b is an image background.
func (b Background) IsImage() bool { return b.kind == KindImage }

// Color returns the flat colour. Image backgrounds report the default
// canvas colour, which is used wherever the image is transparent.
func (b Background) Color() color.RGBA {
	if b.kind == KindImage {
		return DefaultColor
	}
	return b.color
}

// ImageID returns the image identifier, or "" for colour backgrounds.
func (b Background) ImageID() string {
	if b.kind != KindImage {
		return ""
	}
	return b.image
}

func (b Background) String() string {
	if b.kind == KindImage {
		return "image " + b.image
	}
	return fmt.Sprintf("color #%02X%02X%02X", b.color.R, b.color.G, b.color.B)
}
