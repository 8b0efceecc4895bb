// Package brush derives stroke paint settings from the selected line type.
//
// Each line type maps to one of four fixed strategies (base, dash, chisel,
// eraser). A Context holds the active strategy and applies it to a
// PaintOptions value whenever the line type, colour or width changes.
package brush

import (
	"fmt"
	"strings"
)

// BrushType selects how a stroke is stamped onto the canvas.
type BrushType int

const (
	// BrushNormal strokes the path with a pen.
	BrushNormal BrushType = iota
	// BrushImage is reserved for bitmap stamp brushes and is not rendered.
	BrushImage
)

func (b BrushType) String() string {
	switch b {
	case BrushNormal:
		return "normal"
	case BrushImage:
		return "image"
	}
	return fmt.Sprintf("BrushType(%d)", int(b))
}

// LineType is the named brush behaviour chosen by the user.
type LineType int

const (
	Solid LineType = iota
	Dash
	Signing
	Chisel
	Eraser
)

var lineTypeNames = [...]string{
	Solid:   "solid",
	Dash:    "dash",
	Signing: "signing",
	Chisel:  "chisel",
	Eraser:  "eraser",
}

// LineTypes lists every line type in declaration order.
func LineTypes() []LineType {
	return []LineType{Solid, Dash, Signing, Chisel, Eraser}
}

// Valid reports whether l is one of the declared line types.
func (l LineType) Valid() bool { return l >= Solid && l <= Eraser }

func (l LineType) String() string {
	if l.Valid() {
		return lineTypeNames[l]
	}
	return fmt.Sprintf("LineType(%d)", int(l))
}

// BrushType reports the stamping mode for l. Every current line type uses
// the normal pen.
func (l LineType) BrushType() BrushType { return BrushNormal }

// IsSizeVariant reports whether the path effect depends on the width and
// must be rebuilt whenever the width changes.
func (l LineType) IsSizeVariant() bool { return l == Dash }

// IsVelocityVariant reports whether the width bias follows pointer speed.
func (l LineType) IsVelocityVariant() bool { return l == Signing }

// ParseLineType accepts the lower-case names returned by String, plus a few
// aliases used on the command line.
func ParseLineType(s string) (LineType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "dashed":
		return Dash, nil
	case "sign", "signature", "pen":
		return Signing, nil
	case "chisel-tip", "chiseltip", "marker":
		return Chisel, nil
	case "erase", "rubber":
		return Eraser, nil
	}
	for i, n := range lineTypeNames {
		if n == name {
			return LineType(i), nil
		}
	}
	return Solid, fmt.Errorf("unknown line type %q", s)
}
