// Package geometry turns pointer samples into smoothed stroke paths.
package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Point is a surface-local coordinate.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Op identifies the kind of a path segment.
type Op int

const (
	// OpMove starts the path at End.
	OpMove Op = iota
	// OpQuad draws a quadratic curve through Ctrl to End.
	OpQuad
)

func (o Op) String() string {
	switch o {
	case OpMove:
		return "M"
	case OpQuad:
		return "Q"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Segment is one path command. Ctrl is only meaningful for OpQuad.
type Segment struct {
	Op   Op
	Ctrl Point
	End  Point
}

// Path is an ordered list of segments describing one gesture. A path that
// has been returned by Builder.Finish is never modified again.
type Path struct {
	segs []Segment
}

// Segments returns a copy of the path commands.
func (p *Path) Segments() []Segment {
	if p == nil {
		return nil
	}
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// Len reports the number of segments including the initial move.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.segs)
}

// CurveCount reports the number of quadratic segments.
func (p *Path) CurveCount() int {
	n := 0
	for _, s := range p.segs {
		if s.Op == OpQuad {
			n++
		}
	}
	return n
}

// Empty reports whether the path has no commands at all.
func (p *Path) Empty() bool { return p.Len() == 0 }

// Start returns the anchor point of the path.
func (p *Path) Start() (Point, bool) {
	if p.Empty() {
		return Point{}, false
	}
	return p.segs[0].End, true
}

// IsDot reports whether every command lands on the anchor, so the path
// can only be drawn as a single dot.
func (p *Path) IsDot() bool {
	start, ok := p.Start()
	if !ok {
		return false
	}
	for _, s := range p.segs[1:] {
		if s.End != start || s.Ctrl != start {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rectangle holding every command point,
// control points included.
func (p *Path) Bounds() (min, max Point) {
	if p.Empty() {
		return Point{}, Point{}
	}
	min = p.segs[0].End
	max = min
	grow := func(q Point) {
		min.X = math32.Min(min.X, q.X)
		min.Y = math32.Min(min.Y, q.Y)
		max.X = math32.Max(max.X, q.X)
		max.Y = math32.Max(max.Y, q.Y)
	}
	for _, s := range p.segs[1:] {
		grow(s.Ctrl)
		grow(s.End)
	}
	return min, max
}

// Walk calls move once for the anchor and quad for each curve segment.
func (p *Path) Walk(move func(Point), quad func(ctrl, end Point)) {
	for _, s := range p.segs {
		switch s.Op {
		case OpMove:
			move(s.End)
		case OpQuad:
			quad(s.Ctrl, s.End)
		}
	}
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	return &Path{segs: p.Segments()}
}
