package geometry

// Builder accumulates pointer samples into a Path. Each Extend emits a
// quadratic curve whose control point is the previous raw sample and whose
// end point is the midpoint between the previous and the new sample.
type Builder struct {
	path    *Path
	last    Point
	started bool
}

// NewBuilder returns an idle builder.
func NewBuilder() *Builder {
	return &Builder{path: &Path{}}
}

// Begin discards any in-progress path and anchors a new one at (x, y).
func (b *Builder) Begin(x, y float32) {
	p := Pt(x, y)
	b.path = &Path{segs: []Segment{{Op: OpMove, End: p}}}
	b.last = p
	b.started = true
}

// Extend appends a smoothed segment towards (x, y). Without a prior Begin
// the point becomes the anchor.
func (b *Builder) Extend(x, y float32) {
	if !b.started {
		b.Begin(x, y)
		return
	}
	p := Pt(x, y)
	b.path.segs = append(b.path.segs, Segment{Op: OpQuad, Ctrl: b.last, End: b.last.Mid(p)})
	b.last = p
}

// Last returns the most recent raw sample.
func (b *Builder) Last() Point { return b.last }

// Active reports whether a path has been begun and not yet finished.
func (b *Builder) Active() bool { return b.started }

// Current returns the in-progress path. Callers must not retain it across
// Begin or Finish.
func (b *Builder) Current() *Path { return b.path }

// Finish hands over the completed path and leaves the builder ready for the
// next Begin.
func (b *Builder) Finish() *Path {
	done := b.path
	b.path = &Path{}
	b.started = false
	return done
}
