// Package velocity estimates pointer speed and maps it to a stroke width
// bias for the signing pen.
package velocity

import (
	"time"

	"github.com/chewxy/math32"
)

const (
	// MaxStrokeWidthBias caps the bias. Without it log10 of the largest
	// float32 velocity would reach about 38.5.
	MaxStrokeWidthBias float32 = 5

	// Unit is the time base velocities are expressed in.
	Unit = time.Second

	historyLimit = 8
)

type sample struct {
	x, y float32
	t    time.Duration
}

// Tracker keeps the most recent pointer samples of one gesture.
type Tracker struct {
	max     float32
	samples []sample
}

// NewTracker returns a tracker whose bias never exceeds max. A max of zero
// or less selects MaxStrokeWidthBias.
func NewTracker(max float32) *Tracker {
	if max <= 0 {
		max = MaxStrokeWidthBias
	}
	return &Tracker{max: max}
}

// Max returns the bias ceiling.
func (t *Tracker) Max() float32 { return t.max }

// Reset forgets all samples but keeps the buffer.
func (t *Tracker) Reset() {
	t.samples = t.samples[:0]
}

// Release drops the sample buffer entirely. The next AddSample allocates a
// new one.
func (t *Tracker) Release() {
	t.samples = nil
}

// Holding reports whether a sample buffer is currently allocated.
func (t *Tracker) Holding() bool { return t.samples != nil }

// Len reports the number of retained samples.
func (t *Tracker) Len() int { return len(t.samples) }

// AddSample records a pointer position taken at ts.
func (t *Tracker) AddSample(x, y float32, ts time.Duration) {
	if t.samples == nil {
		t.samples = make([]sample, 0, historyLimit)
	}
	if len(t.samples) == historyLimit {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:historyLimit-1]
	}
	t.samples = append(t.samples, sample{x: x, y: y, t: ts})
}

// Velocity returns the per-axis speed in pixels per Unit computed from the
// two latest samples. ok is false when it cannot be computed.
func (t *Tracker) Velocity() (vx, vy float32, ok bool) {
	n := len(t.samples)
	if n < 2 {
		return 0, 0, false
	}
	prev, last := t.samples[n-2], t.samples[n-1]
	dt := last.t - prev.t
	if dt <= 0 {
		return 0, 0, false
	}
	scale := float32(Unit) / float32(dt)
	return (last.x - prev.x) * scale, (last.y - prev.y) * scale, true
}

// CurrentBias maps the dominant axis velocity to min(max, log10(1+|v|)).
func (t *Tracker) CurrentBias() float32 {
	vx, vy, ok := t.Velocity()
	if !ok {
		return 0
	}
	return Bias(vx, vy, t.max)
}

// Bias is the velocity to width-bias mapping used by CurrentBias.
func Bias(vx, vy, max float32) float32 {
	v := math32.Abs(vx)
	if ay := math32.Abs(vy); ay > v {
		v = ay
	}
	if math32.IsInf(v, 0) || math32.IsNaN(v) {
		return max
	}
	return math32.Min(max, math32.Log10(1+v))
}
