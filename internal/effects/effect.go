// Package effects implements time-windowed property mutators. Every effect
// owns a [start, start+duration) window and an easing, and transforms an
// element's property bag at a given instant. Effects compose: offsets and
// rotation add, alpha and scale multiply, so simultaneous effects accumulate
// instead of overwriting each other.
package effects

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/scene2video/internal/easing"
)

// Props is the resolved paint state of one element at one instant. It is
// passed and returned by value: an Apply never mutates its input, which keeps
// property resolution a pure function of time.
type Props struct {
	Alpha    float64
	Scale    float64
	ScaleX   float64 // width-only multiplier on top of Scale
	Rotation float64 // degrees, clockwise
	Blur     float64 // pixels
	OffsetX  float64
	OffsetY  float64
	Color    colorful.Color
	Flash    float64 // 0..1 blend toward white

	ShadowAlpha   float64
	ShadowOffsetX float64
	ShadowOffsetY float64
	ShadowBlur    float64

	GlowAlpha  float64
	GlowRadius float64

	VisibleText string

	// Annotation draw progress, 0..1 each
	Underline float64
	Strike    float64
	Circle    float64
	Arrow     float64
}

// Defaults returns the bag every per-frame fold starts from. text and c are
// the element's static text and base color.
func Defaults(text string, c colorful.Color, alpha float64) Props {
	return Props{
		Alpha:       alpha,
		Scale:       1,
		ScaleX:      1,
		Color:       c,
		VisibleText: text,
	}
}

// Effect transforms a property bag at time t. Apply is total: it must return
// a sensible bag for any real t, before, inside or after its window.
type Effect interface {
	Apply(t float64, p Props) Props
}

// window is the shared timing state of every concrete effect:
// pending (t < start) → active → done (t >= start+duration).
type window struct {
	start    float64
	duration float64
	ease     easing.Func
}

func newWindow(start, duration float64, easingName string) window {
	if start < 0 {
		start = 0
	}
	return window{start: start, duration: duration, ease: easing.Get(easingName)}
}

// progress returns 0 before the window, eased(1) at and after its end, and
// the eased fraction inside it. A zero duration is an immediate jump from
// start value to end value, not a division fault.
func (w window) progress(t float64) float64 {
	if t < w.start {
		return 0
	}
	if w.duration <= 0 || t >= w.start+w.duration {
		return w.ease(1)
	}
	return w.ease((t - w.start) / w.duration)
}

// active reports whether t falls inside the window.
func (w window) active(t float64) bool {
	return t >= w.start && t < w.start+w.duration
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
