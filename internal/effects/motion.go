package effects

import (
	"math"
	"math/rand"

	"github.com/ivlev/scene2video/internal/easing"
)

// SlideUp moves the element in from below: the offset starts at Distance and
// decays to zero as progress completes. Offsets add, so a slide stacks with
// a shake or another slide on the same window.
type SlideUp struct {
	window
	Distance float64
}

func NewSlideUp(start, duration float64, easingName string, distance float64) *SlideUp {
	return &SlideUp{window: newWindow(start, duration, easingName), Distance: distance}
}

func (e *SlideUp) Apply(t float64, p Props) Props {
	p.OffsetY += e.Distance * (1 - e.progress(t))
	return p
}

// SlideDown moves the element in from above.
type SlideDown struct {
	window
	Distance float64
}

func NewSlideDown(start, duration float64, easingName string, distance float64) *SlideDown {
	return &SlideDown{window: newWindow(start, duration, easingName), Distance: distance}
}

func (e *SlideDown) Apply(t float64, p Props) Props {
	p.OffsetY -= e.Distance * (1 - e.progress(t))
	return p
}

// SlideLeft moves the element in from the right.
type SlideLeft struct {
	window
	Distance float64
}

func NewSlideLeft(start, duration float64, easingName string, distance float64) *SlideLeft {
	return &SlideLeft{window: newWindow(start, duration, easingName), Distance: distance}
}

func (e *SlideLeft) Apply(t float64, p Props) Props {
	p.OffsetX += e.Distance * (1 - e.progress(t))
	return p
}

// SlideRight moves the element in from the left.
type SlideRight struct {
	window
	Distance float64
}

func NewSlideRight(start, duration float64, easingName string, distance float64) *SlideRight {
	return &SlideRight{window: newWindow(start, duration, easingName), Distance: distance}
}

func (e *SlideRight) Apply(t float64, p Props) Props {
	p.OffsetX -= e.Distance * (1 - e.progress(t))
	return p
}

// Bounce drops the element into place with a bounce-out curve regardless of
// the configured easing; the easing name is accepted for interface symmetry
// but the bounce shape is fixed.
type Bounce struct {
	window
	Height float64
	bounce easing.Func
}

func NewBounce(start, duration float64, height float64) *Bounce {
	return &Bounce{
		window: newWindow(start, duration, "linear"),
		Height: height,
		bounce: easing.Get("bounce-out"),
	}
}

func (e *Bounce) Apply(t float64, p Props) Props {
	p.OffsetY -= e.Height * (1 - e.bounce(e.progress(t)))
	return p
}

// Shake jitters the element while active. Randomness is derived from a
// discretized function of t (seed = floor(t*Frequency)), so the same frame
// index always renders identically and re-renders are byte-identical.
type Shake struct {
	window
	Amplitude float64 // max offset in pixels
	Frequency float64 // direction changes per second
}

func NewShake(start, duration float64, amplitude, frequency float64) *Shake {
	if frequency <= 0 {
		frequency = 15
	}
	return &Shake{window: newWindow(start, duration, "linear"), Amplitude: amplitude, Frequency: frequency}
}

func (e *Shake) Apply(t float64, p Props) Props {
	if !e.active(t) {
		return p
	}
	r := rand.New(rand.NewSource(int64(math.Floor(t * e.Frequency))))
	p.OffsetX += (r.Float64()*2 - 1) * e.Amplitude
	p.OffsetY += (r.Float64()*2 - 1) * e.Amplitude
	return p
}

// Glitch is a harsher shake: horizontal displacement spikes with occasional
// single-frame alpha dropouts. Deterministic by the same seeding rule as
// Shake.
type Glitch struct {
	window
	Amplitude float64
	Frequency float64
}

func NewGlitch(start, duration float64, amplitude, frequency float64) *Glitch {
	if frequency <= 0 {
		frequency = 20
	}
	return &Glitch{window: newWindow(start, duration, "linear"), Amplitude: amplitude, Frequency: frequency}
}

func (e *Glitch) Apply(t float64, p Props) Props {
	if !e.active(t) {
		return p
	}
	r := rand.New(rand.NewSource(int64(math.Floor(t * e.Frequency))))
	if r.Float64() < 0.3 {
		// Только часть тиков "глючит", остальные держат картинку стабильной
		p.OffsetX += (r.Float64()*2 - 1) * e.Amplitude
		if r.Float64() < 0.2 {
			p.Alpha *= 0.4
		}
	}
	return p
}
