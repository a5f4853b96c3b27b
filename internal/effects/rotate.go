package effects

import "math"

// RotateIn spins the element from Angle degrees into its resting rotation.
// Rotation adds, so a wobble layered after a rotate-in oscillates around the
// incoming spin.
type RotateIn struct {
	window
	Angle float64 // starting rotation in degrees
}

func NewRotateIn(start, duration float64, easingName string, angle float64) *RotateIn {
	return &RotateIn{window: newWindow(start, duration, easingName), Angle: angle}
}

func (e *RotateIn) Apply(t float64, p Props) Props {
	p.Rotation += e.Angle * (1 - e.progress(t))
	return p
}

// RotateOut spins the element from rest out to Angle degrees.
type RotateOut struct {
	window
	Angle float64
}

func NewRotateOut(start, duration float64, easingName string, angle float64) *RotateOut {
	return &RotateOut{window: newWindow(start, duration, easingName), Angle: angle}
}

func (e *RotateOut) Apply(t float64, p Props) Props {
	p.Rotation += e.Angle * e.progress(t)
	return p
}

// Spin turns the element through Revolutions full turns over the window.
type Spin struct {
	window
	Revolutions float64
}

func NewSpin(start, duration float64, easingName string, revolutions float64) *Spin {
	if revolutions == 0 {
		revolutions = 1
	}
	return &Spin{window: newWindow(start, duration, easingName), Revolutions: revolutions}
}

func (e *Spin) Apply(t float64, p Props) Props {
	p.Rotation += 360 * e.Revolutions * e.progress(t)
	return p
}

// Wobble rocks the element around its resting rotation.
type Wobble struct {
	window
	Amplitude float64 // degrees
	Cycles    float64
}

func NewWobble(start, duration float64, amplitude, cycles float64) *Wobble {
	if cycles <= 0 {
		cycles = 3
	}
	return &Wobble{window: newWindow(start, duration, "linear"), Amplitude: amplitude, Cycles: cycles}
}

func (e *Wobble) Apply(t float64, p Props) Props {
	prog := e.progress(t)
	if prog <= 0 || prog >= 1 {
		return p
	}
	// Затухающее качание, к концу окна возвращается в ноль
	decay := 1 - prog
	p.Rotation += e.Amplitude * decay * math.Sin(prog*e.Cycles*2*math.Pi)
	return p
}
