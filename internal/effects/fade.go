package effects

import "math"

// FadeIn multiplies alpha by eased progress: invisible at window start, the
// element's own alpha at window end.
type FadeIn struct {
	window
}

func NewFadeIn(start, duration float64, easingName string) *FadeIn {
	return &FadeIn{newWindow(start, duration, easingName)}
}

func (e *FadeIn) Apply(t float64, p Props) Props {
	p.Alpha *= clamp01(e.progress(t))
	return p
}

// FadeOut multiplies alpha by the eased remainder, reaching zero at window
// end and staying there.
type FadeOut struct {
	window
}

func NewFadeOut(start, duration float64, easingName string) *FadeOut {
	return &FadeOut{newWindow(start, duration, easingName)}
}

func (e *FadeOut) Apply(t float64, p Props) Props {
	p.Alpha *= 1 - clamp01(e.progress(t))
	return p
}

// Flash ramps a white overlay up and back down inside the window, peaking at
// the midpoint.
type Flash struct {
	window
	Peak float64 // 0..1 blend toward white at the peak
}

func NewFlash(start, duration float64, easingName string, peak float64) *Flash {
	if peak <= 0 {
		peak = 1
	}
	return &Flash{window: newWindow(start, duration, easingName), Peak: peak}
}

func (e *Flash) Apply(t float64, p Props) Props {
	prog := e.progress(t)
	if prog <= 0 || prog >= 1 {
		return p
	}
	// Треугольный импульс: 0 → пик → 0
	pulse := 1 - 2*math.Abs(prog-0.5)
	p.Flash = clamp01(p.Flash + e.Peak*pulse)
	return p
}

// Pulse multiplies scale by a sinusoidal throb.
type Pulse struct {
	window
	Amplitude float64 // peak scale deviation, e.g. 0.08
	Cycles    float64
}

func NewPulse(start, duration float64, easingName string, amplitude float64, cycles float64) *Pulse {
	if cycles <= 0 {
		cycles = 1
	}
	return &Pulse{window: newWindow(start, duration, easingName), Amplitude: amplitude, Cycles: cycles}
}

func (e *Pulse) Apply(t float64, p Props) Props {
	prog := e.progress(t)
	if prog <= 0 || prog >= 1 {
		return p
	}
	p.Scale *= 1 + e.Amplitude*math.Sin(prog*e.Cycles*2*math.Pi)
	return p
}
