package effects

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorShift blends the element color toward Target by eased progress.
// Blending happens in HCL space, which keeps intermediate hues perceptually
// clean instead of passing through gray.
type ColorShift struct {
	window
	Target colorful.Color
}

func NewColorShift(start, duration float64, easingName string, target colorful.Color) *ColorShift {
	return &ColorShift{window: newWindow(start, duration, easingName), Target: target}
}

func (e *ColorShift) Apply(t float64, p Props) Props {
	prog := clamp01(e.progress(t))
	if prog <= 0 {
		return p
	}
	p.Color = p.Color.BlendHcl(e.Target, prog).Clamped()
	return p
}

// GlowPulse breathes a glow halo behind the element.
type GlowPulse struct {
	window
	MaxAlpha float64
	Radius   float64 // blur radius of the halo in pixels
	Cycles   float64
}

func NewGlowPulse(start, duration float64, maxAlpha, radius, cycles float64) *GlowPulse {
	if maxAlpha <= 0 {
		maxAlpha = 0.6
	}
	if radius <= 0 {
		radius = 12
	}
	if cycles <= 0 {
		cycles = 2
	}
	return &GlowPulse{window: newWindow(start, duration, "linear"), MaxAlpha: maxAlpha, Radius: radius, Cycles: cycles}
}

func (e *GlowPulse) Apply(t float64, p Props) Props {
	prog := e.progress(t)
	if prog <= 0 || prog >= 1 {
		return p
	}
	p.GlowAlpha = clamp01(p.GlowAlpha + e.MaxAlpha*(0.5+0.5*math.Sin(prog*e.Cycles*2*math.Pi-math.Pi/2)))
	if e.Radius > p.GlowRadius {
		p.GlowRadius = e.Radius
	}
	return p
}

// ShadowDrop fades a drop shadow in under the element.
type ShadowDrop struct {
	window
	Alpha   float64
	OffsetX float64
	OffsetY float64
	Blur    float64
}

func NewShadowDrop(start, duration float64, easingName string, alpha, offsetX, offsetY, blur float64) *ShadowDrop {
	if alpha <= 0 {
		alpha = 0.5
	}
	if blur <= 0 {
		blur = 6
	}
	return &ShadowDrop{
		window:  newWindow(start, duration, easingName),
		Alpha:   alpha,
		OffsetX: offsetX,
		OffsetY: offsetY,
		Blur:    blur,
	}
}

func (e *ShadowDrop) Apply(t float64, p Props) Props {
	prog := clamp01(e.progress(t))
	if prog <= 0 {
		return p
	}
	p.ShadowAlpha = clamp01(p.ShadowAlpha + e.Alpha*prog)
	p.ShadowOffsetX += e.OffsetX
	p.ShadowOffsetY += e.OffsetY
	if e.Blur > p.ShadowBlur {
		p.ShadowBlur = e.Blur
	}
	return p
}
