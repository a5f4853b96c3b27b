package scene

import "github.com/ivlev/scene2video/internal/easing"

// Timeline is the scene-wide fade governor, independent of per-element
// effects: its alpha multiplies every element's resolved alpha.
type Timeline struct {
	Duration float64
	FadeIn   float64
	FadeOut  float64
}

// GlobalAlpha ramps 0→1 over [0, FadeIn) with cubic-out easing, holds 1, and
// ramps 1→0 over [Duration-FadeOut, Duration) with cubic-in-out. When the
// windows overlap (FadeIn+FadeOut > Duration) the fade-out wins: one
// documented rule, not a blend.
func (tl Timeline) GlobalAlpha(t float64) float64 {
	if t <= 0 {
		if tl.FadeIn > 0 {
			return 0
		}
		return 1
	}
	if t >= tl.Duration {
		if tl.FadeOut > 0 {
			return 0
		}
		return 1
	}

	if tl.FadeOut > 0 && t >= tl.Duration-tl.FadeOut {
		prog := (tl.Duration - t) / tl.FadeOut
		return easing.Get("cubic-in-out")(prog)
	}
	if tl.FadeIn > 0 && t < tl.FadeIn {
		return easing.Get("cubic-out")(t / tl.FadeIn)
	}
	return 1
}
