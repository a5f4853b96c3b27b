package render

import (
	"image"
	"math"

	"github.com/ivlev/scene2video/internal/easing"
)

// FrameEffect mutates the whole canvas after all elements are painted:
// letterbox bars, scanlines and similar full-frame treatments.
type FrameEffect interface {
	ApplyFrame(frame *image.RGBA, t float64)
}

// Letterbox grows black cinema bars from the top and bottom edges.
type Letterbox struct {
	Start     float64
	Duration  float64
	HeightPct float64 // final bar height, percent of canvas height
	ease      easing.Func
}

func NewLetterbox(start, duration float64, easingName string, heightPct float64) *Letterbox {
	if heightPct <= 0 {
		heightPct = 10
	}
	return &Letterbox{Start: start, Duration: duration, HeightPct: heightPct, ease: easing.Get(easingName)}
}

func (e *Letterbox) progress(t float64) float64 {
	if t < e.Start {
		return 0
	}
	if e.Duration <= 0 || t >= e.Start+e.Duration {
		return e.ease(1)
	}
	return e.ease((t - e.Start) / e.Duration)
}

func (e *Letterbox) ApplyFrame(frame *image.RGBA, t float64) {
	prog := e.progress(t)
	if prog <= 0 {
		return
	}
	h := frame.Rect.Dy()
	w := frame.Rect.Dx()
	bar := int(math.Round(float64(h) * e.HeightPct / 100 * prog))
	if bar <= 0 {
		return
	}
	fillRect(frame, image.Rect(0, 0, w, bar), 0, 0, 0, 1)
	fillRect(frame, image.Rect(0, h-bar, w, h), 0, 0, 0, 1)
}

// Scanlines darkens every Spacing-th row, a cheap CRT treatment.
type Scanlines struct {
	Start    float64
	Duration float64
	Spacing  int
	Alpha    float64
}

func NewScanlines(start, duration float64, spacing int, alpha float64) *Scanlines {
	if spacing < 2 {
		spacing = 3
	}
	if alpha <= 0 {
		alpha = 0.25
	}
	return &Scanlines{Start: start, Duration: duration, Spacing: spacing, Alpha: alpha}
}

func (e *Scanlines) ApplyFrame(frame *image.RGBA, t float64) {
	if t < e.Start || (e.Duration > 0 && t >= e.Start+e.Duration) {
		return
	}
	w := frame.Rect.Dx()
	for y := 0; y < frame.Rect.Dy(); y += e.Spacing {
		for x := 0; x < w; x++ {
			blendPixel(frame, x, y, 0, 0, 0, e.Alpha)
		}
	}
}
