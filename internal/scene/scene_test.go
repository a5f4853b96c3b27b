package scene

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/scene2video/internal/effects"
	"github.com/ivlev/scene2video/internal/layout"
)

func TestResolveAtFoldsInOrder(t *testing.T) {
	el := NewText("title", "hello", layout.MustPreset("center"), colorful.Color{R: 1, G: 1, B: 1}, "", 48)
	el.AddEffect(
		effects.NewFadeIn(0, 1, "cubic-out"),
		effects.NewSlideUp(0, 1, "cubic-out", 50),
	)

	p0 := el.ResolveAt(0)
	if p0.Alpha != 0 || math.Abs(p0.OffsetY-50) > 1e-9 {
		t.Errorf("t=0: alpha=%v offsetY=%v, want 0 and 50", p0.Alpha, p0.OffsetY)
	}

	p1 := el.ResolveAt(1)
	if p1.Alpha != 1 || p1.OffsetY != 0 {
		t.Errorf("t=1: alpha=%v offsetY=%v, want 1 and 0", p1.Alpha, p1.OffsetY)
	}

	// 5-sample monotonic check
	prevA, prevY := p0.Alpha, p0.OffsetY
	for _, tm := range []float64{0.2, 0.4, 0.6, 0.8, 1.0} {
		p := el.ResolveAt(tm)
		if p.Alpha < prevA || p.OffsetY > prevY {
			t.Errorf("not monotonic at t=%v: alpha %v→%v, offsetY %v→%v", tm, prevA, p.Alpha, prevY, p.OffsetY)
		}
		prevA, prevY = p.Alpha, p.OffsetY
	}
}

func TestResolveAtIsFreshEveryCall(t *testing.T) {
	el := NewText("n", "x", layout.MustPreset("center"), colorful.Color{}, "", 20)
	el.AddEffect(effects.NewCountUp(0, 2, "linear", 0, 100, 0, "", ""))

	// Out-of-order queries must not leak state between each other
	late := el.ResolveAt(2)
	early := el.ResolveAt(0)
	mid := el.ResolveAt(1)

	if late.VisibleText != "100" || early.VisibleText != "0" || mid.VisibleText != "50" {
		t.Errorf("out-of-order resolution broken: %q %q %q", early.VisibleText, mid.VisibleText, late.VisibleText)
	}
}

func TestBaseAlphaMultiplies(t *testing.T) {
	el := NewRect("r", layout.MustPreset("center"), colorful.Color{R: 0.5}, 100, 50)
	el.Alpha = 0.5
	el.AddEffect(effects.NewFadeIn(0, 1, "linear"))

	p := el.ResolveAt(0.5)
	if math.Abs(p.Alpha-0.25) > 1e-9 {
		t.Errorf("base alpha 0.5 × fade 0.5 = %v, want 0.25", p.Alpha)
	}
}

func TestTimelineGlobalAlpha(t *testing.T) {
	tl := Timeline{Duration: 10, FadeIn: 1, FadeOut: 1}

	if a := tl.GlobalAlpha(0); a != 0 {
		t.Errorf("alpha(0) = %v, want 0", a)
	}
	if a := tl.GlobalAlpha(10); a != 0 {
		t.Errorf("alpha(duration) = %v, want 0", a)
	}
	if a := tl.GlobalAlpha(5); a != 1 {
		t.Errorf("alpha(mid) = %v, want 1", a)
	}
	if a := tl.GlobalAlpha(0.5); a <= 0 || a >= 1 {
		t.Errorf("mid fade-in alpha = %v, want in (0,1)", a)
	}
	if a := tl.GlobalAlpha(9.5); a <= 0 || a >= 1 {
		t.Errorf("mid fade-out alpha = %v, want in (0,1)", a)
	}
}

func TestTimelineOverlapFadeOutWins(t *testing.T) {
	// FadeIn+FadeOut > Duration: the whole scene is inside both windows.
	tl := Timeline{Duration: 1, FadeIn: 1, FadeOut: 1}

	// Fade-out precedence: alpha decreases over the whole scene
	prev := tl.GlobalAlpha(0.01)
	for _, tm := range []float64{0.2, 0.4, 0.6, 0.8, 0.99} {
		a := tl.GlobalAlpha(tm)
		if a > prev {
			t.Errorf("overlap rule violated at t=%v: alpha rose %v→%v", tm, prev, a)
		}
		prev = a
	}
}

func TestTimelineNoFades(t *testing.T) {
	tl := Timeline{Duration: 5}
	for _, tm := range []float64{0, 2.5, 5} {
		if a := tl.GlobalAlpha(tm); a != 1 {
			t.Errorf("no-fade timeline alpha(%v) = %v, want 1", tm, a)
		}
	}
}
