package easing

import (
	"math"
	"testing"
)

func TestBoundaryValues(t *testing.T) {
	// Every registered function must hit the boundaries exactly, including
	// the overshoot families where the raw formula is not exact.
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			f := Get(name)
			if got := f(0); got != 0 {
				t.Errorf("%s(0) = %v, want exactly 0", name, got)
			}
			if got := f(1); got != 1 {
				t.Errorf("%s(1) = %v, want exactly 1", name, got)
			}
		})
	}
}

func TestUnknownNameFallsBackToLinear(t *testing.T) {
	f := Get("no-such-easing")
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if f(v) != v {
			t.Errorf("fallback(%v) = %v, want linear", v, f(v))
		}
	}

	if Get("")(0.3) != 0.3 {
		t.Error("empty name should resolve to linear")
	}
}

func TestKnownMidpoints(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"linear", 0.5, 0.5},
		{"quad-in", 0.5, 0.25},
		{"quad-out", 0.5, 0.75},
		{"cubic-in", 0.5, 0.125},
		{"cubic-out", 0.5, 0.875},
		{"quart-in", 0.5, 0.0625},
		{"cubic-in-out", 0.25, 4 * 0.25 * 0.25 * 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(tt.name)(tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%s(%v) = %v, want %v", tt.name, tt.t, got, tt.want)
			}
		})
	}
}

func TestElasticOutFormula(t *testing.T) {
	// 2^(-10t)*sin((10t-0.75)*(2π/3))+1 at an interior point
	f := Get("elastic-out")
	x := 0.3
	c4 := 2 * math.Pi / 3
	want := math.Pow(2, -10*x)*math.Sin((10*x-0.75)*c4) + 1
	if math.Abs(f(x)-want) > 1e-9 {
		t.Errorf("elastic-out(%v) = %v, want %v", x, f(x), want)
	}
}

func TestBounceOutSegments(t *testing.T) {
	f := Get("bounce-out")
	// Parabola peaks: the function touches 1 at the segment breakpoints
	for _, x := range []float64{1 / 2.75, 2 / 2.75, 2.5 / 2.75} {
		if got := f(x); math.Abs(got-1) > 1e-9 {
			t.Errorf("bounce-out(%v) = %v, want 1 at breakpoint", x, got)
		}
	}
	// First segment is 7.5625*t^2
	x := 0.2
	if got, want := f(x), 7.5625*x*x; math.Abs(got-want) > 1e-9 {
		t.Errorf("bounce-out(%v) = %v, want %v", x, got, want)
	}
}

func TestBackOutOvershoots(t *testing.T) {
	f := Get("back-out")
	overshot := false
	for x := 0.05; x < 1; x += 0.05 {
		if f(x) > 1 {
			overshot = true
		}
	}
	if !overshot {
		t.Error("back-out should overshoot past 1 mid-curve")
	}
}
