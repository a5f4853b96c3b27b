package easing

import (
	"log"
	"sync"

	"github.com/fogleman/ease"
)

// Func remaps normalized animation progress. Every registered function
// returns exactly 0 at t=0 and exactly 1 at t=1; overshoot families (back,
// elastic) may leave [0,1] in between.
type Func func(t float64) float64

// Linear is the identity easing and the fallback for unknown names.
func Linear(t float64) float64 {
	return t
}

var registry = map[string]Func{
	"linear":       Linear,
	"quad-in":      exact(ease.InQuad),
	"quad-out":     exact(ease.OutQuad),
	"quad-in-out":  exact(ease.InOutQuad),
	"cubic-in":     exact(ease.InCubic),
	"cubic-out":    exact(ease.OutCubic),
	"cubic-in-out": exact(ease.InOutCubic),
	"quart-in":     exact(ease.InQuart),
	"quart-out":    exact(ease.OutQuart),
	"quart-in-out": exact(ease.InOutQuart),
	"expo-in":      exact(ease.InExpo),
	"expo-out":     exact(ease.OutExpo),
	"expo-in-out":  exact(ease.InOutExpo),
	"back-out":     exact(ease.OutBack),
	// Период 0.3 дает классическую формулу 2^(-10t)*sin((10t-0.75)*2π/3)+1
	"elastic-out": exact(ease.OutElasticFunction(0.3)),
	"bounce-out":  exact(ease.OutBounce),
}

var (
	warnedMu sync.Mutex
	warned   = map[string]bool{}
)

// Get returns the easing function registered under name. Unknown names fall
// back to linear: a misspelled easing in a scene should soften the motion,
// not kill the render.
func Get(name string) Func {
	if name == "" {
		return Linear
	}
	if f, ok := registry[name]; ok {
		return f
	}
	warnedMu.Lock()
	if !warned[name] {
		warned[name] = true
		log.Printf("[!] Неизвестный easing %q, используется linear", name)
	}
	warnedMu.Unlock()
	return Linear
}

// Names returns the registered easing names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

// exact pins the boundary values. The raw expo and elastic formulas are not
// exact at 0 and 1 in floating point, and the contract requires f(0)=0,
// f(1)=1 precisely.
func exact(f ease.Function) Func {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return f(t)
	}
}
