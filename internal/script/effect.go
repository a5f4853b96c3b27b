package script

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/scene2video/internal/effects"
	"github.com/ivlev/scene2video/internal/render"
)

// EffectSpec is one declarative effect. The Type field selects the effect;
// the remaining fields are interpreted per type and unused ones ignored.
type EffectSpec struct {
	Type     string  `yaml:"type"`
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
	Easing   string  `yaml:"easing,omitempty"`

	Distance    float64 `yaml:"distance,omitempty"`
	Amplitude   float64 `yaml:"amplitude,omitempty"`
	Frequency   float64 `yaml:"frequency,omitempty"`
	From        float64 `yaml:"from,omitempty"`
	To          float64 `yaml:"to,omitempty"`
	Decimals    int     `yaml:"decimals,omitempty"`
	Prefix      string  `yaml:"prefix,omitempty"`
	Suffix      string  `yaml:"suffix,omitempty"`
	Angle       float64 `yaml:"angle,omitempty"`
	Revolutions float64 `yaml:"revolutions,omitempty"`
	Cycles      float64 `yaml:"cycles,omitempty"`
	MaxBlur     float64 `yaml:"max_blur,omitempty"`
	Target      string  `yaml:"target,omitempty"` // hex color
	Alpha       float64 `yaml:"alpha,omitempty"`
	OffsetX     float64 `yaml:"offset_x,omitempty"`
	OffsetY     float64 `yaml:"offset_y,omitempty"`
	Blur        float64 `yaml:"blur,omitempty"`
	Radius      float64 `yaml:"radius,omitempty"`
	Peak        float64 `yaml:"peak,omitempty"`
	Height      float64 `yaml:"height,omitempty"`
	HeightPct   float64 `yaml:"height_pct,omitempty"`
	Spacing     int     `yaml:"spacing,omitempty"`
}

func buildEffect(s EffectSpec) (effects.Effect, error) {
	switch s.Type {
	case "fade-in":
		return effects.NewFadeIn(s.Start, s.Duration, s.Easing), nil
	case "fade-out":
		return effects.NewFadeOut(s.Start, s.Duration, s.Easing), nil
	case "flash":
		return effects.NewFlash(s.Start, s.Duration, s.Easing, s.Peak), nil
	case "pulse":
		return effects.NewPulse(s.Start, s.Duration, s.Easing, s.Amplitude, s.Cycles), nil
	case "slide-up":
		return effects.NewSlideUp(s.Start, s.Duration, s.Easing, s.Distance), nil
	case "slide-down":
		return effects.NewSlideDown(s.Start, s.Duration, s.Easing, s.Distance), nil
	case "slide-left":
		return effects.NewSlideLeft(s.Start, s.Duration, s.Easing, s.Distance), nil
	case "slide-right":
		return effects.NewSlideRight(s.Start, s.Duration, s.Easing, s.Distance), nil
	case "bounce":
		return effects.NewBounce(s.Start, s.Duration, s.Height), nil
	case "shake":
		return effects.NewShake(s.Start, s.Duration, s.Amplitude, s.Frequency), nil
	case "glitch":
		return effects.NewGlitch(s.Start, s.Duration, s.Amplitude, s.Frequency), nil
	case "scale-in":
		return effects.NewScaleIn(s.Start, s.Duration, s.Easing, s.From), nil
	case "scale-out":
		return effects.NewScaleOut(s.Start, s.Duration, s.Easing, s.To), nil
	case "expand-width":
		return effects.NewExpandWidth(s.Start, s.Duration, s.Easing), nil
	case "rotate-in":
		return effects.NewRotateIn(s.Start, s.Duration, s.Easing, s.Angle), nil
	case "rotate-out":
		return effects.NewRotateOut(s.Start, s.Duration, s.Easing, s.Angle), nil
	case "spin":
		return effects.NewSpin(s.Start, s.Duration, s.Easing, s.Revolutions), nil
	case "wobble":
		return effects.NewWobble(s.Start, s.Duration, s.Amplitude, s.Cycles), nil
	case "blur-in":
		return effects.NewBlurIn(s.Start, s.Duration, s.Easing, s.MaxBlur), nil
	case "blur-out":
		return effects.NewBlurOut(s.Start, s.Duration, s.Easing, s.MaxBlur), nil
	case "color-shift":
		target, err := parseColor(s.Target, colorful.Color{R: 1, G: 1, B: 1})
		if err != nil {
			return nil, err
		}
		return effects.NewColorShift(s.Start, s.Duration, s.Easing, target), nil
	case "glow-pulse":
		return effects.NewGlowPulse(s.Start, s.Duration, s.Alpha, s.Radius, s.Cycles), nil
	case "shadow-drop":
		return effects.NewShadowDrop(s.Start, s.Duration, s.Easing, s.Alpha, s.OffsetX, s.OffsetY, s.Blur), nil
	case "count-up":
		return effects.NewCountUp(s.Start, s.Duration, s.Easing, s.From, s.To, s.Decimals, s.Prefix, s.Suffix), nil
	case "reveal":
		return effects.NewReveal(s.Start, s.Duration, s.Easing), nil
	case "typewriter":
		return effects.NewTypeWriter(s.Start, s.Duration), nil
	case "underline":
		return effects.NewUnderline(s.Start, s.Duration, s.Easing), nil
	case "strikethrough":
		return effects.NewStrikethrough(s.Start, s.Duration, s.Easing), nil
	case "circle":
		return effects.NewCircleAnnot(s.Start, s.Duration, s.Easing), nil
	case "arrow":
		return effects.NewArrowAnnot(s.Start, s.Duration, s.Easing), nil
	default:
		return nil, fmt.Errorf("неизвестный тип эффекта: %q", s.Type)
	}
}

func buildFrameEffect(s EffectSpec) (render.FrameEffect, error) {
	switch s.Type {
	case "letterbox":
		return render.NewLetterbox(s.Start, s.Duration, s.Easing, s.HeightPct), nil
	case "scanlines":
		return render.NewScanlines(s.Start, s.Duration, s.Spacing, s.Alpha), nil
	default:
		return nil, fmt.Errorf("неизвестный тип фрейм-эффекта: %q", s.Type)
	}
}
