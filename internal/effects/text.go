package effects

import (
	"fmt"
	"math"
	"strings"
)

// CountUp animates a number from From to To and overwrites the visible text
// with the formatted value. Interpolation happens first on the raw float,
// formatting (decimals, thousands separators, prefix/suffix) strictly after.
//
// Text-producing effects overwrite VisibleText rather than composing; two of
// them on one element is a caller mistake and resolves last-applied-wins.
type CountUp struct {
	window
	From     float64
	To       float64
	Decimals int
	Prefix   string
	Suffix   string
}

func NewCountUp(start, duration float64, easingName string, from, to float64, decimals int, prefix, suffix string) *CountUp {
	return &CountUp{
		window:   newWindow(start, duration, easingName),
		From:     from,
		To:       to,
		Decimals: decimals,
		Prefix:   prefix,
		Suffix:   suffix,
	}
}

func (e *CountUp) Apply(t float64, p Props) Props {
	value := e.From + (e.To-e.From)*e.progress(t)
	p.VisibleText = e.Prefix + formatGrouped(value, e.Decimals) + e.Suffix
	return p
}

// formatGrouped renders v with the given number of decimals and comma
// thousands separators in the integer part.
func formatGrouped(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	s := fmt.Sprintf("%.*f", decimals, v)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	if neg {
		intPart = "-" + intPart
	}
	return intPart + fracPart
}

// Reveal uncovers the element text rune by rune, proportionally to eased
// progress.
type Reveal struct {
	window
}

func NewReveal(start, duration float64, easingName string) *Reveal {
	return &Reveal{newWindow(start, duration, easingName)}
}

func (e *Reveal) Apply(t float64, p Props) Props {
	runes := []rune(p.VisibleText)
	n := int(math.Round(clamp01(e.progress(t)) * float64(len(runes))))
	p.VisibleText = string(runes[:n])
	return p
}

// TypeWriter uncovers the text in discrete character steps, like typing.
// Unlike Reveal it ignores easing shape inside the window: characters land
// at a constant rate.
type TypeWriter struct {
	window
}

func NewTypeWriter(start, duration float64) *TypeWriter {
	return &TypeWriter{newWindow(start, duration, "linear")}
}

func (e *TypeWriter) Apply(t float64, p Props) Props {
	runes := []rune(p.VisibleText)
	n := int(math.Floor(clamp01(e.progress(t)) * float64(len(runes))))
	if e.progress(t) >= 1 {
		n = len(runes)
	}
	p.VisibleText = string(runes[:n])
	return p
}
