// Package textfit wraps and auto-shrinks a string into a bounded box using
// real font metrics. Fitting is a pure function of its inputs, so results can
// be recomputed per frame without shared state.
package textfit

import (
	"math"
	"strings"

	"github.com/ivlev/scene2video/internal/fonts"
)

const (
	// DefaultMinFontSize is the floor below which the fitter stops shrinking
	// and accepts overflow.
	DefaultMinFontSize = 16

	// DefaultLineSpacing multiplies the font size into a line height.
	DefaultLineSpacing = 1.3

	// shrinkStep is how many points the size drops per failed fit attempt.
	shrinkStep = 2
)

// Layout is a read-only fit result.
type Layout struct {
	Lines       []string
	FontSize    float64
	LineHeight  float64
	TotalHeight float64
}

// MaxLineWidth returns the widest line's advance at the fitted size.
func (l Layout) MaxLineWidth(fontPath string) float64 {
	max := 0.0
	for _, line := range l.Lines {
		if w := fonts.Measure(fontPath, l.FontSize, line); w > max {
			max = w
		}
	}
	return max
}

// Fit lays text out at desiredSize, word-wrapping greedily against maxWidth,
// shrinking by shrinkStep and retrying while more than maxLines result
// (maxLines<=0 means unlimited). The size never drops below minFontSize:
// past that the layout is returned with overflow rather than looping.
func Fit(text, fontPath string, desiredSize, maxWidth float64, maxLines int, minFontSize, lineSpacing float64) Layout {
	if minFontSize <= 0 {
		minFontSize = DefaultMinFontSize
	}
	if lineSpacing <= 0 {
		lineSpacing = DefaultLineSpacing
	}

	size := desiredSize
	if size < minFontSize {
		size = minFontSize
	}

	var lines []string
	for {
		lines = wrap(text, fontPath, size, maxWidth)
		if maxLines <= 0 || len(lines) <= maxLines || size <= minFontSize {
			break
		}
		size -= shrinkStep
		if size < minFontSize {
			size = minFontSize
		}
	}

	lineHeight := math.Round(size * lineSpacing)
	return Layout{
		Lines:       lines,
		FontSize:    size,
		LineHeight:  lineHeight,
		TotalHeight: lineHeight * float64(len(lines)),
	}
}

// wrap greedily packs whole words into lines no wider than maxWidth. A single
// word wider than maxWidth gets its own line and is allowed to overflow:
// words are never split.
func wrap(text, fontPath string, size, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if fonts.Measure(fontPath, size, candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
