package textfit

import (
	"strings"
	"testing"

	"github.com/ivlev/scene2video/internal/fonts"
)

func TestFitRespectsMaxLines(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("a ", 50))

	l := Fit(text, "", 72, 400, 2, 16, 1.3)
	if len(l.Lines) > 2 {
		t.Errorf("got %d lines, maxLines=2 must hold (font size %v)", len(l.Lines), l.FontSize)
	}
	if l.FontSize >= 72 {
		t.Errorf("fitter should have shrunk the font, still at %v", l.FontSize)
	}
	t.Logf("fitted at %vpt in %d lines", l.FontSize, len(l.Lines))
}

func TestFitStopsAtMinFontSize(t *testing.T) {
	// Way too much text for one line in a narrow box: must terminate at the
	// floor and accept overflow instead of looping.
	text := strings.TrimSpace(strings.Repeat("overflow ", 80))

	l := Fit(text, "", 60, 120, 1, 16, 1.3)
	if l.FontSize != 16 {
		t.Errorf("font size = %v, want floor 16", l.FontSize)
	}
	if len(l.Lines) <= 1 {
		t.Errorf("expected accepted overflow beyond maxLines, got %d lines", len(l.Lines))
	}
}

func TestSingleOverlongWordOwnsItsLine(t *testing.T) {
	word := "Honorificabilitudinitatibus"

	l := Fit(word, "", 40, 100, 0, 16, 1.3)
	if len(l.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(l.Lines))
	}
	if l.Lines[0] != word {
		t.Errorf("word must never be split, got %q", l.Lines[0])
	}
	if w := fonts.Measure("", l.FontSize, l.Lines[0]); w <= 100 {
		t.Logf("word happens to fit at %vpt (width %v)", l.FontSize, w)
	}
}

func TestLineHeightAndTotalHeight(t *testing.T) {
	l := Fit("one two three four five six seven eight", "", 30, 300, 0, 16, 1.3)

	wantLH := float64(39) // round(30*1.3)
	if l.LineHeight != wantLH {
		t.Errorf("LineHeight = %v, want %v", l.LineHeight, wantLH)
	}
	if l.TotalHeight != wantLH*float64(len(l.Lines)) {
		t.Errorf("TotalHeight = %v, want lineHeight*lineCount = %v", l.TotalHeight, wantLH*float64(len(l.Lines)))
	}
}

func TestFitIsDeterministic(t *testing.T) {
	a := Fit("determinism matters for frame rendering", "", 48, 350, 2, 16, 1.3)
	b := Fit("determinism matters for frame rendering", "", 48, 350, 2, 16, 1.3)

	if a.FontSize != b.FontSize || len(a.Lines) != len(b.Lines) {
		t.Fatalf("two identical fits disagree: %+v vs %+v", a, b)
	}
	for i := range a.Lines {
		if a.Lines[i] != b.Lines[i] {
			t.Errorf("line %d differs: %q vs %q", i, a.Lines[i], b.Lines[i])
		}
	}
}

func TestEmptyText(t *testing.T) {
	l := Fit("", "", 40, 400, 2, 16, 1.3)
	if len(l.Lines) != 1 || l.Lines[0] != "" {
		t.Errorf("empty text should produce a single empty line, got %q", l.Lines)
	}
}
