package effects

// Annotation effects only advance a progress key in the bag; the compositor
// draws the actual overlay (a line, a circle, an arrow) on top of the element
// as the final paint step.

// Underline sweeps a line under the text.
type Underline struct {
	window
}

func NewUnderline(start, duration float64, easingName string) *Underline {
	return &Underline{newWindow(start, duration, easingName)}
}

func (e *Underline) Apply(t float64, p Props) Props {
	p.Underline = clamp01(p.Underline + clamp01(e.progress(t)))
	return p
}

// Strikethrough sweeps a line through the text.
type Strikethrough struct {
	window
}

func NewStrikethrough(start, duration float64, easingName string) *Strikethrough {
	return &Strikethrough{newWindow(start, duration, easingName)}
}

func (e *Strikethrough) Apply(t float64, p Props) Props {
	p.Strike = clamp01(p.Strike + clamp01(e.progress(t)))
	return p
}

// CircleAnnot draws a hand-style ellipse around the element.
type CircleAnnot struct {
	window
}

func NewCircleAnnot(start, duration float64, easingName string) *CircleAnnot {
	return &CircleAnnot{newWindow(start, duration, easingName)}
}

func (e *CircleAnnot) Apply(t float64, p Props) Props {
	p.Circle = clamp01(p.Circle + clamp01(e.progress(t)))
	return p
}

// ArrowAnnot grows an arrow pointing at the element from the left.
type ArrowAnnot struct {
	window
}

func NewArrowAnnot(start, duration float64, easingName string) *ArrowAnnot {
	return &ArrowAnnot{newWindow(start, duration, easingName)}
}

func (e *ArrowAnnot) Apply(t float64, p Props) Props {
	p.Arrow = clamp01(p.Arrow + clamp01(e.progress(t)))
	return p
}
