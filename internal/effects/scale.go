package effects

// ScaleIn grows the element from From (default 0) to its natural size.
// Scale multiplies, so stacked scale effects compound.
type ScaleIn struct {
	window
	From float64
}

func NewScaleIn(start, duration float64, easingName string, from float64) *ScaleIn {
	return &ScaleIn{window: newWindow(start, duration, easingName), From: from}
}

func (e *ScaleIn) Apply(t float64, p Props) Props {
	prog := e.progress(t)
	p.Scale *= e.From + (1-e.From)*prog
	return p
}

// ScaleOut shrinks the element from its natural size down to To (default 0).
type ScaleOut struct {
	window
	To float64
}

func NewScaleOut(start, duration float64, easingName string, to float64) *ScaleOut {
	return &ScaleOut{window: newWindow(start, duration, easingName), To: to}
}

func (e *ScaleOut) Apply(t float64, p Props) Props {
	prog := e.progress(t)
	p.Scale *= 1 + (e.To-1)*prog
	return p
}

// ExpandWidth grows only the horizontal extent, used for underbars and
// rectangle reveals.
type ExpandWidth struct {
	window
}

func NewExpandWidth(start, duration float64, easingName string) *ExpandWidth {
	return &ExpandWidth{newWindow(start, duration, easingName)}
}

func (e *ExpandWidth) Apply(t float64, p Props) Props {
	p.ScaleX *= clamp01(e.progress(t))
	return p
}
