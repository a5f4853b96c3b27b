package effects

// BlurIn resolves the element from MaxBlur pixels of blur to sharp.
type BlurIn struct {
	window
	MaxBlur float64
}

func NewBlurIn(start, duration float64, easingName string, maxBlur float64) *BlurIn {
	if maxBlur <= 0 {
		maxBlur = 8
	}
	return &BlurIn{window: newWindow(start, duration, easingName), MaxBlur: maxBlur}
}

func (e *BlurIn) Apply(t float64, p Props) Props {
	p.Blur += e.MaxBlur * (1 - clamp01(e.progress(t)))
	return p
}

// BlurOut defocuses the element from sharp to MaxBlur pixels.
type BlurOut struct {
	window
	MaxBlur float64
}

func NewBlurOut(start, duration float64, easingName string, maxBlur float64) *BlurOut {
	if maxBlur <= 0 {
		maxBlur = 8
	}
	return &BlurOut{window: newWindow(start, duration, easingName), MaxBlur: maxBlur}
}

func (e *BlurOut) Apply(t float64, p Props) Props {
	p.Blur += e.MaxBlur * clamp01(e.progress(t))
	return p
}
