package layout

import "fmt"

// Align is horizontal alignment of an element box around its anchor.
type Align string

// VAlign is vertical alignment of an element box around its anchor.
type VAlign string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"

	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// Spec is a percentage-based position rule. It is resolved to pixels only at
// paint time, against the concrete canvas and the measured element box.
type Spec struct {
	XPct       float64 // anchor X inside the safe area, 0..100
	YPct       float64 // anchor Y inside the safe area, 0..100
	Align      Align
	VAlign     VAlign
	PaddingPct float64 // safe-area inset on every edge, percent of canvas
}

// Presets map broadcast-style named positions to fixed specs.
var presets = map[string]Spec{
	"center":             {XPct: 50, YPct: 50, Align: AlignCenter, VAlign: VAlignMiddle, PaddingPct: 5},
	"upper-third-left":   {XPct: 0, YPct: 20, Align: AlignLeft, VAlign: VAlignMiddle, PaddingPct: 5},
	"upper-third-center": {XPct: 50, YPct: 20, Align: AlignCenter, VAlign: VAlignMiddle, PaddingPct: 5},
	"upper-third-right":  {XPct: 100, YPct: 20, Align: AlignRight, VAlign: VAlignMiddle, PaddingPct: 5},
	"lower-third-left":   {XPct: 0, YPct: 80, Align: AlignLeft, VAlign: VAlignMiddle, PaddingPct: 5},
	"lower-third-center": {XPct: 50, YPct: 80, Align: AlignCenter, VAlign: VAlignMiddle, PaddingPct: 5},
	"lower-third-right":  {XPct: 100, YPct: 80, Align: AlignRight, VAlign: VAlignMiddle, PaddingPct: 5},
	"top-left":           {XPct: 0, YPct: 0, Align: AlignLeft, VAlign: VAlignTop, PaddingPct: 5},
	"top-right":          {XPct: 100, YPct: 0, Align: AlignRight, VAlign: VAlignTop, PaddingPct: 5},
	"bottom-left":        {XPct: 0, YPct: 100, Align: AlignLeft, VAlign: VAlignBottom, PaddingPct: 5},
	"bottom-right":       {XPct: 100, YPct: 100, Align: AlignRight, VAlign: VAlignBottom, PaddingPct: 5},
	"left-half":          {XPct: 25, YPct: 50, Align: AlignCenter, VAlign: VAlignMiddle, PaddingPct: 5},
	"right-half":         {XPct: 75, YPct: 50, Align: AlignCenter, VAlign: VAlignMiddle, PaddingPct: 5},
	"full":               {XPct: 50, YPct: 50, Align: AlignCenter, VAlign: VAlignMiddle, PaddingPct: 0},
}

// Preset resolves a named position. An unknown preset is a configuration
// error: silently mispositioning an element is worse than failing the render.
func Preset(name string) (Spec, error) {
	spec, ok := presets[name]
	if !ok {
		return Spec{}, fmt.Errorf("неизвестный пресет позиции: %q", name)
	}
	return spec, nil
}

// MustPreset is Preset for call sites with compile-time-known names.
func MustPreset(name string) Spec {
	spec, err := Preset(name)
	if err != nil {
		panic(err)
	}
	return spec
}

// Resolve converts a spec to the top-left pixel corner of an element box of
// size elemW×elemH on a canvasW×canvasH canvas.
func Resolve(spec Spec, canvasW, canvasH, elemW, elemH float64) (float64, float64) {
	padX := canvasW * spec.PaddingPct / 100
	padY := canvasH * spec.PaddingPct / 100
	safeW := canvasW - 2*padX
	safeH := canvasH - 2*padY

	x := padX + safeW*spec.XPct/100
	y := padY + safeH*spec.YPct/100

	switch spec.Align {
	case AlignCenter:
		x -= elemW / 2
	case AlignRight:
		x -= elemW
	}

	switch spec.VAlign {
	case VAlignMiddle:
		y -= elemH / 2
	case VAlignBottom:
		y -= elemH
	}

	return x, y
}
