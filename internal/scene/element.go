// Package scene holds the declarative scene model: elements with ordered
// effect lists, and the scene-wide timeline. An element is built once before
// rendering and never mutated during it; all per-frame state lives in the
// property bag returned by ResolveAt.
package scene

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/scene2video/internal/effects"
	"github.com/ivlev/scene2video/internal/layout"
)

// Kind discriminates paintable element variants.
type Kind string

const (
	KindText Kind = "text"
	KindRect Kind = "rect"
	KindQR   Kind = "qr"
)

// Element is one paintable scene object. The effect list is ordered and the
// order is a published contract: effect i+1 observes the bag left by effect i
// for the same frame, so callers layer effects by attachment order.
type Element struct {
	ID       string
	Kind     Kind
	Position layout.Spec
	Color    colorful.Color
	Alpha    float64
	Visible  bool

	// Текстовые поля
	Text     string
	FontPath string
	FontSize float64
	MaxWidth float64 // pixels; 0 = 90% of canvas at paint time
	MaxLines int

	// Прямоугольник
	Width  float64
	Height float64

	// QR: готовый растр, собирается один раз при конструировании
	QRImage image.Image

	effectList []effects.Effect
}

// NewText creates a text element with sane defaults.
func NewText(id, text string, pos layout.Spec, c colorful.Color, fontPath string, fontSize float64) *Element {
	return &Element{
		ID:       id,
		Kind:     KindText,
		Position: pos,
		Color:    c,
		Alpha:    1,
		Visible:  true,
		Text:     text,
		FontPath: fontPath,
		FontSize: fontSize,
	}
}

// NewRect creates a solid rectangle element.
func NewRect(id string, pos layout.Spec, c colorful.Color, w, h float64) *Element {
	return &Element{
		ID:       id,
		Kind:     KindRect,
		Position: pos,
		Color:    c,
		Alpha:    1,
		Visible:  true,
		Width:    w,
		Height:   h,
	}
}

// NewQR creates a QR-code element from a pre-rendered raster. The raster is
// produced once at construction so the per-frame hot path never re-encodes.
func NewQR(id string, pos layout.Spec, img image.Image, size float64) *Element {
	return &Element{
		ID:       id,
		Kind:     KindQR,
		Position: pos,
		Color:    colorful.Color{},
		Alpha:    1,
		Visible:  true,
		Width:    size,
		Height:   size,
		QRImage:  img,
	}
}

// AddEffect appends an effect. Effects may be appended only before rendering
// begins.
func (e *Element) AddEffect(effs ...effects.Effect) *Element {
	e.effectList = append(e.effectList, effs...)
	return e
}

// Effects returns the ordered effect list.
func (e *Element) Effects() []effects.Effect {
	return e.effectList
}

// ResolveAt folds the ordered effect list over the default bag. The fold is
// strictly left-to-right with no reordering or dependency inference, and the
// result is derived fresh on every call — never cached — so resolution is
// referentially transparent in t.
func (e *Element) ResolveAt(t float64) effects.Props {
	p := effects.Defaults(e.Text, e.Color, e.Alpha)
	for _, eff := range e.effectList {
		p = eff.Apply(t, p)
	}
	return p
}
