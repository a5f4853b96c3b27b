// Package script reads and writes declarative scene files. A scene file is
// orchestration input: Build turns it into fully-formed elements and effects
// for the renderer, which itself never parses any file format.
package script

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	qrcode "github.com/skip2/go-qrcode"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/scene2video/internal/layout"
	"github.com/ivlev/scene2video/internal/render"
	"github.com/ivlev/scene2video/internal/scene"
)

// Scene is a complete declarative scene document.
type Scene struct {
	Version  string        `yaml:"version"`
	Canvas   Canvas        `yaml:"canvas"`
	Timeline TimelineSpec  `yaml:"timeline"`
	Elements []ElementSpec `yaml:"elements"`
	FrameFX  []EffectSpec  `yaml:"frame_effects,omitempty"`
}

// Canvas is the output geometry and background.
type Canvas struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	FPS        int    `yaml:"fps"`
	Background string `yaml:"background"` // hex, e.g. "#101018"
}

// TimelineSpec mirrors scene.Timeline.
type TimelineSpec struct {
	Duration float64 `yaml:"duration"`
	FadeIn   float64 `yaml:"fade_in"`
	FadeOut  float64 `yaml:"fade_out"`
}

// PositionSpec is either a named preset or an explicit percentage rule.
type PositionSpec struct {
	Preset  string  `yaml:"preset,omitempty"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	Align   string  `yaml:"align,omitempty"`
	VAlign  string  `yaml:"valign,omitempty"`
	Padding float64 `yaml:"padding,omitempty"`
}

// ElementSpec is one declarative element with its ordered effect list.
type ElementSpec struct {
	ID       string       `yaml:"id"`
	Kind     string       `yaml:"kind"` // text | rect | qr
	Position PositionSpec `yaml:"position"`
	Color    string       `yaml:"color,omitempty"`
	Alpha    *float64     `yaml:"alpha,omitempty"`

	Text     string  `yaml:"text,omitempty"`
	Font     string  `yaml:"font,omitempty"`
	Size     float64 `yaml:"size,omitempty"`
	MaxWidth float64 `yaml:"max_width,omitempty"`
	MaxLines int     `yaml:"max_lines,omitempty"`

	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	Content string `yaml:"content,omitempty"` // qr payload

	Effects []EffectSpec `yaml:"effects,omitempty"`
}

// Read loads a scene document from a YAML file.
func Read(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Write saves a scene document to a YAML file.
func Write(sc *Scene, path string) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build assembles a renderer from the document. Configuration mistakes —
// unknown element kinds, presets, effect types, malformed colors — are
// returned as errors rather than silently mispositioned pixels.
func (sc *Scene) Build() (*render.Renderer, error) {
	if sc.Canvas.Width <= 0 || sc.Canvas.Height <= 0 {
		return nil, fmt.Errorf("некорректный размер холста %dx%d", sc.Canvas.Width, sc.Canvas.Height)
	}
	fps := sc.Canvas.FPS
	if fps <= 0 {
		fps = 30
	}
	if sc.Timeline.Duration <= 0 {
		return nil, fmt.Errorf("длительность сцены должна быть больше нуля")
	}

	bg, err := parseColor(sc.Canvas.Background, colorful.Color{})
	if err != nil {
		return nil, fmt.Errorf("фон холста: %w", err)
	}

	r := render.New(sc.Canvas.Width, sc.Canvas.Height, fps, bg, scene.Timeline{
		Duration: sc.Timeline.Duration,
		FadeIn:   sc.Timeline.FadeIn,
		FadeOut:  sc.Timeline.FadeOut,
	})

	for i, spec := range sc.Elements {
		el, err := buildElement(spec)
		if err != nil {
			return nil, fmt.Errorf("элемент %d (%s): %w", i, spec.ID, err)
		}
		if err := r.Add(el); err != nil {
			return nil, err
		}
	}

	for i, spec := range sc.FrameFX {
		fx, err := buildFrameEffect(spec)
		if err != nil {
			return nil, fmt.Errorf("фрейм-эффект %d: %w", i, err)
		}
		r.AddFrameEffect(fx)
	}

	return r, nil
}

func buildElement(spec ElementSpec) (*scene.Element, error) {
	pos, err := resolvePosition(spec.Position)
	if err != nil {
		return nil, err
	}

	col, err := parseColor(spec.Color, colorful.Color{R: 1, G: 1, B: 1})
	if err != nil {
		return nil, err
	}

	var el *scene.Element
	switch spec.Kind {
	case "text":
		size := spec.Size
		if size <= 0 {
			size = 48
		}
		el = scene.NewText(spec.ID, spec.Text, pos, col, spec.Font, size)
		el.MaxWidth = spec.MaxWidth
		el.MaxLines = spec.MaxLines
	case "rect":
		if spec.Width <= 0 || spec.Height <= 0 {
			return nil, fmt.Errorf("прямоугольник требует width и height")
		}
		el = scene.NewRect(spec.ID, pos, col, spec.Width, spec.Height)
	case "qr":
		if spec.Content == "" {
			return nil, fmt.Errorf("qr-элемент требует content")
		}
		size := spec.Size
		if size <= 0 {
			size = 240
		}
		q, err := qrcode.New(spec.Content, qrcode.Medium)
		if err != nil {
			return nil, fmt.Errorf("qr: %w", err)
		}
		el = scene.NewQR(spec.ID, pos, q.Image(int(size)), size)
	default:
		return nil, fmt.Errorf("неизвестный вид элемента: %q", spec.Kind)
	}

	if spec.Alpha != nil {
		el.Alpha = *spec.Alpha
	}

	for i, es := range spec.Effects {
		eff, err := buildEffect(es)
		if err != nil {
			return nil, fmt.Errorf("эффект %d (%s): %w", i, es.Type, err)
		}
		el.AddEffect(eff)
	}
	return el, nil
}

func resolvePosition(spec PositionSpec) (layout.Spec, error) {
	if spec.Preset != "" {
		return layout.Preset(spec.Preset)
	}
	align := layout.Align(spec.Align)
	if align == "" {
		align = layout.AlignCenter
	}
	valign := layout.VAlign(spec.VAlign)
	if valign == "" {
		valign = layout.VAlignMiddle
	}
	return layout.Spec{
		XPct:       spec.X,
		YPct:       spec.Y,
		Align:      align,
		VAlign:     valign,
		PaddingPct: spec.Padding,
	}, nil
}

func parseColor(hex string, fallback colorful.Color) (colorful.Color, error) {
	if hex == "" {
		return fallback, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("цвет %q: %w", hex, err)
	}
	return c, nil
}
