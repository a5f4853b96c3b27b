package script

func floatPtr(v float64) *float64 { return &v }

// Demo returns a showcase scene exercising most effect families. Written to
// disk on first run so there is something to render out of the box.
func Demo() *Scene {
	return &Scene{
		Version: "1.0",
		Canvas: Canvas{
			Width:      1920,
			Height:     1080,
			FPS:        30,
			Background: "#10101e",
		},
		Timeline: TimelineSpec{
			Duration: 10,
			FadeIn:   0.5,
			FadeOut:  0.5,
		},
		Elements: []ElementSpec{
			{
				ID:       "backdrop",
				Kind:     "rect",
				Position: PositionSpec{Preset: "center"},
				Color:    "#1c2740",
				Alpha:    floatPtr(0.85),
				Width:    1200,
				Height:   420,
				Effects: []EffectSpec{
					{Type: "scale-in", Start: 0.2, Duration: 0.8, Easing: "back-out", From: 0.6},
					{Type: "fade-in", Start: 0.2, Duration: 0.6, Easing: "cubic-out"},
				},
			},
			{
				ID:       "title",
				Kind:     "text",
				Text:     "Выручка за квартал",
				Position: PositionSpec{Preset: "upper-third-center"},
				Color:    "#ffffff",
				Size:     84,
				MaxWidth: 1400,
				MaxLines: 2,
				Effects: []EffectSpec{
					{Type: "fade-in", Start: 0.5, Duration: 0.8, Easing: "cubic-out"},
					{Type: "slide-up", Start: 0.5, Duration: 0.8, Easing: "cubic-out", Distance: 60},
					{Type: "underline", Start: 1.6, Duration: 0.6, Easing: "quad-out"},
				},
			},
			{
				ID:       "counter",
				Kind:     "text",
				Text:     "$0",
				Position: PositionSpec{Preset: "center"},
				Color:    "#7fd4a0",
				Size:     120,
				Effects: []EffectSpec{
					{Type: "fade-in", Start: 1.0, Duration: 0.4},
					{Type: "count-up", Start: 1.2, Duration: 2.5, Easing: "expo-out", From: 0, To: 4250000, Prefix: "$"},
					{Type: "pulse", Start: 4.0, Duration: 1.5, Amplitude: 0.04, Cycles: 2},
				},
			},
			{
				ID:       "footnote",
				Kind:     "text",
				Text:     "данные предварительные",
				Position: PositionSpec{Preset: "lower-third-left"},
				Color:    "#8a93ab",
				Size:     36,
				Effects: []EffectSpec{
					{Type: "typewriter", Start: 5.0, Duration: 1.5},
				},
			},
			{
				ID:       "qr",
				Kind:     "qr",
				Content:  "https://example.com/report",
				Position: PositionSpec{Preset: "bottom-right"},
				Size:     220,
				Effects: []EffectSpec{
					{Type: "fade-in", Start: 6.0, Duration: 0.8, Easing: "quad-out"},
					{Type: "slide-right", Start: 6.0, Duration: 0.8, Easing: "back-out", Distance: 80},
				},
			},
		},
		FrameFX: []EffectSpec{
			{Type: "letterbox", Start: 0, Duration: 0.8, Easing: "cubic-out", HeightPct: 8},
		},
	}
}
