package script

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/scene2video/internal/scene"
)

func TestDemoRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")

	if err := Write(Demo(), path); err != nil {
		t.Fatal(err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}

	want := Demo()
	if got.Canvas != want.Canvas {
		t.Errorf("canvas после round-trip: %+v, want %+v", got.Canvas, want.Canvas)
	}
	if got.Timeline != want.Timeline {
		t.Errorf("timeline после round-trip: %+v, want %+v", got.Timeline, want.Timeline)
	}
	if len(got.Elements) != len(want.Elements) {
		t.Fatalf("элементов: %d, want %d", len(got.Elements), len(want.Elements))
	}
	for i := range got.Elements {
		if got.Elements[i].ID != want.Elements[i].ID {
			t.Errorf("элемент %d: id %q, want %q", i, got.Elements[i].ID, want.Elements[i].ID)
		}
		if len(got.Elements[i].Effects) != len(want.Elements[i].Effects) {
			t.Errorf("элемент %s: эффектов %d, want %d",
				got.Elements[i].ID, len(got.Elements[i].Effects), len(want.Elements[i].Effects))
		}
	}
}

func TestDemoBuilds(t *testing.T) {
	r, err := Demo().Build()
	if err != nil {
		t.Fatal(err)
	}

	els := r.Elements()
	if len(els) != 5 {
		t.Fatalf("элементов: %d, want 5", len(els))
	}

	kinds := map[scene.Kind]int{}
	for _, el := range els {
		kinds[el.Kind]++
	}
	if kinds[scene.KindText] != 3 || kinds[scene.KindRect] != 1 || kinds[scene.KindQR] != 1 {
		t.Errorf("состав элементов: %v", kinds)
	}

	// QR строится сразу при сборке сцены
	for _, el := range els {
		if el.Kind == scene.KindQR && el.QRImage == nil {
			t.Error("qr-элемент без изображения")
		}
	}

	frame := r.RenderFrame(2)
	if frame == nil {
		t.Fatal("демо-сцена не отрисовалась")
	}
	r.ReleaseFrame(frame)
}

func TestBuildErrors(t *testing.T) {
	base := func() *Scene {
		sc := Demo()
		return sc
	}

	tests := []struct {
		name    string
		mutate  func(*Scene)
		wantErr string
	}{
		{
			"unknown effect",
			func(sc *Scene) { sc.Elements[0].Effects[0].Type = "teleport" },
			"неизвестный тип эффекта",
		},
		{
			"unknown kind",
			func(sc *Scene) { sc.Elements[0].Kind = "triangle" },
			"неизвестный вид элемента",
		},
		{
			"unknown preset",
			func(sc *Scene) { sc.Elements[0].Position = PositionSpec{Preset: "somewhere"} },
			"неизвестный пресет",
		},
		{
			"bad background",
			func(sc *Scene) { sc.Canvas.Background = "very red" },
			"фон холста",
		},
		{
			"bad element color",
			func(sc *Scene) { sc.Elements[1].Color = "#zzz" },
			"цвет",
		},
		{
			"zero duration",
			func(sc *Scene) { sc.Timeline.Duration = 0 },
			"длительность",
		},
		{
			"zero canvas",
			func(sc *Scene) { sc.Canvas.Width = 0 },
			"размер холста",
		},
		{
			"duplicate id",
			func(sc *Scene) { sc.Elements[1].ID = sc.Elements[0].ID },
			"уже добавлен",
		},
		{
			"rect without size",
			func(sc *Scene) { sc.Elements[0].Width = 0 },
			"width",
		},
		{
			"qr without content",
			func(sc *Scene) {
				for i := range sc.Elements {
					if sc.Elements[i].Kind == "qr" {
						sc.Elements[i].Content = ""
					}
				}
			},
			"content",
		},
		{
			"unknown frame effect",
			func(sc *Scene) { sc.FrameFX[0].Type = "vignette" },
			"неизвестный тип фрейм-эффекта",
		},
	}

	for _, tt := range tests {
		sc := base()
		tt.mutate(sc)
		_, err := sc.Build()
		if err == nil {
			t.Errorf("%s: ожидалась ошибка", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: ошибка %q не содержит %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestBuildDefaults(t *testing.T) {
	sc := &Scene{
		Canvas:   Canvas{Width: 640, Height: 360},
		Timeline: TimelineSpec{Duration: 3},
		Elements: []ElementSpec{
			{ID: "t", Kind: "text", Text: "привет", Position: PositionSpec{Preset: "center"}},
		},
	}
	r, err := sc.Build()
	if err != nil {
		t.Fatal(err)
	}
	if r.FPS != 30 {
		t.Errorf("FPS по умолчанию = %d, want 30", r.FPS)
	}
	el := r.Elements()[0]
	if el.FontSize != 48 {
		t.Errorf("размер шрифта по умолчанию = %v, want 48", el.FontSize)
	}
	if el.Alpha != 1 {
		t.Errorf("альфа по умолчанию = %v, want 1", el.Alpha)
	}
}

func TestResolvePositionCustom(t *testing.T) {
	pos, err := resolvePosition(PositionSpec{X: 25, Y: 75, Align: "left", VAlign: "bottom", Padding: 3})
	if err != nil {
		t.Fatal(err)
	}
	if pos.XPct != 25 || pos.YPct != 75 {
		t.Errorf("координаты: (%v, %v)", pos.XPct, pos.YPct)
	}
	if pos.Align != "left" || pos.VAlign != "bottom" {
		t.Errorf("выравнивание: %s/%s", pos.Align, pos.VAlign)
	}

	// Пустое выравнивание дает центр
	pos, err = resolvePosition(PositionSpec{X: 50, Y: 50})
	if err != nil {
		t.Fatal(err)
	}
	if pos.Align != "center" || pos.VAlign != "middle" {
		t.Errorf("выравнивание по умолчанию: %s/%s", pos.Align, pos.VAlign)
	}
}
