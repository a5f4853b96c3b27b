package render

import (
	"image"
	"math"
	"testing"
)

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fillRect(img, img.Rect, 100, 100, 100, 1)

	blendPixel(img, 1, 1, 200, 0, 100, 0.5)

	i := img.PixOffset(1, 1)
	got := [4]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
	// out = dst + (c-dst)*alpha
	want := [4]uint8{150, 50, 100, 255}
	if got != want {
		t.Errorf("blendPixel = %v, want %v", got, want)
	}
}

func TestBlendPixelOutsideBoundsIsNoop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	blendPixel(img, -1, 0, 255, 255, 255, 1)
	blendPixel(img, 5, 5, 255, 255, 255, 1)
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("пиксель за границами изменил буфер")
		}
	}
}

func TestFillRectClips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fillRect(img, image.Rect(2, 2, 10, 10), 255, 0, 0, 1)

	if img.Pix[img.PixOffset(3, 3)] != 255 {
		t.Error("внутренний пиксель не закрашен")
	}
	if img.Pix[img.PixOffset(1, 1)] != 0 {
		t.Error("пиксель вне прямоугольника закрашен")
	}
}

func TestScratchSide(t *testing.T) {
	tests := []struct {
		w, h, blur float64
		want       int
	}{
		{300, 400, 0, 500},   // 3-4-5
		{300, 400, 2, 508},   // + 2*2*ceil(2)
		{100, 0, 0, 100},
		{0, 0, 0, 1}, // никогда не меньше 1
	}
	for _, tt := range tests {
		if got := scratchSide(tt.w, tt.h, tt.blur); got != tt.want {
			t.Errorf("scratchSide(%v, %v, %v) = %d, want %d", tt.w, tt.h, tt.blur, got, tt.want)
		}
	}
}

func TestCompositeOverScalesSourceAlpha(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fillRect(dst, dst.Rect, 0, 0, 0, 1)

	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, premultiplied(200, 200, 200, 255))

	compositeOver(dst, src, 1, 1, 0.5)

	i := dst.PixOffset(1, 1)
	if got := dst.Pix[i]; got != 100 {
		t.Errorf("композиция с alpha 0.5: R = %d, want 100", got)
	}
	if dst.Pix[i+3] != 255 {
		t.Error("холст должен оставаться непрозрачным")
	}
}

func TestCompositeOverSkipsTransparent(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src := image.NewRGBA(image.Rect(0, 0, 2, 2)) // полностью прозрачный

	compositeOver(dst, src, 0, 0, 1)
	for _, p := range dst.Pix {
		if p != 0 {
			t.Fatal("прозрачный источник изменил буфер")
		}
	}
}

func TestBoxBlurKeepsPremultiplicationInvariant(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	// Непрозрачный квадрат в центре, вокруг прозрачно
	for y := 6; y < 10; y++ {
		for x := 6; x < 10; x++ {
			img.SetRGBA(x, y, premultiplied(255, 128, 0, 255))
		}
	}

	boxBlur(img, 3)

	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		for c := 0; c < 3; c++ {
			if img.Pix[i+c] > a {
				t.Fatalf("пиксель %d: канал %d (%d) превышает альфу (%d)", i/4, c, img.Pix[i+c], a)
			}
		}
	}
}

func TestBoxBlurSpreadsEnergy(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	img.SetRGBA(8, 8, premultiplied(255, 255, 255, 255))

	boxBlur(img, 2)

	center := img.Pix[img.PixOffset(8, 8)+3]
	neighbor := img.Pix[img.PixOffset(9, 8)+3]
	if center == 255 {
		t.Error("центр не размылся")
	}
	if neighbor == 0 {
		t.Error("соседний пиксель не получил энергии")
	}
}

func TestRotateKeepsCenterDropsCorners(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			src.SetRGBA(x, y, premultiplied(255, 0, 0, 255))
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))

	rotate(dst, src, 45)

	if a := dst.Pix[dst.PixOffset(10, 10)+3]; a < 200 {
		t.Errorf("центр после поворота: альфа %d, want непрозрачный", a)
	}
	if a := dst.Pix[dst.PixOffset(0, 0)+3]; a > 50 {
		t.Errorf("угол после поворота на 45°: альфа %d, want прозрачный", a)
	}
}

func TestDrawLineCoversSegment(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 8))
	drawLine(img, 2, 4, 28, 4, 2, 255, 255, 255, 1)

	for x := 2; x <= 28; x++ {
		if img.Pix[img.PixOffset(x, 4)] != 255 {
			t.Fatalf("пиксель (%d, 4) не закрашен", x)
		}
	}
	if img.Pix[img.PixOffset(30, 0)] != 0 {
		t.Error("пиксель вне линии закрашен")
	}
}

func TestDrawEllipseArcPartialSweep(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	// Четверть оборота от верхней точки по часовой: дуга справа сверху
	drawEllipseArc(img, 20, 20, 10, 10, 0.25, 2, 255, 255, 255, 1)

	if img.Pix[img.PixOffset(20, 10)] == 0 {
		t.Error("стартовая точка дуги (сверху) не закрашена")
	}
	if img.Pix[img.PixOffset(30, 20)] == 0 {
		t.Error("конечная точка четверти (справа) не закрашена")
	}
	if img.Pix[img.PixOffset(20, 30)] != 0 {
		t.Error("нижняя точка закрашена при сектора 0.25")
	}
}

func TestPremultiplied(t *testing.T) {
	c := premultiplied(200, 100, 50, 128)
	if c.A != 128 {
		t.Fatalf("альфа = %d, want 128", c.A)
	}
	for i, got := range []uint8{c.R, c.G, c.B} {
		if got > c.A {
			t.Errorf("канал %d (%d) превышает альфу", i, got)
		}
	}
	if math.Abs(float64(c.R)-200.0*128/255) > 1 {
		t.Errorf("R = %d, want ~%d", c.R, 200*128/255)
	}
}
