package render

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/scene2video/internal/effects"
	"github.com/ivlev/scene2video/internal/fonts"
	"github.com/ivlev/scene2video/internal/layout"
	"github.com/ivlev/scene2video/internal/scene"
	"github.com/ivlev/scene2video/internal/system"
	"github.com/ivlev/scene2video/internal/textfit"
	xdraw "golang.org/x/image/draw"
)

// transform thresholds: below these a rotation or blur is treated as zero
// and the element takes the fast direct-paint path.
const (
	minRotationDeg = 0.1
	minBlurPx      = 0.1
)

// paintElement resolves the bag, lays the element out and paints it in fixed
// order: glow behind, shadow behind, body, annotations on top.
func (r *Renderer) paintElement(frame *image.RGBA, el *scene.Element, t, globalAlpha float64) {
	if !el.Visible {
		return
	}
	bag := el.ResolveAt(t)
	alpha := bag.Alpha * globalAlpha
	if alpha <= 0 {
		return
	}

	geo := r.measure(el, bag)
	if geo.w <= 0 || geo.h <= 0 {
		return
	}

	x, y := layout.Resolve(el.Position, float64(r.Width), float64(r.Height), geo.w, geo.h)
	x += bag.OffsetX
	y += bag.OffsetY

	cr, cg, cb := flashColor(bag)

	if bag.GlowAlpha > 0 {
		r.paintHalo(frame, el, geo, bag, x, y, cr, cg, cb, bag.GlowRadius, alpha*bag.GlowAlpha, 0, 0)
	}
	if bag.ShadowAlpha > 0 {
		sx, sy := bag.ShadowOffsetX, bag.ShadowOffsetY
		if sx == 0 && sy == 0 {
			sx, sy = 4, 6
		}
		r.paintHalo(frame, el, geo, bag, x, y, 0, 0, 0, bag.ShadowBlur, alpha*bag.ShadowAlpha, sx, sy)
	}

	rotated := math.Abs(bag.Rotation) > minRotationDeg
	blurred := bag.Blur > minBlurPx
	if rotated || blurred {
		r.paintTransformed(frame, el, geo, bag, x, y, cr, cg, cb, alpha)
	} else {
		r.paintBody(frame, el, geo, bag, x, y, cr, cg, cb, alpha)
	}

	if el.Kind == scene.KindText {
		r.paintAnnotations(frame, geo, bag, x, y, cr, cg, cb, alpha)
	}
}

// geometry is the measured element box and, for text, its fitted layout.
type geometry struct {
	w, h float64
	fit  textfit.Layout
}

func (r *Renderer) measure(el *scene.Element, bag effects.Props) geometry {
	switch el.Kind {
	case scene.KindText:
		maxW := el.MaxWidth
		if maxW <= 0 {
			maxW = float64(r.Width) * 0.9
		}
		// Подгонка считается на базовом размере: авто-сжатие и переносы
		// стабильны во времени, а анимация масштаба умножает результат
		fit := textfit.Fit(el.Text, el.FontPath, el.FontSize, maxW, el.MaxLines, 0, 0)
		if bag.Scale != 1 {
			fit.FontSize *= bag.Scale
			fit.LineHeight *= bag.Scale
			fit.TotalHeight *= bag.Scale
		}
		if fit.FontSize < 1 {
			return geometry{}
		}
		return geometry{w: fit.MaxLineWidth(el.FontPath), h: fit.TotalHeight, fit: fit}
	case scene.KindQR:
		side := el.Width * bag.Scale
		return geometry{w: side, h: side}
	default:
		return geometry{w: el.Width * bag.Scale * bag.ScaleX, h: el.Height * bag.Scale}
	}
}

// paintBody draws the element directly onto the frame with per-pixel
// blending — the fast path for untransformed elements.
func (r *Renderer) paintBody(frame *image.RGBA, el *scene.Element, geo geometry, bag effects.Props, x, y float64, cr, cg, cb uint8, alpha float64) {
	switch el.Kind {
	case scene.KindText:
		r.drawTextLines(frame, el, geo, bag, x, y, cr, cg, cb, alpha)
	case scene.KindQR:
		r.drawQR(frame, el, geo, x, y, alpha)
	default:
		rect := image.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(x+geo.w)), int(math.Round(y+geo.h)))
		fillRect(frame, rect, cr, cg, cb, alpha)
	}
}

// paintTransformed renders the body into a padded square scratch buffer,
// rotates and blurs it off-screen, then composites the result centered on
// the element's position.
func (r *Renderer) paintTransformed(frame *image.RGBA, el *scene.Element, geo geometry, bag effects.Props, x, y float64, cr, cg, cb uint8, alpha float64) {
	side := scratchSide(geo.w, geo.h, bag.Blur)
	rect := image.Rect(0, 0, side, side)

	scratch := system.GetImage(rect)
	defer system.PutImage(scratch)

	// Тело рисуется непрозрачным в центр скретча; альфа применяется при
	// финальной композиции
	ox := (float64(side) - geo.w) / 2
	oy := (float64(side) - geo.h) / 2
	r.paintBody(scratch, el, geo, bag, ox, oy, cr, cg, cb, 1)

	buf := scratch
	if math.Abs(bag.Rotation) > minRotationDeg {
		rotatedBuf := system.GetImage(rect)
		defer system.PutImage(rotatedBuf)
		rotate(rotatedBuf, scratch, bag.Rotation)
		buf = rotatedBuf
	}
	if bag.Blur > minBlurPx {
		boxBlur(buf, int(math.Ceil(bag.Blur)))
	}

	dx := int(math.Round(x + geo.w/2 - float64(side)/2))
	dy := int(math.Round(y + geo.h/2 - float64(side)/2))
	compositeOver(frame, buf, dx, dy, alpha)
}

// paintHalo renders the body silhouette in a flat color into a blurred
// scratch and composites it behind the element: the glow and shadow layers
// share this path, differing only in color, blur and offset.
func (r *Renderer) paintHalo(frame *image.RGBA, el *scene.Element, geo geometry, bag effects.Props, x, y float64, cr, cg, cb uint8, blur, alpha, offsetX, offsetY float64) {
	if blur <= 0 {
		blur = 8
	}
	side := scratchSide(geo.w, geo.h, blur)
	rect := image.Rect(0, 0, side, side)

	scratch := system.GetImage(rect)
	defer system.PutImage(scratch)

	ox := (float64(side) - geo.w) / 2
	oy := (float64(side) - geo.h) / 2
	r.paintBody(scratch, el, geo, bag, ox, oy, cr, cg, cb, 1)

	if math.Abs(bag.Rotation) > minRotationDeg {
		rotatedBuf := system.GetImage(rect)
		defer system.PutImage(rotatedBuf)
		rotate(rotatedBuf, scratch, bag.Rotation)
		scratch = rotatedBuf
	}
	boxBlur(scratch, int(math.Ceil(blur)))

	dx := int(math.Round(x + geo.w/2 - float64(side)/2 + offsetX))
	dy := int(math.Round(y + geo.h/2 - float64(side)/2 + offsetY))
	compositeOver(frame, scratch, dx, dy, alpha)
}

// drawTextLines paints the fitted lines centered in the element box,
// honoring the bag's visible-text prefix (Reveal/TypeWriter/CountUp).
func (r *Renderer) drawTextLines(dst *image.RGBA, el *scene.Element, geo geometry, bag effects.Props, x, y float64, cr, cg, cb uint8, alpha float64) {
	face := fonts.Face(el.FontPath, geo.fit.FontSize)
	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64

	lines := geo.fit.Lines
	if bag.VisibleText != el.Text {
		// Текст-продюсеры (CountUp) подменяют строку целиком, Reveal дает
		// префикс — в обоих случаях перерисовываем по фактической строке
		if isPrefix(bag.VisibleText, el.Text) {
			lines = visiblePrefix(lines, bag.VisibleText)
		} else {
			fit := textfit.Fit(bag.VisibleText, el.FontPath, geo.fit.FontSize, float64(r.Width)*0.9, el.MaxLines, geo.fit.FontSize, 0)
			lines = fit.Lines
		}
	}

	a := uint8(math.Round(alpha * 255))
	src := image.NewUniform(premultiplied(cr, cg, cb, a))

	for i, line := range lines {
		if line == "" {
			continue
		}
		lineW := fonts.Measure(el.FontPath, geo.fit.FontSize, line)
		lx := x + (geo.w-lineW)/2
		ly := y + float64(i)*geo.fit.LineHeight + ascent

		d := &font.Drawer{
			Dst:  dst,
			Src:  src,
			Face: face,
			Dot:  fixed.Point26_6{X: floatToFixed(lx), Y: floatToFixed(ly)},
		}
		d.DrawString(line)
	}
}

func (r *Renderer) drawQR(dst *image.RGBA, el *scene.Element, geo geometry, x, y float64, alpha float64) {
	if el.QRImage == nil {
		return
	}
	side := int(math.Round(geo.w))
	if side < 1 {
		return
	}
	rect := image.Rect(0, 0, side, side)
	scratch := system.GetImage(rect)
	defer system.PutImage(scratch)

	// QR масштабируем без сглаживания, чтобы модули оставались резкими
	xdraw.NearestNeighbor.Scale(scratch, rect, el.QRImage, el.QRImage.Bounds(), xdraw.Src, nil)
	compositeOver(dst, scratch, int(math.Round(x)), int(math.Round(y)), alpha)
}

// paintAnnotations draws the overlay marks whose progress the effects left
// in the bag: underline, strikethrough, circle, arrow.
func (r *Renderer) paintAnnotations(frame *image.RGBA, geo geometry, bag effects.Props, x, y float64, cr, cg, cb uint8, alpha float64) {
	thickness := math.Max(2, geo.fit.FontSize/12)

	if bag.Underline > 0 {
		uy := y + geo.h + thickness*1.5
		drawLine(frame, x, uy, x+geo.w*bag.Underline, uy, thickness, cr, cg, cb, alpha)
	}
	if bag.Strike > 0 {
		sy := y + geo.h/2
		drawLine(frame, x, sy, x+geo.w*bag.Strike, sy, thickness, cr, cg, cb, alpha)
	}
	if bag.Circle > 0 {
		drawEllipseArc(frame, x+geo.w/2, y+geo.h/2, geo.w/2+geo.fit.FontSize*0.6, geo.h/2+geo.fit.FontSize*0.5,
			bag.Circle, thickness, cr, cg, cb, alpha)
	}
	if bag.Arrow > 0 {
		ax1 := x - geo.fit.FontSize*0.8
		ax0 := ax1 - geo.fit.FontSize*2.2*bag.Arrow
		ay := y + geo.h/2
		drawLine(frame, ax0, ay, ax1, ay, thickness, cr, cg, cb, alpha)
		if bag.Arrow > 0.5 {
			head := geo.fit.FontSize * 0.5
			drawLine(frame, ax1-head, ay-head, ax1, ay, thickness, cr, cg, cb, alpha)
			drawLine(frame, ax1-head, ay+head, ax1, ay, thickness, cr, cg, cb, alpha)
		}
	}
}

// flashColor lightens the bag color toward white by the flash amount.
func flashColor(bag effects.Props) (uint8, uint8, uint8) {
	cr, cg, cb := bag.Color.Clamped().RGB255()
	if bag.Flash <= 0 {
		return cr, cg, cb
	}
	f := bag.Flash
	lighten := func(c uint8) uint8 {
		return uint8(float64(c) + (255-float64(c))*f)
	}
	return lighten(cr), lighten(cg), lighten(cb)
}

// visiblePrefix trims fitted lines to the first n runes of the full text.
func visiblePrefix(lines []string, visible string) []string {
	remaining := len([]rune(visible))
	var out []string
	for _, line := range lines {
		runes := []rune(line)
		if remaining <= 0 {
			break
		}
		if len(runes) <= remaining {
			out = append(out, line)
			remaining -= len(runes) + 1 // межсловный пробел съеден переносом
			continue
		}
		out = append(out, string(runes[:remaining]))
		break
	}
	return out
}

func isPrefix(s, full string) bool {
	return len(s) <= len(full) && full[:len(s)] == s
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
