package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// premultiplied builds an alpha-premultiplied RGBA, the form image.Uniform
// sources are expected in.
func premultiplied(r, g, b, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(int(r) * int(a) / 255),
		G: uint8(int(g) * int(a) / 255),
		B: uint8(int(b) * int(a) / 255),
		A: a,
	}
}

// blendPixel composites a straight-alpha color over dst at (x, y):
// out = dst + (c - dst) * alpha per channel. The canvas starts as the
// background color, so blending always targets the background rather than
// transparent black — a deliberate simplification of the model.
func blendPixel(dst *image.RGBA, x, y int, r, g, b uint8, alpha float64) {
	if alpha <= 0 || !image.Pt(x, y).In(dst.Rect) {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]
	p[0] = uint8(float64(p[0]) + (float64(r)-float64(p[0]))*alpha)
	p[1] = uint8(float64(p[1]) + (float64(g)-float64(p[1]))*alpha)
	p[2] = uint8(float64(p[2]) + (float64(b)-float64(p[2]))*alpha)
	p[3] = 255
}

// fillRect blends a solid rectangle over dst.
func fillRect(dst *image.RGBA, rect image.Rectangle, r, g, b uint8, alpha float64) {
	rect = rect.Intersect(dst.Rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			blendPixel(dst, x, y, r, g, b, alpha)
		}
	}
}

// compositeOver blends a premultiplied scratch buffer over dst at an offset,
// scaling every source pixel's own alpha by alpha.
func compositeOver(dst, src *image.RGBA, offsetX, offsetY int, alpha float64) {
	b := src.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			sa := src.Pix[i+3]
			if sa == 0 {
				continue
			}
			// Де-премультипликация: в scratch цвета лежат умноженными на альфу
			sr := uint8(int(src.Pix[i]) * 255 / int(sa))
			sg := uint8(int(src.Pix[i+1]) * 255 / int(sa))
			sb := uint8(int(src.Pix[i+2]) * 255 / int(sa))
			a := float64(sa) / 255 * alpha
			blendPixel(dst, x-b.Min.X+offsetX, y-b.Min.Y+offsetY, sr, sg, sb, a)
		}
	}
}

// scratchSide returns the square off-screen buffer side for a w×h body that
// may be rotated by any angle and blurred by blur pixels: the diagonal plus
// blur padding on both sides, so corners never clip.
func scratchSide(w, h, blur float64) int {
	side := int(math.Ceil(math.Hypot(w, h))) + 2*blurPad(blur)
	if side < 1 {
		side = 1
	}
	return side
}

// blurPad is the pixel margin a blur of the given radius can smear into.
func blurPad(blur float64) int {
	if blur <= 0 {
		return 0
	}
	// Два прохода box blur расползаются максимум на 2r
	return 2 * int(math.Ceil(blur))
}

// rotate draws src rotated by deg degrees about its center into an
// equally-sized buffer. Uses bilinear resampling from x/image.
func rotate(dst, src *image.RGBA, deg float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	cx := float64(src.Rect.Dx()) / 2
	cy := float64(src.Rect.Dy()) / 2

	m := f64.Aff3{
		cos, -sin, cx - cx*cos + cy*sin,
		sin, cos, cy - cx*sin - cy*cos,
	}
	xdraw.ApproxBiLinear.Transform(dst, m, src, src.Rect, xdraw.Over, nil)
}

// boxBlur blurs img in place with a two-pass (horizontal then vertical)
// sliding-window box filter of the given radius, acting on all four
// premultiplied channels so blurred edges fade out rather than darken.
func boxBlur(img *image.RGBA, radius int) {
	if radius <= 0 {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	tmp := make([]uint8, len(img.Pix))

	window := 2*radius + 1

	// Горизонтальный проход: img -> tmp
	for y := 0; y < h; y++ {
		row := y * img.Stride
		var sum [4]int
		for x := -radius; x <= radius; x++ {
			cx := clampInt(x, 0, w-1)
			for c := 0; c < 4; c++ {
				sum[c] += int(img.Pix[row+cx*4+c])
			}
		}
		for x := 0; x < w; x++ {
			for c := 0; c < 4; c++ {
				tmp[row+x*4+c] = uint8(sum[c] / window)
			}
			out := clampInt(x-radius, 0, w-1)
			in := clampInt(x+radius+1, 0, w-1)
			for c := 0; c < 4; c++ {
				sum[c] += int(img.Pix[row+in*4+c]) - int(img.Pix[row+out*4+c])
			}
		}
	}

	// Вертикальный проход: tmp -> img
	for x := 0; x < w; x++ {
		var sum [4]int
		for y := -radius; y <= radius; y++ {
			cy := clampInt(y, 0, h-1)
			for c := 0; c < 4; c++ {
				sum[c] += int(tmp[cy*img.Stride+x*4+c])
			}
		}
		for y := 0; y < h; y++ {
			for c := 0; c < 4; c++ {
				img.Pix[y*img.Stride+x*4+c] = uint8(sum[c] / window)
			}
			out := clampInt(y-radius, 0, h-1)
			in := clampInt(y+radius+1, 0, h-1)
			for c := 0; c < 4; c++ {
				sum[c] += int(tmp[in*img.Stride+x*4+c]) - int(tmp[out*img.Stride+x*4+c])
			}
		}
	}
}

// drawLine blends a thick line segment over dst by stamping square caps
// along the segment.
func drawLine(dst *image.RGBA, x0, y0, x1, y1 float64, thickness float64, r, g, b uint8, alpha float64) {
	length := math.Hypot(x1-x0, y1-y0)
	steps := int(length) + 1
	half := int(math.Ceil(thickness / 2))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Round(x0 + (x1-x0)*t))
		py := int(math.Round(y0 + (y1-y0)*t))
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				blendPixel(dst, px+dx, py+dy, r, g, b, alpha)
			}
		}
	}
}

// drawEllipseArc blends the outline of an ellipse centered at (cx, cy),
// sweeping sweep×2π radians from the top, with the given stroke thickness.
func drawEllipseArc(dst *image.RGBA, cx, cy, rx, ry float64, sweep float64, thickness float64, r, g, b uint8, alpha float64) {
	if sweep <= 0 {
		return
	}
	circumference := 2 * math.Pi * math.Max(rx, ry)
	steps := int(circumference*sweep) + 1
	half := int(math.Ceil(thickness / 2))
	for i := 0; i <= steps; i++ {
		theta := -math.Pi/2 + sweep*2*math.Pi*float64(i)/float64(steps)
		px := int(math.Round(cx + rx*math.Cos(theta)))
		py := int(math.Round(cy + ry*math.Sin(theta)))
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				blendPixel(dst, px+dx, py+dy, r, g, b, alpha)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
