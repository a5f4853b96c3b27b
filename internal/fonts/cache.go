package fonts

import (
	"fmt"
	"image"
	"log"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// faceKey identifies a cached face. Faces are immutable once built, so the
// cache is populate-once and never invalidated.
type faceKey struct {
	path string
	size float64
}

var (
	mu       sync.Mutex
	parsed   = map[string]*sfnt.Font{}
	faces    = map[faceKey]font.Face{}
	fallback *sfnt.Font
	warned   = map[string]bool{}
)

// Face returns a font.Face for the given TTF/OTF file at size points. A
// missing or unreadable font falls back to the bundled Go Regular face, so
// every lookup site degrades uniformly instead of failing mid-render.
func Face(path string, size float64) font.Face {
	mu.Lock()
	defer mu.Unlock()

	key := faceKey{path: path, size: size}
	if f, ok := faces[key]; ok {
		return f
	}

	fnt := loadLocked(path)
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Даже дефолтный шрифт не собрался — это уже фатально
		panic(fmt.Sprintf("fonts: face %q size %v: %v", path, size, err))
	}

	locked := &lockedFace{face: face}
	faces[key] = locked
	return locked
}

// lockedFace serializes access to one face: opentype faces carry internal
// rasterization buffers and are not safe for concurrent use, while frames
// may be rendered in parallel.
type lockedFace struct {
	mu   sync.Mutex
	face font.Face
}

func (l *lockedFace) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.Close()
}

func (l *lockedFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.Glyph(dot, r)
}

func (l *lockedFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.GlyphBounds(r)
}

func (l *lockedFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.GlyphAdvance(r)
}

func (l *lockedFace) Kern(r0, r1 rune) fixed.Int26_6 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.Kern(r0, r1)
}

func (l *lockedFace) Metrics() font.Metrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.face.Metrics()
}

// Measure returns the advance width of s in pixels for the face at path/size.
func Measure(path string, size float64, s string) float64 {
	face := Face(path, size)
	return float64(font.MeasureString(face, s)) / 64
}

func loadLocked(path string) *sfnt.Font {
	if path != "" {
		if f, ok := parsed[path]; ok {
			return f
		}
		data, err := os.ReadFile(path)
		if err == nil {
			f, perr := opentype.Parse(data)
			if perr == nil {
				parsed[path] = f
				return f
			}
			err = perr
		}
		if !warned[path] {
			warned[path] = true
			log.Printf("[!] Шрифт %s недоступен (%v), используется встроенный", path, err)
		}
	}

	if fallback == nil {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("fonts: bundled goregular: %v", err))
		}
		fallback = f
	}
	if path != "" {
		// Кэшируем фолбэк под запрошенным путем, чтобы не перечитывать диск
		parsed[path] = fallback
	}
	return fallback
}
