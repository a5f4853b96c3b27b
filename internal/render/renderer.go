// Package render is the per-frame compositor: it walks the timeline, resolves
// every element's property bag, paints layers in fixed order and streams the
// finished frames to an external encoder.
package render

import (
	"context"
	"fmt"
	"image"
	"log"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/scene2video/internal/scene"
	"github.com/ivlev/scene2video/internal/system"
	"github.com/ivlev/scene2video/internal/video"
)

// Renderer owns one scene: canvas geometry, background, timeline, elements
// in insertion order and optional full-frame effects. It is built completely
// before Render is called and not mutated during rendering.
type Renderer struct {
	Width      int
	Height     int
	FPS        int
	Background colorful.Color
	Timeline   scene.Timeline

	// Workers >1 renders frames in parallel; the encoder still receives
	// them in strict time order.
	Workers int

	Encoder video.Encoder
	Checker video.Checker

	elements []*scene.Element
	frameFX  []FrameEffect
	ids      map[string]struct{}
}

// New creates a renderer with a sequential frame loop and an ffmpeg encoder.
func New(width, height, fps int, background colorful.Color, tl scene.Timeline) *Renderer {
	return &Renderer{
		Width:      width,
		Height:     height,
		FPS:        fps,
		Background: background,
		Timeline:   tl,
		Workers:    1,
		Encoder:    &video.FFmpegEncoder{},
		ids:        make(map[string]struct{}),
	}
}

// Add appends an element. IDs are unique per renderer; insertion order is
// paint order.
func (r *Renderer) Add(el *scene.Element) error {
	if _, dup := r.ids[el.ID]; dup {
		return fmt.Errorf("элемент с id %q уже добавлен", el.ID)
	}
	r.ids[el.ID] = struct{}{}
	r.elements = append(r.elements, el)
	return nil
}

// AddFrameEffect appends a full-canvas effect applied after all elements.
func (r *Renderer) AddFrameEffect(fx FrameEffect) {
	r.frameFX = append(r.frameFX, fx)
}

// Elements returns the elements in paint order.
func (r *Renderer) Elements() []*scene.Element {
	return r.elements
}

// RenderFrame composites the full canvas at time t. The frame is a pure
// function of the scene definition and t: no state is carried between
// frames, so frames may be computed in any order.
func (r *Renderer) RenderFrame(t float64) *image.RGBA {
	frame := system.GetImage(image.Rect(0, 0, r.Width, r.Height))
	fillBackground(frame, r.Background)

	globalAlpha := r.Timeline.GlobalAlpha(t)
	if globalAlpha > 0 {
		for _, el := range r.elements {
			r.paintElement(frame, el, t, globalAlpha)
		}
	}

	for _, fx := range r.frameFX {
		fx.ApplyFrame(frame, t)
	}
	return frame
}

// ReleaseFrame returns a frame obtained from RenderFrame to the scratch pool.
func (r *Renderer) ReleaseFrame(frame *image.RGBA) {
	system.PutImage(frame)
}

// Render produces all frames for the timeline duration and streams them, in
// order, to the encoder. On encoder failure the partial output is discarded
// by the encoder and the error is fatal. Returns the output path.
func (r *Renderer) Render(ctx context.Context, outPath string) (string, error) {
	total := int(math.Round(r.Timeline.Duration * float64(r.FPS)))
	if total <= 0 {
		return "", fmt.Errorf("нулевая длительность сцены: %v сек @ %d FPS", r.Timeline.Duration, r.FPS)
	}

	produce := r.sequentialProducer(ctx)
	var cleanup func()
	if r.Workers > 1 {
		produce, cleanup = r.parallelProducer(ctx, total)
	}

	err := r.Encoder.Encode(ctx, produce, r.Width, r.Height, r.FPS, total, outPath)
	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		return "", fmt.Errorf("ошибка кодирования: %w", err)
	}

	if r.Checker != nil {
		// Пост-проверка не является частью контракта рендера: только логи,
		// никакой блокировки
		go func() {
			issues := r.Checker.Check(outPath, r.Timeline.Duration, r.Width, r.Height)
			for _, issue := range issues {
				log.Printf("[!] Проверка качества %s: %s", outPath, issue)
			}
		}()
	}

	return outPath, nil
}

// frameTime maps a frame index to seconds.
func (r *Renderer) frameTime(i int) float64 {
	return float64(i) / float64(r.FPS)
}

func (r *Renderer) sequentialProducer(ctx context.Context) video.FrameProducer {
	var last *image.RGBA
	return func(i int) (*image.RGBA, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if last != nil {
			system.PutImage(last)
		}
		last = r.RenderFrame(r.frameTime(i))
		return last, nil
	}
}

type numberedFrame struct {
	index int
	frame *image.RGBA
}

// parallelProducer renders frames on Workers goroutines and re-sequences
// them so the encoder consumes strict frame order. Each frame is still a
// pure function of t, so out-of-order computation is safe by construction.
func (r *Renderer) parallelProducer(ctx context.Context, total int) (video.FrameProducer, func()) {
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan int)
	results := make(chan numberedFrame, r.Workers)
	ordered := make(chan *image.RGBA, r.Workers)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < total; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var renderGroup errgroup.Group
	for w := 0; w < r.Workers; w++ {
		renderGroup.Go(func() error {
			for i := range jobs {
				select {
				case results <- numberedFrame{index: i, frame: r.RenderFrame(r.frameTime(i))}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		renderGroup.Wait()
		close(results)
	}()

	// Ресеквенсер: буферизует обгон и выдает кадры строго по порядку
	go func() {
		defer close(ordered)
		pending := make(map[int]*image.RGBA)
		next := 0
		for res := range results {
			pending[res.index] = res.frame
			for {
				frame, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				select {
				case ordered <- frame:
				case <-gctx.Done():
					return
				}
				next++
			}
		}
	}()

	var last *image.RGBA
	produce := func(i int) (*image.RGBA, error) {
		if last != nil {
			system.PutImage(last)
			last = nil
		}
		select {
		case frame, ok := <-ordered:
			if !ok {
				if err := gctx.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("конвейер кадров закрыт преждевременно")
			}
			last = frame
			return frame, nil
		case <-gctx.Done():
			return nil, gctx.Err()
		}
	}

	cleanup := func() {
		// Дочитываем хвост, чтобы воркеры не зависли на отправке
		go func() {
			for range ordered {
			}
		}()
		g.Wait()
	}
	return produce, cleanup
}

// fillBackground floods the frame with the opaque background color.
func fillBackground(frame *image.RGBA, c colorful.Color) {
	r8, g8, b8 := c.Clamped().RGB255()
	w := frame.Rect.Dx()

	// Первая строка попиксельно, остальные копированием
	for x := 0; x < w; x++ {
		i := frame.PixOffset(x, 0)
		frame.Pix[i] = r8
		frame.Pix[i+1] = g8
		frame.Pix[i+2] = b8
		frame.Pix[i+3] = 255
	}
	first := frame.Pix[:w*4]
	for y := 1; y < frame.Rect.Dy(); y++ {
		copy(frame.Pix[y*frame.Stride:y*frame.Stride+w*4], first)
	}
}
