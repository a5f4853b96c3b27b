package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strings"
)

// FrameProducer returns the RGBA raster for frame index i. The encoder calls
// it with strictly increasing indices; the returned buffer is only read
// until the next call.
type FrameProducer func(i int) (*image.RGBA, error)

// Encoder turns an ordered frame sequence into a playable video file.
type Encoder interface {
	Encode(ctx context.Context, produce FrameProducer, width, height, fps, totalFrames int, outPath string) error
}

// FFmpegEncoder пишет сырые RGBA-кадры в stdin системного FFmpeg,
// исключая дисковый I/O на промежуточных кадрах.
type FFmpegEncoder struct {
	// EncoderName: пустое значение — автоопределение (libx264 или
	// аппаратный h264)
	EncoderName string
	// Quality: 0 — авто под выбранный энкодер
	Quality int
}

func (e *FFmpegEncoder) Encode(ctx context.Context, produce FrameProducer, width, height, fps, totalFrames int, outPath string) error {
	encoderName := e.EncoderName
	if encoderName == "" {
		encoderName, _ = BestH264Encoder()
	}
	quality := e.Quality
	if quality == 0 {
		quality = defaultQuality(encoderName)
	}

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", "-",
		"-frames:v", fmt.Sprintf("%d", totalFrames),
		"-pix_fmt", "yuv420p",
		"-c:v", encoderName,
	}
	args = append(args, qualityArgs(encoderName, quality)...)
	args = append(args, outPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var ffmpegLog bytes.Buffer
	cmd.Stdout = &ffmpegLog
	cmd.Stderr = &ffmpegLog

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start error: %w", err)
	}

	writeErr := func() error {
		defer stdin.Close()
		for i := 0; i < totalFrames; i++ {
			frame, err := produce(i)
			if err != nil {
				return err
			}
			if err := writeRawRGBA(stdin, frame, width, height); err != nil {
				return fmt.Errorf("write frame %d: %w", i, err)
			}
		}
		return nil
	}()

	waitErr := cmd.Wait()
	if writeErr != nil || waitErr != nil {
		// Никогда не оставляем частичный файл по запрошенному пути
		os.Remove(outPath)
		if writeErr != nil {
			return writeErr
		}
		return fmt.Errorf("ffmpeg error: %v\nLog: %s", waitErr, ffmpegLog.String())
	}
	return nil
}

func writeRawRGBA(w interface{ Write([]byte) (int, error) }, img *image.RGBA, width, height int) error {
	if img == nil {
		return fmt.Errorf("nil frame")
	}
	if img.Rect.Dx() != width || img.Rect.Dy() != height {
		return fmt.Errorf("размер кадра %dx%d не совпадает с %dx%d", img.Rect.Dx(), img.Rect.Dy(), width, height)
	}
	if img.Stride == width*4 {
		_, err := w.Write(img.Pix)
		return err
	}
	for y := 0; y < height; y++ {
		if _, err := w.Write(img.Pix[y*img.Stride : y*img.Stride+width*4]); err != nil {
			return err
		}
	}
	return nil
}

func qualityArgs(encoderName string, quality int) []string {
	switch encoderName {
	case "h264_videotoolbox":
		// VideoToolbox не везде понимает -q:v, используем битрейт
		bitrate := quality * 100 // кбит/с. 75 -> 7.5Мбит/с
		return []string{"-b:v", fmt.Sprintf("%dk", bitrate)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

func defaultQuality(encoderName string) int {
	switch encoderName {
	case "h264_videotoolbox":
		return 75
	case "h264_nvenc":
		return 28
	default:
		return 23
	}
}

// BestH264Encoder подбирает доступный энкодер в порядке приоритета:
// VideoToolbox (macOS), NVENC (NVIDIA), затем программный libx264.
func BestH264Encoder() (string, string) {
	encoders := []struct {
		name string
		args string
	}{
		{"h264_videotoolbox", ""},
		{"h264_nvenc", ""},
	}

	for _, enc := range encoders {
		cmd := exec.Command("ffmpeg", "-encoders")
		out, err := cmd.CombinedOutput()
		if err == nil && strings.Contains(string(out), enc.name) {
			return enc.name, enc.args
		}
	}

	return "libx264", ""
}
