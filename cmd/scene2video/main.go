package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ivlev/scene2video/internal/config"
	"github.com/ivlev/scene2video/internal/script"
	"github.com/ivlev/scene2video/internal/system"
	"github.com/ivlev/scene2video/internal/video"
)

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	// Создаем нужные директории, если их нет
	dirs := []string{"input/scenes", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	scenePtr := flag.String("scene", "", "Путь к YAML-сцене (по умолчанию: самый свежий файл в input/scenes/)")
	outputPtr := flag.String("output", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	durationPtr := flag.Float64("duration", 0, "Переопределить длительность сцены (сек, 0 — взять из файла)")
	widthPtr := flag.Int("width", 0, "Ширина (0 — взять из файла сцены)")
	heightPtr := flag.Int("height", 0, "Высота (0 — взять из файла сцены)")
	fpsPtr := flag.Int("fps", 0, "FPS (0 — взять из файла сцены)")
	workersPtr := flag.Int("workers", 1, "Потоки рендеринга кадров")
	presetPtr := flag.String("preset", "", "Пресет формата: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")
	qualityPtr := flag.Int("quality", 0, "Качество видео (0 - авто, x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	checkPtr := flag.Bool("check", true, "Проверить готовое видео через ffprobe")
	demoPtr := flag.Bool("write-demo", false, "Записать демо-сцену в input/scenes/demo.yaml и выйти")

	flag.Parse()

	if *demoPtr {
		demoPath := filepath.Join("input", "scenes", "demo.yaml")
		if err := script.Write(script.Demo(), demoPath); err != nil {
			log.Fatalf("[-] Ошибка записи демо-сцены: %v", err)
		}
		fmt.Printf("[+++] Демо-сцена записана: %s\n", demoPath)
		return
	}

	scenePath := *scenePtr
	if scenePath == "" {
		latest, err := system.FindLatestScene("input/scenes")
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите сцену в input/scenes/ или запустите с -write-demo", err)
		}
		scenePath = latest
		fmt.Printf("[*] Выбрана сцена: %s\n", scenePath)
	}

	sc, err := script.Read(scenePath)
	if err != nil {
		log.Fatalf("[-] Ошибка чтения сцены: %v", err)
	}

	if *durationPtr > 0 {
		sc.Timeline.Duration = *durationPtr
	}
	if *widthPtr > 0 {
		sc.Canvas.Width = *widthPtr
	}
	if *heightPtr > 0 {
		sc.Canvas.Height = *heightPtr
	}
	if *fpsPtr > 0 {
		sc.Canvas.FPS = *fpsPtr
	}

	switch *presetPtr {
	case "16:9":
		sc.Canvas.Width, sc.Canvas.Height = 1920, 1080
	case "9:16":
		sc.Canvas.Width, sc.Canvas.Height = 1080, 1920
	case "4:5":
		sc.Canvas.Width, sc.Canvas.Height = 1080, 1350
	}

	finalOutput := *outputPtr
	if finalOutput == "" {
		baseName := filepath.Base(scenePath)
		nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
		cleanName := strings.ReplaceAll(nameOnly, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		finalOutput = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", cleanName, timestamp))
	}

	encoderName, _ := video.BestH264Encoder()
	if encoderName != "libx264" {
		fmt.Printf("[*] Обнаружено аппаратное ускорение: %s\n", encoderName)
	}

	cfg := &config.Config{
		ScenePath:    scenePath,
		OutputVideo:  finalOutput,
		Width:        sc.Canvas.Width,
		Height:       sc.Canvas.Height,
		FPS:          sc.Canvas.FPS,
		Duration:     sc.Timeline.Duration,
		Workers:      system.RenderWorkers(*workersPtr, sc.Canvas.Width, sc.Canvas.Height),
		VideoEncoder: encoderName,
		Quality:      *qualityPtr,
		Preset:       *presetPtr,
		CheckOutput:  *checkPtr,
	}

	r, err := sc.Build()
	if err != nil {
		log.Fatalf("[-] Ошибка сборки сцены: %v", err)
	}

	r.Workers = cfg.Workers
	r.Encoder = &video.FFmpegEncoder{EncoderName: cfg.VideoEncoder, Quality: cfg.Quality}

	fmt.Printf("[*] Рендеринг: %dx%d @ %d fps, %.1fs, элементов: %d, потоков: %d\n",
		r.Width, r.Height, r.FPS, r.Timeline.Duration, len(r.Elements()), cfg.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if _, err := r.Render(ctx, cfg.OutputVideo); err != nil {
		log.Fatalf("[-] Ошибка рендеринга: %v", err)
	}
	fmt.Printf("[*] Рендеринг завершен за %.1fs\n", time.Since(start).Seconds())

	if cfg.CheckOutput {
		checker := &video.FFprobeChecker{}
		issues := checker.Check(cfg.OutputVideo, r.Timeline.Duration, r.Width, r.Height)
		if len(issues) == 0 {
			fmt.Println("[*] Проверка видео: ок")
		} else {
			for _, is := range issues {
				log.Printf("[!] Проверка видео: %s", is)
			}
		}
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutputVideo)
}
