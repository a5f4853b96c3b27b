package system

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits поднимает лимит открытых файлов (macOS/Linux).
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось получить лимит файлов: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось установить лимит файлов: %v", err)
	} else {
		fmt.Printf("[*] Системный лимит открытых файлов увеличен до %d\n", rLimit.Cur)
	}
}

// RenderWorkers подбирает число воркеров покадрового рендера: не больше
// физических ядер и не больше, чем влезает кадровых буферов в доступную
// память (каждый воркер держит кадр RGBA плюс офф-скрин буферы, ~3x кадра).
func RenderWorkers(requested, width, height int) int {
	workers := requested
	if workers <= 0 {
		workers = 1
	}

	if counts, err := cpu.Counts(true); err == nil && workers > counts {
		workers = counts
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		perWorker := uint64(width) * uint64(height) * 4 * 3
		if perWorker > 0 {
			// Занимаем не больше половины доступной памяти
			budget := int(vm.Available / 2 / perWorker)
			if budget < 1 {
				budget = 1
			}
			if workers > budget {
				log.Printf("[!] Мало памяти: воркеры урезаны до %d", budget)
				workers = budget
			}
		}
	}

	return workers
}

// FindLatestScene ищет самый свежий YAML-файл сцены в указанной директории.
func FindLatestScene(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := strings.ToLower(f.Name())
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("в папке %s не найдено файлов сцен", dir)
	}

	return latestFile, nil
}
