package video

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Issue is one defect the post-encode check found.
type Issue struct {
	Kind   string // "missing", "duration", "resolution", "unreadable"
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
}

// Checker validates an encoded file after the fact. It is advisory: the
// renderer never blocks on it or fails because of it.
type Checker interface {
	Check(videoPath string, wantDuration float64, wantWidth, wantHeight int) []Issue
}

// FFprobeChecker опрашивает готовый файл через ffprobe.
type FFprobeChecker struct {
	// DurationTolerance в секундах; 0 — полкадра при 30 FPS
	DurationTolerance float64
}

func (c *FFprobeChecker) Check(videoPath string, wantDuration float64, wantWidth, wantHeight int) []Issue {
	var issues []Issue

	if _, err := os.Stat(videoPath); err != nil {
		return []Issue{{Kind: "missing", Detail: err.Error()}}
	}

	dur, err := probeDuration(videoPath)
	if err != nil {
		issues = append(issues, Issue{Kind: "unreadable", Detail: err.Error()})
	} else if wantDuration > 0 {
		tol := c.DurationTolerance
		if tol <= 0 {
			tol = 1.0 / 60
		}
		if math.Abs(dur-wantDuration) > tol {
			issues = append(issues, Issue{
				Kind:   "duration",
				Detail: fmt.Sprintf("получено %.3fs, ожидалось %.3fs", dur, wantDuration),
			})
		}
	}

	if wantWidth > 0 && wantHeight > 0 {
		w, h, err := probeResolution(videoPath)
		if err != nil {
			issues = append(issues, Issue{Kind: "unreadable", Detail: err.Error()})
		} else if w != wantWidth || h != wantHeight {
			issues = append(issues, Issue{
				Kind:   "resolution",
				Detail: fmt.Sprintf("получено %dx%d, ожидалось %dx%d", w, h, wantWidth, wantHeight),
			})
		}
	}

	return issues
}

func probeDuration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, err
	}

	var duration float64
	_, err = fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &duration)
	if err != nil {
		return 0, err
	}

	return duration, nil
}

func probeResolution(path string) (int, int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=width,height", "-of", "csv=s=x:p=0", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, 0, err
	}

	parts := strings.Split(strings.TrimSpace(string(out)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("неожиданный вывод ffprobe: %q", string(out))
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
