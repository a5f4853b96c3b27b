package config

// Config carries the render-wide knobs set by the CLI and the scene file.
type Config struct {
	ScenePath    string
	OutputVideo  string
	Width        int
	Height       int
	FPS          int
	Duration     float64
	Workers      int
	VideoEncoder string
	Quality      int
	Preset       string
	CheckOutput  bool
}
