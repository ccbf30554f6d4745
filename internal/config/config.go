// Package config holds runtime configuration: defaults, validation, and the
// enum types used by the CLI flag surface.
package config

import (
	"errors"
	"fmt"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the cobra flag bindings in cmd/clipfit before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Input (set from the positional arg).
	InputPath string

	// Size targeting.
	TargetSizeMB int   // Default: 50 (common platform upload limit).
	AudioBitrate int64 // Reserved audio bitrate in bits/sec. Default: 128000.
	QualityFloor int64 // Minimum acceptable video bitrate in bits/sec. Default: 200000.

	// Clip fallback.
	ClipsOnly    bool    // Skip compression, go straight to clips.
	ClipCount    int     // Default: 3.
	ClipDuration float64 // Seconds per clip. Default: 30.
	EdgeMargin   float64 // Seconds excluded from each end of the video. Default: 10.
	ClipWorkers  int     // Concurrent clip extractions. Default: 2.

	// Encoder settings.
	Preset string // x264 preset. Default: "medium".

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. The quality floor and
// audio reserve match the original compression heuristics: below 200 kbps
// x264 output stops being presentable, and 128 kbps AAC is reserved so audio
// never starves the video stream.
func DefaultConfig() Config {
	return Config{
		TargetSizeMB: 50,
		AudioBitrate: 128_000,
		QualityFloor: 200_000,
		ClipCount:    3,
		ClipDuration: 30,
		EdgeMargin:   10,
		ClipWorkers:  2,
		Preset:       "medium",
		ColorMode:    ColorAuto,
	}
}

// TargetBytes returns the target output size in bytes.
func (c *Config) TargetBytes() int64 {
	return int64(c.TargetSizeMB) * 1024 * 1024
}

// Validate checks numeric ranges and enum fields. When not in CheckOnly
// mode, it also requires an input path.
func (c *Config) Validate() error {
	if c.TargetSizeMB <= 0 {
		return fmt.Errorf("target size must be positive, got %d MB", c.TargetSizeMB)
	}
	if c.AudioBitrate <= 0 {
		return fmt.Errorf("audio bitrate must be positive, got %d", c.AudioBitrate)
	}
	if c.QualityFloor < 0 {
		return fmt.Errorf("quality floor must not be negative, got %d", c.QualityFloor)
	}
	if c.ClipCount < 1 {
		return fmt.Errorf("clip count must be at least 1, got %d", c.ClipCount)
	}
	if c.ClipDuration <= 0 {
		return fmt.Errorf("clip duration must be positive, got %g", c.ClipDuration)
	}
	if c.EdgeMargin < 0 {
		return fmt.Errorf("edge margin must not be negative, got %g", c.EdgeMargin)
	}
	if c.ClipWorkers < 1 {
		return fmt.Errorf("clip workers must be at least 1, got %d", c.ClipWorkers)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputPath == "" {
		return errors.New("need an input video file")
	}
	return nil
}
