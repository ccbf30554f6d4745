package probe

import "fmt"

// VideoStream holds the parsed properties of the primary video stream.
type VideoStream struct {
	Codec   string
	Width   int
	Height  int
	BitRate int64
}

// Metadata is the fully parsed result of a single ffprobe JSON call:
// everything downstream planning needs to know about the input file.
// It is created once per run and never mutated afterwards.
type Metadata struct {
	Path         string
	Duration     float64 // Seconds.
	Size         int64   // Container size in bytes.
	BitRate      int64   // Container-level bitrate in bits/sec.
	Video        *VideoStream
	AudioBitRate int64 // First audio stream bitrate in bits/sec (0 if unknown).
}

// VideoBitRate returns the video stream bitrate in bits/sec, falling back
// to the container-level bitrate when the stream value is unavailable.
func (m *Metadata) VideoBitRate() int64 {
	if m.Video != nil && m.Video.BitRate > 0 {
		return m.Video.BitRate
	}
	return m.BitRate
}

// Resolution returns "WxH" for the primary video stream, or "unknown".
func (m *Metadata) Resolution() string {
	if m.Video == nil || m.Video.Width <= 0 || m.Video.Height <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", m.Video.Width, m.Video.Height)
}

// AnalysisError indicates the input could not be read or probed: missing
// file, corrupt container, ffprobe unavailable, or degenerate metadata
// (zero duration). It is fatal; the pipeline never falls back from it.
type AnalysisError struct {
	Path string
	Err  error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze %q: %v", e.Path, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
