package pipeline

import "github.com/clipfit/clipfit/internal/ffmpeg"

// Outcome is the overall result category of a run. The three values are
// deliberately distinguishable so callers (and exit codes) can tell a
// quality fallback apart from a plain success and from a hard failure.
type Outcome int

const (
	OutcomeCompressed Outcome = iota // Full-video compression succeeded.
	OutcomeClips                     // Highlight clips were written.
	OutcomeFailed                    // Analysis failed, encode failed, or no clip succeeded.
)

// RunResult is the aggregate outcome of one pipeline run.
type RunResult struct {
	Outcome  Outcome
	Fallback bool // Clip path taken because of the quality floor, not by request.

	// Compression path.
	OutputPath  string
	OutputBytes int64
	InputBytes  int64

	// Clip path: per-segment outcomes in plan order.
	Segments []ffmpeg.SegmentResult
}

// ClipsWritten counts the segments that produced an output file.
func (r *RunResult) ClipsWritten() int {
	n := 0
	for _, s := range r.Segments {
		if s.Err == nil {
			n++
		}
	}
	return n
}

// ExitCode maps the outcome onto the process exit contract:
// 0 success, 2 quality-fallback success, 1 hard failure.
func (r *RunResult) ExitCode() int {
	switch {
	case r.Outcome == OutcomeFailed:
		return 1
	case r.Outcome == OutcomeClips && r.Fallback:
		return 2
	default:
		return 0
	}
}
