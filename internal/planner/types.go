package planner

// Action describes the per-file processing decision.
type Action int

const (
	ActionCompress Action = iota // Full two-pass compression to the target size.
	ActionClips                  // Highlight clip extraction fallback.
)

// CompressionPlan holds the bitrate budget for a size-targeted encode.
// VideoBitrate is never negative; a budget that cannot fit any video is
// clamped to 0 and fails the quality floor downstream.
type CompressionPlan struct {
	TargetBytes  int64 // Target output size in bytes.
	AudioBitrate int64 // Reserved audio bitrate in bits/sec.
	VideoBitrate int64 // Computed video bitrate in bits/sec.
	Passes       int   // Always 2.
}

// Segment is a contiguous time span of the source video, extracted as an
// independent clip.
type Segment struct {
	Start    float64 // Offset from the beginning, seconds.
	Duration float64 // Seconds.
}

// End returns the segment's end offset in seconds.
func (s Segment) End() float64 { return s.Start + s.Duration }

// ClipPlan is an ordered set of non-overlapping segments, sorted by start
// offset, each fully inside the source video's duration.
type ClipPlan struct {
	Segments []Segment
}

// FilePlan holds the complete set of decisions for processing one input
// file. It is produced by [BuildPlan] and consumed by the pipeline; the
// decision is terminal and never re-evaluated mid-run.
type FilePlan struct {
	Action Action
	Note   string // Human-readable reason for the chosen action.

	Compression CompressionPlan
	Clips       ClipPlan // Populated only for ActionClips.
}
