package planner

import "math"

// passes is fixed: the encode path always runs an analysis pass followed by
// the real encode.
const passes = 2

// ComputeBitrate derives the video bitrate budget that fits targetBytes over
// duration seconds after reserving audioBitrate for the audio stream.
//
// total = targetBytes*8/duration; video = total - audio, clamped at 0.
// Pure and deterministic: same inputs always yield the same plan.
func ComputeBitrate(targetBytes int64, duration float64, audioBitrate int64) CompressionPlan {
	total := int64(math.Round(float64(targetBytes) * 8 / duration))
	video := total - audioBitrate
	if video < 0 {
		video = 0
	}
	return CompressionPlan{
		TargetBytes:  targetBytes,
		AudioBitrate: audioBitrate,
		VideoBitrate: video,
		Passes:       passes,
	}
}

// MeetsFloor reports whether the plan's video bitrate reaches the minimum
// acceptable quality floor. Exact equality passes.
func (p CompressionPlan) MeetsFloor(floor int64) bool {
	return p.VideoBitrate >= floor
}
