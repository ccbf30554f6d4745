package ffmpeg

import (
	"fmt"
	"os"
	"strconv"

	"github.com/clipfit/clipfit/internal/config"
	"github.com/clipfit/clipfit/internal/planner"
)

// BuildPassArgs constructs the ffmpeg argument slice for one pass of a
// two-pass size-targeted encode. Pass 1 analyzes only: no audio, output
// discarded to the null device. Pass 2 consumes the pass log and writes the
// final file with the reserved audio bitrate.
//
// passLog is the -passlogfile prefix; ffmpeg appends its own suffixes
// (e.g. "-0.log", "-0.log.mbtree") under it.
func BuildPassArgs(cfg *config.Config, input, output string, plan planner.CompressionPlan, pass int, passLog string) []string {
	args := []string{
		"ffmpeg", "-hide_banner", "-nostdin", "-y",
	}
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}

	args = append(args,
		"-i", input,
		"-c:v", "libx264",
		"-b:v", strconv.FormatInt(plan.VideoBitrate, 10),
		"-preset", cfg.Preset,
		"-pass", strconv.Itoa(pass),
		"-passlogfile", passLog,
	)

	if pass == 1 {
		// Analysis pass: drop audio, force the container, discard output.
		return append(args, "-an", "-f", "mp4", os.DevNull)
	}

	return append(args,
		"-c:a", "aac",
		"-b:a", strconv.FormatInt(plan.AudioBitrate, 10),
		output,
	)
}

// BuildClipArgs constructs the ffmpeg argument slice for extracting one
// highlight segment. -ss before -i gives a fast keyframe seek; the segment
// is re-encoded so each clip stands alone at its own bitrate budget.
func BuildClipArgs(cfg *config.Config, input, output string, seg planner.Segment, budget planner.CompressionPlan) []string {
	args := []string{
		"ffmpeg", "-hide_banner", "-nostdin", "-y",
	}
	if cfg.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	return append(args,
		"-ss", formatSeconds(seg.Start),
		"-t", formatSeconds(seg.Duration),
		"-i", input,
		"-c:v", "libx264",
		"-b:v", strconv.FormatInt(budget.VideoBitrate, 10),
		"-preset", cfg.Preset,
		"-c:a", "aac",
		"-b:a", strconv.FormatInt(budget.AudioBitrate, 10),
		output,
	)
}

// formatSeconds renders a time offset the way ffmpeg expects it: plain
// seconds with millisecond precision.
func formatSeconds(s float64) string {
	return fmt.Sprintf("%.3f", s)
}
