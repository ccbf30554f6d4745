// Package pipeline orchestrates the run: analyze the input, compute the
// bitrate budget, decide compress vs clips, and drive the external encoder.
package pipeline

import (
	"context"
	"errors"
	"os"

	"github.com/clipfit/clipfit/internal/config"
	"github.com/clipfit/clipfit/internal/display"
	"github.com/clipfit/clipfit/internal/ffmpeg"
	"github.com/clipfit/clipfit/internal/logging"
	"github.com/clipfit/clipfit/internal/naming"
	"github.com/clipfit/clipfit/internal/planner"
	"github.com/clipfit/clipfit/internal/probe"
)

// Files below this size are almost certainly truncated or corrupt.
const minFileSize = 1000

// Run is the top-level entry point: validate → probe → plan → execute.
// Analysis and planning failures abort immediately; the encode stage's
// failure semantics depend on the chosen path (fatal for two-pass,
// per-segment for clips).
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunResult {
	failed := RunResult{Outcome: OutcomeFailed}

	// --- Validate ---
	fi, err := os.Stat(cfg.InputPath)
	if err != nil {
		log.Error("Input not found: %s", cfg.InputPath)
		return failed
	}
	if fi.Size() < minFileSize {
		log.Error("Input too small (possibly corrupt): %s", cfg.InputPath)
		return failed
	}

	// --- Probe ---
	md, err := probe.Probe(ctx, cfg.InputPath)
	if err != nil {
		log.Error("Cannot analyze input: %v", err)
		return failed
	}
	logFileStats(log, md)

	// --- Plan ---
	plan := planner.BuildPlan(cfg, md)
	log.Info("Target: %s over %s -> video %s + audio %s",
		display.FormatBytes(cfg.TargetBytes()),
		display.FormatDuration(md.Duration),
		display.FormatBitrate(plan.Compression.VideoBitrate),
		display.FormatBitrate(plan.Compression.AudioBitrate))

	fallback := plan.Action == planner.ActionClips && !cfg.ClipsOnly
	if fallback {
		log.Warn("Quality too low for full compression: %s", plan.Note)
		log.Warn("Falling back to highlight clips")
	} else {
		log.Debug("Decision: %s", plan.Note)
	}

	switch plan.Action {
	case planner.ActionCompress:
		res := runCompress(ctx, cfg, log, plan)
		res.InputBytes = fi.Size()
		if res.Outcome == OutcomeCompressed && res.OutputBytes > 0 {
			log.Info("Size: %s -> %s (%.1f%% of original)",
				display.FormatBytes(res.InputBytes),
				display.FormatBytes(res.OutputBytes),
				float64(res.OutputBytes)*100/float64(res.InputBytes))
		}
		return res
	default:
		res := runClips(ctx, cfg, log, plan)
		res.Fallback = fallback
		res.InputBytes = fi.Size()
		return res
	}
}

// runCompress drives the two-pass encode. An encode failure here is fatal
// for the run; there is no silent fallback to clips and no retry.
func runCompress(ctx context.Context, cfg *config.Config, log *logging.Logger, plan *planner.FilePlan) RunResult {
	outputPath := naming.CompressedPath(cfg.InputPath)

	if cfg.DryRun {
		log.Success("[DRY] Would two-pass encode to %s at %s",
			outputPath, display.FormatBitrate(plan.Compression.VideoBitrate))
		return RunResult{Outcome: OutcomeCompressed, OutputPath: outputPath}
	}

	log.Info("Two-pass encode: %s", outputPath)
	res, err := ffmpeg.TwoPass(ctx, cfg, cfg.InputPath, outputPath, plan.Compression)
	if err != nil {
		logEncodingError(log, err)
		os.Remove(outputPath)
		return RunResult{Outcome: OutcomeFailed}
	}

	target := cfg.TargetBytes()
	switch {
	case res.Size <= target:
		log.Success("Compressed to %s (target %s)",
			display.FormatBytes(res.Size), display.FormatBytes(target))
	case res.Size <= target*110/100:
		// Within 10% of the target still counts as usable output.
		log.Warn("Output %s slightly exceeds target %s; accepting closest achievable result",
			display.FormatBytes(res.Size), display.FormatBytes(target))
	default:
		log.Warn("Output %s exceeds target %s; accepting closest achievable result",
			display.FormatBytes(res.Size), display.FormatBytes(target))
	}

	return RunResult{
		Outcome:     OutcomeCompressed,
		OutputPath:  res.OutputPath,
		OutputBytes: res.Size,
	}
}

// runClips extracts the planned highlight segments. Failures are isolated
// per segment; the run only fails when nothing was written at all.
func runClips(ctx context.Context, cfg *config.Config, log *logging.Logger, plan *planner.FilePlan) RunResult {
	jobs := clipJobs(cfg, plan)

	if cfg.DryRun {
		for _, job := range jobs {
			log.Success("[DRY] Would extract clip %d: %s at offset %s -> %s",
				job.Index,
				display.FormatDuration(job.Segment.Duration),
				display.FormatDuration(job.Segment.Start),
				job.OutputPath)
		}
		return RunResult{Outcome: OutcomeClips}
	}

	log.Info("Extracting %d highlight clip(s)...", len(jobs))
	results := ffmpeg.ExtractClips(ctx, cfg, cfg.InputPath, jobs)

	var written int
	var totalBytes int64
	for _, res := range results {
		if res.Err != nil {
			logEncodingError(log, res.Err)
			continue
		}
		written++
		totalBytes += res.Size
		log.Success("Clip %d: %s (%s)", res.Index, res.OutputPath, display.FormatBytes(res.Size))
	}

	if written == 0 {
		log.Error("No clips could be extracted")
		return RunResult{Outcome: OutcomeFailed, Segments: results}
	}
	log.Success("Wrote %d/%d clips, %s total", written, len(results), display.FormatBytes(totalBytes))

	return RunResult{
		Outcome:     OutcomeClips,
		OutputBytes: totalBytes,
		Segments:    results,
	}
}

// clipJobs pairs each planned segment with its deterministic output path
// and per-clip bitrate budget.
func clipJobs(cfg *config.Config, plan *planner.FilePlan) []ffmpeg.ClipJob {
	jobs := make([]ffmpeg.ClipJob, 0, len(plan.Clips.Segments))
	for i, seg := range plan.Clips.Segments {
		jobs = append(jobs, ffmpeg.ClipJob{
			Index:      i + 1,
			Segment:    seg,
			OutputPath: naming.ClipPath(cfg.InputPath, i+1),
			Budget:     planner.ClipBudget(cfg, plan, seg),
		})
	}
	return jobs
}

func logFileStats(log *logging.Logger, md *probe.Metadata) {
	codec := "unknown"
	if md.Video != nil && md.Video.Codec != "" {
		codec = md.Video.Codec
	}
	log.Info("Input: %s | %s | %s | %s",
		md.Resolution(),
		display.FormatBitrate(md.VideoBitRate()),
		codec,
		display.FormatDuration(md.Duration))
	log.Info("Size: %s", display.FormatBytes(md.Size))
}

// logEncodingError surfaces the failing stage and the tail of ffmpeg's
// stderr without dumping the whole transcript.
func logEncodingError(log *logging.Logger, err error) {
	var ee *ffmpeg.EncodingError
	if !errors.As(err, &ee) {
		log.Error("%v", err)
		return
	}
	log.Error("ffmpeg %s failed: %v", ee.Stage, ee.Err)
	for _, line := range ee.StderrTail(20) {
		log.Error("  %s", line)
	}
}
