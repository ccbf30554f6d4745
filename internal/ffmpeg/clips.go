package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/clipfit/clipfit/internal/config"
	"github.com/clipfit/clipfit/internal/planner"
)

// ClipJob describes one segment extraction: where the segment lies, where
// its output goes, and its bitrate budget. Index is 1-based plan order and
// fixes the output naming independently of execution order.
type ClipJob struct {
	Index      int
	Segment    planner.Segment
	OutputPath string
	Budget     planner.CompressionPlan
}

// SegmentResult is the per-segment outcome of a clip extraction run.
// Err is nil for segments that produced an output file.
type SegmentResult struct {
	Index      int
	OutputPath string
	Size       int64
	Err        error
}

// ExtractClips runs one ffmpeg invocation per job through a bounded worker
// pool (cfg.ClipWorkers wide). Segments share no state, so a failed segment
// only marks its own result; the remaining segments are still attempted.
// Results come back indexed in job order regardless of completion order.
func ExtractClips(ctx context.Context, cfg *config.Config, input string, jobs []ClipJob) []SegmentResult {
	results := make([]SegmentResult, len(jobs))

	sem := make(chan struct{}, cfg.ClipWorkers)
	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(slot int, job ClipJob) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[slot] = extractOne(ctx, cfg, input, job)
		}(i, job)
	}
	wg.Wait()

	return results
}

// extractOne runs a single segment extraction and verifies its output file.
func extractOne(ctx context.Context, cfg *config.Config, input string, job ClipJob) SegmentResult {
	res := SegmentResult{Index: job.Index, OutputPath: job.OutputPath}

	if err := ctx.Err(); err != nil {
		res.Err = &EncodingError{Stage: fmt.Sprintf("clip %d", job.Index), Err: err}
		return res
	}

	args := BuildClipArgs(cfg, input, job.OutputPath, job.Segment, job.Budget)
	exec := Execute(ctx, args, cfg.Verbose)
	if exec.Err != nil {
		res.Err = &EncodingError{
			Stage:  fmt.Sprintf("clip %d", job.Index),
			Stderr: exec.Stderr,
			Err:    exec.Err,
		}
		return res
	}

	fi, err := os.Stat(job.OutputPath)
	if err != nil {
		res.Err = &EncodingError{
			Stage: fmt.Sprintf("clip %d", job.Index),
			Err:   fmt.Errorf("no output file produced: %w", err),
		}
		return res
	}

	res.Size = fi.Size()
	return res
}
