package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clipfit/clipfit/internal/config"
	"github.com/clipfit/clipfit/internal/planner"
)

// EncodeResult holds the outcome of a successful two-pass encode.
type EncodeResult struct {
	OutputPath string
	Size       int64 // Final output size in bytes.
}

// TwoPass runs a two-pass size-targeted encode: pass 1 gathers rate-control
// statistics into a scoped pass log, pass 2 consumes that log to hit the
// plan's video bitrate and writes the final file. The passes are strictly
// ordered and never concurrent.
//
// The pass log lives in a private temp directory whose removal is deferred,
// so the artifact is cleaned up on success, on failure, and on cancellation
// alike. Failures surface as *EncodingError with the failing pass and the
// captured stderr.
func TwoPass(ctx context.Context, cfg *config.Config, input, output string, plan planner.CompressionPlan) (EncodeResult, error) {
	logDir, err := os.MkdirTemp("", "clipfit-passlog-")
	if err != nil {
		return EncodeResult{}, fmt.Errorf("create pass log dir: %w", err)
	}
	defer os.RemoveAll(logDir)
	passLog := filepath.Join(logDir, "ffmpeg2pass")

	for pass := 1; pass <= plan.Passes; pass++ {
		args := BuildPassArgs(cfg, input, output, plan, pass, passLog)
		res := Execute(ctx, args, cfg.Verbose)
		if res.Err != nil {
			return EncodeResult{}, &EncodingError{
				Stage:  fmt.Sprintf("pass %d", pass),
				Stderr: res.Stderr,
				Err:    res.Err,
			}
		}
	}

	fi, err := os.Stat(output)
	if err != nil {
		return EncodeResult{}, &EncodingError{
			Stage: fmt.Sprintf("pass %d", plan.Passes),
			Err:   fmt.Errorf("no output file produced: %w", err),
		}
	}

	return EncodeResult{OutputPath: output, Size: fi.Size()}, nil
}
