package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/clipfit/clipfit/internal/config"
	"github.com/clipfit/clipfit/internal/ffmpeg"
	"github.com/clipfit/clipfit/internal/logging"
	"github.com/clipfit/clipfit/internal/planner"
	"github.com/clipfit/clipfit/internal/probe"
)

func buildClipPlanForTest(cfg *config.Config, duration float64) *planner.FilePlan {
	md := &probe.Metadata{
		Path:     cfg.InputPath,
		Duration: duration,
		Size:     4_000_000_000,
		Video:    &probe.VideoStream{Codec: "h264", Width: 1920, Height: 1080},
	}
	return planner.BuildPlan(cfg, md)
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return log
}

// stubProbe puts a fake ffprobe on PATH that prints canned JSON, so Run can
// be exercised without real media or a real ffprobe. The stub dir is
// prepended to PATH (the scripts still need the shell's usual tools) and
// returned so further stubs can live beside it.
func stubProbe(t *testing.T, duration string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not available on windows")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\ncat <<'EOF'\n" +
		`{"format": {"duration": "` + duration + `", "size": "900000000", "bit_rate": "8000000"},
		 "streams": [{"codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080, "bit_rate": "7800000"}]}` +
		"\nEOF\n"
	if err := os.WriteFile(filepath.Join(dir, "ffprobe"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dir
}

// stubFfmpeg writes a fake ffmpeg beside the probe stub. It creates the
// output file (always the last argument) unless failArg appears among its
// arguments, in which case it exits non-zero with a diagnostic on stderr.
func stubFfmpeg(t *testing.T, dir, failArg string) {
	t.Helper()
	script := `#!/bin/sh
fail=0
out=""
for a in "$@"; do
  if [ "$a" = "` + failArg + `" ]; then fail=1; fi
  out="$a"
done
if [ "$fail" = 1 ]; then
  echo "x264 rate control failed" >&2
  exit 1
fi
printf clipdata > "$out"
`
	if err := os.WriteFile(filepath.Join(dir, "ffmpeg"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
}

func writeInput(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.mp4")
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_MissingInputFails(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputPath = filepath.Join(t.TempDir(), "nope.mp4")

	res := Run(context.Background(), &cfg, testLogger(t))
	if res.Outcome != OutcomeFailed {
		t.Errorf("outcome: got %d, want OutcomeFailed", res.Outcome)
	}
	if res.ExitCode() != 1 {
		t.Errorf("exit code: got %d, want 1", res.ExitCode())
	}
}

func TestRun_TinyInputFails(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputPath = writeInput(t, 10)

	res := Run(context.Background(), &cfg, testLogger(t))
	if res.Outcome != OutcomeFailed {
		t.Errorf("outcome: got %d, want OutcomeFailed", res.Outcome)
	}
}

func TestRun_DryRunCompressPath(t *testing.T) {
	stubProbe(t, "600.0")
	cfg := config.DefaultConfig()
	cfg.InputPath = writeInput(t, 4096)
	cfg.DryRun = true

	res := Run(context.Background(), &cfg, testLogger(t))
	if res.Outcome != OutcomeCompressed {
		t.Fatalf("outcome: got %d, want OutcomeCompressed", res.Outcome)
	}
	if res.ExitCode() != 0 {
		t.Errorf("exit code: got %d, want 0", res.ExitCode())
	}
}

func TestRun_DryRunQualityFallback(t *testing.T) {
	// Four hours cannot fit 50 MiB at any acceptable bitrate.
	stubProbe(t, "14400.0")
	cfg := config.DefaultConfig()
	cfg.InputPath = writeInput(t, 4096)
	cfg.DryRun = true

	res := Run(context.Background(), &cfg, testLogger(t))
	if res.Outcome != OutcomeClips {
		t.Fatalf("outcome: got %d, want OutcomeClips", res.Outcome)
	}
	if !res.Fallback {
		t.Error("fallback flag should be set when the floor forces clips")
	}
	if res.ExitCode() != 2 {
		t.Errorf("exit code: got %d, want 2", res.ExitCode())
	}
}

func TestRun_DryRunClipsOnlyIsPlainSuccess(t *testing.T) {
	stubProbe(t, "600.0")
	cfg := config.DefaultConfig()
	cfg.InputPath = writeInput(t, 4096)
	cfg.DryRun = true
	cfg.ClipsOnly = true

	res := Run(context.Background(), &cfg, testLogger(t))
	if res.Outcome != OutcomeClips {
		t.Fatalf("outcome: got %d, want OutcomeClips", res.Outcome)
	}
	if res.Fallback {
		t.Error("explicitly requested clips are not a fallback")
	}
	if res.ExitCode() != 0 {
		t.Errorf("exit code: got %d, want 0", res.ExitCode())
	}
}

func TestRun_ClipsContinueAfterSegmentFailure(t *testing.T) {
	// An hour-long video plans segments at 10s, 1785s, and 3560s. The stub
	// fails only the middle extraction; the other two must still land and
	// the run must stay a plain success.
	dir := stubProbe(t, "3600.0")
	stubFfmpeg(t, dir, "1785.000")

	cfg := config.DefaultConfig()
	cfg.InputPath = writeInput(t, 4096)
	cfg.ClipsOnly = true

	res := Run(context.Background(), &cfg, testLogger(t))
	if res.Outcome != OutcomeClips {
		t.Fatalf("outcome: got %d, want OutcomeClips", res.Outcome)
	}
	if res.ExitCode() != 0 {
		t.Errorf("exit code: got %d, want 0", res.ExitCode())
	}
	if len(res.Segments) != 3 {
		t.Fatalf("segments: got %d, want 3", len(res.Segments))
	}

	if err := res.Segments[1].Err; err == nil {
		t.Error("middle segment should have failed")
	} else {
		var ee *ffmpeg.EncodingError
		if !errors.As(err, &ee) {
			t.Errorf("middle segment error: got %T, want *ffmpeg.EncodingError", err)
		}
	}
	for _, i := range []int{0, 2} {
		seg := res.Segments[i]
		if seg.Err != nil {
			t.Errorf("segment %d should have succeeded, got %v", i, seg.Err)
			continue
		}
		if _, err := os.Stat(seg.OutputPath); err != nil {
			t.Errorf("segment %d output missing: %v", i, err)
		}
	}
	if got := res.ClipsWritten(); got != 2 {
		t.Errorf("ClipsWritten: got %d, want 2", got)
	}
}

func TestRun_AllClipFailuresIsHardFailure(t *testing.T) {
	dir := stubProbe(t, "3600.0")
	stubFfmpeg(t, dir, "libx264") // every extraction carries the codec arg

	cfg := config.DefaultConfig()
	cfg.InputPath = writeInput(t, 4096)
	cfg.ClipsOnly = true

	res := Run(context.Background(), &cfg, testLogger(t))
	if res.Outcome != OutcomeFailed {
		t.Fatalf("outcome: got %d, want OutcomeFailed", res.Outcome)
	}
	if res.ExitCode() != 1 {
		t.Errorf("exit code: got %d, want 1", res.ExitCode())
	}
	if got := res.ClipsWritten(); got != 0 {
		t.Errorf("ClipsWritten: got %d, want 0", got)
	}
}

func TestRunResult_ClipsWritten(t *testing.T) {
	res := RunResult{
		Outcome: OutcomeClips,
		Segments: []ffmpeg.SegmentResult{
			{Index: 1},
			{Index: 2, Err: os.ErrInvalid},
			{Index: 3},
		},
	}
	if got := res.ClipsWritten(); got != 2 {
		t.Errorf("ClipsWritten: got %d, want 2", got)
	}
}

func TestClipJobs_DeterministicNamingAndBudgets(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputPath = "/videos/demo.mp4"
	cfg.ClipsOnly = true

	plan := buildClipPlanForTest(&cfg, 3600)
	jobs := clipJobs(&cfg, plan)

	if len(jobs) != 3 {
		t.Fatalf("jobs: got %d, want 3", len(jobs))
	}
	for i, job := range jobs {
		if job.Index != i+1 {
			t.Errorf("job %d: index got %d, want %d", i, job.Index, i+1)
		}
		want := filepath.FromSlash("/videos/highlight_clip_" + string(rune('1'+i)) + ".mp4")
		if job.OutputPath != want {
			t.Errorf("job %d: output got %q, want %q", i, job.OutputPath, want)
		}
		if job.Budget.VideoBitrate <= 0 {
			t.Errorf("job %d: non-positive video budget %d", i, job.Budget.VideoBitrate)
		}
	}
}
