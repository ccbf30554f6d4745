// Command clipfit compresses a video to fit under a target size via a
// two-pass encode, or falls back to extracting highlight clips when the
// achievable bitrate drops below the quality floor.
//
// Exit codes: 0 success, 2 quality-fallback success (clips written instead
// of a full compression), 1 hard failure.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clipfit/clipfit/internal/check"
	"github.com/clipfit/clipfit/internal/config"
	"github.com/clipfit/clipfit/internal/display"
	"github.com/clipfit/clipfit/internal/logging"
	"github.com/clipfit/clipfit/internal/pipeline"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "1.0.0-dev"

var (
	cfg       = config.DefaultConfig()
	colorMode string
	exitCode  int
)

var rootCmd = &cobra.Command{
	Use:   "clipfit <input-video>",
	Short: "Fit a video under a size limit, or fall back to highlight clips",
	Long: `clipfit compresses a video file to fit under a target size by computing
an achievable bitrate and running a two-pass ffmpeg encode. When the
achievable bitrate would fall below the quality floor, it extracts a few
short highlight clips instead of producing an unwatchable full-length file.

Outputs land next to the input: <name>_compressed.<ext> for a compression,
highlight_clip_<n>.<ext> for clips.

Examples:
  clipfit talk.mp4
  clipfit talk.mp4 --target-size 25
  clipfit gameplay.mkv --clips-only --clip-count 5 --clip-duration 20`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			cfg.InputPath = args[0]
		}
		cfg.ColorMode = config.ColorMode(colorMode)
		if err := cfg.Validate(); err != nil {
			return err
		}
		exitCode = run()
		return nil
	},
}

func init() {
	f := rootCmd.Flags()
	f.IntVarP(&cfg.TargetSizeMB, "target-size", "t", cfg.TargetSizeMB, "Target output size in MB")
	f.Int64Var(&cfg.QualityFloor, "quality-floor", cfg.QualityFloor, "Minimum acceptable video bitrate in bits/sec")
	f.Int64Var(&cfg.AudioBitrate, "audio-bitrate", cfg.AudioBitrate, "Reserved audio bitrate in bits/sec")
	f.BoolVar(&cfg.ClipsOnly, "clips-only", false, "Skip compression, create highlight clips only")
	f.IntVar(&cfg.ClipCount, "clip-count", cfg.ClipCount, "Number of highlight clips")
	f.Float64Var(&cfg.ClipDuration, "clip-duration", cfg.ClipDuration, "Seconds per highlight clip")
	f.Float64Var(&cfg.EdgeMargin, "edge-margin", cfg.EdgeMargin, "Seconds excluded from each end when placing clips")
	f.IntVar(&cfg.ClipWorkers, "clip-workers", cfg.ClipWorkers, "Concurrent clip extractions")
	f.StringVar(&cfg.Preset, "preset", cfg.Preset, "x264 preset")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "Log the plan without invoking ffmpeg")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output (includes ffmpeg stderr)")
	f.StringVar(&colorMode, "color", string(cfg.ColorMode), "Color output: auto, always, never")
	f.StringVar(&cfg.LogFile, "log-file", "", "Append log output to a file")
	f.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
}

func run() int {
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clipfit: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(version)

	if cfg.CheckOnly {
		check.RunCheck(log)
		return 0
	}

	// Fail fast when the external tools are missing rather than mid-encode.
	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	// SIGINT/SIGTERM cancel the context, which kills any in-flight ffmpeg
	// process; scoped artifacts (the two-pass log) are still cleaned up.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res := pipeline.Run(ctx, &cfg, log)
	if ctx.Err() != nil {
		log.Warn("Interrupted")
	}
	return res.ExitCode()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "clipfit: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
