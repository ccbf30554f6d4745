// Package ffmpeg builds and executes the external encoder invocations: the
// two-pass size-targeted encode and per-segment clip extraction.
//
// The package splits argument construction (builder.go, pure and testable)
// from process execution (executor.go, stderr capture with cancellation via
// exec.CommandContext). twopass.go owns the pass-log artifact's lifetime;
// clips.go runs independent segment extractions through a bounded worker
// pool. All failures surface as *EncodingError.
package ffmpeg
