package ffmpeg

import (
	"fmt"
	"strings"
)

// EncodingError indicates one external ffmpeg invocation failed: non-zero
// exit status or no output file produced. Stage identifies which invocation
// ("pass 1", "pass 2", or "clip N") and Stderr carries the diagnostic
// output captured from the process.
type EncodingError struct {
	Stage  string
	Stderr string
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("ffmpeg %s: %v", e.Stage, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// StderrTail returns up to n trailing lines of the captured stderr, for
// logging without dumping the full encoder transcript.
func (e *EncodingError) StderrTail(n int) []string {
	s := strings.TrimSpace(e.Stderr)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
