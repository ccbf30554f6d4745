package naming

import (
	"path/filepath"
	"testing"
)

func TestCompressedPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/videos/demo.mp4", "/videos/demo_compressed.mp4"},
		{"/videos/my.show.S01E01.mkv", "/videos/my.show.S01E01_compressed.mkv"},
		{"reel.mov", "reel_compressed.mov"},
		{"/videos/noext", "/videos/noext_compressed"},
	}
	for _, tt := range tests {
		if got := CompressedPath(tt.input); got != filepath.FromSlash(tt.want) {
			t.Errorf("CompressedPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClipPath(t *testing.T) {
	got := ClipPath("/videos/demo.mp4", 1)
	if got != filepath.FromSlash("/videos/highlight_clip_1.mp4") {
		t.Errorf("ClipPath index 1: got %q", got)
	}
	got = ClipPath("/videos/demo.webm", 12)
	if got != filepath.FromSlash("/videos/highlight_clip_12.webm") {
		t.Errorf("ClipPath index 12: got %q", got)
	}
}
