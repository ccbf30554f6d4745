package probe

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const sampleJSON = `{
	"format": {
		"filename": "demo.mp4",
		"duration": "600.500000",
		"size": "157286400",
		"bit_rate": "2096000"
	},
	"streams": [
		{
			"codec_name": "h264",
			"codec_type": "video",
			"width": 1920,
			"height": 1080,
			"bit_rate": "1900000",
			"disposition": {"attached_pic": 0}
		},
		{
			"codec_name": "aac",
			"codec_type": "audio",
			"bit_rate": "160000",
			"disposition": {}
		}
	]
}`

func TestParseJSON_FullMetadata(t *testing.T) {
	md, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if md.Duration != 600.5 {
		t.Errorf("duration: got %g, want 600.5", md.Duration)
	}
	if md.Size != 157286400 {
		t.Errorf("size: got %d, want 157286400", md.Size)
	}
	if md.Video == nil {
		t.Fatal("expected a video stream")
	}
	if md.Video.Codec != "h264" {
		t.Errorf("codec: got %q, want h264", md.Video.Codec)
	}
	if md.Resolution() != "1920x1080" {
		t.Errorf("resolution: got %q, want 1920x1080", md.Resolution())
	}
	if md.VideoBitRate() != 1900000 {
		t.Errorf("video bitrate: got %d, want 1900000", md.VideoBitRate())
	}
	if md.AudioBitRate != 160000 {
		t.Errorf("audio bitrate: got %d, want 160000", md.AudioBitRate)
	}
}

func TestParseJSON_VideoBitrateFallsBackToContainer(t *testing.T) {
	json := `{
		"format": {"duration": "120", "size": "1000000", "bit_rate": "66000"},
		"streams": [{"codec_type": "video", "codec_name": "vp9", "width": 640, "height": 360}]
	}`
	md, err := ParseJSON([]byte(json))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if md.VideoBitRate() != 66000 {
		t.Errorf("fallback bitrate: got %d, want 66000", md.VideoBitRate())
	}
}

func TestParseJSON_SkipsAttachedPic(t *testing.T) {
	json := `{
		"format": {"duration": "60", "size": "500000", "bit_rate": "66000"},
		"streams": [
			{"codec_type": "video", "codec_name": "mjpeg", "width": 600, "height": 600,
			 "disposition": {"attached_pic": 1}},
			{"codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720,
			 "disposition": {"attached_pic": 0}}
		]
	}`
	md, err := ParseJSON([]byte(json))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if md.Video == nil || md.Video.Codec != "h264" {
		t.Errorf("expected h264 primary video, got %+v", md.Video)
	}
}

func TestParseJSON_RejectsZeroDuration(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing duration", `{"format": {"size": "1000"}}`},
		{"zero duration", `{"format": {"duration": "0", "size": "1000"}}`},
		{"garbage duration", `{"format": {"duration": "N/A", "size": "1000"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJSON([]byte(tt.json)); err == nil {
				t.Error("expected error for unusable duration, got nil")
			}
		})
	}
}

func TestParseJSON_BadJSON(t *testing.T) {
	_, err := ParseJSON([]byte("{not json"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse ffprobe JSON") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestProbe_MissingFileIsAnalysisError(t *testing.T) {
	_, err := Probe(context.Background(), "/nonexistent/clip.mp4")
	if err == nil {
		t.Skip("ffprobe succeeded unexpectedly (no ffprobe on PATH behaves the same)")
	}
	var ae *AnalysisError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *AnalysisError, got %T: %v", err, err)
	}
	if ae.Path != "/nonexistent/clip.mp4" {
		t.Errorf("error path: got %q", ae.Path)
	}
}
