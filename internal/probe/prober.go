// Package probe provides ffprobe-based media inspection and typed result
// structures. A single JSON call per file yields everything the planner
// needs: duration, size, and stream bitrates.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs a single ffprobe JSON call against path and returns the parsed
// Metadata. All failure modes (file unreadable, ffprobe missing, corrupt
// container, unusable duration) surface as *AnalysisError.
func Probe(ctx context.Context, path string) (*Metadata, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, &AnalysisError{Path: path, Err: fmt.Errorf("ffprobe: %w", err)}
	}

	md, err := ParseJSON(out)
	if err != nil {
		return nil, &AnalysisError{Path: path, Err: err}
	}
	md.Path = path
	return md, nil
}

// ParseJSON converts raw ffprobe JSON output into Metadata. Exported for
// testing without a real ffprobe binary. A missing or non-positive duration
// is an error here rather than a degenerate value downstream.
func ParseJSON(data []byte) (*Metadata, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	md := buildMetadata(&raw)
	if md.Duration <= 0 {
		return nil, errors.New("container reports zero or unreadable duration")
	}
	return md, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
	Size     string `json:"size"`
	BitRate  string `json:"bit_rate"`
}

type ffprobeStream struct {
	CodecName   string         `json:"codec_name"`
	CodecType   string         `json:"codec_type"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	BitRate     string         `json:"bit_rate"`
	Disposition map[string]int `json:"disposition"`
}

// buildMetadata picks the first non-attached-pic video stream and the first
// audio stream out of the probed stream list.
func buildMetadata(raw *ffprobeOutput) *Metadata {
	md := &Metadata{
		Duration: parseFloat(raw.Format.Duration),
		Size:     parseInt64(raw.Format.Size),
		BitRate:  parseInt64(raw.Format.BitRate),
	}

	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			if s.Disposition["attached_pic"] == 1 || md.Video != nil {
				continue
			}
			md.Video = &VideoStream{
				Codec:   s.CodecName,
				Width:   s.Width,
				Height:  s.Height,
				BitRate: parseInt64(s.BitRate),
			}
		case "audio":
			if md.AudioBitRate == 0 {
				md.AudioBitRate = parseInt64(s.BitRate)
			}
		}
	}
	return md
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
