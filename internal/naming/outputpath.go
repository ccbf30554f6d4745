// Package naming holds the deterministic output path rules. Outputs always
// land next to the input file and keep its container extension.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CompressedPath returns the output path for a full-video compression:
// "<input_basename>_compressed.<ext>" in the input's directory.
func CompressedPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), ext)
	return filepath.Join(dir, stem+"_compressed"+ext)
}

// ClipPath returns the output path for the index-th highlight clip
// (1-based, plan order): "highlight_clip_<index>.<ext>" in the input's
// directory.
func ClipPath(inputPath string, index int) string {
	dir := filepath.Dir(inputPath)
	ext := filepath.Ext(inputPath)
	return filepath.Join(dir, fmt.Sprintf("highlight_clip_%d%s", index, ext))
}
