package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Size formatting constants
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
)

// MediaEntry represents a single playlist record. Path is the unique key
// within a playlist. DurationMs and SizeBytes stay 0 until the metadata
// probe resolves them.
type MediaEntry struct {
	Path       string
	Title      string // embedded tag title, may be empty
	DurationMs int64  // 0 until known
	SizeBytes  int64  // 0 until known
}

// DisplayName returns the tag title when known, otherwise the base
// filename without its extension.
func (e *MediaEntry) DisplayName() string {
	if e.Title != "" {
		return e.Title
	}
	base := filepath.Base(e.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasMetadata reports whether the background probe has filled in anything.
func (e *MediaEntry) HasMetadata() bool {
	return e.DurationMs > 0 || e.SizeBytes > 0
}

// FormatSize renders a byte count as a human readable string.
func FormatSize(bytes int64) string {
	switch {
	case bytes >= GiB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GiB))
	case bytes >= MiB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MiB))
	case bytes >= KiB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KiB))
	case bytes > 0:
		return fmt.Sprintf("%d B", bytes)
	default:
		return "—"
	}
}
