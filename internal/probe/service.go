package probe

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dhowden/tag"
	mp3lib "github.com/tcolgate/mp3"
)

// ffprobe invocation constants
const (
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"

	MP3Extension = ".mp3"
)

// ResultCallback delivers a resolved probe to the session layer. It is
// invoked from a worker goroutine.
type ResultCallback func(index int, title string, durationMs, sizeBytes int64)

// Service handles metadata resolution for playlist entries
type Service struct {
	onResult ResultCallback

	// durationFn is swappable for tests
	durationFn func(path string) (int64, error)
}

// NewService creates a new probe service
func NewService() *Service {
	return &Service{
		durationFn: probeDurationMs,
	}
}

// SetResultCallback sets the callback function for resolved metadata
func (s *Service) SetResultCallback(callback ResultCallback) {
	s.onResult = callback
}

// Fetch resolves metadata for path in the background. index identifies
// the playlist slot the request was issued for; the session layer
// discards results whose slot no longer holds path.
func (s *Service) Fetch(path string, index int) {
	go s.fetch(path, index)
}

func (s *Service) fetch(path string, index int) {
	size := fileSize(path)
	title := readTitle(path)

	durationMs, err := s.durationFn(path)
	if err != nil && strings.EqualFold(filepath.Ext(path), MP3Extension) {
		durationMs, err = mp3DurationMs(path)
	}
	if err != nil {
		log.Printf("Failed to probe duration for %s: %v", path, err)
		durationMs = 0
	}

	s.notifyResult(index, title, durationMs, size)
}

// notifyResult calls the result callback if set
func (s *Service) notifyResult(index int, title string, durationMs, sizeBytes int64) {
	if s.onResult != nil {
		s.onResult(index, title, durationMs, sizeBytes)
	}
}

// fileSize returns the file size in bytes, or 0 when the file cannot
// be stat'ed.
func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// readTitle extracts the embedded title tag, if any. Files without
// readable tags yield an empty string and the display name falls back
// to the file name.
func readTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(meta.Title())
}

// probeDurationMs gets the duration of a media file using ffprobe
func probeDurationMs(path string) (int64, error) {
	cmd := exec.Command(FFprobeCommand, "-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, path)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}
	return parseDurationMs(output)
}

// parseDurationMs converts ffprobe's csv duration output (seconds as a
// float) to milliseconds.
func parseDurationMs(output []byte) (int64, error) {
	durationStr := strings.TrimSpace(string(output))
	seconds, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	return int64(seconds * 1000), nil
}

// mp3DurationMs sums frame durations by walking the MP3 bitstream.
func mp3DurationMs(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder := mp3lib.NewDecoder(f)
	var frame mp3lib.Frame
	var skipped int
	var total time.Duration
	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("failed to decode mp3 frame: %w", err)
		}
		total += frame.Duration()
	}
	return total.Milliseconds(), nil
}
