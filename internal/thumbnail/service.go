package thumbnail

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kalnal0928/video-player/internal/engine"
)

// FFmpeg constants for frame extraction
const (
	FFmpegCommand = "ffmpeg"
	FrameQuality  = "2"

	// ExtractTimeout bounds a single ffmpeg run; a wedged extraction
	// must not pile up goroutines behind it.
	ExtractTimeout = 8 * time.Second

	JobIDPrefix     = "thumb-"
	OutputPrefix    = "thumb_"
	OutputExtension = ".jpg"

	// Engine fallback snapshot settings
	SnapshotWidth  = 160
	SnapshotHeight = 90
	SnapshotSettle = 200 * time.Millisecond
)

// ResultCallback delivers the path of a generated thumbnail. It is
// invoked from a worker goroutine. Failed generations deliver nothing.
type ResultCallback func(outputPath string)

// Service handles thumbnail extraction jobs
type Service struct {
	onResult ResultCallback
	factory  engine.Factory
	tempDir  string

	// extractFn and lookPath are swappable for tests
	extractFn func(path string, timestampMs int64, outPath string) error
	lookPath  func(file string) (string, error)
}

// NewService creates a new thumbnail service writing into the system
// temp directory.
func NewService() *Service {
	s := &Service{
		tempDir: os.TempDir(),
	}
	s.extractFn = s.extractWithFFmpeg
	s.lookPath = exec.LookPath
	return s
}

// SetResultCallback sets the callback function for finished thumbnails
func (s *Service) SetResultCallback(callback ResultCallback) {
	s.onResult = callback
}

// SetEngineFactory enables the engine-snapshot fallback path.
func (s *Service) SetEngineFactory(factory engine.Factory) {
	s.factory = factory
}

// Generate extracts one frame from path at timestampMs in the
// background.
func (s *Service) Generate(path string, timestampMs int64) {
	go s.generate(path, timestampMs)
}

func (s *Service) generate(path string, timestampMs int64) {
	jobID := generateJobID()
	outPath := s.OutputPath(path, timestampMs)

	// Same source and timestamp always map to the same file name, so a
	// previous run's output doubles as a cache.
	if info, err := os.Stat(outPath); err == nil && info.Size() > 0 {
		s.notifyResult(outPath)
		return
	}

	// The engine snapshot stands in only when ffmpeg is not installed.
	// A run that fails or times out is terminal: the partial output is
	// gone and nothing is delivered.
	if _, err := s.lookPath(FFmpegCommand); err != nil {
		if s.factory == nil {
			log.Printf("Thumbnail job %s: ffmpeg not available and no engine fallback", jobID)
			return
		}
		if err := s.snapshotWithEngine(path, timestampMs, outPath); err != nil {
			log.Printf("Thumbnail job %s: engine snapshot failed: %v", jobID, err)
			return
		}
		s.notifyResult(outPath)
		return
	}

	if err := s.extractFn(path, timestampMs, outPath); err != nil {
		log.Printf("Thumbnail job %s: ffmpeg extraction failed: %v", jobID, err)
		return
	}

	s.notifyResult(outPath)
}

// OutputPath returns the deterministic temp file name for a source path
// and timestamp pair.
func (s *Service) OutputPath(path string, timestampMs int64) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	name := fmt.Sprintf("%s%x_%d%s", OutputPrefix, h.Sum64(), timestampMs, OutputExtension)
	return filepath.Join(s.tempDir, name)
}

// extractWithFFmpeg runs a single-frame extraction. Partial output is
// removed on any failure.
func (s *Service) extractWithFFmpeg(path string, timestampMs int64, outPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), ExtractTimeout)
	defer cancel()

	seconds := fmt.Sprintf("%.3f", float64(timestampMs)/1000.0)
	cmd := exec.CommandContext(ctx, FFmpegCommand,
		"-ss", seconds, // Seek before demuxing
		"-i", path, // Input file
		"-frames:v", "1", // Single frame
		"-q:v", FrameQuality, // JPEG quality
		outPath, // Output file
		"-y", // Overwrite output file
	)

	if err := cmd.Run(); err != nil {
		os.Remove(outPath)
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("ffmpeg timed out after %s", ExtractTimeout)
		}
		return fmt.Errorf("failed to run ffmpeg: %w", err)
	}

	info, err := os.Stat(outPath)
	if err != nil || info.Size() == 0 {
		os.Remove(outPath)
		return fmt.Errorf("ffmpeg produced no output for %s", path)
	}
	return nil
}

// snapshotWithEngine renders the frame with a throwaway engine instance
// and captures it. The instance never binds a display, so nothing
// flashes on screen.
func (s *Service) snapshotWithEngine(path string, timestampMs int64, outPath string) error {
	eng, err := s.factory.New()
	if err != nil {
		return fmt.Errorf("failed to create snapshot engine: %w", err)
	}
	defer eng.Release()

	snap, ok := eng.(engine.Snapshotter)
	if !ok {
		return fmt.Errorf("engine does not support snapshots")
	}

	if err := eng.Open(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if err := eng.Play(); err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}
	// Decoding needs a moment before the first frame is seekable.
	time.Sleep(SnapshotSettle)
	if err := eng.SetTime(timestampMs); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	time.Sleep(SnapshotSettle)

	if err := snap.Snapshot(outPath, SnapshotWidth, SnapshotHeight); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("failed to capture snapshot: %w", err)
	}
	return nil
}

// notifyResult calls the result callback if set
func (s *Service) notifyResult(outPath string) {
	if s.onResult != nil {
		s.onResult(outPath)
	}
}

// generateJobID returns a unique identifier for log correlation
func generateJobID() string {
	// Use UUID v7 which includes timestamp and is naturally ordered
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
