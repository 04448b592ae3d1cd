package thumbnail

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kalnal0928/video-player/internal/engine"
)

// snapEngine is a Null engine extended with snapshot capture.
type snapEngine struct {
	engine.Null
	opened   string
	seekedMs int64
	snapped  bool
	snapErr  error
}

func (e *snapEngine) Open(path string) error { e.opened = path; return nil }

func (e *snapEngine) SetTime(ms int64) error { e.seekedMs = ms; return nil }

func (e *snapEngine) Snapshot(outPath string, width, height int) error {
	if e.snapErr != nil {
		return e.snapErr
	}
	e.snapped = true
	return os.WriteFile(outPath, []byte("jpeg"), 0644)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService()
	svc.tempDir = t.TempDir()
	// ffmpeg is installed unless a test says otherwise.
	svc.lookPath = func(string) (string, error) { return "/usr/bin/ffmpeg", nil }
	return svc
}

func waitForResult(t *testing.T, results chan string) string {
	t.Helper()
	select {
	case path := <-results:
		return path
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for thumbnail result")
		return ""
	}
}

func TestOutputPathDeterministic(t *testing.T) {
	svc := newTestService(t)

	a := svc.OutputPath("/videos/a.mp4", 5000)
	b := svc.OutputPath("/videos/a.mp4", 5000)
	if a != b {
		t.Errorf("Expected stable output path, got %q and %q", a, b)
	}

	if svc.OutputPath("/videos/b.mp4", 5000) == a {
		t.Error("Expected distinct paths for distinct sources")
	}
	if svc.OutputPath("/videos/a.mp4", 6000) == a {
		t.Error("Expected distinct paths for distinct timestamps")
	}

	name := filepath.Base(a)
	if !strings.HasPrefix(name, OutputPrefix) || !strings.HasSuffix(name, OutputExtension) {
		t.Errorf("Unexpected output file name %q", name)
	}
	if !strings.HasSuffix(strings.TrimSuffix(name, OutputExtension), "_5000") {
		t.Errorf("Expected timestamp suffix in %q", name)
	}
}

func TestGenerateDeliversExtractedFrame(t *testing.T) {
	svc := newTestService(t)
	svc.extractFn = func(path string, timestampMs int64, outPath string) error {
		return os.WriteFile(outPath, []byte("jpeg"), 0644)
	}

	results := make(chan string, 1)
	svc.SetResultCallback(func(outputPath string) { results <- outputPath })

	svc.Generate("/videos/a.mp4", 5000)

	got := waitForResult(t, results)
	if got != svc.OutputPath("/videos/a.mp4", 5000) {
		t.Errorf("Unexpected result path %q", got)
	}
}

func TestGenerateReusesCachedOutput(t *testing.T) {
	svc := newTestService(t)
	cached := svc.OutputPath("/videos/a.mp4", 5000)
	if err := os.WriteFile(cached, []byte("jpeg"), 0644); err != nil {
		t.Fatal(err)
	}
	svc.extractFn = func(string, int64, string) error {
		t.Error("Extraction ran despite cached output")
		return nil
	}

	results := make(chan string, 1)
	svc.SetResultCallback(func(outputPath string) { results <- outputPath })

	svc.Generate("/videos/a.mp4", 5000)

	if got := waitForResult(t, results); got != cached {
		t.Errorf("Expected cached path %q, got %q", cached, got)
	}
}

func TestGenerateFallsBackWhenFFmpegMissing(t *testing.T) {
	svc := newTestService(t)
	svc.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	svc.extractFn = func(string, int64, string) error {
		t.Error("Extraction ran without ffmpeg installed")
		return nil
	}
	eng := &snapEngine{}
	svc.SetEngineFactory(engine.FactoryFunc(func() (engine.Engine, error) {
		return eng, nil
	}))

	results := make(chan string, 1)
	svc.SetResultCallback(func(outputPath string) { results <- outputPath })

	svc.Generate("/videos/a.mp4", 7000)

	got := waitForResult(t, results)
	if !eng.snapped {
		t.Error("Expected engine snapshot to run")
	}
	if eng.opened != "/videos/a.mp4" {
		t.Errorf("Expected engine to open the source, opened %q", eng.opened)
	}
	if eng.seekedMs != 7000 {
		t.Errorf("Expected seek to 7000, got %d", eng.seekedMs)
	}
	if _, err := os.Stat(got); err != nil {
		t.Errorf("Expected snapshot file at %q: %v", got, err)
	}
}

func TestGenerateRunFailureDeliversNothing(t *testing.T) {
	// ffmpeg is installed but the run fails: this is terminal, the
	// engine fallback must not run even when a factory is wired.
	svc := newTestService(t)
	svc.extractFn = func(string, int64, string) error {
		return errors.New("exit status 1")
	}
	eng := &snapEngine{}
	svc.SetEngineFactory(engine.FactoryFunc(func() (engine.Engine, error) {
		return eng, nil
	}))

	results := make(chan string, 1)
	svc.SetResultCallback(func(outputPath string) { results <- outputPath })

	svc.Generate("/videos/a.mp4", 5000)

	select {
	case path := <-results:
		t.Errorf("Expected no result on run failure, got %q", path)
	case <-time.After(300 * time.Millisecond):
	}
	if eng.snapped || eng.opened != "" {
		t.Error("Engine fallback ran despite ffmpeg being installed")
	}
}

func TestGenerateSnapshotFailureDeliversNothing(t *testing.T) {
	svc := newTestService(t)
	svc.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	svc.SetEngineFactory(engine.FactoryFunc(func() (engine.Engine, error) {
		return &snapEngine{snapErr: errors.New("no video output")}, nil
	}))

	results := make(chan string, 1)
	svc.SetResultCallback(func(outputPath string) { results <- outputPath })

	svc.Generate("/videos/a.mp4", 0)

	select {
	case path := <-results:
		t.Errorf("Expected no result on failure, got %q", path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestGenerateJobID(t *testing.T) {
	a := generateJobID()
	b := generateJobID()
	if !strings.HasPrefix(a, JobIDPrefix) {
		t.Errorf("Expected prefix %q in %q", JobIDPrefix, a)
	}
	if a == b {
		t.Error("Expected unique job IDs")
	}
}
