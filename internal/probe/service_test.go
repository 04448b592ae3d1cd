package probe

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestParseDurationMs(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    int64
		wantErr bool
	}{
		{"whole seconds", "120.000000\n", 120000, false},
		{"fractional", "3.141593\n", 3141, false},
		{"no trailing newline", "45.5", 45500, false},
		{"zero", "0.000000\n", 0, false},
		{"garbage", "N/A\n", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDurationMs([]byte(tt.output))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDurationMs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseDurationMs() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, make([]byte, 2048), 0644); err != nil {
		t.Fatal(err)
	}

	if got := fileSize(path); got != 2048 {
		t.Errorf("Expected size 2048, got %d", got)
	}
	if got := fileSize(filepath.Join(dir, "missing.mp4")); got != 0 {
		t.Errorf("Expected 0 for missing file, got %d", got)
	}
}

func TestReadTitleUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, []byte("not a media file"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := readTitle(path); got != "" {
		t.Errorf("Expected empty title for untagged file, got %q", got)
	}
	if got := readTitle(filepath.Join(dir, "missing.mp4")); got != "" {
		t.Errorf("Expected empty title for missing file, got %q", got)
	}
}

func TestFetchDeliversResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, make([]byte, 512), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewService()
	svc.durationFn = func(string) (int64, error) { return 123000, nil }

	var mu sync.Mutex
	var gotIndex int
	var gotDuration, gotSize int64
	done := make(chan struct{})
	svc.SetResultCallback(func(index int, title string, durationMs, sizeBytes int64) {
		mu.Lock()
		gotIndex = index
		gotDuration = durationMs
		gotSize = sizeBytes
		mu.Unlock()
		close(done)
	})

	svc.Fetch(path, 3)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for probe result")
	}

	mu.Lock()
	defer mu.Unlock()
	if gotIndex != 3 {
		t.Errorf("Expected index 3, got %d", gotIndex)
	}
	if gotDuration != 123000 {
		t.Errorf("Expected duration 123000, got %d", gotDuration)
	}
	if gotSize != 512 {
		t.Errorf("Expected size 512, got %d", gotSize)
	}
}

func TestFetchProbeFailureYieldsZeroDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mkv")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewService()
	svc.durationFn = func(string) (int64, error) { return 0, os.ErrNotExist }

	done := make(chan int64, 1)
	svc.SetResultCallback(func(index int, title string, durationMs, sizeBytes int64) {
		done <- durationMs
	})

	svc.Fetch(path, 0)

	select {
	case durationMs := <-done:
		if durationMs != 0 {
			t.Errorf("Expected zero duration on probe failure, got %d", durationMs)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for probe result")
	}
}

func TestFetchWithoutCallbackDoesNotPanic(t *testing.T) {
	svc := NewService()
	svc.durationFn = func(string) (int64, error) { return 0, nil }
	svc.Fetch("/nowhere/clip.mp4", 0)
	time.Sleep(50 * time.Millisecond)
}
