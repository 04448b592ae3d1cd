package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testDebounce = 50 * time.Millisecond

func newTestWatcher(t *testing.T, root string) chan []string {
	t.Helper()
	imports := make(chan []string, 4)
	w, err := NewWatcher(root, testDebounce, func(paths []string) {
		imports <- paths
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return imports
}

func waitForImport(t *testing.T, imports chan []string) []string {
	t.Helper()
	select {
	case paths := <-imports:
		return paths
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for import")
		return nil
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherImportsNewMediaFile(t *testing.T) {
	root := t.TempDir()
	imports := newTestWatcher(t, root)

	clip := filepath.Join(root, "clip.mp4")
	touch(t, clip)

	paths := waitForImport(t, imports)
	if len(paths) != 1 || paths[0] != clip {
		t.Errorf("Expected [%s], got %v", clip, paths)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	imports := newTestWatcher(t, root)

	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "clip.part"))

	select {
	case paths := <-imports:
		t.Errorf("Expected no import, got %v", paths)
	case <-time.After(4 * testDebounce):
	}
}

func TestWatcherBatchesBurst(t *testing.T) {
	root := t.TempDir()
	imports := newTestWatcher(t, root)

	a := filepath.Join(root, "a.mp4")
	b := filepath.Join(root, "b.mkv")
	touch(t, a)
	touch(t, b)

	paths := waitForImport(t, imports)
	if len(paths) != 2 || paths[0] != a || paths[1] != b {
		t.Errorf("Expected sorted batch [%s %s], got %v", a, b, paths)
	}
}

func TestWatcherPicksUpNewSubfolder(t *testing.T) {
	root := t.TempDir()
	imports := newTestWatcher(t, root)

	sub := filepath.Join(root, "season1")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	// Give the watcher a beat to register the new directory.
	time.Sleep(100 * time.Millisecond)

	clip := filepath.Join(sub, "episode.mp4")
	touch(t, clip)

	paths := waitForImport(t, imports)
	found := false
	for _, p := range paths {
		if p == clip {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected %s in import, got %v", clip, paths)
	}
}

func TestWatcherMissingRoot(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), testDebounce, nil)
	if err == nil {
		t.Fatal("Expected error for missing root")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), testDebounce, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second Close() error = %v", err)
	}
}
