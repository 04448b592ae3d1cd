package playlist

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsAllowedExtension(t *testing.T) {
	allowed := []string{"a.mp4", "b.MKV", "c.webm", "d.AVI"}
	for _, name := range allowed {
		if !IsAllowedExtension(name) {
			t.Errorf("Expected '%s' to be accepted", name)
		}
	}

	rejected := []string{"a.txt", "b.mp3", "c.srt", "noext"}
	for _, name := range rejected {
		if IsAllowedExtension(name) {
			t.Errorf("Expected '%s' to be rejected", name)
		}
	}
}

func TestScanFolderRecursiveSorted(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.mp4"))
	touch(t, filepath.Join(root, "a.mkv"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "z.webm"))
	touch(t, filepath.Join(root, "sub", "m.avi"))

	files, err := ScanFolder(root)
	if err != nil {
		t.Fatalf("ScanFolder failed: %v", err)
	}

	want := []string{
		filepath.Join(root, "a.mkv"),
		filepath.Join(root, "b.mp4"),
		filepath.Join(root, "sub", "m.avi"),
		filepath.Join(root, "sub", "z.webm"),
	}
	if len(files) != len(want) {
		t.Fatalf("Expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i, f := range want {
		if files[i] != f {
			t.Errorf("File %d: expected '%s', got '%s'", i, f, files[i])
		}
	}
}

func TestScanFolderMissingRoot(t *testing.T) {
	files, err := ScanFolder(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Expected unreadable root to be skipped, got error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected no files, got %v", files)
	}
}
