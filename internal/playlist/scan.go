package playlist

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// AllowedExtensions is the fixed allow-list of container formats accepted
// by folder scans.
var AllowedExtensions = []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm"}

// IsAllowedExtension reports whether path carries one of the accepted
// container extensions (case-insensitive).
func IsAllowedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ScanFolder walks root recursively and returns every accepted media file.
// WalkDir visits entries in lexical order, so files come back sorted
// within each directory.
func ScanFolder(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if IsAllowedExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
