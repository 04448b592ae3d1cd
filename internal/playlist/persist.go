package playlist

import (
	"encoding/json"
	"fmt"
	"os"
)

// Persistence constants
const (
	PlaylistFilePermissions = 0644
	PlaylistIndent          = "  "
)

// Save writes the playlist as a human readable JSON array of absolute
// file paths.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s.Paths(), "", PlaylistIndent)
	if err != nil {
		return fmt.Errorf("failed to encode playlist: %w", err)
	}
	if err := os.WriteFile(path, data, PlaylistFilePermissions); err != nil {
		return fmt.Errorf("failed to write playlist file: %w", err)
	}
	return nil
}

// LoadPaths reads a playlist file and returns the stored paths in order.
// The caller decides how to merge them; loading never replaces existing
// entries.
func LoadPaths(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist file: %w", err)
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, fmt.Errorf("failed to parse playlist file: %w", err)
	}
	return paths, nil
}
