package playlist

import (
	"os"

	"github.com/kalnal0928/video-player/internal/model"
)

// NoCurrent is the cursor value when no entry is active.
const NoCurrent = -1

// Listener receives store change notifications. Every mutating operation
// emits its notification synchronously, in the same call, so the UI is
// never more than one notification behind the store.
type Listener interface {
	ItemAdded(index int, entry *model.MediaEntry)
	ItemRemoved(index int)
	ItemMovedUp(index int)
	ItemMovedDown(index int)
	Cleared()
	MetadataUpdated(index int, entry *model.MediaEntry)
	CurrentChanged(index int)
}

// StatFunc checks that a path exists before it may enter the playlist.
type StatFunc func(string) (os.FileInfo, error)

// Store holds the ordered playlist and its cursor. It is not safe for
// concurrent use; background tasks marshal back to the owning thread
// before mutating.
type Store struct {
	entries  []*model.MediaEntry
	current  string // path of the active entry, "" when none
	listener Listener
	statFunc StatFunc
}

// NewStore creates an empty playlist store backed by os.Stat.
func NewStore() *Store {
	return NewStoreWithStat(os.Stat)
}

// NewStoreWithStat creates a store with a custom existence check. Tests
// use this to admit paths that are not on disk.
func NewStoreWithStat(stat StatFunc) *Store {
	return &Store{statFunc: stat}
}

// SetListener registers the notification sink. A nil listener disables
// notifications.
func (s *Store) SetListener(l Listener) {
	s.listener = l
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// EntryAt returns the entry at index i, or nil when out of range.
func (s *Store) EntryAt(i int) *model.MediaEntry {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return s.entries[i]
}

// Paths returns the entry paths in playlist order.
func (s *Store) Paths() []string {
	paths := make([]string, len(s.entries))
	for i, e := range s.entries {
		paths[i] = e.Path
	}
	return paths
}

// IndexOf returns the index of path, or NoCurrent when absent.
func (s *Store) IndexOf(path string) int {
	for i, e := range s.entries {
		if e.Path == path {
			return i
		}
	}
	return NoCurrent
}

// Append adds path at the end and returns its index. Duplicate paths and
// paths that do not exist on the filesystem are rejected silently.
func (s *Store) Append(path string) (int, bool) {
	if s.IndexOf(path) != NoCurrent {
		return NoCurrent, false
	}
	if _, err := s.statFunc(path); err != nil {
		return NoCurrent, false
	}

	entry := &model.MediaEntry{Path: path}
	s.entries = append(s.entries, entry)
	index := len(s.entries) - 1

	if s.listener != nil {
		s.listener.ItemAdded(index, entry)
	}
	return index, true
}

// RemoveAt deletes the entry at index i. Out-of-range requests are no-ops.
func (s *Store) RemoveAt(i int) {
	if i < 0 || i >= len(s.entries) {
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if s.listener != nil {
		s.listener.ItemRemoved(i)
	}
}

// MoveUp swaps entry i with entry i-1. The first entry and out-of-range
// indices are no-ops.
func (s *Store) MoveUp(i int) {
	if i < 1 || i >= len(s.entries) {
		return
	}
	s.entries[i-1], s.entries[i] = s.entries[i], s.entries[i-1]
	if s.listener != nil {
		s.listener.ItemMovedUp(i)
	}
}

// MoveDown swaps entry i with entry i+1. The last entry and out-of-range
// indices are no-ops.
func (s *Store) MoveDown(i int) {
	if i < 0 || i >= len(s.entries)-1 {
		return
	}
	s.entries[i], s.entries[i+1] = s.entries[i+1], s.entries[i]
	if s.listener != nil {
		s.listener.ItemMovedDown(i)
	}
}

// Clear empties the playlist and resets the cursor.
func (s *Store) Clear() {
	s.entries = nil
	s.current = ""
	if s.listener != nil {
		s.listener.Cleared()
	}
}

// Current returns the index of the active entry. The cursor is recomputed
// from the active path on every call, so removals and reorders can never
// leave it pointing at the wrong entry.
func (s *Store) Current() int {
	if s.current == "" {
		return NoCurrent
	}
	return s.IndexOf(s.current)
}

// SetCurrent marks entry i as active. Out-of-range clears the cursor.
func (s *Store) SetCurrent(i int) {
	if i < 0 || i >= len(s.entries) {
		s.SetCurrentPath("")
		return
	}
	s.SetCurrentPath(s.entries[i].Path)
}

// SetCurrentPath marks the entry with the given path as active. A path
// not present in the playlist clears the cursor.
func (s *Store) SetCurrentPath(path string) {
	index := s.IndexOf(path)
	if index == NoCurrent {
		s.current = ""
	} else {
		s.current = path
	}
	if s.listener != nil {
		s.listener.CurrentChanged(index)
	}
}

// Advance moves the cursor to the next entry, wrapping past the end back
// to the first. Returns the new index, or NoCurrent when the playlist is
// empty. Wrap-around is the fixed end-of-media policy.
func (s *Store) Advance() int {
	if len(s.entries) == 0 {
		return NoCurrent
	}
	next := (s.Current() + 1) % len(s.entries)
	s.SetCurrent(next)
	return next
}

// ApplyMetadata fills in probe results for entry i. A stale index (the
// playlist shrank after the probe was dispatched) is discarded.
func (s *Store) ApplyMetadata(i int, title string, durationMs, sizeBytes int64) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	entry := s.entries[i]
	if title != "" {
		entry.Title = title
	}
	if durationMs > 0 {
		entry.DurationMs = durationMs
	}
	if sizeBytes > 0 {
		entry.SizeBytes = sizeBytes
	}
	if s.listener != nil {
		s.listener.MetadataUpdated(i, entry)
	}
	return true
}
