// Package watch monitors a folder tree for new media files and feeds
// them to the playlist. Filesystem events are debounced so a batch copy
// arrives as a single import.
package watch
