// Package probe resolves media metadata (duration, file size, embedded
// title) in background goroutines so playlist entries fill in without
// blocking the owning thread. Durations come from ffprobe, with a pure
// Go frame walk as a fallback for MP3 files on systems without ffmpeg.
package probe
