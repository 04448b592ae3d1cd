// Package thumbnail extracts single-frame preview images from media
// files. The primary path shells out to ffmpeg; on machines without
// ffmpeg a throwaway playback engine instance renders the frame
// off-screen and snapshots it instead. A failed or timed-out ffmpeg
// run is terminal and delivers nothing.
package thumbnail
