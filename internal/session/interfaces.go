package session

import "github.com/kalnal0928/video-player/internal/model"

// ViewBridge is the UI-facing sink for session notifications. All calls
// are made on the owning thread; implementations that render elsewhere
// marshal internally.
type ViewBridge interface {
	AddItem(name, path string, durationMs, sizeBytes int64)
	UpdateItemMetadata(index int, durationMs, sizeBytes int64)
	RemoveItem(index int)
	MoveUp(index int)
	MoveDown(index int)
	ClearPlaylist()
	SetCurrentIndex(index int)
	ShowToast(message string)
	ShowThumbnail(path string)
	UpdateStatus(status model.PlaybackStatus)
}

// MetadataFetcher resolves duration/size/title for a playlist entry off
// the owning thread. Fetch returns immediately; results are delivered
// through the controller's OnMetadata.
type MetadataFetcher interface {
	Fetch(path string, index int)
}

// ThumbnailGenerator extracts a single frame at a timestamp off the
// owning thread. Generate returns immediately; an output path is
// delivered through the controller's OnThumbnail, failures deliver
// nothing.
type ThumbnailGenerator interface {
	Generate(path string, timestampMs int64)
}
