package ui

import "time"

// Keyboard transport steps
const (
	SeekStepMs        = 5000
	VolumeStepPercent = 10
)

// Position slider resolution; percent published to the session is
// value / resolution * 100.
const (
	PositionSliderResolution = 1000
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 80
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Playlist panel sizing
const (
	PanelMinWidth   float32 = 320
	ThumbnailWidth  float32 = 160
	ThumbnailHeight float32 = 90

	// Frame position requested for previews, as percent of duration.
	ThumbnailFramePercent = 10.0
)
