package config

import (
	"fyne.io/fyne/v2"

	"github.com/kalnal0928/video-player/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyVolumePercent    = "volume_percent"
	KeyLastPlaylistFile = "last_playlist_file"
	KeyWatchFolder      = "watch_folder"
	KeyAutoPlayOnAdd    = "auto_play_on_add"
)

// Default values
const (
	DefaultVolumePercent = 100
	DefaultAutoPlayOnAdd = true

	MinVolumePercent = 0
	MaxVolumePercent = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetVolumePercent returns the persisted audio volume
func (s *Settings) GetVolumePercent() int {
	value := s.app.Preferences().IntWithFallback(KeyVolumePercent, DefaultVolumePercent)
	if value < MinVolumePercent {
		return MinVolumePercent
	}
	if value > MaxVolumePercent {
		return MaxVolumePercent
	}
	return value
}

// SetVolumePercent persists the audio volume
func (s *Settings) SetVolumePercent(percent int) {
	if percent < MinVolumePercent {
		percent = MinVolumePercent
	}
	if percent > MaxVolumePercent {
		percent = MaxVolumePercent
	}
	s.app.Preferences().SetInt(KeyVolumePercent, percent)
}

// GetLastPlaylistFile returns the playlist file loaded on startup
func (s *Settings) GetLastPlaylistFile() string {
	path := s.app.Preferences().String(KeyLastPlaylistFile)
	if path == "" {
		defaultPath, err := platform.DefaultPlaylistPath()
		if err != nil {
			return ""
		}
		return defaultPath
	}
	return path
}

// SetLastPlaylistFile sets the playlist file loaded on startup
func (s *Settings) SetLastPlaylistFile(path string) {
	s.app.Preferences().SetString(KeyLastPlaylistFile, path)
}

// GetWatchFolder returns the auto-import folder, empty when disabled
func (s *Settings) GetWatchFolder() string {
	return s.app.Preferences().String(KeyWatchFolder)
}

// SetWatchFolder sets the auto-import folder, empty disables watching
func (s *Settings) SetWatchFolder(dir string) {
	s.app.Preferences().SetString(KeyWatchFolder, dir)
}

// GetAutoPlayOnAdd returns whether the first file of an import starts
// playing immediately when nothing is active
func (s *Settings) GetAutoPlayOnAdd() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoPlayOnAdd, DefaultAutoPlayOnAdd)
}

// SetAutoPlayOnAdd sets whether imports start playback
func (s *Settings) SetAutoPlayOnAdd(autoPlay bool) {
	s.app.Preferences().SetBool(KeyAutoPlayOnAdd, autoPlay)
}
