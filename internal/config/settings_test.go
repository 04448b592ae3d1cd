package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestVolumePercent(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetVolumePercent(); got != DefaultVolumePercent {
		t.Errorf("Expected default volume %d, got %d", DefaultVolumePercent, got)
	}

	// Test setting custom value
	settings.SetVolumePercent(55)
	if got := settings.GetVolumePercent(); got != 55 {
		t.Errorf("Expected volume 55, got %d", got)
	}

	// Test boundary values
	settings.SetVolumePercent(-10) // Should be clamped to 0
	if settings.GetVolumePercent() != MinVolumePercent {
		t.Error("Volume should be clamped to minimum 0")
	}

	settings.SetVolumePercent(150) // Should be clamped to 100
	if settings.GetVolumePercent() != MaxVolumePercent {
		t.Error("Volume should be clamped to maximum 100")
	}
}

func TestLastPlaylistFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default falls back to the platform playlist location
	if settings.GetLastPlaylistFile() == "" {
		t.Error("Last playlist file should have a platform default")
	}

	settings.SetLastPlaylistFile("/videos/evening.json")
	if got := settings.GetLastPlaylistFile(); got != "/videos/evening.json" {
		t.Errorf("Expected /videos/evening.json, got %s", got)
	}
}

func TestWatchFolder(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Watching is opt-in, so the default is empty
	if got := settings.GetWatchFolder(); got != "" {
		t.Errorf("Expected empty watch folder, got %s", got)
	}

	settings.SetWatchFolder("/videos/incoming")
	if got := settings.GetWatchFolder(); got != "/videos/incoming" {
		t.Errorf("Expected /videos/incoming, got %s", got)
	}

	settings.SetWatchFolder("")
	if got := settings.GetWatchFolder(); got != "" {
		t.Errorf("Expected watching disabled, got %s", got)
	}
}

func TestAutoPlayOnAdd(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoPlayOnAdd() {
		t.Error("Auto-play should default to enabled")
	}

	settings.SetAutoPlayOnAdd(false)
	if settings.GetAutoPlayOnAdd() {
		t.Error("Auto-play should be disabled after SetAutoPlayOnAdd(false)")
	}
}
