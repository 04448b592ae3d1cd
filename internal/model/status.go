package model

import "fmt"

// PlaybackStatus is a snapshot of engine state taken in a single poll tick.
// It is always built and published as a whole value, never field by field.
type PlaybackStatus struct {
	PositionMs    int64
	LengthMs      int64
	VolumePercent int
	Playing       bool
}

// Normalized returns a copy with engine "unknown" sentinels (negative
// values) clamped to zero so they never reach the UI.
func (s PlaybackStatus) Normalized() PlaybackStatus {
	out := s
	if out.PositionMs < 0 {
		out.PositionMs = 0
	}
	if out.LengthMs < 0 {
		out.LengthMs = 0
	}
	if out.VolumePercent < 0 {
		out.VolumePercent = 0
	}
	return out
}

// Clock returns the "elapsed / total" display string for the snapshot.
func (s PlaybackStatus) Clock() string {
	return FormatClock(s.PositionMs) + " / " + FormatClock(s.LengthMs)
}

// FormatClock renders milliseconds as mm:ss, or hh:mm:ss past an hour.
func FormatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
