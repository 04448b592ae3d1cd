package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/kalnal0928/video-player/internal/model"
)

// TransportControls is the bottom bar: play/pause, stop, position
// slider, elapsed/total clock and volume.
type TransportControls struct {
	playPauseBtn   *widget.Button
	stopBtn        *widget.Button
	positionSlider *widget.Slider
	timeLabel      *widget.Label
	volumeSlider   *widget.Slider
	container      *fyne.Container

	// dragging is true between the first user change and the release;
	// snapshot updates leave the slider alone meanwhile.
	dragging bool
	// updating marks programmatic slider writes so their OnChanged
	// callbacks are not mistaken for user input.
	updating bool

	playing    bool
	lastVolume int

	// Callbacks
	onTogglePlay    func()
	onStop          func()
	onSeekPercent   func(percent float64)
	onVolumePercent func(percent int)
}

// NewTransportControls creates the transport bar
func NewTransportControls() *TransportControls {
	tc := &TransportControls{lastVolume: -1}
	tc.createUI()
	return tc
}

// SetCallbacks wires user actions to the session layer
func (tc *TransportControls) SetCallbacks(
	onTogglePlay func(),
	onStop func(),
	onSeekPercent func(percent float64),
	onVolumePercent func(percent int),
) {
	tc.onTogglePlay = onTogglePlay
	tc.onStop = onStop
	tc.onSeekPercent = onSeekPercent
	tc.onVolumePercent = onVolumePercent
}

// Container returns the bar's root container
func (tc *TransportControls) Container() *fyne.Container {
	return tc.container
}

// createUI creates the user interface for the transport bar
func (tc *TransportControls) createUI() {
	tc.playPauseBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if tc.onTogglePlay != nil {
			tc.onTogglePlay()
		}
	})
	tc.stopBtn = widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		if tc.onStop != nil {
			tc.onStop()
		}
	})

	tc.positionSlider = widget.NewSlider(0, PositionSliderResolution)
	tc.positionSlider.Step = 1
	tc.positionSlider.OnChanged = func(float64) {
		if !tc.updating {
			tc.dragging = true
		}
	}
	tc.positionSlider.OnChangeEnded = func(value float64) {
		tc.dragging = false
		if tc.updating {
			return
		}
		if tc.onSeekPercent != nil {
			tc.onSeekPercent(value / PositionSliderResolution * 100.0)
		}
	}

	tc.timeLabel = widget.NewLabel("00:00 / 00:00")

	tc.volumeSlider = widget.NewSlider(0, 100)
	tc.volumeSlider.Step = 1
	tc.volumeSlider.OnChanged = func(value float64) {
		if tc.updating {
			return
		}
		percent := int(value)
		if percent == tc.lastVolume {
			return
		}
		tc.lastVolume = percent
		if tc.onVolumePercent != nil {
			tc.onVolumePercent(percent)
		}
	}

	volumeBox := container.NewBorder(nil, nil, widget.NewIcon(theme.VolumeUpIcon()), nil, tc.volumeSlider)
	volumeBox.Resize(fyne.NewSize(160, volumeBox.MinSize().Height))

	left := container.NewHBox(tc.playPauseBtn, tc.stopBtn)
	right := container.NewBorder(nil, nil, tc.timeLabel, nil, volumeBox)

	tc.container = container.NewBorder(
		nil,               // top
		nil,               // bottom
		left,              // left
		right,             // right
		tc.positionSlider, // center
	)
}

// SetVolume moves the volume slider without firing the callback.
func (tc *TransportControls) SetVolume(percent int) {
	tc.lastVolume = percent
	tc.updating = true
	tc.volumeSlider.SetValue(float64(percent))
	tc.updating = false
}

// UpdateStatus applies one playback snapshot to the bar. The position
// slider is left untouched while the user drags it, and both sliders
// skip same-value writes so a refresh never fights the pointer.
func (tc *TransportControls) UpdateStatus(status model.PlaybackStatus) {
	if status.Playing != tc.playing {
		tc.playing = status.Playing
		if tc.playing {
			tc.playPauseBtn.SetIcon(theme.MediaPauseIcon())
		} else {
			tc.playPauseBtn.SetIcon(theme.MediaPlayIcon())
		}
	}

	tc.timeLabel.SetText(status.Clock())

	if !tc.dragging {
		// Unknown length resets the slider; otherwise the position maps
		// to a whole step, clamped so a transient overshoot of the
		// reported length cannot leave the slider range.
		value := 0.0
		if status.LengthMs > 0 {
			value = math.Round(float64(status.PositionMs) / float64(status.LengthMs) * PositionSliderResolution)
			if value < 0 {
				value = 0
			}
			if value > PositionSliderResolution {
				value = PositionSliderResolution
			}
		}
		if value != tc.positionSlider.Value {
			tc.updating = true
			tc.positionSlider.SetValue(value)
			tc.updating = false
		}
	}

	if status.VolumePercent != tc.lastVolume {
		tc.SetVolume(status.VolumePercent)
	}
}
