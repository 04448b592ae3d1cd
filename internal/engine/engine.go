package engine

// Unknown is the sentinel an engine returns for time, length and volume
// queries while no value is available (media opening, buffering, nothing
// loaded).
const Unknown = -1

// DisplayTarget is an opaque native handle for video output (HWND, X11
// window id, NSView pointer). The platform layer produces it; the engine
// consumes it.
type DisplayTarget uintptr

// Engine is the playback backend for a single active source.
//
// All control methods are called from the owning thread only. The
// end-of-media callback registered with SetOnEndReached fires on an
// arbitrary goroutine; receivers must marshal before touching shared
// state.
type Engine interface {
	// Open loads a new source. Callers stop current activity first;
	// most backends must release their source exclusively before
	// loading another.
	Open(path string) error
	Play() error
	Pause() error
	Stop() error

	// SetTime seeks to an absolute position in milliseconds.
	SetTime(ms int64) error
	// Time returns the playback position in milliseconds, or Unknown.
	Time() int64
	// Length returns the media duration in milliseconds, or Unknown.
	Length() int64

	// SetVolume sets the audio volume as a percentage (0..100).
	SetVolume(percent int) error
	// Volume returns the audio volume percentage, or Unknown.
	Volume() int

	IsPlaying() bool

	// Bind attaches video output to a native display target.
	Bind(target DisplayTarget) error

	// SetOnEndReached registers the end-of-media notification. The
	// callback arrives on an arbitrary goroutine.
	SetOnEndReached(fn func())

	// Release tears the engine instance down.
	Release() error
}

// Snapshotter is implemented by engines that can capture the current
// video frame to an image file. Used by the thumbnail fallback path.
type Snapshotter interface {
	Snapshot(outPath string, width, height int) error
}

// Factory creates isolated engine instances. The thumbnail fallback uses
// a throwaway instance so its failures cannot disturb main playback.
type Factory interface {
	New() (Engine, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func() (Engine, error)

// New calls f.
func (f FactoryFunc) New() (Engine, error) {
	return f()
}
