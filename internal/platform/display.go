package platform

import (
	"fmt"
	"runtime"

	"github.com/kalnal0928/video-player/internal/engine"
)

// DisplayAdapter attaches a native window handle to a playback engine.
// The handle's meaning differs per OS (HWND, X11 window id, NSView
// pointer); the branching lives here so the session never sees it.
type DisplayAdapter struct{}

// Bind hands the native handle to the engine using the mechanism the
// current OS expects.
func (DisplayAdapter) Bind(eng engine.Engine, handle uintptr) error {
	if handle == 0 {
		return fmt.Errorf("no native window handle")
	}

	switch runtime.GOOS {
	case OSWindows:
		return bindHWND(eng, handle)
	case OSLinux:
		return bindXWindow(eng, handle)
	case OSDarwin:
		return bindNSView(eng, handle)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// bindHWND attaches video output to a Win32 window handle
func bindHWND(eng engine.Engine, handle uintptr) error {
	return eng.Bind(engine.DisplayTarget(handle))
}

// bindXWindow attaches video output to an X11 window id
func bindXWindow(eng engine.Engine, handle uintptr) error {
	return eng.Bind(engine.DisplayTarget(handle))
}

// bindNSView attaches video output to an NSView pointer
func bindNSView(eng engine.Engine, handle uintptr) error {
	return eng.Bind(engine.DisplayTarget(handle))
}
