package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver"

	"github.com/kalnal0928/video-player/internal/config"
	"github.com/kalnal0928/video-player/internal/engine"
	"github.com/kalnal0928/video-player/internal/platform"
	"github.com/kalnal0928/video-player/internal/playlist"
	"github.com/kalnal0928/video-player/internal/probe"
	"github.com/kalnal0928/video-player/internal/session"
	"github.com/kalnal0928/video-player/internal/thumbnail"
	"github.com/kalnal0928/video-player/internal/ui"
	"github.com/kalnal0928/video-player/internal/watch"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.kalnal0928.video-player"
	AppName = "Video Player"

	WindowWidth  = 1000
	WindowHeight = 650
)

// newEngine returns the playback backend. The Null engine keeps the
// shell fully operational on machines without a media backend; a real
// binding replaces this in platform builds.
func newEngine() engine.Engine {
	return &engine.Null{}
}

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	store := playlist.NewStore()
	eng := newEngine()

	// Create the UI first; it is the view bridge the session notifies.
	rootUI := ui.NewRootUI(myWindow, myApp, settings)

	// fyne.Do is the owner-thread dispatcher: every background
	// completion and the end-of-media callback marshal through it.
	dispatcher := session.DispatchFunc(fyne.Do)
	controller := session.NewController(eng, store, rootUI, dispatcher)
	rootUI.SetController(controller)

	probeSvc := probe.NewService()
	probeSvc.SetResultCallback(controller.OnMetadata)
	controller.SetMetadataFetcher(probeSvc)

	thumbSvc := thumbnail.NewService()
	thumbSvc.SetResultCallback(controller.OnThumbnail)
	thumbSvc.SetEngineFactory(engine.FactoryFunc(func() (engine.Engine, error) {
		return newEngine(), nil
	}))
	controller.SetThumbnailGenerator(thumbSvc)

	controller.SetVolumePercent(settings.GetVolumePercent())

	// Hand the native window surface to the engine once the window
	// exists. The Null engine ignores it; a real backend renders there.
	myApp.Lifecycle().SetOnStarted(func() {
		native, ok := myWindow.(driver.NativeWindow)
		if !ok {
			return
		}
		native.RunNative(func(ctx any) {
			var handle uintptr
			switch c := ctx.(type) {
			case driver.WindowsWindowContext:
				handle = c.HWND
			case driver.MacWindowContext:
				handle = c.NSView
			case driver.X11WindowContext:
				handle = c.WindowHandle
			}
			if handle == 0 {
				return
			}
			var adapter platform.DisplayAdapter
			if err := adapter.Bind(eng, handle); err != nil {
				log.Printf("Display bind failed: %v", err)
				return
			}
			controller.SetDisplayTarget(engine.DisplayTarget(handle))
		})
	})

	// Restore the previous session's queue without starting playback.
	if file := settings.GetLastPlaylistFile(); file != "" {
		if paths, err := playlist.LoadPaths(file); err == nil {
			controller.AddFiles(paths)
		}
	}

	poller := session.NewStatusPoller(eng, store, rootUI, dispatcher)
	poller.Start()

	var watcher *watch.Watcher
	if folder := settings.GetWatchFolder(); folder != "" {
		var err error
		watcher, err = watch.NewWatcher(folder, watch.DefaultDebounce, func(paths []string) {
			fyne.Do(func() { rootUI.ImportPaths(paths) })
		})
		if err != nil {
			log.Printf("Failed to watch %s: %v", folder, err)
		}
	}

	myWindow.SetCloseIntercept(func() {
		if file := settings.GetLastPlaylistFile(); file != "" {
			controller.SavePlaylist(file)
		}
		poller.Stop()
		if watcher != nil {
			watcher.Close()
		}
		myApp.Quit()
	})

	// Show and run
	myWindow.ShowAndRun()
}
