package ui

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/kalnal0928/video-player/internal/config"
	"github.com/kalnal0928/video-player/internal/model"
	"github.com/kalnal0928/video-player/internal/platform"
	"github.com/kalnal0928/video-player/internal/playlist"
	"github.com/kalnal0928/video-player/internal/session"
)

// Playlist file dialog filter
var playlistFileExtensions = []string{".json"}

// RootUI represents the main window: video surface, transport bar and
// playlist side panel. It implements session.ViewBridge.
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings

	controller *session.Controller

	panel    *PlaylistPanel
	controls *TransportControls
	surface  *canvas.Rectangle

	panelVisible bool
	// panelWasVisible remembers visibility across fullscreen.
	panelWasVisible bool
	content         *fyne.Container
}

// NewRootUI creates and lays out the main window. The controller is
// attached afterwards with SetController; user actions before that are
// no-ops.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		panelVisible: true,
	}
	ui.setupUI()
	return ui
}

// SetController wires user actions to the session layer.
func (ui *RootUI) SetController(c *session.Controller) {
	ui.controller = c
	ui.controls.SetVolume(ui.settings.GetVolumePercent())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.surface = canvas.NewRectangle(color.Black)

	ui.panel = NewPlaylistPanel()
	ui.panel.SetCallbacks(
		ui.onPlayAt,
		ui.onRemoveAt,
		ui.onMoveUp,
		ui.onMoveDown,
		ui.onClearPlaylist,
		ui.onRequestThumbnail,
		ui.onRevealFile,
	)

	ui.controls = NewTransportControls()
	ui.controls.SetCallbacks(
		ui.onTogglePlay,
		ui.onStop,
		ui.onSeekPercent,
		ui.onVolumePercent,
	)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), ui.onOpenFile),
		widget.NewToolbarAction(theme.FolderIcon(), ui.onOpenFolder),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), ui.onSavePlaylist),
		widget.NewToolbarAction(theme.UploadIcon(), ui.onLoadPlaylist),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.ListIcon(), ui.togglePanel),
	)

	ui.content = container.NewBorder(
		toolbar,                 // top
		ui.controls.Container(), // bottom
		nil,                     // left
		ui.panel.Container(),    // right
		ui.surface,              // center
	)
	ui.window.SetContent(ui.content)

	ui.setupDragAndDrop()
	ui.setupShortcuts()

	log.Printf("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open File…", ui.onOpenFile),
		fyne.NewMenuItem("Open Folder…", ui.onOpenFolder),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Playlist", ui.onSavePlaylist),
		fyne.NewMenuItem("Load Playlist…", ui.onLoadPlaylist),
	)
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Playlist", ui.togglePanel),
		fyne.NewMenuItem("Fullscreen", ui.toggleFullscreen),
	)
	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu))
}

// setupDragAndDrop accepts files and folders dropped onto the window
func (ui *RootUI) setupDragAndDrop() {
	ui.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if ui.controller == nil {
			return
		}
		var files []string
		for _, uri := range uris {
			path := uri.Path()
			if listable, err := storage.CanList(uri); err == nil && listable {
				ui.controller.AddFolder(path)
				continue
			}
			if playlist.IsAllowedExtension(path) {
				files = append(files, path)
			}
		}
		if len(files) > 0 {
			ui.addFiles(files)
		}
	})
}

// setupShortcuts installs the keyboard transport bindings
func (ui *RootUI) setupShortcuts() {
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ui.controller == nil {
			return
		}
		switch ev.Name {
		case fyne.KeySpace:
			ui.controller.TogglePlay()
		case fyne.KeyLeft:
			ui.controller.SeekRelative(-SeekStepMs)
		case fyne.KeyRight:
			ui.controller.SeekRelative(SeekStepMs)
		case fyne.KeyUp:
			ui.controller.VolumeStep(VolumeStepPercent)
		case fyne.KeyDown:
			ui.controller.VolumeStep(-VolumeStepPercent)
		case fyne.KeyReturn, fyne.KeyEnter:
			ui.toggleFullscreen()
		}
	})
}

// addFiles imports paths and, when configured, starts the first new
// entry if nothing is active.
func (ui *RootUI) addFiles(paths []string) {
	store := ui.controller.Store()
	lenBefore := store.Len()

	ui.controller.AddFiles(paths)

	if ui.settings.GetAutoPlayOnAdd() &&
		store.Current() == playlist.NoCurrent &&
		store.Len() > lenBefore {
		ui.controller.PlayAt(lenBefore)
	}
}

// ImportPaths feeds externally discovered files (watched folder) into
// the playlist. Callers must already be on the Fyne thread.
func (ui *RootUI) ImportPaths(paths []string) {
	if ui.controller == nil {
		return
	}
	ui.addFiles(paths)
}

// togglePanel shows or hides the playlist side panel
func (ui *RootUI) togglePanel() {
	if ui.panelVisible {
		ui.panel.Container().Hide()
	} else {
		ui.panel.Container().Show()
	}
	ui.panelVisible = !ui.panelVisible
	ui.content.Refresh()
}

// toggleFullscreen flips fullscreen. Entering hides the playlist panel;
// leaving restores whatever visibility it had before.
func (ui *RootUI) toggleFullscreen() {
	entering := !ui.window.FullScreen()
	if entering {
		ui.panelWasVisible = ui.panelVisible
		if ui.panelVisible {
			ui.togglePanel()
		}
	} else {
		if ui.panelWasVisible && !ui.panelVisible {
			ui.togglePanel()
		}
	}
	ui.window.SetFullScreen(entering)
}

// User action handlers

func (ui *RootUI) onOpenFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		if ui.controller != nil {
			ui.addFiles([]string{path})
		}
	}, ui.window)
	d.SetFilter(storage.NewExtensionFileFilter(playlist.AllowedExtensions))
	d.Show()
}

func (ui *RootUI) onOpenFolder() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		if ui.controller != nil {
			count := ui.controller.AddFolder(uri.Path())
			log.Printf("Folder import added %d files from %s", count, uri.Path())
		}
	}, ui.window)
	// Start browsing in the user's videos directory when it exists.
	if dir, err := platform.GetHomeVideosDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

// onRevealFile shows a playlist entry in the system file manager.
func (ui *RootUI) onRevealFile(path string) {
	if err := platform.RevealInFileManager(path); err != nil {
		log.Printf("Reveal failed for %s: %v", path, err)
	}
}

func (ui *RootUI) onSavePlaylist() {
	if ui.controller == nil {
		return
	}
	file := ui.settings.GetLastPlaylistFile()
	if file == "" {
		return
	}
	ui.controller.SavePlaylist(file)
}

func (ui *RootUI) onLoadPlaylist() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		if ui.controller != nil {
			ui.controller.LoadPlaylist(path)
			ui.settings.SetLastPlaylistFile(path)
		}
	}, ui.window)
	d.SetFilter(storage.NewExtensionFileFilter(playlistFileExtensions))
	d.Show()
}

func (ui *RootUI) onPlayAt(index int) {
	if ui.controller != nil {
		ui.controller.PlayAt(index)
	}
}

func (ui *RootUI) onRemoveAt(index int) {
	if ui.controller != nil {
		ui.controller.RemoveAt(index)
	}
}

func (ui *RootUI) onMoveUp(index int) {
	if ui.controller != nil {
		ui.controller.MoveUp(index)
	}
}

func (ui *RootUI) onMoveDown(index int) {
	if ui.controller != nil {
		ui.controller.MoveDown(index)
	}
}

func (ui *RootUI) onClearPlaylist() {
	if ui.controller != nil {
		ui.controller.Clear()
	}
}

func (ui *RootUI) onRequestThumbnail(index int) {
	if ui.controller != nil {
		ui.controller.RequestThumbnail(index, ThumbnailFramePercent)
	}
}

func (ui *RootUI) onTogglePlay() {
	if ui.controller != nil {
		ui.controller.TogglePlay()
	}
}

func (ui *RootUI) onStop() {
	if ui.controller != nil {
		ui.controller.Stop()
	}
}

func (ui *RootUI) onSeekPercent(percent float64) {
	if ui.controller != nil {
		ui.controller.SetPositionPercent(percent)
	}
}

func (ui *RootUI) onVolumePercent(percent int) {
	if ui.controller != nil {
		ui.controller.SetVolumePercent(percent)
		ui.settings.SetVolumePercent(percent)
	}
}

// session.ViewBridge implementation. All calls arrive on the Fyne
// thread; the session dispatcher marshals background completions first.

// AddItem appends a playlist row
func (ui *RootUI) AddItem(name, path string, durationMs, sizeBytes int64) {
	ui.panel.AddRow(name, path, durationMs, sizeBytes)
}

// UpdateItemMetadata refreshes a row after a probe resolves
func (ui *RootUI) UpdateItemMetadata(index int, durationMs, sizeBytes int64) {
	ui.panel.UpdateRowMetadata(index, durationMs, sizeBytes)
}

// RemoveItem deletes a playlist row
func (ui *RootUI) RemoveItem(index int) {
	ui.panel.RemoveRow(index)
}

// MoveUp reflects a row moved one position earlier
func (ui *RootUI) MoveUp(index int) {
	ui.panel.MoveRowUp(index)
}

// MoveDown reflects a row moved one position later
func (ui *RootUI) MoveDown(index int) {
	ui.panel.MoveRowDown(index)
}

// ClearPlaylist empties the panel
func (ui *RootUI) ClearPlaylist() {
	ui.panel.ClearRows()
}

// SetCurrentIndex highlights the active row
func (ui *RootUI) SetCurrentIndex(index int) {
	ui.panel.SetCurrent(index)
}

// ShowToast shows a transient popup in the top-right corner
func (ui *RootUI) ShowToast(message string) {
	label := widget.NewLabel(message)
	label.Truncation = fyne.TextTruncateEllipsis

	toast := widget.NewPopUp(container.NewPadded(label), ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toast.Resize(toastSize)
	toast.ShowAtPosition(toastPos)

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toast.Hide)
	}()
}

// ShowThumbnail displays a generated preview in the panel
func (ui *RootUI) ShowThumbnail(path string) {
	ui.panel.ShowThumbnail(path)
}

// UpdateStatus applies one playback snapshot to the transport bar
func (ui *RootUI) UpdateStatus(status model.PlaybackStatus) {
	ui.controls.UpdateStatus(status)
}
