package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/kalnal0928/video-player/internal/model"
)

// playlistRow mirrors one playlist entry for display.
type playlistRow struct {
	name       string
	path       string
	durationMs int64
	sizeBytes  int64
}

// PlaylistPanel is the side panel listing queued media, with reorder
// and remove controls and a preview thumbnail.
type PlaylistPanel struct {
	rows         []playlistRow
	currentIndex int
	selected     int

	list      *widget.List
	thumbnail *canvas.Image
	container *fyne.Container

	// Callbacks
	onPlay      func(index int)
	onRemove    func(index int)
	onMoveUp    func(index int)
	onMoveDown  func(index int)
	onClear     func()
	onThumbnail func(index int)
	onReveal    func(path string)
}

// NewPlaylistPanel creates the playlist side panel
func NewPlaylistPanel() *PlaylistPanel {
	pp := &PlaylistPanel{
		rows:         make([]playlistRow, 0),
		currentIndex: -1,
		selected:     -1,
	}
	pp.createUI()
	return pp
}

// SetCallbacks wires user actions to the session layer
func (pp *PlaylistPanel) SetCallbacks(
	onPlay func(index int),
	onRemove func(index int),
	onMoveUp func(index int),
	onMoveDown func(index int),
	onClear func(),
	onThumbnail func(index int),
	onReveal func(path string),
) {
	pp.onPlay = onPlay
	pp.onRemove = onRemove
	pp.onMoveUp = onMoveUp
	pp.onMoveDown = onMoveDown
	pp.onClear = onClear
	pp.onThumbnail = onThumbnail
	pp.onReveal = onReveal
}

// Container returns the panel's root container
func (pp *PlaylistPanel) Container() *fyne.Container {
	return pp.container
}

// createUI creates the user interface for the playlist panel
func (pp *PlaylistPanel) createUI() {
	pp.list = widget.NewList(
		func() int {
			return len(pp.rows)
		},
		func() fyne.CanvasObject {
			return pp.createRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			pp.updateRow(id, obj)
		},
	)
	pp.list.OnSelected = func(id widget.ListItemID) {
		pp.selected = id
		if pp.onThumbnail != nil {
			pp.onThumbnail(id)
		}
	}

	playBtn := widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		pp.PlaySelected()
	})
	upBtn := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		if pp.selected >= 0 && pp.onMoveUp != nil {
			pp.onMoveUp(pp.selected)
		}
	})
	downBtn := widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() {
		if pp.selected >= 0 && pp.onMoveDown != nil {
			pp.onMoveDown(pp.selected)
		}
	})
	removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if pp.selected >= 0 && pp.onRemove != nil {
			pp.onRemove(pp.selected)
		}
	})
	clearBtn := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		if pp.onClear != nil {
			pp.onClear()
		}
	})
	revealBtn := widget.NewButtonWithIcon("", theme.FolderIcon(), func() {
		pp.RevealSelected()
	})
	buttons := container.NewHBox(playBtn, upBtn, downBtn, removeBtn, clearBtn, revealBtn)

	pp.thumbnail = &canvas.Image{FillMode: canvas.ImageFillContain}
	pp.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	pp.thumbnail.Hide()

	// Keeps the side panel from collapsing when the list is empty.
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(PanelMinWidth, 0))

	pp.container = container.NewBorder(
		container.NewVBox(spacer, buttons), // top
		pp.thumbnail,                       // bottom
		nil,                                // left
		nil,                                // right
		pp.list,                            // center
	)
}

// createRow creates a template row widget
func (pp *PlaylistPanel) createRow() fyne.CanvasObject {
	name := widget.NewLabel("")
	name.Truncation = fyne.TextTruncateEllipsis

	meta := widget.NewLabel("")
	meta.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewBorder(nil, nil, nil, meta, name)
}

// updateRow fills a row with actual data
func (pp *PlaylistPanel) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(pp.rows) {
		log.Printf("updateRow called with invalid ID %d, total rows: %d", id, len(pp.rows))
		return
	}
	row := pp.rows[id]

	box, ok := obj.(*fyne.Container)
	if !ok || len(box.Objects) < 2 {
		log.Printf("unexpected row object %T", obj)
		return
	}
	name := box.Objects[0].(*widget.Label)
	meta := box.Objects[1].(*widget.Label)

	name.SetText(row.name)
	name.TextStyle = fyne.TextStyle{Bold: id == pp.currentIndex}

	text := ""
	if row.durationMs > 0 {
		text = model.FormatClock(row.durationMs)
	}
	if row.sizeBytes > 0 {
		if text != "" {
			text += " "
		}
		text += model.FormatSize(row.sizeBytes)
	}
	meta.SetText(text)
}

// AddRow appends one entry to the panel
func (pp *PlaylistPanel) AddRow(name, path string, durationMs, sizeBytes int64) {
	pp.rows = append(pp.rows, playlistRow{
		name:       name,
		path:       path,
		durationMs: durationMs,
		sizeBytes:  sizeBytes,
	})
	pp.list.Refresh()
}

// UpdateRowMetadata refreshes duration and size for one entry
func (pp *PlaylistPanel) UpdateRowMetadata(index int, durationMs, sizeBytes int64) {
	if index < 0 || index >= len(pp.rows) {
		return
	}
	pp.rows[index].durationMs = durationMs
	pp.rows[index].sizeBytes = sizeBytes
	pp.list.Refresh()
}

// RemoveRow deletes one entry from the panel
func (pp *PlaylistPanel) RemoveRow(index int) {
	if index < 0 || index >= len(pp.rows) {
		return
	}
	pp.rows = append(pp.rows[:index], pp.rows[index+1:]...)
	if pp.selected == index {
		pp.selected = -1
		pp.list.UnselectAll()
	}
	pp.list.Refresh()
}

// MoveRowUp swaps an entry with its predecessor
func (pp *PlaylistPanel) MoveRowUp(index int) {
	if index <= 0 || index >= len(pp.rows) {
		return
	}
	pp.rows[index-1], pp.rows[index] = pp.rows[index], pp.rows[index-1]
	if pp.selected == index {
		pp.selected = index - 1
		pp.list.Select(pp.selected)
	}
	pp.list.Refresh()
}

// MoveRowDown swaps an entry with its successor
func (pp *PlaylistPanel) MoveRowDown(index int) {
	if index < 0 || index >= len(pp.rows)-1 {
		return
	}
	pp.rows[index], pp.rows[index+1] = pp.rows[index+1], pp.rows[index]
	if pp.selected == index {
		pp.selected = index + 1
		pp.list.Select(pp.selected)
	}
	pp.list.Refresh()
}

// ClearRows removes all entries
func (pp *PlaylistPanel) ClearRows() {
	pp.rows = pp.rows[:0]
	pp.selected = -1
	pp.currentIndex = -1
	pp.list.UnselectAll()
	pp.thumbnail.Hide()
	pp.list.Refresh()
}

// SetCurrent highlights the active entry, -1 clears the highlight
func (pp *PlaylistPanel) SetCurrent(index int) {
	pp.currentIndex = index
	pp.list.Refresh()
}

// ShowThumbnail displays a preview image file
func (pp *PlaylistPanel) ShowThumbnail(path string) {
	pp.thumbnail.File = path
	pp.thumbnail.Show()
	pp.thumbnail.Refresh()
}

// PlaySelected starts the selected entry.
func (pp *PlaylistPanel) PlaySelected() {
	if pp.selected >= 0 && pp.onPlay != nil {
		pp.onPlay(pp.selected)
	}
}

// RevealSelected shows the selected entry in the system file manager.
func (pp *PlaylistPanel) RevealSelected() {
	if pp.selected >= 0 && pp.selected < len(pp.rows) && pp.onReveal != nil {
		pp.onReveal(pp.rows[pp.selected].path)
	}
}
