package session

import (
	"log"

	"github.com/kalnal0928/video-player/internal/engine"
	"github.com/kalnal0928/video-player/internal/model"
	"github.com/kalnal0928/video-player/internal/playlist"
)

// Seek policy constants
const (
	// SeekEndGuardMs keeps relative seeks short of the very end so the
	// engine does not immediately fire end-of-media.
	SeekEndGuardMs = 100
	// DefaultVolumePercent is assumed when the engine cannot report one.
	DefaultVolumePercent = 100
)

// Controller is the only component allowed to command engine transitions
// and to decide what plays next. All methods except OnMetadata,
// OnThumbnail and the end-of-media callback must run on the owning
// thread.
type Controller struct {
	eng        engine.Engine
	store      *playlist.Store
	bridge     ViewBridge
	dispatcher Dispatcher

	probe  MetadataFetcher
	thumbs ThumbnailGenerator

	display    engine.DisplayTarget
	hasDisplay bool
}

// NewController wires the engine, store and view bridge together. The
// store's listener is replaced so every mutation reaches the bridge in
// the same call; the engine's end-of-media callback is marshaled through
// the dispatcher before it touches any state.
func NewController(eng engine.Engine, store *playlist.Store, bridge ViewBridge, d Dispatcher) *Controller {
	c := &Controller{
		eng:        eng,
		store:      store,
		bridge:     bridge,
		dispatcher: d,
	}
	store.SetListener(&bridgeListener{bridge: bridge})
	eng.SetOnEndReached(func() {
		// Arrives on an arbitrary engine thread.
		d.Dispatch(c.onMediaEnd)
	})
	return c
}

// SetMetadataFetcher registers the background metadata service.
func (c *Controller) SetMetadataFetcher(f MetadataFetcher) {
	c.probe = f
}

// SetThumbnailGenerator registers the background thumbnail service.
func (c *Controller) SetThumbnailGenerator(g ThumbnailGenerator) {
	c.thumbs = g
}

// SetDisplayTarget provides the native surface video output binds to on
// the next open. Zero targets are ignored.
func (c *Controller) SetDisplayTarget(target engine.DisplayTarget) {
	if target == 0 {
		return
	}
	c.display = target
	c.hasDisplay = true
}

// Store exposes the playlist for read-only UI queries.
func (c *Controller) Store() *playlist.Store {
	return c.store
}

// guard runs an engine call and converts failure into a logged no-op.
// The player must stay responsive and show no media rather than crash.
func (c *Controller) guard(op string, fn func() error) bool {
	if err := fn(); err != nil {
		log.Printf("engine %s failed: %v", op, err)
		return false
	}
	return true
}

// AddFiles appends each path to the playlist and queues one metadata
// probe per accepted entry. Returns once all appends are applied;
// metadata arrives later, out of order.
func (c *Controller) AddFiles(paths []string) {
	for _, path := range paths {
		index, ok := c.store.Append(path)
		if !ok {
			continue
		}
		if c.probe != nil {
			c.probe.Fetch(path, index)
		}
	}
}

// AddFolder scans root recursively for accepted media files and appends
// them. Returns the number of files found.
func (c *Controller) AddFolder(root string) int {
	files, err := playlist.ScanFolder(root)
	if err != nil {
		log.Printf("folder scan failed for %s: %v", root, err)
		return 0
	}
	c.AddFiles(files)
	return len(files)
}

// OpenAndPlay stops current engine activity, loads path, binds the
// display surface, starts playback and recomputes the current index by
// path lookup. Engine failures degrade to logged no-ops.
func (c *Controller) OpenAndPlay(path string) {
	c.guard("stop", c.eng.Stop)

	if !c.guard("open", func() error { return c.eng.Open(path) }) {
		return
	}
	if c.hasDisplay {
		c.guard("bind", func() error { return c.eng.Bind(c.display) })
	}
	c.guard("play", c.eng.Play)

	// Defensive: a path outside the playlist clears the cursor.
	c.store.SetCurrentPath(path)

	name := path
	if index := c.store.Current(); index != playlist.NoCurrent {
		entry := c.store.EntryAt(index)
		name = entry.DisplayName()
		// Some engines expose duration right after open; seed it so the
		// UI has a length before the probe resolves.
		if entry.DurationMs == 0 {
			if length := c.eng.Length(); length > 0 {
				c.store.ApplyMetadata(index, "", length, 0)
			}
		}
	}
	c.bridge.ShowToast("Playing: " + name)
}

// PlayAt starts playback of entry i. Out-of-range indices are no-ops.
func (c *Controller) PlayAt(i int) {
	entry := c.store.EntryAt(i)
	if entry == nil {
		return
	}
	c.OpenAndPlay(entry.Path)
}

// TogglePlay pauses when playing and resumes otherwise.
func (c *Controller) TogglePlay() {
	if c.eng.IsPlaying() {
		c.guard("pause", c.eng.Pause)
	} else {
		c.guard("play", c.eng.Play)
	}
}

// Stop halts engine activity without touching the playlist.
func (c *Controller) Stop() {
	c.guard("stop", c.eng.Stop)
}

// RemoveAt removes entry i from the playlist.
func (c *Controller) RemoveAt(i int) {
	c.store.RemoveAt(i)
}

// MoveUp moves entry i one position earlier.
func (c *Controller) MoveUp(i int) {
	c.store.MoveUp(i)
}

// MoveDown moves entry i one position later.
func (c *Controller) MoveDown(i int) {
	c.store.MoveDown(i)
}

// Clear stops playback and empties the playlist. Clearing is the
// playback-stop boundary.
func (c *Controller) Clear() {
	c.guard("stop", c.eng.Stop)
	c.store.Clear()
}

// SeekRelative shifts the position by deltaMs, clamped to the media
// range. A no-op while the engine has no position.
func (c *Controller) SeekRelative(deltaMs int64) {
	current := c.eng.Time()
	if current < 0 {
		return
	}
	target := current + deltaMs
	if target < 0 {
		target = 0
	}
	if length := c.eng.Length(); length > 0 && target > length-SeekEndGuardMs {
		target = length - SeekEndGuardMs
	}
	c.guard("seek", func() error { return c.eng.SetTime(target) })
}

// SetPositionPercent seeks to a percentage of the media length. A no-op
// while the length is unknown.
func (c *Controller) SetPositionPercent(percent float64) {
	length := c.eng.Length()
	if length <= 0 {
		return
	}
	target := int64(float64(length) * percent / 100.0)
	c.guard("seek", func() error { return c.eng.SetTime(target) })
}

// SetVolumePercent sets the volume, clamped to 0..100.
func (c *Controller) SetVolumePercent(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	c.guard("volume", func() error { return c.eng.SetVolume(percent) })
}

// VolumeStep shifts the volume by delta percent from the engine's
// current value.
func (c *Controller) VolumeStep(delta int) {
	volume := c.eng.Volume()
	if volume < 0 {
		volume = DefaultVolumePercent
	}
	c.SetVolumePercent(volume + delta)
}

// RequestThumbnail asks for a frame at percent of entry i's duration.
// Bounds are checked here; the timestamp is 0 while duration is unknown.
func (c *Controller) RequestThumbnail(i int, percent float64) {
	entry := c.store.EntryAt(i)
	if entry == nil || c.thumbs == nil {
		return
	}
	var timestampMs int64
	if entry.DurationMs > 0 {
		timestampMs = int64(percent / 100.0 * float64(entry.DurationMs))
	}
	c.thumbs.Generate(entry.Path, timestampMs)
}

// SavePlaylist writes the current path list to file.
func (c *Controller) SavePlaylist(file string) {
	if err := c.store.Save(file); err != nil {
		log.Printf("playlist save failed: %v", err)
		return
	}
	c.bridge.ShowToast("Playlist saved")
}

// LoadPlaylist appends all stored paths (duplicates are skipped by the
// store) and starts playback at the first loaded entry.
func (c *Controller) LoadPlaylist(file string) {
	paths, err := playlist.LoadPaths(file)
	if err != nil {
		log.Printf("playlist load failed: %v", err)
		return
	}
	c.AddFiles(paths)
	if len(paths) > 0 {
		if index := c.store.IndexOf(paths[0]); index != playlist.NoCurrent {
			c.PlayAt(index)
		}
	}
}

// OnMetadata receives a probe result from a worker goroutine and
// marshals it onto the owning thread. A result for an index that left
// the playlist bounds is discarded there.
func (c *Controller) OnMetadata(index int, title string, durationMs, sizeBytes int64) {
	c.dispatcher.Dispatch(func() {
		if !c.store.ApplyMetadata(index, title, durationMs, sizeBytes) {
			log.Printf("discarding stale metadata for index %d", index)
		}
	})
}

// OnThumbnail receives a generated thumbnail path from a worker
// goroutine and forwards it to the view on the owning thread.
func (c *Controller) OnThumbnail(path string) {
	c.dispatcher.Dispatch(func() {
		c.bridge.ShowThumbnail(path)
	})
}

// onMediaEnd runs on the owning thread after the engine's end-of-media
// notification. Policy is wrap-around: the item after the last is the
// first. An empty playlist is a no-op.
func (c *Controller) onMediaEnd() {
	if c.store.Len() == 0 {
		return
	}
	next := c.store.Advance()
	entry := c.store.EntryAt(next)
	if entry == nil {
		return
	}
	c.OpenAndPlay(entry.Path)
}

// bridgeListener forwards store notifications to the view bridge. The
// store calls it synchronously inside each mutation, keeping UI state at
// most one notification behind.
type bridgeListener struct {
	bridge ViewBridge
}

func (b *bridgeListener) ItemAdded(index int, entry *model.MediaEntry) {
	b.bridge.AddItem(entry.DisplayName(), entry.Path, entry.DurationMs, entry.SizeBytes)
}

func (b *bridgeListener) ItemRemoved(index int) {
	b.bridge.RemoveItem(index)
}

func (b *bridgeListener) ItemMovedUp(index int) {
	b.bridge.MoveUp(index)
}

func (b *bridgeListener) ItemMovedDown(index int) {
	b.bridge.MoveDown(index)
}

func (b *bridgeListener) Cleared() {
	b.bridge.ClearPlaylist()
}

func (b *bridgeListener) MetadataUpdated(index int, entry *model.MediaEntry) {
	b.bridge.UpdateItemMetadata(index, entry.DurationMs, entry.SizeBytes)
}

func (b *bridgeListener) CurrentChanged(index int) {
	b.bridge.SetCurrentIndex(index)
}
