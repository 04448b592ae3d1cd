package session

import (
	"time"

	"github.com/kalnal0928/video-player/internal/engine"
	"github.com/kalnal0928/video-player/internal/model"
	"github.com/kalnal0928/video-player/internal/playlist"
)

// Poll cadence
const (
	DefaultPollInterval = 500 * time.Millisecond
)

// StatusPoller reads engine state on a fixed cadence and publishes
// normalized snapshots to the view bridge. The ticker goroutine never
// touches engine or store directly; every tick is dispatched onto the
// owning thread, so ticks serialize with user commands and marshaled
// callbacks.
type StatusPoller struct {
	eng        engine.Engine
	store      *playlist.Store
	bridge     ViewBridge
	dispatcher Dispatcher
	interval   time.Duration

	done chan struct{}

	// Owner-thread state for redundant-push suppression.
	last    model.PlaybackStatus
	hasLast bool
}

// NewStatusPoller creates a poller at the default cadence.
func NewStatusPoller(eng engine.Engine, store *playlist.Store, bridge ViewBridge, d Dispatcher) *StatusPoller {
	return &StatusPoller{
		eng:        eng,
		store:      store,
		bridge:     bridge,
		dispatcher: d,
		interval:   DefaultPollInterval,
	}
}

// SetInterval overrides the poll cadence. Must be called before Start.
func (p *StatusPoller) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.interval = interval
	}
}

// Start launches the ticker. Calling Start on a running poller is a
// no-op.
func (p *StatusPoller) Start() {
	if p.done != nil {
		return
	}
	p.done = make(chan struct{})
	go p.run(p.done)
}

// Stop halts the ticker. Idempotent.
func (p *StatusPoller) Stop() {
	if p.done == nil {
		return
	}
	close(p.done)
	p.done = nil
}

func (p *StatusPoller) run(done chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.dispatcher.Dispatch(p.tick)
		case <-done:
			return
		}
	}
}

// tick runs on the owning thread: read all four engine values, build one
// snapshot, push it only when it changed.
func (p *StatusPoller) tick() {
	status := model.PlaybackStatus{
		VolumePercent: p.eng.Volume(),
		Playing:       p.eng.IsPlaying(),
		PositionMs:    p.eng.Time(),
		LengthMs:      p.eng.Length(),
	}

	// Secondary length lookup: the engine may not know the duration yet
	// while the probe already resolved it for the active entry.
	if status.LengthMs <= 0 {
		if index := p.store.Current(); index != playlist.NoCurrent {
			if entry := p.store.EntryAt(index); entry != nil {
				status.LengthMs = entry.DurationMs
			}
		}
	}

	status = status.Normalized()

	if p.hasLast && status == p.last {
		return
	}
	p.last = status
	p.hasLast = true
	p.bridge.UpdateStatus(status)
}
