package session

import (
	"testing"

	"github.com/kalnal0928/video-player/internal/model"
	"github.com/kalnal0928/video-player/internal/playlist"
)

func newTestPoller(t *testing.T) (*StatusPoller, *fakeEngine, *recordingBridge, *playlist.Store) {
	t.Helper()
	eng := newFakeEngine()
	store := playlist.NewStoreWithStat(fakeStat)
	bridge := &recordingBridge{}
	poller := NewStatusPoller(eng, store, bridge, syncDispatcher{})
	return poller, eng, bridge, store
}

func TestTickNormalizesSentinels(t *testing.T) {
	poller, eng, bridge, _ := newTestPoller(t)
	// Engine reports -1 across the board while media is opening.
	eng.timeMs = -1
	eng.lengthMs = -1
	eng.volume = -1
	eng.playing = true

	poller.tick()

	if len(bridge.statuses) != 1 {
		t.Fatalf("Expected one snapshot, got %d", len(bridge.statuses))
	}
	want := model.PlaybackStatus{PositionMs: 0, LengthMs: 0, VolumePercent: 0, Playing: true}
	if bridge.statuses[0] != want {
		t.Errorf("Expected %+v, got %+v", want, bridge.statuses[0])
	}
}

func TestTickSecondaryLengthLookup(t *testing.T) {
	poller, eng, bridge, store := newTestPoller(t)
	store.Append("/videos/a.mp4")
	store.ApplyMetadata(0, "", 90000, 0)
	store.SetCurrent(0)

	// Engine cannot report a length yet, but the probe already resolved
	// the active entry's duration.
	eng.lengthMs = -1
	eng.timeMs = 1000
	eng.volume = 50

	poller.tick()

	if bridge.statuses[0].LengthMs != 90000 {
		t.Errorf("Expected length from entry metadata, got %d", bridge.statuses[0].LengthMs)
	}
}

func TestTickSuppressesRedundantPushes(t *testing.T) {
	poller, eng, bridge, _ := newTestPoller(t)
	eng.timeMs = 1000
	eng.lengthMs = 60000
	eng.volume = 80

	poller.tick()
	poller.tick()
	poller.tick()

	if len(bridge.statuses) != 1 {
		t.Errorf("Expected one push for identical state, got %d", len(bridge.statuses))
	}

	eng.timeMs = 1500
	poller.tick()

	if len(bridge.statuses) != 2 {
		t.Errorf("Expected a push after state change, got %d", len(bridge.statuses))
	}
}

func TestStartStopIdempotent(t *testing.T) {
	poller, _, _, _ := newTestPoller(t)

	poller.Start()
	poller.Start() // no-op on running poller
	poller.Stop()
	poller.Stop() // no-op on stopped poller
}
