package engine

// Null is a no-op backend used when no native engine is available. Every
// control succeeds without effect, queries report Unknown, and
// end-of-media never fires. It keeps the shell fully navigable on
// machines without a playback backend installed.
type Null struct{}

// NewNull creates a no-op engine.
func NewNull() *Null {
	return &Null{}
}

func (n *Null) Open(string) error { return nil }

func (n *Null) Play() error { return nil }

func (n *Null) Pause() error { return nil }

func (n *Null) Stop() error { return nil }

func (n *Null) SetTime(int64) error { return nil }

func (n *Null) Time() int64 { return Unknown }

func (n *Null) Length() int64 { return Unknown }

func (n *Null) SetVolume(int) error { return nil }

func (n *Null) Volume() int { return Unknown }

func (n *Null) IsPlaying() bool { return false }

func (n *Null) Bind(DisplayTarget) error { return nil }

func (n *Null) SetOnEndReached(func()) {}

func (n *Null) Release() error { return nil }
