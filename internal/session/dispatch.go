package session

import "sync"

// Queue capacity for the serial dispatcher
const (
	SerialQueueSize = 256
)

// Dispatcher marshals a function onto the owning thread. Execution is
// deferred and strictly ordered: the dispatched function runs after the
// current owner-thread operation completes, never reentrantly.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatchFunc adapts a function (such as fyne.Do) to the Dispatcher
// interface.
type DispatchFunc func(func())

// Dispatch calls f.
func (f DispatchFunc) Dispatch(fn func()) {
	f(fn)
}

// SerialDispatcher is a single-consumer handoff queue for running the
// session without a UI event loop (headless mode, tests). One goroutine
// calls Run and becomes the owning thread.
type SerialDispatcher struct {
	queue     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewSerialDispatcher creates a dispatcher with a buffered queue.
func NewSerialDispatcher() *SerialDispatcher {
	return &SerialDispatcher{
		queue: make(chan func(), SerialQueueSize),
		done:  make(chan struct{}),
	}
}

// Dispatch enqueues fn for the draining goroutine. Dispatch after Close
// is a no-op.
func (d *SerialDispatcher) Dispatch(fn func()) {
	select {
	case <-d.done:
		return
	default:
	}
	select {
	case d.queue <- fn:
	case <-d.done:
	}
}

// Run drains the queue until Close is called. Each function runs to
// completion before the next is taken.
func (d *SerialDispatcher) Run() {
	for {
		select {
		case fn := <-d.queue:
			fn()
		case <-d.done:
			return
		}
	}
}

// Close stops the dispatcher. Idempotent.
func (d *SerialDispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
	})
}
