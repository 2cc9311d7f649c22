package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect is a reactive side effect. It runs immediately on creation and
// re-runs synchronously whenever any signal it read during its last run
// changes. Sources are re-tracked on every run, so conditional reads drop
// stale subscriptions.
type Effect struct {
	id uint64

	fn      func() Cleanup
	cleanup Cleanup

	sources   []*signalBase
	sourcesMu sync.Mutex

	running  atomic.Bool
	disposed atomic.Bool
}

// CreateEffect creates an effect and runs it once.
func CreateEffect(fn func() Cleanup) *Effect {
	e := &Effect{
		id: nextID(),
		fn: fn,
	}
	e.run()
	return e
}

// MarkDirty re-runs the effect. Implements Listener. A notification
// arriving while the effect itself is running (the effect wrote one of its
// own sources) is dropped; the write is already visible to the current run.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}
	if e.running.Load() {
		return
	}
	e.run()
}

// ID implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}
	if !e.running.CompareAndSwap(false, true) {
		return
	}
	defer e.running.Store(false)

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	old := setCurrentListener(e)
	e.cleanup = e.fn()
	setCurrentListener(old)
}

// addSource records a dependency; called by signals read during a run.
func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// Dispose unsubscribes from all sources and runs any pending cleanup.
// The effect never runs again afterwards.
func (e *Effect) Dispose() {
	if e.disposed.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}
