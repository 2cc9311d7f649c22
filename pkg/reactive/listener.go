package reactive

// Listener is anything that can be notified when a dependency changes.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies has
	// changed. Effects re-run synchronously from here.
	MarkDirty()

	// ID returns a unique identifier for this listener, used for
	// deduplication during batch processing.
	ID() uint64
}

// Cleanup is returned by an effect function to release resources. It runs
// before the effect re-runs and when the effect is disposed.
type Cleanup func()
