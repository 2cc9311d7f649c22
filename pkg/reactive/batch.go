package reactive

// Batch groups multiple signal writes into a single notification phase.
// Writes inside the batch are collected; when the outermost batch
// completes, affected listeners are deduplicated and notified once.
//
// Example:
//
//	Batch(func() {
//	    firstName.Set("John")
//	    lastName.Set("Doe")
//	})
//	// dependents re-run once
func Batch(fn func()) {
	incrementBatchDepth()
	defer func() {
		if decrementBatchDepth() {
			processPendingUpdates()
		}
	}()
	fn()
}

// processPendingUpdates deduplicates and notifies all pending listeners.
func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, listener := range updates {
		id := listener.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		listener.MarkDirty()
	}
}
