// Package reactive provides the signal/effect scheduler the component
// controller builds on.
//
// A Signal[T] holds a value and notifies subscribers on write; an Effect
// runs immediately and re-runs synchronously whenever any signal it read
// during its last run changes:
//
//	count := reactive.NewSignal(0)
//	e := reactive.CreateEffect(func() reactive.Cleanup {
//	    fmt.Println("count is", count.Get())
//	    return nil
//	})
//	count.Set(5) // effect re-runs on this stack
//	e.Dispose()
//
// Notifications are synchronous and immediate; Batch defers them to the
// end of the outermost batch and deduplicates listeners. The tracking
// context is per-goroutine.
package reactive
