package spawnscope

import "time"

// Observer receives lifecycle events from a scope and everything attached to
// it. Implementations must be safe for concurrent use; hooks are invoked
// outside the signal lock and must not block.
type Observer interface {
	ScopeCreated()
	// ScopeReleased fires once per scope, after the release sweep, with the
	// number of waiters it woke.
	ScopeReleased(woken int)
	WaitStarted()
	// WaitResolved reports how long the waiter was pending; zero for waits
	// that started after release.
	WaitResolved(blocked time.Duration)
	WaitCanceled()
	TaskSpawned()
	TaskFinished(dur time.Duration)
}
