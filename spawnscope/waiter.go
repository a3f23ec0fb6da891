package spawnscope

import "time"

// Waiter is a single wait operation obtained from Handle.Wait. It resolves
// at most once, when the scope is released; a Waiter created after release
// is resolved already.
type Waiter struct {
	sig   *signal
	ch    chan struct{}
	start time.Time
}

// Done returns a channel that is closed once the scope is released.
func (w *Waiter) Done() <-chan struct{} { return w.ch }

// Cancel deregisters the waiter if it is still pending. A canceled waiter's
// Done channel never closes. Cancel is safe to call more than once and after
// resolution, where it is a no-op.
func (w *Waiter) Cancel() {
	w.sig.mu.Lock()
	_, pending := w.sig.waiters[w]
	if pending {
		delete(w.sig.waiters, w)
	}
	w.sig.mu.Unlock()
	if pending && w.sig.obs != nil {
		w.sig.obs.WaitCanceled()
	}
}
