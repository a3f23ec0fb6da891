package spawnscope

import (
	"context"
	"time"
)

// Handle is a non-owning observer of a scope's release signal. Handles are
// cheap to clone and safe for concurrent use; dropping one has no effect on
// the signal.
type Handle struct {
	sig *signal
}

// Clone returns a new Handle observing the same signal.
func (h *Handle) Clone() *Handle { return &Handle{sig: h.sig} }

// Released reports whether the scope has been released, without registering
// a waiter.
func (h *Handle) Released() bool { return h.sig.isReleased() }

// Wait returns a fresh Waiter whose Done channel closes when the scope is
// released. If the scope is already released the Waiter is resolved on
// return. Wait may be called any number of times; each call is independent.
func (h *Handle) Wait() *Waiter {
	sig := h.sig
	w := &Waiter{sig: sig, ch: make(chan struct{})}
	// WaitStarted fires before the waiter is published: the release sweep can
	// only resolve a registered waiter, so observers see started before
	// resolved for every waiter.
	if sig.obs != nil {
		sig.obs.WaitStarted()
	}
	sig.mu.Lock()
	if sig.released {
		sig.mu.Unlock()
		close(w.ch)
		if sig.obs != nil {
			sig.obs.WaitResolved(0)
		}
		return w
	}
	w.start = time.Now()
	sig.waiters[w] = struct{}{}
	sig.mu.Unlock()
	return w
}

// WaitContext blocks until the scope is released or ctx is done. It returns
// nil on release and ctx.Err() if the caller's context wins; in the latter
// case the underlying waiter is deregistered.
func (h *Handle) WaitContext(ctx context.Context) error {
	w := h.Wait()
	select {
	case <-w.Done():
		return nil
	case <-ctx.Done():
		w.Cancel()
		return ctx.Err()
	}
}

// Context derives a context that is canceled when the scope is released or
// when the returned cancel func runs, whichever comes first. Callers must
// call the cancel func to free the watcher.
func (h *Handle) Context(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	w := h.Wait()
	select {
	case <-w.Done():
		// Already released: the context must arrive canceled, not become
		// canceled once a watcher gets scheduled.
		cancel()
		return ctx, cancel
	default:
	}
	go func() {
		select {
		case <-w.Done():
			cancel()
		case <-ctx.Done():
			w.Cancel()
		}
	}()
	return ctx, cancel
}
