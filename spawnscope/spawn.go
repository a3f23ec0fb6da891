package spawnscope

import (
	"context"
	"time"
)

// Spawn runs fn on its own goroutine with a context that is canceled when
// the scope is released or fn returns. See Handle.Spawn.
func (s *Scope) Spawn(fn func(ctx context.Context)) { s.Handle().Spawn(fn) }

// Spawn runs fn on its own goroutine. The context passed to fn is canceled
// when the scope is released, so fn can stop cooperatively; if the scope was
// already released the context arrives canceled. When the scope was built
// with WithMaxConcurrency, fn waits its turn and is abandoned without
// running if release happens first. Scope.Join blocks until all spawned
// tasks return.
func (h *Handle) Spawn(fn func(ctx context.Context)) {
	if fn == nil {
		return
	}
	sig := h.sig
	sig.tasks.Add(1)
	if sig.obs != nil {
		sig.obs.TaskSpawned()
	}
	go func() {
		begin := time.Now()
		defer func() {
			if sig.obs != nil {
				sig.obs.TaskFinished(time.Since(begin))
			}
			sig.tasks.Done()
		}()

		ctx, cancel := h.Context(context.Background())
		defer cancel()
		if sig.lim != nil {
			if err := sig.lim.Acquire(ctx); err != nil {
				return
			}
			defer sig.lim.Release()
		}
		fn(ctx)
	}()
}
