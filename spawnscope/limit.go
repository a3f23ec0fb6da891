package spawnscope

import (
	"context"
	"errors"
)

// ErrReleased is returned by Limiter.Acquire when the scope is released
// before a slot becomes available.
var ErrReleased = errors.New("spawnscope: scope released")

// Limiter bounds concurrently running spawned tasks within a scope.
type Limiter interface {
	Acquire(ctx context.Context) error
	Release()
}

// semLimiter is a channel semaphore bound to its scope's signal: acquisition
// fails once the scope is released, including while queued for a slot.
type semLimiter struct {
	h  *Handle
	ch chan struct{}
}

func newSemaphoreLimiter(sig *signal, n int) Limiter {
	if n <= 0 {
		return nil
	}
	return &semLimiter{h: &Handle{sig: sig}, ch: make(chan struct{}, n)}
}

func (l *semLimiter) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l.h.Released() {
		return ErrReleased
	}
	w := l.h.Wait()
	defer w.Cancel()
	select {
	case l.ch <- struct{}{}:
		return nil
	case <-w.Done():
		return ErrReleased
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *semLimiter) Release() {
	select {
	case <-l.ch:
	default:
	}
}
