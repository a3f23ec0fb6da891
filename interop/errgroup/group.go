// Package errgroup binds golang.org/x/sync/errgroup to a spawnscope handle,
// so a group of tasks is canceled both by its own failures and by the scope's
// release.
package errgroup

import (
	"context"

	xerrgroup "golang.org/x/sync/errgroup"

	"github.com/NetPo4ki/go-spawnscope/spawnscope"
)

// Group wraps an errgroup.Group whose context is canceled when the scope
// behind the bound handle is released.
type Group struct {
	g    *xerrgroup.Group
	ctx  context.Context
	stop context.CancelFunc
}

// WithHandle creates a Group bound to h. The returned context is canceled
// when the scope is released, when any function passed to Go returns a
// non-nil error, or when parent is done.
func WithHandle(parent context.Context, h *spawnscope.Handle) (*Group, context.Context) {
	sctx, stop := h.Context(parent)
	g, ctx := xerrgroup.WithContext(sctx)
	return &Group{g: g, ctx: ctx, stop: stop}, ctx
}

// Go starts a function. It should return a non-nil error to signal failure.
func (g *Group) Go(f func() error) {
	if f == nil {
		return
	}
	g.g.Go(f)
}

// Wait blocks until all functions have returned and releases the scope
// watcher. It returns the first non-nil error, if any.
func (g *Group) Wait() error {
	err := g.g.Wait()
	g.stop()
	return err
}
