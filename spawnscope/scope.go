package spawnscope

import (
	"sync"
	"time"
)

type Option func(*Options)

type Options struct {
	Observer       Observer
	MaxConcurrency int
}

func defaultOptions() Options { return Options{} }

func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

func WithMaxConcurrency(n int) Option { return func(o *Options) { o.MaxConcurrency = n } }

// signal is the state shared by a Scope and all of its Handles. The mutex
// makes "check released, else register" atomic with respect to the release
// sweep; released never reverts to false once set.
type signal struct {
	mu       sync.Mutex
	released bool
	waiters  map[*Waiter]struct{}

	obs   Observer
	lim   Limiter
	tasks sync.WaitGroup
}

func (s *signal) isReleased() bool {
	s.mu.Lock()
	r := s.released
	s.mu.Unlock()
	return r
}

func (s *signal) release() {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	s.released = true
	woken := s.waiters
	s.waiters = nil
	s.mu.Unlock()

	for w := range woken {
		close(w.ch)
		if s.obs != nil {
			s.obs.WaitResolved(time.Since(w.start))
		}
	}
	if s.obs != nil {
		s.obs.ScopeReleased(len(woken))
	}
}

// Scope is the exclusive owner of a release signal. Exactly one Scope exists
// per signal; do not copy it. Go has no destructors, so the owner must call
// Release (or Close) when it is done — a Scope that is never released leaves
// its waiters pending forever, which is a caller bug, not an error the
// library can report.
type Scope struct {
	sig *signal
}

// New constructs a fresh, unreleased signal and returns its unique owner.
func New(optFns ...Option) *Scope {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	s := &Scope{sig: &signal{
		waiters: make(map[*Waiter]struct{}),
		obs:     opts.Observer,
	}}
	if opts.MaxConcurrency > 0 {
		s.sig.lim = newSemaphoreLimiter(s.sig, opts.MaxConcurrency)
	}
	if s.sig.obs != nil {
		s.sig.obs.ScopeCreated()
	}
	return s
}

// Handle returns a new observer handle bound to this scope's signal. It may
// be called any number of times, before or after release.
func (s *Scope) Handle() *Handle { return &Handle{sig: s.sig} }

// Release performs the one-time transition to released and wakes every
// pending waiter. Idempotent: later calls are no-ops.
func (s *Scope) Release() { s.sig.release() }

// Close releases the scope. It exists so call sites can `defer scope.Close()`;
// the error is always nil.
func (s *Scope) Close() error {
	s.sig.release()
	return nil
}

// Released reports whether the scope has been released.
func (s *Scope) Released() bool { return s.sig.isReleased() }

// Join blocks until every task started with Spawn (on this scope or any of
// its handles) has returned. Join does not release the scope.
func (s *Scope) Join() { s.sig.tasks.Wait() }
