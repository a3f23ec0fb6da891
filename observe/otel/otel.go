package otel

import "time"

// Nop is a no-op implementation of the spawnscope.Observer interface.
// It serves as a placeholder for an OpenTelemetry-backed observer without adding dependencies.
type Nop struct{}

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) ScopeCreated()              {}
func (*Nop) ScopeReleased(int)          {}
func (*Nop) WaitStarted()               {}
func (*Nop) WaitResolved(time.Duration) {}
func (*Nop) WaitCanceled()              {}
func (*Nop) TaskSpawned()               {}
func (*Nop) TaskFinished(time.Duration) {}
