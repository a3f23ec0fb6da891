// Package spawnscope provides a scope-based release signal for Go.
// A Scope owns a one-time "released" transition; any number of Handles
// observe it and wake when the owner releases, so cooperating goroutines
// can stop work together.
package spawnscope
