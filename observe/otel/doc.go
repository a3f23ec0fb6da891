// Package otel provides an OpenTelemetry observer plugin for spawnscope.
// It emits span events (create, wait, release) with low overhead.
package otel
