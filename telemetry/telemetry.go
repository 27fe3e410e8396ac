// Package telemetry provides hierarchical timing collection for operations.
// Collectors travel through context so instrumentation stays out of function
// signatures; without a collector in the context every call is a no-op.
package telemetry

import (
	"context"
	"io"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers operation timings and reports them.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w.
	Report(w io.Writer)
}

// Timer tracks a single operation. Timers nest via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a nested timer under this timer.
	Child(name string) Timer
}

// WithCollector returns a context carrying the collector.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from ctx, or a no-op collector when
// none is present.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
