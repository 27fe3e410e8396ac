package telemetry

import "io"

// noOpCollector provides zero overhead when telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer { return noOpTimer{} }

func (noOpCollector) Report(w io.Writer) {}

type noOpTimer struct{}

func (noOpTimer) End() {}

func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
