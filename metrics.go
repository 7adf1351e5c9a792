package uthread

// metricsState holds the scheduler's built-in counters. It is always
// allocated (never nil), but only incremented when enabled is true, so the
// common case of metrics being off costs one branch per call site rather
// than a nil check plus a conditional allocation.
type metricsState struct {
	enabled   bool
	created   uint64
	destroyed uint64
	switches  uint64
	reaped    uint64
}

func newMetricsState(enabled bool) *metricsState {
	return &metricsState{enabled: enabled}
}

func (m *metricsState) incCreated() {
	if m.enabled {
		m.created++
	}
}

func (m *metricsState) incDestroyed() {
	if m.enabled {
		m.destroyed++
	}
}

func (m *metricsState) incSwitches() {
	if m.enabled {
		m.switches++
	}
}

func (m *metricsState) incReaped() {
	if m.enabled {
		m.reaped++
	}
}

// Metrics is a point-in-time snapshot of the scheduler's built-in counters.
// All fields are zero if WithMetrics(true) was never passed to Init.
type Metrics struct {
	ThreadsCreated   uint64
	ThreadsDestroyed uint64
	ContextSwitches  uint64
	ThreadsReaped    uint64
}

// GetMetrics returns a snapshot of the scheduler's counters. Safe to call
// whether or not metrics collection is enabled.
func GetMetrics() Metrics {
	ensureInit()
	return Metrics{
		ThreadsCreated:   rt.metrics.created,
		ThreadsDestroyed: rt.metrics.destroyed,
		ContextSwitches:  rt.metrics.switches,
		ThreadsReaped:    rt.metrics.reaped,
	}
}
