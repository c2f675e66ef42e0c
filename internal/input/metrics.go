package input

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

const maxLatencySamples = 1000

// Metrics tracks dispatch counts and latency.
type Metrics struct {
	keyEventsTotal atomic.Uint64
	outcomes       [len(outcomeNames)]atomic.Uint64

	// Latency ring buffer
	mu          sync.RWMutex
	latencies   []time.Duration
	latencyIdx  int
	peakLatency atomic.Int64

	startTime time.Time

	enabled atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		latencies: make([]time.Duration, maxLatencySamples),
		startTime: time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// RecordKeyEvent records one dispatch with its processing time.
func (m *Metrics) RecordKeyEvent(latency time.Duration) {
	if !m.enabled.Load() {
		return
	}

	m.keyEventsTotal.Add(1)

	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if latencyNs <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, latencyNs) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % maxLatencySamples
	m.mu.Unlock()
}

// RecordOutcome counts one outcome of kind k.
func (m *Metrics) RecordOutcome(k OutcomeKind) {
	if !m.enabled.Load() || int(k) >= len(m.outcomes) {
		return
	}
	m.outcomes[k].Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	KeyEventsTotal uint64
	Outcomes       map[OutcomeKind]uint64

	AvgLatency  time.Duration
	MaxLatency  time.Duration
	P99Latency  time.Duration
	PeakLatency time.Duration

	EventsPerSecond float64
	Uptime          time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	latencies := slices.Clone(m.latencies)
	start := m.startTime
	m.mu.RUnlock()

	keyCount := m.keyEventsTotal.Load()
	uptime := time.Since(start)

	snap := MetricsSnapshot{
		KeyEventsTotal: keyCount,
		Outcomes:       make(map[OutcomeKind]uint64, len(m.outcomes)),
		PeakLatency:    time.Duration(m.peakLatency.Load()),
		Uptime:         uptime,
	}
	for k := range m.outcomes {
		snap.Outcomes[OutcomeKind(k)] = m.outcomes[k].Load()
	}
	if uptime > 0 {
		snap.EventsPerSecond = float64(keyCount) / uptime.Seconds()
	}
	snap.AvgLatency, snap.MaxLatency, snap.P99Latency = calculateLatencyStats(latencies)

	return snap
}

// calculateLatencyStats computes average, max, and p99 from a slice of latencies.
func calculateLatencyStats(latencies []time.Duration) (avg, maxLat, p99 time.Duration) {
	valid := make([]time.Duration, 0, len(latencies))
	for _, l := range latencies {
		if l > 0 {
			valid = append(valid, l)
		}
	}
	if len(valid) == 0 {
		return 0, 0, 0
	}

	var sum time.Duration
	for _, l := range valid {
		sum += l
		if l > maxLat {
			maxLat = l
		}
	}
	avg = sum / time.Duration(len(valid))

	slices.Sort(valid)
	idx := int(float64(len(valid)) * 0.99)
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	p99 = valid[idx]

	return avg, maxLat, p99
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.keyEventsTotal.Store(0)
	for k := range m.outcomes {
		m.outcomes[k].Store(0)
	}
	m.peakLatency.Store(0)

	m.mu.Lock()
	m.latencies = make([]time.Duration, maxLatencySamples)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}

// KeyEventsTotal returns the number of keys dispatched.
func (m *Metrics) KeyEventsTotal() uint64 {
	return m.keyEventsTotal.Load()
}

// OutcomeTotal returns how many dispatches ended in kind k.
func (m *Metrics) OutcomeTotal(k OutcomeKind) uint64 {
	if int(k) >= len(m.outcomes) {
		return 0
	}
	return m.outcomes[k].Load()
}

// Timer measures one dispatch.
type Timer struct {
	start   time.Time
	metrics *Metrics
}

// StartKeyEventTimer starts a timer for measuring key event processing.
func (m *Metrics) StartKeyEventTimer() *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: m,
	}
}

// Stop stops the timer and records the key event latency.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.metrics.RecordKeyEvent(elapsed)
	return elapsed
}
