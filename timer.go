package histz

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Timer records durations into a histogram at nanosecond resolution.
// LatencyConfig's 60-second ceiling covers anything a request timer should
// see; longer durations land in the too-large miss counter.
type Timer struct {
	hist  *Histogram
	clock clockz.Clock
}

// NewTimer creates a timer over LatencyConfig using the real clock.
func NewTimer() *Timer {
	return newTimer(clockz.RealClock)
}

// newTimer creates a timer with the default latency configuration.
// Uses the provided clock for all timing operations.
func newTimer(clock clockz.Clock) *Timer {
	// LatencyConfig has no memory cap, so construction cannot fail.
	h, _ := Configured(LatencyConfig)
	return &Timer{hist: h, clock: clock}
}

// newTimerConfigured creates a timer with a custom histogram configuration.
func newTimerConfigured(cfg Config, clock clockz.Clock) (*Timer, error) {
	h, err := Configured(cfg)
	if err != nil {
		return nil, err
	}
	return &Timer{hist: h, clock: clock}, nil
}

// Record records a duration in the timer. Sub-nanosecond and negative
// durations are rejected as too small; the unsigned conversion must not turn
// a negative duration into a huge in-range sample.
func (t *Timer) Record(duration time.Duration) error {
	if duration < 1 {
		return t.hist.Record(0, 1)
	}
	return t.hist.Record(uint64(duration.Nanoseconds()), 1)
}

// Start returns a stopwatch for timing one operation.
// Uses the injected clock for deterministic timing.
func (t *Timer) Start() *Stopwatch {
	return &Stopwatch{
		start: t.clock.Now(),
		timer: t,
	}
}

// Histogram exposes the underlying histogram for percentile and mean
// queries. The single-writer contract extends to it.
func (t *Timer) Histogram() *Histogram {
	return t.hist
}

// Count returns the number of recorded durations, including rejected ones.
func (t *Timer) Count() uint64 {
	return t.hist.Entries()
}

// Stopwatch times a single operation.
type Stopwatch struct {
	start time.Time
	timer *Timer
}

// Stop records the elapsed time since Start().
// Uses the injected clock for deterministic timing.
func (s *Stopwatch) Stop() {
	s.timer.Record(s.timer.clock.Now().Sub(s.start))
}
