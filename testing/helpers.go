// Package testing provides helpers for tests that use histz metrics.
package testing

import (
	"testing"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/histz"
)

// NewTestRegistry creates a registry with automatic cleanup.
// Uses t.Cleanup to ensure Reset() is called after test completion,
// preventing test contamination from lingering metric state.
func NewTestRegistry(t *testing.T) *histz.Registry {
	t.Helper()
	r := histz.NewRegistry()
	t.Cleanup(func() {
		r.Reset()
	})
	return r
}

// NewTestRegistryWithClock creates a registry with a specific clock and
// automatic cleanup. Used for deterministic timing tests with FakeClock.
func NewTestRegistryWithClock(t *testing.T, clock clockz.Clock) *histz.Registry {
	t.Helper()
	r := histz.NewRegistry().WithClock(clock)
	t.Cleanup(func() {
		r.Reset()
	})
	return r
}

// NewTestHistogram creates a histogram from cfg, failing the test on a
// construction error and clearing the histogram on cleanup.
func NewTestHistogram(t *testing.T, cfg histz.Config) *histz.Histogram {
	t.Helper()
	h, err := histz.Configured(cfg)
	if err != nil {
		t.Fatalf("Configured(%+v) failed: %v", cfg, err)
	}
	t.Cleanup(h.Clear)
	return h
}

// RecordRange increments every value in [lo, hi] once, failing the test on
// any rejection. Handy for seeding known distributions.
func RecordRange(t *testing.T, h *histz.Histogram, lo, hi uint64) {
	t.Helper()
	for v := lo; v <= hi; v++ {
		if err := h.Increment(v); err != nil {
			t.Fatalf("Increment(%d) failed: %v", v, err)
		}
	}
}
