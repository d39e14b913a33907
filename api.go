// Package histz provides a fixed-memory, log-linear histogram for
// non-negative integer samples such as nanosecond latencies.
//
// # Core Philosophy
//
// Histz keeps a configurable number of significant figures exact across the
// full value range while using a single preallocated counter array. Small
// values map one-to-one onto linear buckets; larger values fall into
// power-of-two octaves, each subdivided into equal-width sub-buckets, so the
// relative error per recorded value is bounded by the configured precision
// regardless of magnitude. This is the bucketing approach popularized by the
// HdrHistogram project.
//
// # Fixed Memory
//
// All bucket storage is allocated once at construction and never grows:
//
//	h, err := histz.Configured(histz.Config{MaxValue: 10_000, Precision: 3})
//	// h.BucketsTotal() == 5023, forever
//
// A Config may carry a memory budget; construction fails when the derived
// bucket array would exceed it. Recording, querying, and clearing never
// allocate bucket storage.
//
// # Recording and Queries
//
//	h, _ := histz.New()
//	for _, v := range samples {
//	    h.Increment(v)
//	}
//	p99, err := h.Percentile(99.0)
//	mean, err := h.Mean()
//
// Samples below 1 or above the configured maximum are rejected with a typed
// error and tallied in miss counters, so aggregate loss is always observable
// by comparing Entries() against the bucket sums. All counters saturate at
// the maximum uint64 value instead of wrapping.
//
// # Key-Enforced Registry
//
// Histograms and timers can be organized in a registry keyed by an explicit
// Key type. Raw strings are rejected by the API, forcing metric names to be
// declared as constants:
//
//	const RequestLatency = histz.Key("http_request_latency_ns")
//
//	reg := histz.NewRegistry()
//	timer := reg.Timer(RequestLatency)
//	stop := timer.Start()
//	// ... work ...
//	stop.Stop()
//
// # Concurrency
//
// A Histogram performs no internal synchronization. Every operation assumes
// exclusive access for its duration; callers that share a histogram across
// goroutines must serialize externally. Registry map access is guarded so
// that metric lookup remains safe, but the histograms it hands out carry the
// same single-writer contract.
package histz

import (
	"sync"

	"github.com/zoobzio/clockz"
)

// Key is the mandatory key type for all registry operations.
// No raw strings allowed - compile-time enforcement.
type Key string

// Registry is a named collection of histograms and timers with complete
// instance isolation. Only accepts Key type - no raw strings.
type Registry struct {
	histograms map[Key]*Histogram
	timers     map[Key]*Timer
	clock      clockz.Clock
	mu         sync.RWMutex
}

// NewRegistry creates a Registry that accepts ONLY Key types.
// Timers created through it use the real clock unless WithClock is called.
func NewRegistry() *Registry {
	return &Registry{
		histograms: make(map[Key]*Histogram),
		timers:     make(map[Key]*Timer),
		clock:      clockz.RealClock,
	}
}

// WithClock sets the clock used by timers created through this registry.
// Intended for deterministic tests with a fake clock; returns the registry
// for chaining.
func (r *Registry) WithClock(clock clockz.Clock) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock = clock
	return r
}

// Histogram returns the histogram for key, creating it with the default
// configuration if it doesn't exist. The default configuration carries no
// memory budget, so creation cannot fail.
func (r *Registry) Histogram(key Key) *Histogram {
	h, _ := r.HistogramConfigured(key, DefaultConfig())
	return h
}

// HistogramConfigured returns the histogram for key, creating it with cfg if
// it doesn't exist. An existing histogram is returned as-is; its original
// configuration wins. Creation fails only when cfg's memory budget is too
// small for the derived bucket array.
func (r *Registry) HistogramConfigured(key Key, cfg Config) (*Histogram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, exists := r.histograms[key]; exists {
		return h, nil
	}

	h, err := Configured(cfg)
	if err != nil {
		return nil, err
	}
	r.histograms[key] = h
	return h, nil
}

// Timer returns the timer for key, creating it with the default latency
// configuration if it doesn't exist.
func (r *Registry) Timer(key Key) *Timer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, exists := r.timers[key]; exists {
		return t
	}

	t := newTimer(r.clock)
	r.timers[key] = t
	return t
}

// TimerConfigured returns the timer for key, creating it with a custom
// histogram configuration if it doesn't exist.
func (r *Registry) TimerConfigured(key Key, cfg Config) (*Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, exists := r.timers[key]; exists {
		return t, nil
	}

	t, err := newTimerConfigured(cfg, r.clock)
	if err != nil {
		return nil, err
	}
	r.timers[key] = t
	return t, nil
}

// Reset clears all metrics for a clean test slate.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.histograms = make(map[Key]*Histogram)
	r.timers = make(map[Key]*Timer)
}

// GetHistograms returns a copy of the histogram map for export tools.
func (r *Registry) GetHistograms() map[Key]*Histogram {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[Key]*Histogram, len(r.histograms))
	for key, h := range r.histograms {
		result[key] = h
	}
	return result
}

// GetTimers returns a copy of the timer map for export tools.
func (r *Registry) GetTimers() map[Key]*Timer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[Key]*Timer, len(r.timers))
	for key, t := range r.timers {
		result[key] = t
	}
	return result
}
