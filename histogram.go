package histz

// Histogram records non-negative integer samples into a fixed array of
// saturating counters and answers percentile, mean, and deviation queries
// with bounded relative error. Bucket storage is allocated once at
// construction and never resized.
//
// A Histogram is not safe for concurrent use; see the package documentation.
type Histogram struct {
	cfg    Config
	geom   geometry
	counts []uint64
	ctrs   counters
}

// New creates a histogram with the default configuration.
func New() (*Histogram, error) {
	return Configured(DefaultConfig())
}

// Configured creates a histogram from cfg. Zero Config fields take defaults.
// Fails with ErrMemoryLimit when a non-zero MaxMemory is smaller than the
// bucket array the configuration derives; there is no other failure mode.
func Configured(cfg Config) (*Histogram, error) {
	cfg = cfg.withDefaults()

	geom, err := deriveGeometry(cfg)
	if err != nil {
		return nil, err
	}

	return &Histogram{
		cfg:    cfg,
		geom:   geom,
		counts: make([]uint64, geom.bucketsTotal),
	}, nil
}

// Clear resets every counter to zero. Geometry and bucket storage are
// untouched; nothing is reallocated.
func (h *Histogram) Clear() {
	h.ctrs.clear()
	clear(h.counts)
}

// Increment records a single occurrence of value.
func (h *Histogram) Increment(value uint64) error {
	return h.Record(value, 1)
}

// Record adds count occurrences of value. The entries total grows by count
// whether or not the sample is accepted; rejected samples are tallied in the
// matching miss counter and reported as a typed error.
func (h *Histogram) Record(value, count uint64) error {
	h.ctrs.entriesTotal = satAdd(h.ctrs.entriesTotal, count)

	if value < 1 {
		h.ctrs.missedSmall = satAdd(h.ctrs.missedSmall, count)
		return ErrValueTooSmall
	}
	if value > h.cfg.MaxValue {
		h.ctrs.missedLarge = satAdd(h.ctrs.missedLarge, count)
		return ErrValueTooLarge
	}

	index, ok := h.geom.valueIndex(value)
	if !ok {
		h.ctrs.missedUnknown = satAdd(h.ctrs.missedUnknown, count)
		return ErrUnknown
	}

	h.counts[index] = satAdd(h.counts[index], count)
	return nil
}

// Get returns the current count in value's bucket. The second return is
// false when value lies outside [1, MaxValue].
func (h *Histogram) Get(value uint64) (uint64, bool) {
	if value < 1 || value > h.cfg.MaxValue {
		return 0, false
	}

	index, ok := h.geom.valueIndex(value)
	if !ok {
		return 0, false
	}
	return h.counts[index], true
}

// Merge folds other's buckets into h by re-recording each bucket's
// representative value with its count. This is not sample-accurate: when the
// two histograms differ in precision or range the representative values are
// re-quantized by h's own geometry, and values outside h's range land in the
// miss counters. Afterward h.Entries() equals the sum of both totals.
func (h *Histogram) Merge(other *Histogram) {
	it := other.Iter()
	for {
		bucket, ok := it.Next()
		if !ok {
			return
		}
		_ = h.Record(bucket.Value, bucket.Count)
	}
}

// Entries returns the total count of samples presented to Record, including
// rejected ones.
func (h *Histogram) Entries() uint64 {
	return h.ctrs.entriesTotal
}

// BucketsTotal returns the number of buckets. Fixed at construction.
func (h *Histogram) BucketsTotal() uint64 {
	return uint64(h.geom.bucketsTotal)
}

// MemoryUsed returns the derived size of the bucket array in bytes, the
// quantity checked against Config.MaxMemory at construction.
func (h *Histogram) MemoryUsed() uint64 {
	return uint64(h.geom.memoryUsed)
}

// Config returns the configuration the histogram was built from, with
// defaults applied.
func (h *Histogram) Config() Config {
	return h.cfg
}
