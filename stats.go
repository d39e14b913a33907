package histz

import "math"

// Percentile returns the representative value at the given percentile,
// p in [0, 100].
//
// The scan walks the bucket array from whichever end is closer to the
// requested rank: downward from the top for p >= 50 seeded with the
// too-large miss count, upward from the bottom for p < 50 seeded with the
// too-small miss count. When the rejected mass alone covers the rank the
// percentile is unanswerable and the scan fails with ErrUnderflow or
// ErrOverflow before touching a bucket.
func (h *Histogram) Percentile(percentile float64) (uint64, error) {
	if h.Entries() < 1 {
		return 0, ErrNoData
	}

	if percentile > 100.0 || percentile < 0.0 {
		return 0, ErrScanFailed
	}

	total := h.Entries()

	need := uint64(math.Ceil(float64(total) * percentile / 100.0))
	if need > total {
		need = total
	}
	need = total - need

	index := int(h.geom.bucketsTotal) - 1
	step := -1
	have := h.ctrs.missedLarge

	if percentile < 50.0 {
		index = 0
		step = 1
		need = total - need
		have = h.ctrs.missedSmall
	}

	if need == 0 {
		need = 1
	}

	if have >= need {
		if index == 0 {
			return 0, ErrUnderflow
		}
		return 0, ErrOverflow
	}

	for index >= 0 && index < int(h.geom.bucketsTotal) {
		have += h.counts[index]
		if have >= need {
			return h.geom.indexValue(index), nil
		}
		index += step
	}

	return 0, ErrScanFailed
}

// Minimum returns the representative value of the lowest occupied bucket.
func (h *Histogram) Minimum() (uint64, error) {
	return h.Percentile(0.0)
}

// Maximum returns the representative value of the highest occupied bucket.
func (h *Histogram) Maximum() (uint64, error) {
	return h.Percentile(100.0)
}

// Mean returns the arithmetic mean over all bucket representative values,
// rounded up to an integer. Rejected samples contribute to the divisor but
// not the sum, mirroring their absence from the buckets.
func (h *Histogram) Mean() (uint64, error) {
	if h.Entries() < 1 {
		return 0, ErrNoData
	}

	total := h.Entries()

	mean := 0.0
	for index := 0; index < int(h.geom.bucketsTotal); index++ {
		mean += float64(h.geom.indexValue(index)) * float64(h.counts[index]) / float64(total)
	}

	return uint64(math.Ceil(mean)), nil
}

// Stdvar returns the variance over all bucket representative values, rounded
// up to an integer. Computed with the expanded sum-of-squares identity
// around the (already rounded) Mean.
func (h *Histogram) Stdvar() (uint64, error) {
	if h.Entries() < 1 {
		return 0, ErrNoData
	}

	total := float64(h.Entries())

	mean, err := h.Mean()
	if err != nil {
		return 0, err
	}
	m := float64(mean)

	stdvar := 0.0
	for index := 0; index < int(h.geom.bucketsTotal); index++ {
		v := float64(h.geom.indexValue(index))
		c := float64(h.counts[index])
		stdvar += (c * v * v) - (2 * c * m * v) + (c * m * m)
	}
	stdvar /= total

	return uint64(math.Ceil(stdvar)), nil
}

// Stddev returns the standard deviation, rounded up to an integer.
func (h *Histogram) Stddev() (uint64, error) {
	stdvar, err := h.Stdvar()
	if err != nil {
		return 0, err
	}
	return uint64(math.Ceil(math.Sqrt(float64(stdvar)))), nil
}
