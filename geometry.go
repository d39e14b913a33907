package histz

import "math/bits"

// bucketBytes is the size of one Bucket record, used for the memory budget
// check.
const bucketBytes = 24

// geometry is the bucket layout derived from a Config. Immutable for the
// histogram's lifetime; bucketsTotal always equals the count array length.
//
// Values in [1, linearMax] map one-to-one onto the first linearMax buckets.
// Each power-of-two octave above linearMax is split into bucketsInner
// equal-width sub-buckets, one octave per outer bucket, which holds the
// relative resolution at 1/bucketsInner regardless of magnitude.
type geometry struct {
	bucketsInner uint32
	bucketsOuter uint32
	bucketsTotal uint32
	memoryUsed   uint32
	linearMax    uint64
	linearPower  uint32
	maxValue     uint64
}

// deriveGeometry computes the bucket layout for cfg. The only failure mode
// is a non-zero memory budget smaller than the derived bucket array.
func deriveGeometry(cfg Config) (geometry, error) {
	inner := upow(cfg.Radix, cfg.Precision)
	linearPower := uint32(bits.Len32(inner))
	linearMax := uint64(1)<<linearPower - 1
	maxValuePower := uint32(bits.Len64(cfg.MaxValue))

	var outer uint32
	if maxValuePower > linearPower {
		outer = maxValuePower - linearPower
	}

	total := inner*outer + uint32(linearMax)
	used := total * bucketBytes

	if cfg.MaxMemory > 0 && cfg.MaxMemory < used {
		return geometry{}, ErrMemoryLimit
	}

	return geometry{
		bucketsInner: inner,
		bucketsOuter: outer,
		bucketsTotal: total,
		memoryUsed:   used,
		linearMax:    linearMax,
		linearPower:  linearPower,
		maxValue:     cfg.MaxValue,
	}, nil
}

func upow(base, exp uint32) uint32 {
	result := uint32(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
