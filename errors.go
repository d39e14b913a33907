package histz

import "errors"

// Construction errors.
var (
	// ErrMemoryLimit indicates the configured memory budget is smaller than
	// the bucket array the configuration derives.
	ErrMemoryLimit = errors.New("histz: memory budget smaller than derived bucket array")
)

// Recording errors. The corresponding miss counter is always updated before
// the error is returned, so rejected samples remain observable.
var (
	// ErrValueTooSmall indicates a sample below 1.
	ErrValueTooSmall = errors.New("histz: sample value too small")

	// ErrValueTooLarge indicates a sample above the configured maximum.
	ErrValueTooLarge = errors.New("histz: sample value too large")

	// ErrUnknown indicates the bucket index computation failed. Unreachable
	// with a consistent geometry, but counted and reported rather than
	// treated as fatal.
	ErrUnknown = errors.New("histz: sample index unknown")
)

// Query errors.
var (
	// ErrNoData indicates no samples have been recorded.
	ErrNoData = errors.New("histz: no data")

	// ErrUnderflow indicates the requested percentile falls below the
	// smallest representable rank once rejected too-small samples are
	// accounted for.
	ErrUnderflow = errors.New("histz: percentile underflow")

	// ErrOverflow indicates the requested percentile falls above the largest
	// representable rank once rejected too-large samples are accounted for.
	ErrOverflow = errors.New("histz: percentile overflow")

	// ErrScanFailed indicates the percentile scan exhausted the bucket array
	// without reaching the target rank, or the percentile argument was
	// outside [0, 100].
	ErrScanFailed = errors.New("histz: percentile scan failed")
)
