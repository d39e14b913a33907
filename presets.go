package histz

// Standard configurations for different kinds of measurements.
var (
	// LatencyConfig tracks nanosecond latencies up to 60 seconds with 3
	// significant figures. Identical to DefaultConfig; Timer uses it.
	LatencyConfig = Config{
		Precision: 3,
		MaxValue:  60_000_000_000,
		Radix:     10,
	}

	// SizeConfig tracks byte sizes up to 4 GiB with 3 significant figures.
	SizeConfig = Config{
		Precision: 3,
		MaxValue:  4 << 30,
		Radix:     10,
	}

	// CompactConfig trades resolution for memory: 2 significant figures,
	// values up to 10 seconds in microseconds. Suitable when many histograms
	// are kept at once.
	CompactConfig = Config{
		Precision: 2,
		MaxValue:  10_000_000,
		Radix:     10,
	}
)
