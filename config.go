package histz

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a histogram's value range and resolution. It is read once
// at construction; a Histogram never observes later changes to the value it
// was built from.
//
// Zero fields take the documented defaults, so a partial literal like
// Config{MaxValue: 10_000} is valid.
type Config struct {
	// Precision is the number of significant figures kept exact, in the
	// given radix. Default 3.
	Precision uint32 `yaml:"precision"`

	// MaxMemory caps the bucket array, in bytes. 0 means unbounded.
	MaxMemory uint32 `yaml:"max_memory"`

	// MaxValue is the largest sample the histogram can store.
	// Default 60_000_000_000 (60s in nanoseconds).
	MaxValue uint64 `yaml:"max_value"`

	// Radix is the base Precision counts digits in. Default 10.
	Radix uint32 `yaml:"radix"`
}

// Defaults matching the common latency-tracking case.
const (
	DefaultPrecision uint32 = 3
	DefaultMaxValue  uint64 = 60_000_000_000
	DefaultRadix     uint32 = 10
)

// DefaultConfig returns the default configuration: 3 significant figures,
// base 10, values up to 60 seconds in nanoseconds, no memory cap.
func DefaultConfig() Config {
	return Config{
		Precision: DefaultPrecision,
		MaxValue:  DefaultMaxValue,
		Radix:     DefaultRadix,
	}
}

// LoadConfig reads a Config from a YAML file. Omitted fields take defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// withDefaults fills zero fields. MaxMemory is left alone: zero legitimately
// means unbounded.
func (c Config) withDefaults() Config {
	if c.Precision == 0 {
		c.Precision = DefaultPrecision
	}
	if c.MaxValue == 0 {
		c.MaxValue = DefaultMaxValue
	}
	if c.Radix == 0 {
		c.Radix = DefaultRadix
	}
	return c
}
