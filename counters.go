package histz

import "math"

// counters tracks totals for recorded and rejected samples. entriesTotal
// counts every Record call's count, accepted or not; the missed counters
// split out the rejected mass so it stays observable.
type counters struct {
	entriesTotal  uint64
	missedUnknown uint64
	missedSmall   uint64
	missedLarge   uint64
}

func (c *counters) clear() {
	*c = counters{}
}

// satAdd adds b to a, clamping at the maximum uint64 value instead of
// wrapping. Every counter in the histogram goes through this.
func satAdd(a, b uint64) uint64 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint64
}
