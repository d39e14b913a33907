package histz

import (
	"math"
	"math/bits"
)

// valueIndex maps a sample value to its bucket index. Defined for value >= 1;
// the caller rejects out-of-range samples before getting here. The second
// return is false only for value < 1.
func (g geometry) valueIndex(value uint64) (int, bool) {
	if value < 1 {
		return 0, false
	}

	if value <= g.linearMax {
		return int(value - 1), true
	}

	// Logarithmic region: locate the octave, then the sub-bucket within it.
	outer := uint32(bits.Len64(value) - 1)
	remain := float64(value) - float64(uint64(1)<<outer)
	inner := uint32(math.Floor(float64(g.bucketsInner) * remain / float64(uint64(1)<<outer)))

	shifted := outer - g.linearPower
	index := uint32(g.linearMax) + g.bucketsInner*shifted + inner

	return int(index), true
}

// indexValue returns the representative sample value for a bucket index.
// Exact in the linear region; in the logarithmic region it is a lossy,
// deterministic stand-in within one sub-bucket width of any sample that
// mapped there.
func (g geometry) indexValue(index int) uint64 {
	if uint64(index) < g.linearMax {
		return uint64(index) + 1
	}

	logIndex := uint32(index) - uint32(g.linearMax)
	outer := logIndex / g.bucketsInner
	inner := logIndex - outer*g.bucketsInner

	value := float64(uint64(1) << (outer + g.linearPower))
	value += float64(inner) * value / float64(g.bucketsInner)

	return uint64(math.Ceil(value))
}
