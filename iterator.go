package histz

// Bucket is a read view of one counter: its index, its representative value,
// and its current count. Produced by iteration; never stored.
type Bucket struct {
	ID    uint64
	Value uint64
	Count uint64
}

// Iterator walks a histogram's buckets in index order. Each iterator owns
// its position, so any number of them can traverse the same histogram at
// once; the histogram itself is only read. Mutating the histogram mid-walk
// is not detected - the remaining buckets simply reflect the new counts.
type Iterator struct {
	h   *Histogram
	pos int
}

// Iter returns an iterator positioned at the first bucket.
func (h *Histogram) Iter() *Iterator {
	return &Iterator{h: h}
}

// Next returns the bucket at the current position and advances. After the
// last bucket it returns false and rewinds, so the same iterator can be
// reused for another full pass.
func (it *Iterator) Next() (Bucket, bool) {
	current := it.pos

	if current == int(it.h.geom.bucketsTotal) {
		it.pos = 0
		return Bucket{}, false
	}
	it.pos++

	return Bucket{
		ID:    uint64(current),
		Value: it.h.geom.indexValue(current),
		Count: it.h.counts[current],
	}, true
}

// Reset rewinds the iterator to the first bucket.
func (it *Iterator) Reset() {
	it.pos = 0
}
