package histz_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/histz"
	histztesting "github.com/zoobzio/histz/testing"
)

func TestHistogram_Increment(t *testing.T) {
	h, err := histz.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if h.Entries() != 0 {
		t.Errorf("Initial entries should be 0, got %d", h.Entries())
	}

	for op := uint64(1); op <= 10_000; op++ {
		if err := h.Increment(1); err != nil {
			t.Fatalf("Increment(1) failed: %v", err)
		}
		if h.Entries() != op {
			t.Fatalf("After %d increments, entries should be %d, got %d", op, op, h.Entries())
		}
	}
}

func TestHistogram_Get(t *testing.T) {
	h, err := histz.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	h.Increment(1)
	if count, ok := h.Get(1); !ok || count != 1 {
		t.Errorf("Get(1): expected (1, true), got (%d, %t)", count, ok)
	}

	h.Increment(1)
	if count, ok := h.Get(1); !ok || count != 2 {
		t.Errorf("Get(1): expected (2, true), got (%d, %t)", count, ok)
	}

	h.Increment(2)
	if count, ok := h.Get(2); !ok || count != 1 {
		t.Errorf("Get(2): expected (1, true), got (%d, %t)", count, ok)
	}

	// untouched bucket reads zero
	if count, ok := h.Get(3); !ok || count != 0 {
		t.Errorf("Get(3): expected (0, true), got (%d, %t)", count, ok)
	}
}

func TestHistogram_GetOutOfRange(t *testing.T) {
	h := histztesting.NewTestHistogram(t, histz.Config{MaxValue: 1_000, Precision: 3})

	if _, ok := h.Get(0); ok {
		t.Error("Get(0) should report absent")
	}
	if _, ok := h.Get(1_001); ok {
		t.Error("Get above MaxValue should report absent")
	}
	if _, ok := h.Get(1_000); !ok {
		t.Error("Get(MaxValue) should be present")
	}
}

func TestHistogram_Record(t *testing.T) {
	h, err := histz.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	h.Record(1, 1)
	h.Record(2, 2)
	h.Record(10, 10)

	cases := []struct {
		value, count uint64
	}{
		{1, 1},
		{2, 2},
		{10, 10},
	}
	for _, tc := range cases {
		if count, ok := h.Get(tc.value); !ok || count != tc.count {
			t.Errorf("Get(%d): expected (%d, true), got (%d, %t)", tc.value, tc.count, count, ok)
		}
	}

	if h.Entries() != 13 {
		t.Errorf("Entries should be 13, got %d", h.Entries())
	}
}

func TestHistogram_RecordRejections(t *testing.T) {
	h := histztesting.NewTestHistogram(t, histz.Config{MaxValue: 1_000, Precision: 3})

	if err := h.Increment(0); !errors.Is(err, histz.ErrValueTooSmall) {
		t.Errorf("Increment(0): expected ErrValueTooSmall, got %v", err)
	}
	if err := h.Increment(1_001); !errors.Is(err, histz.ErrValueTooLarge) {
		t.Errorf("Increment above MaxValue: expected ErrValueTooLarge, got %v", err)
	}

	// rejected samples still count toward the total
	if h.Entries() != 2 {
		t.Errorf("Entries should include rejected samples, got %d", h.Entries())
	}
}

func TestHistogram_Clear(t *testing.T) {
	h := histztesting.NewTestHistogram(t, histz.Config{MaxValue: 100, Precision: 1})
	buckets := h.BucketsTotal()

	histztesting.RecordRange(t, h, 1, 100)
	if h.Entries() != 100 {
		t.Fatalf("Entries should be 100, got %d", h.Entries())
	}

	h.Clear()

	if h.Entries() != 0 {
		t.Errorf("Entries after Clear should be 0, got %d", h.Entries())
	}
	if h.BucketsTotal() != buckets {
		t.Errorf("Clear changed bucket count: %d -> %d", buckets, h.BucketsTotal())
	}

	it := h.Iter()
	for {
		bucket, ok := it.Next()
		if !ok {
			break
		}
		if bucket.Count != 0 {
			t.Fatalf("bucket %d still has count %d after Clear", bucket.ID, bucket.Count)
		}
	}
}

func TestHistogram_Merge(t *testing.T) {
	a, err := histz.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := histz.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a.Increment(1)
	b.Increment(2)

	a.Merge(b)

	if a.Entries() != 2 {
		t.Errorf("Entries after merge should be 2, got %d", a.Entries())
	}
	if count, _ := a.Get(1); count != 1 {
		t.Errorf("Get(1) after merge: expected 1, got %d", count)
	}
	if count, _ := a.Get(2); count != 1 {
		t.Errorf("Get(2) after merge: expected 1, got %d", count)
	}

	// source histogram is untouched
	if b.Entries() != 1 {
		t.Errorf("Merge mutated the source: entries %d", b.Entries())
	}
}

func TestHistogram_MergePreservesTotals(t *testing.T) {
	cfg := histz.Config{MaxValue: 10_000, Precision: 3}
	a := histztesting.NewTestHistogram(t, cfg)
	b := histztesting.NewTestHistogram(t, cfg)

	histztesting.RecordRange(t, a, 1, 500)
	histztesting.RecordRange(t, b, 400, 2_000)

	wantTotal := a.Entries() + b.Entries()
	a.Merge(b)

	if a.Entries() != wantTotal {
		t.Errorf("Entries after merge: expected %d, got %d", wantTotal, a.Entries())
	}
}

func TestHistogram_MergeRequantizes(t *testing.T) {
	// The destination's narrower range rejects the source's large
	// representatives; the loss shows up as entries without bucket mass.
	narrow := histztesting.NewTestHistogram(t, histz.Config{MaxValue: 100, Precision: 1})
	wide := histztesting.NewTestHistogram(t, histz.Config{MaxValue: 10_000, Precision: 1})

	wide.Increment(50)
	wide.Increment(5_000)

	narrow.Merge(wide)

	if narrow.Entries() != 2 {
		t.Errorf("Entries should be 2, got %d", narrow.Entries())
	}
	if count, _ := narrow.Get(50); count != 1 {
		t.Errorf("in-range value should survive the merge, got count %d", count)
	}
	if _, err := narrow.Maximum(); !errors.Is(err, histz.ErrOverflow) {
		t.Errorf("Maximum should overflow from the rejected sample, got %v", err)
	}
}

func TestConfigured_MemoryLimit(t *testing.T) {
	_, err := histz.Configured(histz.Config{MaxValue: 10, Precision: 1, MaxMemory: 16})
	if !errors.Is(err, histz.ErrMemoryLimit) {
		t.Errorf("expected ErrMemoryLimit, got %v", err)
	}
}

func TestHistogram_BucketsTotal(t *testing.T) {
	cases := []struct {
		cfg  histz.Config
		want uint64
	}{
		{histz.Config{}, 27023},
		{histz.Config{MaxValue: 1_000_000_000}, 21023},
		{histz.Config{MaxValue: 1_000_000_000, Precision: 4}, 176383},
		{histz.Config{MaxValue: 1_000_000_000, Precision: 2}, 2427},
		{histz.Config{MaxValue: 10_000, Precision: 3}, 5023},
	}

	for _, tc := range cases {
		h, err := histz.Configured(tc.cfg)
		if err != nil {
			t.Fatalf("Configured(%+v) failed: %v", tc.cfg, err)
		}
		if got := h.BucketsTotal(); got != tc.want {
			t.Errorf("BucketsTotal for %+v: expected %d, got %d", tc.cfg, tc.want, got)
		}
	}
}
