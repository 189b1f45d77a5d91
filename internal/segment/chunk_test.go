package segment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestChunkIndex(t *testing.T) *ChunkIndex {
	t.Helper()
	c, err := NewChunkIndex(
		[]int64{0, 1000, 2500},
		[]int64{1000, 1500, 1000},
		[]int64{0, 512, 1200},
		[]int64{512, 688, 900},
	)
	if err != nil {
		t.Fatalf("NewChunkIndex: %v", err)
	}
	return c
}

func TestNewChunkIndex_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		timesUs     []int64
		durationsUs []int64
		offsets     []int64
		sizes       []int64
		wantErr     bool
	}{
		{
			name:        "valid table",
			timesUs:     []int64{0, 1000},
			durationsUs: []int64{1000, 1000},
			offsets:     []int64{0, 512},
			sizes:       []int64{512, 512},
		},
		{
			name:        "empty table is valid",
			timesUs:     nil,
			durationsUs: nil,
			offsets:     nil,
			sizes:       nil,
		},
		{
			name:        "repeated start time is valid",
			timesUs:     []int64{0, 0},
			durationsUs: []int64{1, 1},
			offsets:     []int64{0, 1},
			sizes:       []int64{1, 1},
		},
		{
			name:        "length mismatch",
			timesUs:     []int64{0, 1000},
			durationsUs: []int64{1000},
			offsets:     []int64{0, 512},
			sizes:       []int64{512, 512},
			wantErr:     true,
		},
		{
			name:        "decreasing times",
			timesUs:     []int64{1000, 0},
			durationsUs: []int64{1000, 1000},
			offsets:     []int64{0, 512},
			sizes:       []int64{512, 512},
			wantErr:     true,
		},
		{
			name:        "zero duration",
			timesUs:     []int64{0},
			durationsUs: []int64{0},
			offsets:     []int64{0},
			sizes:       []int64{512},
			wantErr:     true,
		},
		{
			name:        "decreasing offsets",
			timesUs:     []int64{0, 1000},
			durationsUs: []int64{1000, 1000},
			offsets:     []int64{512, 0},
			sizes:       []int64{512, 512},
			wantErr:     true,
		},
		{
			name:        "zero size",
			timesUs:     []int64{0},
			durationsUs: []int64{1000},
			offsets:     []int64{0},
			sizes:       []int64{0},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewChunkIndex(tt.timesUs, tt.durationsUs, tt.offsets, tt.sizes)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewChunkIndex error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestChunkForTime(t *testing.T) {
	t.Parallel()
	c := newTestChunkIndex(t)

	tests := []struct {
		timeUs int64
		want   int
	}{
		{-1_000_000, 0}, // clamps below
		{0, 0},
		{999, 0},
		{1000, 1},
		{1800, 1},
		{2499, 1},
		{2500, 2},
		{1_000_000_000, 2}, // clamps above
	}
	for _, tt := range tests {
		if got := c.ChunkForTime(tt.timeUs); got != tt.want {
			t.Errorf("ChunkForTime(%d) = %d, want %d", tt.timeUs, got, tt.want)
		}
	}
}

func TestChunkForTime_CoversEveryBoundary(t *testing.T) {
	t.Parallel()
	c := newTestChunkIndex(t)

	// For any time inside [times[i], times[i+1]) the answer is exactly i.
	times := []int64{0, 1000, 2500}
	for i := 0; i < len(times)-1; i++ {
		for _, timeUs := range []int64{times[i], times[i] + 1, times[i+1] - 1} {
			if got := c.ChunkForTime(timeUs); got != i {
				t.Errorf("ChunkForTime(%d) = %d, want %d", timeUs, got, i)
			}
		}
	}
}

func TestChunkBackedIndex_Contract(t *testing.T) {
	t.Parallel()
	idx, err := NewChunkBackedIndex(newTestChunkIndex(t))
	if err != nil {
		t.Fatalf("NewChunkBackedIndex: %v", err)
	}

	const anyPeriod = int64(99_999_999)

	if got := idx.FirstSegmentNumber(); got != 0 {
		t.Errorf("FirstSegmentNumber() = %d, want 0", got)
	}
	if got := idx.LastSegmentNumber(anyPeriod); got != 2 {
		t.Errorf("LastSegmentNumber() = %d, want 2", got)
	}
	if !idx.Explicit() {
		t.Error("Explicit() = false, want true")
	}
	if got := idx.SegmentForTime(1800, anyPeriod); got != 1 {
		t.Errorf("SegmentForTime(1800) = %d, want 1", got)
	}

	wantStarts := []int64{0, 1000, 2500}
	wantDurations := []int64{1000, 1500, 1000}
	wantRanges := []Descriptor{
		{Offset: 0, Length: 512},
		{Offset: 512, Length: 688},
		{Offset: 1200, Length: 900},
	}
	for i := 0; i <= 2; i++ {
		if got := idx.StartTimeUs(i); got != wantStarts[i] {
			t.Errorf("StartTimeUs(%d) = %d, want %d", i, got, wantStarts[i])
		}
		if got := idx.DurationUs(i, anyPeriod); got != wantDurations[i] {
			t.Errorf("DurationUs(%d) = %d, want %d", i, got, wantDurations[i])
		}
		if diff := cmp.Diff(wantRanges[i], idx.ByteRange(i)); diff != "" {
			t.Errorf("ByteRange(%d) mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestChunkBackedIndex_OutOfRangePanics(t *testing.T) {
	t.Parallel()
	idx, err := NewChunkBackedIndex(newTestChunkIndex(t))
	if err != nil {
		t.Fatalf("NewChunkBackedIndex: %v", err)
	}

	for _, segment := range []int{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("StartTimeUs(%d) did not panic", segment)
				}
			}()
			idx.StartTimeUs(segment)
		}()
	}
}

func TestNewChunkBackedIndex_RejectsEmpty(t *testing.T) {
	t.Parallel()
	empty, err := NewChunkIndex(nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewChunkIndex: %v", err)
	}
	if _, err := NewChunkBackedIndex(empty); err == nil {
		t.Error("expected error for empty chunk index")
	}
	if _, err := NewChunkBackedIndex(nil); err == nil {
		t.Error("expected error for nil chunk index")
	}
}
