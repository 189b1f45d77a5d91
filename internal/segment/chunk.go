package segment

import (
	"fmt"
	"sort"
)

// ChunkIndex is a compact parallel-array index over the chunks of one media
// container: start times, durations, byte offsets and byte sizes, all
// indexed 0..Len()-1. It is immutable once built and safe for concurrent
// reads.
type ChunkIndex struct {
	timesUs     []int64
	durationsUs []int64
	offsets     []int64
	sizes       []int64
}

// NewChunkIndex validates and wraps the four parallel arrays produced by a
// container parser. The slices are copied; later mutation of the arguments
// does not affect the index.
func NewChunkIndex(timesUs, durationsUs, offsets, sizes []int64) (*ChunkIndex, error) {
	n := len(timesUs)
	if len(durationsUs) != n || len(offsets) != n || len(sizes) != n {
		return nil, fmt.Errorf("segment: parallel array length mismatch: times=%d durations=%d offsets=%d sizes=%d",
			len(timesUs), len(durationsUs), len(offsets), len(sizes))
	}
	for i := 0; i < n; i++ {
		if i > 0 && timesUs[i] < timesUs[i-1] {
			return nil, fmt.Errorf("segment: decreasing start time at chunk %d: %d < %d", i, timesUs[i], timesUs[i-1])
		}
		if durationsUs[i] <= 0 {
			return nil, fmt.Errorf("segment: non-positive duration at chunk %d: %d", i, durationsUs[i])
		}
		if i > 0 && offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("segment: decreasing offset at chunk %d: %d < %d", i, offsets[i], offsets[i-1])
		}
		if sizes[i] <= 0 {
			return nil, fmt.Errorf("segment: non-positive size at chunk %d: %d", i, sizes[i])
		}
	}
	c := &ChunkIndex{
		timesUs:     make([]int64, n),
		durationsUs: make([]int64, n),
		offsets:     make([]int64, n),
		sizes:       make([]int64, n),
	}
	copy(c.timesUs, timesUs)
	copy(c.durationsUs, durationsUs)
	copy(c.offsets, offsets)
	copy(c.sizes, sizes)
	return c, nil
}

// Len returns the number of chunks.
func (c *ChunkIndex) Len() int {
	return len(c.timesUs)
}

// ChunkForTime returns the index of the chunk covering timeUs. Times before
// the first chunk clamp to 0, times at or after the last chunk's start
// clamp to Len()-1. The index must be non-empty.
func (c *ChunkIndex) ChunkForTime(timeUs int64) int {
	c.mustIndex(0)
	i := sort.Search(len(c.timesUs), func(i int) bool {
		return c.timesUs[i] > timeUs
	}) - 1
	if i < 0 {
		return 0
	}
	return i
}

func (c *ChunkIndex) mustIndex(i int) {
	if i < 0 || i >= len(c.timesUs) {
		panic(fmt.Sprintf("segment: chunk index %d out of range [0,%d)", i, len(c.timesUs)))
	}
}

// ChunkBackedIndex exposes a ChunkIndex through the uniform Index contract.
// The chunk table has no notion of an enclosing period, so the
// periodDurationUs arguments are accepted and ignored.
type ChunkBackedIndex struct {
	chunks *ChunkIndex
}

// NewChunkBackedIndex wraps a non-empty chunk index.
func NewChunkBackedIndex(chunks *ChunkIndex) (*ChunkBackedIndex, error) {
	if chunks == nil || chunks.Len() == 0 {
		return nil, fmt.Errorf("segment: chunk index must contain at least one chunk")
	}
	return &ChunkBackedIndex{chunks: chunks}, nil
}

func (x *ChunkBackedIndex) FirstSegmentNumber() int {
	return 0
}

func (x *ChunkBackedIndex) LastSegmentNumber(periodDurationUs int64) int {
	return x.chunks.Len() - 1
}

func (x *ChunkBackedIndex) StartTimeUs(segmentNumber int) int64 {
	x.chunks.mustIndex(segmentNumber)
	return x.chunks.timesUs[segmentNumber]
}

func (x *ChunkBackedIndex) DurationUs(segmentNumber int, periodDurationUs int64) int64 {
	x.chunks.mustIndex(segmentNumber)
	return x.chunks.durationsUs[segmentNumber]
}

func (x *ChunkBackedIndex) ByteRange(segmentNumber int) Descriptor {
	x.chunks.mustIndex(segmentNumber)
	return Descriptor{
		Offset: x.chunks.offsets[segmentNumber],
		Length: x.chunks.sizes[segmentNumber],
	}
}

func (x *ChunkBackedIndex) SegmentForTime(timeUs, periodDurationUs int64) int {
	return x.chunks.ChunkForTime(timeUs)
}

// Explicit is always true: the chunk table enumerates every segment up
// front.
func (x *ChunkBackedIndex) Explicit() bool {
	return true
}
