package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateOffset_IsLinear(t *testing.T) {
	t.Parallel()
	alloc := NewAllocation(make([]byte, 1024), 256)

	assert.Equal(t, 256, alloc.TranslateOffset(0))
	assert.Equal(t, 256+100, alloc.TranslateOffset(100))

	// translateOffset(a) - translateOffset(b) == a - b
	for _, pair := range [][2]int{{0, 0}, {10, 3}, {511, 12}} {
		a, b := pair[0], pair[1]
		assert.Equal(t, a-b, alloc.TranslateOffset(a)-alloc.TranslateOffset(b))
	}
}

func TestNewAllocator_Validation(t *testing.T) {
	t.Parallel()
	_, err := NewAllocator(0, 4)
	require.Error(t, err)
	_, err = NewAllocator(1024, -1)
	require.Error(t, err)
}

func TestAllocator_SlabOffsets(t *testing.T) {
	t.Parallel()
	pool, err := NewAllocator(1024, 4)
	require.NoError(t, err)
	assert.Equal(t, 1024, pool.IndividualAllocationLength())

	// Initial allocations share one slab; each region starts at a distinct
	// physical offset even though all logical offsets are zero-based.
	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		alloc := pool.Allocate()
		base := alloc.TranslateOffset(0)
		assert.False(t, seen[base], "duplicate base offset %d", base)
		seen[base] = true
		assert.LessOrEqual(t, base+1024, len(alloc.Data))
	}
	assert.Equal(t, 4*1024, pool.TotalBytesAllocated())

	// Beyond the slab, fresh buffers start at offset zero.
	extra := pool.Allocate()
	assert.Equal(t, 0, extra.TranslateOffset(0))
	assert.Equal(t, 5*1024, pool.TotalBytesAllocated())
}

func TestAllocator_ReusesReleased(t *testing.T) {
	t.Parallel()
	pool, err := NewAllocator(512, 1)
	require.NoError(t, err)

	first := pool.Allocate()
	pool.Release(first)
	second := pool.Allocate()
	assert.Same(t, first, second)
	assert.Equal(t, 512, pool.TotalBytesAllocated())
}

func TestAllocator_Trim(t *testing.T) {
	t.Parallel()
	pool, err := NewAllocator(1024, 4)
	require.NoError(t, err)

	allocs := make([]*Allocation, 4)
	for i := range allocs {
		allocs[i] = pool.Allocate()
	}
	for _, alloc := range allocs {
		pool.Release(alloc)
	}

	// Dropping the target frees surplus recycled allocations from the end
	// of the free list; the first-released allocation survives.
	pool.SetTargetBufferSize(1024)
	reused := pool.Allocate()
	assert.Same(t, allocs[0], reused)
	fresh := pool.Allocate()
	for _, old := range allocs {
		assert.NotSame(t, old, fresh)
	}
	assert.Equal(t, 0, pool.TotalBytesAllocated()-2*1024)
}
