package buffer

import (
	"fmt"
	"sync"
)

// Allocator is a pool of equally sized allocations. The initial capacity is
// carved out of one shared slab, so early allocations exercise non-zero
// base offsets; growth beyond the slab allocates individual buffers.
//
// The allocator is the one stateful collaborator in this package and guards
// its free list with a mutex.
type Allocator struct {
	individualAllocationLength int

	mu             sync.Mutex
	allocatedCount int
	available      []*Allocation
	targetCount    int
}

// NewAllocator builds a pool whose allocations are each
// individualAllocationLength bytes. initialCapacity allocations are carved
// out of a single shared slab up front.
func NewAllocator(individualAllocationLength, initialCapacity int) (*Allocator, error) {
	if individualAllocationLength <= 0 {
		return nil, fmt.Errorf("buffer: non-positive allocation length %d", individualAllocationLength)
	}
	if initialCapacity < 0 {
		return nil, fmt.Errorf("buffer: negative initial capacity %d", initialCapacity)
	}
	a := &Allocator{
		individualAllocationLength: individualAllocationLength,
		available:                  make([]*Allocation, 0, initialCapacity),
		targetCount:                initialCapacity,
	}
	if initialCapacity > 0 {
		slab := make([]byte, individualAllocationLength*initialCapacity)
		for i := 0; i < initialCapacity; i++ {
			a.available = append(a.available, NewAllocation(slab, i*individualAllocationLength))
		}
	}
	return a, nil
}

// IndividualAllocationLength returns the region length of every allocation
// produced by this pool.
func (a *Allocator) IndividualAllocationLength() int {
	return a.individualAllocationLength
}

// Allocate returns a recycled allocation when one is available, otherwise a
// fresh one backed by its own buffer.
func (a *Allocator) Allocate() *Allocation {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.allocatedCount++
	if n := len(a.available); n > 0 {
		alloc := a.available[n-1]
		a.available[n-1] = nil
		a.available = a.available[:n-1]
		return alloc
	}
	return NewAllocation(make([]byte, a.individualAllocationLength), 0)
}

// Release returns an allocation to the pool for reuse. The caller must not
// touch the allocation afterwards.
func (a *Allocator) Release(alloc *Allocation) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.allocatedCount--
	a.available = append(a.available, alloc)
	a.trimLocked()
}

// TotalBytesAllocated returns the bytes currently held by outstanding
// allocations.
func (a *Allocator) TotalBytesAllocated() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocatedCount * a.individualAllocationLength
}

// SetTargetBufferSize caps the bytes kept on the free list; surplus
// recycled allocations are dropped for the garbage collector.
func (a *Allocator) SetTargetBufferSize(targetBufferSize int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.targetCount = targetBufferSize / a.individualAllocationLength
	a.trimLocked()
}

func (a *Allocator) trimLocked() {
	for len(a.available) > a.targetCount {
		n := len(a.available)
		a.available[n-1] = nil
		a.available = a.available[:n-1]
	}
}
