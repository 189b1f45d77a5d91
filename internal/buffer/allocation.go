// Package buffer provides pooled media buffers. Consumers address their
// region through zero-based logical offsets; the pool decides where inside
// a shared backing buffer that region actually lives.
package buffer

// Allocation is a fixed-offset view into a shared backing buffer. It is a
// non-owning value: the pool that produced it owns the backing buffer and
// serializes writes to it.
//
// The allocated region might not start at the beginning of Data, so
// TranslateOffset must be used when indexing into it. No bounds checking is
// performed; the pool guarantees the region stays inside Data for the
// allocation's lifetime, and staying inside the region length is the
// caller's responsibility.
type Allocation struct {
	// Data is the backing buffer containing the allocated region.
	Data []byte

	offset int
}

// NewAllocation wraps a region of data starting at offset.
func NewAllocation(data []byte, offset int) *Allocation {
	return &Allocation{Data: data, offset: offset}
}

// TranslateOffset maps a zero-based logical offset into the corresponding
// offset in Data.
func (a *Allocation) TranslateOffset(logical int) int {
	return a.offset + logical
}
