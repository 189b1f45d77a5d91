// Package segment translates between playback time and retrievable media
// segments. Every index variant, whether it enumerates its segments up
// front or derives them from a template, is queried through the same Index
// contract.
package segment

// UnboundedLength marks a Descriptor whose byte length is not known to the
// index.
const UnboundedLength int64 = -1

// Descriptor locates the bytes of one media segment. An empty URI means
// "same resource as the container this index was parsed from"; the caller
// resolves it against the stream session.
type Descriptor struct {
	Offset int64
	Length int64
	URI    string
}

// Index is the uniform segment lookup contract.
//
// Segment numbers are only valid between FirstSegmentNumber and
// LastSegmentNumber; passing anything else is a caller bug and panics.
// periodDurationUs is the duration of the enclosing period in microseconds.
// Explicit variants ignore it, template variants need it to bound their
// segment range.
type Index interface {
	FirstSegmentNumber() int
	LastSegmentNumber(periodDurationUs int64) int
	StartTimeUs(segmentNumber int) int64
	DurationUs(segmentNumber int, periodDurationUs int64) int64
	ByteRange(segmentNumber int) Descriptor
	SegmentForTime(timeUs, periodDurationUs int64) int

	// Explicit reports whether the full segment list is resident up front.
	// Seek logic uses this to decide whether it may walk the list without
	// further queries.
	Explicit() bool
}
