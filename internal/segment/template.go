package segment

import (
	"fmt"
	"strings"
)

// TemplateIndex describes segments generatively: every segment has the same
// duration and its media lives at a URI derived from the segment number.
// Unlike ChunkBackedIndex it needs the enclosing period duration to bound
// its segment range, and it reports Explicit() == false.
type TemplateIndex struct {
	startNumber int
	durationUs  int64
	uriTemplate string
}

// NewTemplateIndex builds a template-backed index. uriTemplate must contain
// exactly one %d verb, which receives the segment number.
func NewTemplateIndex(startNumber int, durationUs int64, uriTemplate string) (*TemplateIndex, error) {
	if startNumber < 0 {
		return nil, fmt.Errorf("segment: negative start number %d", startNumber)
	}
	if durationUs <= 0 {
		return nil, fmt.Errorf("segment: non-positive template duration %d", durationUs)
	}
	if strings.Count(uriTemplate, "%d") != 1 {
		return nil, fmt.Errorf("segment: uri template %q must contain exactly one %%d", uriTemplate)
	}
	return &TemplateIndex{
		startNumber: startNumber,
		durationUs:  durationUs,
		uriTemplate: uriTemplate,
	}, nil
}

func (x *TemplateIndex) FirstSegmentNumber() int {
	return x.startNumber
}

func (x *TemplateIndex) LastSegmentNumber(periodDurationUs int64) int {
	count := (periodDurationUs + x.durationUs - 1) / x.durationUs
	if count < 1 {
		count = 1
	}
	return x.startNumber + int(count) - 1
}

func (x *TemplateIndex) StartTimeUs(segmentNumber int) int64 {
	x.mustNumber(segmentNumber)
	return int64(segmentNumber-x.startNumber) * x.durationUs
}

// DurationUs returns the fixed segment duration, clipped for the final
// segment so the index never extends past the period end.
func (x *TemplateIndex) DurationUs(segmentNumber int, periodDurationUs int64) int64 {
	start := x.StartTimeUs(segmentNumber)
	if remaining := periodDurationUs - start; remaining < x.durationUs {
		return remaining
	}
	return x.durationUs
}

func (x *TemplateIndex) ByteRange(segmentNumber int) Descriptor {
	x.mustNumber(segmentNumber)
	return Descriptor{
		Offset: 0,
		Length: UnboundedLength,
		URI:    fmt.Sprintf(x.uriTemplate, segmentNumber),
	}
}

func (x *TemplateIndex) SegmentForTime(timeUs, periodDurationUs int64) int {
	if timeUs < 0 {
		return x.startNumber
	}
	n := x.startNumber + int(timeUs/x.durationUs)
	if last := x.LastSegmentNumber(periodDurationUs); n > last {
		return last
	}
	return n
}

func (x *TemplateIndex) Explicit() bool {
	return false
}

func (x *TemplateIndex) mustNumber(segmentNumber int) {
	if segmentNumber < x.startNumber {
		panic(fmt.Sprintf("segment: segment number %d before start number %d", segmentNumber, x.startNumber))
	}
}
