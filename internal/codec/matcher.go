package codec

import (
	"errors"
	"fmt"
)

// Resolver maps RFC 6381 codec strings to mime types and profile/level
// pairs. The second return reports whether the string could be resolved;
// callers treat an unresolvable string as "assume supported".
type Resolver interface {
	MimeTypeOf(codec string) (string, bool)
	ProfileLevelOf(codec string) (ProfileLevel, bool)
}

// Matcher evaluates compatibility predicates over one DecoderInfo against
// one requested codec or format. All methods are pure apart from
// diagnostics, and safe for concurrent use.
type Matcher struct {
	resolver Resolver
	diag     Diagnostics
}

var errNilResolver = errors.New("codec: resolver must not be nil")

// NewMatcher builds a Matcher. The resolver is mandatory; a nil diag falls
// back to the zerolog-backed sink.
func NewMatcher(resolver Resolver, diag Diagnostics) (*Matcher, error) {
	if resolver == nil {
		return nil, errNilResolver
	}
	if diag == nil {
		diag = NewLogDiagnostics("")
	}
	return &Matcher{resolver: resolver, diag: diag}, nil
}

// IsCodecSupported reports whether the decoder supports the given RFC 6381
// codec string. When there is insufficient information to decide, it
// returns true: a decoder is only rejected on positive evidence of a
// mismatch, never on missing data.
func (m *Matcher) IsCodecSupported(info DecoderInfo, codec string) bool {
	if codec == "" || info.MimeType == "" {
		return true
	}
	codecMimeType, ok := m.resolver.MimeTypeOf(codec)
	if !ok {
		return true
	}
	if codecMimeType != info.MimeType {
		m.diag.NoSupport("codec.mime", codec+", "+codecMimeType, info)
		return false
	}
	requested, ok := m.resolver.ProfileLevelOf(codec)
	if !ok {
		// If we don't know any better, we assume that the profile and level
		// are supported.
		return true
	}
	for _, pl := range info.profileLevels {
		if pl.Profile == requested.Profile && pl.Level >= requested.Level {
			return true
		}
	}
	m.diag.NoSupport("codec.profileLevel", codec+", "+codecMimeType, info)
	return false
}

// IsVideoSizeSupported reports whether the decoder supports video with the
// given width and height.
func (m *Matcher) IsVideoSizeSupported(info DecoderInfo, width, height int) bool {
	if info.video == nil {
		m.diag.NoSupport("size.vCaps", "", info)
		return false
	}
	if info.video.SupportsSize(width, height) {
		return true
	}
	// Capabilities are known to be inaccurately reported for vertical
	// resolutions on some platforms. If the video is vertical and the
	// capabilities indicate support with width and height swapped, we
	// assume that the vertical resolution is also supported.
	if width >= height || !info.video.SupportsSize(height, width) {
		m.diag.NoSupport("size.support", fmt.Sprintf("%dx%d", width, height), info)
		return false
	}
	m.diag.AssumedSupport("size.rotated", fmt.Sprintf("%dx%d", width, height), info)
	return true
}

// IsVideoSizeAndRateSupported reports whether the decoder supports video
// with the given width, height and frame rate. The rotation fallback from
// IsVideoSizeSupported applies here too, and only for vertical input.
func (m *Matcher) IsVideoSizeAndRateSupported(info DecoderInfo, width, height int, frameRate float64) bool {
	if info.video == nil {
		m.diag.NoSupport("sizeAndRate.vCaps", "", info)
		return false
	}
	if info.video.SupportsSizeAndRate(width, height, frameRate) {
		return true
	}
	if width >= height || !info.video.SupportsSizeAndRate(height, width, frameRate) {
		m.diag.NoSupport("sizeAndRate.support", fmt.Sprintf("%dx%dx%g", width, height, frameRate), info)
		return false
	}
	m.diag.AssumedSupport("sizeAndRate.rotated", fmt.Sprintf("%dx%dx%g", width, height, frameRate), info)
	return true
}

// IsAudioSampleRateSupported reports whether the decoder supports audio at
// the given sample rate. No fallback heuristics apply to audio.
func (m *Matcher) IsAudioSampleRateSupported(info DecoderInfo, sampleRate int) bool {
	if info.audio == nil {
		m.diag.NoSupport("sampleRate.aCaps", "", info)
		return false
	}
	if !info.audio.SupportsSampleRate(sampleRate) {
		m.diag.NoSupport("sampleRate.support", fmt.Sprintf("%d", sampleRate), info)
		return false
	}
	return true
}

// IsAudioChannelCountSupported reports whether the decoder supports audio
// with the given channel count.
func (m *Matcher) IsAudioChannelCountSupported(info DecoderInfo, channelCount int) bool {
	if info.audio == nil {
		m.diag.NoSupport("channelCount.aCaps", "", info)
		return false
	}
	if info.audio.MaxChannelCount() < channelCount {
		m.diag.NoSupport("channelCount.support", fmt.Sprintf("%d", channelCount), info)
		return false
	}
	return true
}
