// Package codec decides whether a given decoder can handle a requested
// codec string or media format, based on the capabilities the decoder
// declared when it was enumerated.
package codec

import (
	"errors"
	"fmt"
)

// ProfileLevel pairs a codec profile with the maximum level the decoder
// supports for that profile.
type ProfileLevel struct {
	Profile int
	Level   int
}

// VideoCapabilities answers resolution and frame-rate questions for one
// decoder. Implementations come from the host's codec enumeration.
type VideoCapabilities interface {
	SupportsSize(width, height int) bool
	SupportsSizeAndRate(width, height int, frameRate float64) bool
}

// AudioCapabilities answers sample-rate and channel-count questions for one
// decoder.
type AudioCapabilities interface {
	SupportsSampleRate(sampleRate int) bool
	MaxChannelCount() int
}

// Capabilities carries the optional capability surface of a decoder.
// A nil Video or Audio means the decoder did not report that surface.
type Capabilities struct {
	ProfileLevels []ProfileLevel
	Adaptive      bool
	Video         VideoCapabilities
	Audio         AudioCapabilities
}

// DecoderInfo is an immutable record of one decoder's declared capabilities.
// Instances are created once per enumerated decoder and may be shared across
// goroutines without synchronization.
type DecoderInfo struct {
	// Name identifies the decoder to the host codec framework. Never empty.
	Name string

	// MimeType is the mime type the decoder was enumerated for. Empty on
	// passthrough instances, which match everything.
	MimeType string

	// Adaptive reports whether the decoder supports seamless resolution
	// switches.
	Adaptive bool

	profileLevels []ProfileLevel
	video         VideoCapabilities
	audio         AudioCapabilities
}

var errEmptyName = errors.New("codec: decoder name must not be empty")

// NewDecoderInfo builds a DecoderInfo for a decoder enumerated for mimeType.
func NewDecoderInfo(name, mimeType string, caps Capabilities) (DecoderInfo, error) {
	if name == "" {
		return DecoderInfo{}, errEmptyName
	}
	if mimeType == "" && (caps.Video != nil || caps.Audio != nil || len(caps.ProfileLevels) > 0) {
		return DecoderInfo{}, fmt.Errorf("codec: passthrough decoder %q must not declare capabilities", name)
	}
	levels := make([]ProfileLevel, len(caps.ProfileLevels))
	copy(levels, caps.ProfileLevels)
	return DecoderInfo{
		Name:          name,
		MimeType:      mimeType,
		Adaptive:      mimeType != "" && caps.Adaptive,
		profileLevels: levels,
		video:         caps.Video,
		audio:         caps.Audio,
	}, nil
}

// NewPassthroughDecoderInfo builds a DecoderInfo representing an audio
// passthrough decoder. It has no mime type and matches every codec string.
func NewPassthroughDecoderInfo(name string) (DecoderInfo, error) {
	return NewDecoderInfo(name, "", Capabilities{})
}

// ProfileLevels returns the profile/level pairs the decoder supports. The
// returned slice must not be mutated.
func (d DecoderInfo) ProfileLevels() []ProfileLevel {
	return d.profileLevels
}
