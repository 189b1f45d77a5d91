// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package format resolves RFC 6381 codec strings into mime types and
// profile/level pairs. It is the default implementation of the resolver
// collaborator consumed by the codec matcher; hosts with their own media
// format registry can substitute it.
package format

import (
	"strconv"
	"strings"

	"github.com/ManuGH/playcore/internal/codec"
)

// Mime types for the codec families the registry understands.
const (
	MimeVideoAVC  = "video/avc"
	MimeVideoHEVC = "video/hevc"
	MimeVideoVP8  = "video/x-vnd.on2.vp8"
	MimeVideoVP9  = "video/x-vnd.on2.vp9"
	MimeVideoAV1  = "video/av01"
	MimeAudioAAC  = "audio/mp4a-latm"
	MimeAudioAC3  = "audio/ac3"
	MimeAudioEAC3 = "audio/eac3"
	MimeAudioOpus = "audio/opus"
)

// AVC profile constants, in the host codec framework's constant space.
const (
	AVCProfileBaseline = 1 << iota
	AVCProfileMain
	AVCProfileExtended
	AVCProfileHigh
	AVCProfileHigh10
	AVCProfileHigh422
	AVCProfileHigh444
)

// AVC level constants.
const (
	AVCLevel1 = 1 << iota
	AVCLevel1b
	AVCLevel11
	AVCLevel12
	AVCLevel13
	AVCLevel2
	AVCLevel21
	AVCLevel22
	AVCLevel3
	AVCLevel31
	AVCLevel32
	AVCLevel4
	AVCLevel41
	AVCLevel42
	AVCLevel5
	AVCLevel51
	AVCLevel52
)

// Registry implements the matcher's Resolver contract over a fixed table of
// codec families.
type Registry struct{}

// MimeTypeOf resolves the mime type from the codec string's sample-entry
// prefix. The second return is false when the family is unknown.
func (Registry) MimeTypeOf(codecString string) (string, bool) {
	prefix, _, _ := strings.Cut(strings.TrimSpace(codecString), ".")
	switch strings.ToLower(prefix) {
	case "avc1", "avc2", "avc3", "avc4":
		return MimeVideoAVC, true
	case "hev1", "hvc1":
		return MimeVideoHEVC, true
	case "vp8", "vp08":
		return MimeVideoVP8, true
	case "vp9", "vp09":
		return MimeVideoVP9, true
	case "av01":
		return MimeVideoAV1, true
	case "mp4a":
		return MimeAudioAAC, true
	case "ac-3", "dac3":
		return MimeAudioAC3, true
	case "ec-3", "dec3":
		return MimeAudioEAC3, true
	case "opus":
		return MimeAudioOpus, true
	default:
		return "", false
	}
}

// ProfileLevelOf decodes the profile/level suffix of an AVC codec string.
// Both the 6-hex-digit form (avc1.42E01E) and the legacy dotted-decimal
// form (avc1.66.30) are accepted. Non-AVC families and unparseable strings
// return false, which the matcher treats as "assume supported".
func (Registry) ProfileLevelOf(codecString string) (codec.ProfileLevel, bool) {
	parts := strings.Split(strings.TrimSpace(codecString), ".")
	switch strings.ToLower(parts[0]) {
	case "avc1", "avc2", "avc3", "avc4":
	default:
		return codec.ProfileLevel{}, false
	}

	var profileIdc, levelIdc int
	switch {
	case len(parts) == 2 && len(parts[1]) == 6:
		value, err := strconv.ParseUint(parts[1], 16, 32)
		if err != nil {
			return codec.ProfileLevel{}, false
		}
		profileIdc = int(value >> 16)
		levelIdc = int(value & 0xFF)
	case len(parts) >= 3:
		var err error
		if profileIdc, err = strconv.Atoi(parts[1]); err != nil {
			return codec.ProfileLevel{}, false
		}
		if levelIdc, err = strconv.Atoi(parts[2]); err != nil {
			return codec.ProfileLevel{}, false
		}
	default:
		return codec.ProfileLevel{}, false
	}

	profile, ok := avcProfileForIdc(profileIdc)
	if !ok {
		return codec.ProfileLevel{}, false
	}
	level, ok := avcLevelForIdc(levelIdc)
	if !ok {
		return codec.ProfileLevel{}, false
	}
	return codec.ProfileLevel{Profile: profile, Level: level}, true
}

func avcProfileForIdc(profileIdc int) (int, bool) {
	switch profileIdc {
	case 66:
		return AVCProfileBaseline, true
	case 77:
		return AVCProfileMain, true
	case 88:
		return AVCProfileExtended, true
	case 100:
		return AVCProfileHigh, true
	case 110:
		return AVCProfileHigh10, true
	case 122:
		return AVCProfileHigh422, true
	case 244:
		return AVCProfileHigh444, true
	default:
		return 0, false
	}
}

func avcLevelForIdc(levelIdc int) (int, bool) {
	switch levelIdc {
	case 10:
		return AVCLevel1, true
	case 11:
		return AVCLevel11, true
	case 12:
		return AVCLevel12, true
	case 13:
		return AVCLevel13, true
	case 20:
		return AVCLevel2, true
	case 21:
		return AVCLevel21, true
	case 22:
		return AVCLevel22, true
	case 30:
		return AVCLevel3, true
	case 31:
		return AVCLevel31, true
	case 32:
		return AVCLevel32, true
	case 40:
		return AVCLevel4, true
	case 41:
		return AVCLevel41, true
	case 42:
		return AVCLevel42, true
	case 50:
		return AVCLevel5, true
	case 51:
		return AVCLevel51, true
	case 52:
		return AVCLevel52, true
	default:
		return 0, false
	}
}
