// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Media / capability fields
	FieldDecoder    = "decoder"
	FieldMimeType   = "mime_type"
	FieldCodec      = "codec"
	FieldCategory   = "category"
	FieldDetail     = "detail"
	FieldDeviceInfo = "device_info"
	FieldResolution = "resolution"
	FieldFPS        = "fps"
	FieldSampleRate = "sample_rate"
	FieldChannels   = "channels"

	// Segment / index fields
	FieldSegment = "segment"
	FieldOffset  = "offset"
	FieldLength  = "length"
)
