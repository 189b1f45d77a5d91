package codec

import (
	"github.com/rs/zerolog"

	"github.com/ManuGH/playcore/internal/log"
	"github.com/ManuGH/playcore/internal/metrics"
)

// Diagnostics receives one record per negative or assumed capability
// verdict. Sinks are observability only: verdicts are already final when
// they arrive, and no sink may influence matching.
type Diagnostics interface {
	NoSupport(category, detail string, info DecoderInfo)
	AssumedSupport(category, detail string, info DecoderInfo)
}

// NopDiagnostics discards every record.
type NopDiagnostics struct{}

func (NopDiagnostics) NoSupport(string, string, DecoderInfo)      {}
func (NopDiagnostics) AssumedSupport(string, string, DecoderInfo) {}

type logDiagnostics struct {
	logger     zerolog.Logger
	deviceInfo string
}

// NewLogDiagnostics returns a sink that writes structured debug records and
// bumps the capability verdict counters. deviceInfo is attached verbatim to
// every record; pass "" when the host has nothing useful to report.
func NewLogDiagnostics(deviceInfo string) Diagnostics {
	return &logDiagnostics{
		logger:     log.WithComponent("codec"),
		deviceInfo: deviceInfo,
	}
}

func (d *logDiagnostics) NoSupport(category, detail string, info DecoderInfo) {
	d.record("NoSupport", category, detail, info)
	metrics.RecordCapabilityVerdict(category, metrics.VerdictNoSupport)
}

func (d *logDiagnostics) AssumedSupport(category, detail string, info DecoderInfo) {
	d.record("AssumedSupport", category, detail, info)
	metrics.RecordCapabilityVerdict(category, metrics.VerdictAssumedSupport)
}

func (d *logDiagnostics) record(event, category, detail string, info DecoderInfo) {
	d.logger.Debug().
		Str(log.FieldEvent, event).
		Str(log.FieldCategory, category).
		Str(log.FieldDetail, detail).
		Str(log.FieldDecoder, info.Name).
		Str(log.FieldMimeType, info.MimeType).
		Str(log.FieldDeviceInfo, d.deviceInfo).
		Msg("capability verdict")
}
