// capprobe evaluates a requested codec string and media format against a
// directory of decoder capability fixtures and reports, per decoder,
// whether playback would be possible.
//
// Exit codes: 0 when at least one decoder supports every requested check,
// 1 when none does, 2 on usage or fixture errors.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ManuGH/playcore/internal/codec"
	"github.com/ManuGH/playcore/internal/format"
	"github.com/ManuGH/playcore/internal/log"
)

func main() {
	var (
		fixturesDir = flag.String("fixtures", "fixtures/decoders", "directory containing decoder capability fixtures")
		codecString = flag.String("codec", "", "RFC 6381 codec string to check (e.g. avc1.42E01E)")
		width       = flag.Int("width", 0, "video width in pixels")
		height      = flag.Int("height", 0, "video height in pixels")
		fps         = flag.Float64("fps", 0, "video frame rate (requires -width and -height)")
		sampleRate  = flag.Int("sample-rate", 0, "audio sample rate in Hz")
		channels    = flag.Int("channels", 0, "audio channel count")
		deviceInfo  = flag.String("device-info", "", "device identifier attached to diagnostic records")
		logLevel    = flag.String("log-level", "warn", "log level for diagnostic records")
	)
	flag.Parse()

	log.Configure(log.Config{Level: *logLevel, Output: os.Stderr, Service: "capprobe"})

	if *codecString == "" && *width == 0 && *sampleRate == 0 && *channels == 0 {
		fail("nothing to check: provide -codec, -width/-height, -sample-rate or -channels")
	}
	if (*width == 0) != (*height == 0) {
		fail("-width and -height must be given together")
	}
	if *fps > 0 && *width == 0 {
		fail("-fps requires -width and -height")
	}

	decoders, err := loadDecoders(*fixturesDir)
	must(err)
	if len(decoders) == 0 {
		fail("no decoder fixtures found in " + *fixturesDir)
	}

	matcher, err := codec.NewMatcher(format.Registry{}, codec.NewLogDiagnostics(*deviceInfo))
	must(err)

	anySupported := false
	for _, decoder := range decoders {
		supported := probe(matcher, decoder, *codecString, *width, *height, *fps, *sampleRate, *channels)
		if supported {
			anySupported = true
		}
	}
	if !anySupported {
		os.Exit(1)
	}
}

func probe(matcher *codec.Matcher, decoder codec.DecoderInfo, codecString string, width, height int, fps float64, sampleRate, channels int) bool {
	supported := true
	verdicts := ""

	if codecString != "" {
		ok := matcher.IsCodecSupported(decoder, codecString)
		supported = supported && ok
		verdicts += fmt.Sprintf(" codec=%v", ok)
	}
	if width > 0 {
		var ok bool
		if fps > 0 {
			ok = matcher.IsVideoSizeAndRateSupported(decoder, width, height, fps)
			verdicts += fmt.Sprintf(" size_rate=%v", ok)
		} else {
			ok = matcher.IsVideoSizeSupported(decoder, width, height)
			verdicts += fmt.Sprintf(" size=%v", ok)
		}
		supported = supported && ok
	}
	if sampleRate > 0 {
		ok := matcher.IsAudioSampleRateSupported(decoder, sampleRate)
		supported = supported && ok
		verdicts += fmt.Sprintf(" sample_rate=%v", ok)
	}
	if channels > 0 {
		ok := matcher.IsAudioChannelCountSupported(decoder, channels)
		supported = supported && ok
		verdicts += fmt.Sprintf(" channels=%v", ok)
	}

	mime := decoder.MimeType
	if mime == "" {
		mime = "passthrough"
	}
	fmt.Printf("%-40s %-20s supported=%v%s\n", decoder.Name, mime, supported, verdicts)
	return supported
}

func must(err error) {
	if err != nil {
		fail(err.Error())
	}
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, "capprobe:", msg)
	os.Exit(2)
}
