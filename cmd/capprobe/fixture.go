package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ManuGH/playcore/internal/codec"
)

// decoderFixture is the on-disk description of one decoder's declared
// capabilities. One fixture file per decoder, JSON or YAML by extension.
type decoderFixture struct {
	Name          string                `json:"name" yaml:"name"`
	MimeType      string                `json:"mime_type" yaml:"mime_type"`
	Adaptive      bool                  `json:"adaptive" yaml:"adaptive"`
	ProfileLevels []profileLevelFixture `json:"profile_levels" yaml:"profile_levels"`
	Video         *videoFixture         `json:"video" yaml:"video"`
	Audio         *audioFixture         `json:"audio" yaml:"audio"`
}

type profileLevelFixture struct {
	Profile int `json:"profile" yaml:"profile"`
	Level   int `json:"level" yaml:"level"`
}

type videoFixture struct {
	MaxWidth     int     `json:"max_width" yaml:"max_width"`
	MaxHeight    int     `json:"max_height" yaml:"max_height"`
	MaxFrameRate float64 `json:"max_frame_rate" yaml:"max_frame_rate"`
}

type audioFixture struct {
	SampleRates []int `json:"sample_rates" yaml:"sample_rates"`
	MaxChannels int   `json:"max_channels" yaml:"max_channels"`
}

func (v *videoFixture) SupportsSize(width, height int) bool {
	return width > 0 && height > 0 && width <= v.MaxWidth && height <= v.MaxHeight
}

func (v *videoFixture) SupportsSizeAndRate(width, height int, frameRate float64) bool {
	return v.SupportsSize(width, height) && frameRate > 0 && frameRate <= v.MaxFrameRate
}

func (a *audioFixture) SupportsSampleRate(sampleRate int) bool {
	if len(a.SampleRates) == 0 {
		return sampleRate > 0
	}
	for _, rate := range a.SampleRates {
		if rate == sampleRate {
			return true
		}
	}
	return false
}

func (a *audioFixture) MaxChannelCount() int {
	return a.MaxChannels
}

// loadDecoders reads every fixture file in dir and builds the decoder set,
// sorted by file name for stable output.
func loadDecoders(dir string) ([]codec.DecoderInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read fixtures dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	decoders := make([]codec.DecoderInfo, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		fixture, err := loadFixture(path)
		if err != nil {
			return nil, err
		}
		info, err := fixture.decoderInfo()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		decoders = append(decoders, info)
	}
	return decoders, nil
}

func loadFixture(path string) (decoderFixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return decoderFixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var fixture decoderFixture
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(raw, &fixture)
	} else {
		err = yaml.Unmarshal(raw, &fixture)
	}
	if err != nil {
		return decoderFixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return fixture, nil
}

func (f decoderFixture) decoderInfo() (codec.DecoderInfo, error) {
	if f.MimeType == "" {
		return codec.NewPassthroughDecoderInfo(f.Name)
	}
	levels := make([]codec.ProfileLevel, 0, len(f.ProfileLevels))
	for _, pl := range f.ProfileLevels {
		levels = append(levels, codec.ProfileLevel{Profile: pl.Profile, Level: pl.Level})
	}
	caps := codec.Capabilities{
		ProfileLevels: levels,
		Adaptive:      f.Adaptive,
	}
	if f.Video != nil {
		caps.Video = f.Video
	}
	if f.Audio != nil {
		caps.Audio = f.Audio
	}
	return codec.NewDecoderInfo(f.Name, f.MimeType, caps)
}
