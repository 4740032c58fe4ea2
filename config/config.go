// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SupportedSampleRates lists every sample rate this library accepts, in Hz.
// Rates outside this set are rejected by Validate, never silently coerced.
var SupportedSampleRates = []int{8000, 16000, 22050, 32000, 44100, 48000, 96000}

// SampleRateSupported reports whether rate is in SupportedSampleRates.
func SampleRateSupported(rate int) bool {
	for _, r := range SupportedSampleRates {
		if r == rate {
			return true
		}
	}
	return false
}

// Audio describes a raw PCM stream: sample rate in Hz, channel count
// (1=mono, 2=stereo) and bits per sample (16 or 24). Values are plain data;
// a config that fails Validate must never be used to write a container.
//
// The oneof tags mirror SupportedSampleRates and the channel/bit-depth
// enumerations.
type Audio struct {
	SampleRate    int `validate:"oneof=8000 16000 22050 32000 44100 48000 96000"`
	Channels      int `validate:"oneof=1 2"`
	BitsPerSample int `validate:"oneof=16 24"`
}

// DefaultAudio returns the fallback PCM description: 44.1 kHz stereo 16-bit.
func DefaultAudio() Audio {
	return Audio{SampleRate: 44100, Channels: 2, BitsPerSample: 16}
}

// BlockAlign is the size of one interleaved sample frame in bytes.
func (c Audio) BlockAlign() int {
	return c.Channels * c.BitsPerSample / 8
}

// ByteRate is the PCM data rate in bytes per second.
func (c Audio) ByteRate() int {
	return c.SampleRate * c.BlockAlign()
}

// Validate checks every field against the supported enumerations.
// The returned error wraps one of the ErrUnsupported* sentinels.
func (c Audio) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].StructField() {
		case "SampleRate":
			return fmt.Errorf("%w: %d Hz", ErrUnsupportedSampleRate, c.SampleRate)
		case "Channels":
			return fmt.Errorf("%w: %d", ErrUnsupportedChannels, c.Channels)
		case "BitsPerSample":
			return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, c.BitsPerSample)
		}
	}

	return fmt.Errorf("%w", err)
}

// Bitrate is an MP3 output bitrate in kbps.
type Bitrate int

const (
	Bitrate64  Bitrate = 64
	Bitrate128 Bitrate = 128
	Bitrate192 Bitrate = 192
	Bitrate256 Bitrate = 256
	Bitrate320 Bitrate = 320
)

// Quality is an ordinal encoder effort setting. Higher values ask the
// encoder for smaller quantization steps at the cost of more CPU.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
	QualityBest
)

func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	case QualityBest:
		return "best"
	}
	return fmt.Sprintf("quality(%d)", int(q))
}

// ParseQuality maps a quality name (case-insensitive) to its ordinal.
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(s) {
	case "low":
		return QualityLow, nil
	case "medium":
		return QualityMedium, nil
	case "high":
		return QualityHigh, nil
	case "best":
		return QualityBest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedQuality, s)
}

// MP3 describes an MP3 encode target. The PCM input of an MP3 conversion is
// always interleaved 16-bit little-endian samples at Channels.
type MP3 struct {
	SampleRate int     `validate:"oneof=8000 16000 22050 32000 44100 48000 96000"`
	Channels   int     `validate:"oneof=1 2"`
	Bitrate    Bitrate `validate:"oneof=64 128 192 256 320"`
	Quality    Quality `validate:"oneof=0 1 2 3"`
}

// DefaultMP3 returns the fallback encode target:
// 44.1 kHz stereo at 192 kbps, high quality.
func DefaultMP3() MP3 {
	return MP3{SampleRate: 44100, Channels: 2, Bitrate: Bitrate192, Quality: QualityHigh}
}

// BlockAlign is the size of one interleaved 16-bit sample frame in bytes.
func (c MP3) BlockAlign() int {
	return c.Channels * 2
}

// Validate checks every field against the supported enumerations.
// The returned error wraps one of the ErrUnsupported* sentinels.
func (c MP3) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].StructField() {
		case "SampleRate":
			return fmt.Errorf("%w: %d Hz", ErrUnsupportedSampleRate, c.SampleRate)
		case "Channels":
			return fmt.Errorf("%w: %d", ErrUnsupportedChannels, c.Channels)
		case "Bitrate":
			return fmt.Errorf("%w: %d kbps", ErrUnsupportedBitrate, int(c.Bitrate))
		case "Quality":
			return fmt.Errorf("%w: %d", ErrUnsupportedQuality, int(c.Quality))
		}
	}

	return fmt.Errorf("%w", err)
}

var validate = validator.New(validator.WithRequiredStructEnabled())
