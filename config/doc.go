// SPDX-License-Identifier: EPL-2.0

// Package config defines the audio configuration value types shared by the
// conversion pipeline.
//
// An Audio value describes a raw PCM stream (sample rate, channels, bit
// depth); an MP3 value describes an encode target (sample rate, channels,
// bitrate, quality). Both are immutable plain data, constructed once per
// conversion and validated eagerly:
//
//	cfg := config.Audio{SampleRate: 48000, Channels: 1, BitsPerSample: 16}
//	if err := cfg.Validate(); err != nil {
//	    // wraps config.ErrUnsupportedSampleRate and friends
//	}
//
// Only the enumerations in SupportedSampleRates, channel counts {1, 2} and
// bit depths {16, 24} are accepted. Validation failures are sentinel-based
// so callers can branch with errors.Is.
package config
