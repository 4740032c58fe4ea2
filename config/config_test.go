package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAudio(t *testing.T) {
	t.Parallel()

	cfg := DefaultAudio()
	assert.Equal(t, 44100, cfg.SampleRate)
	assert.Equal(t, 2, cfg.Channels)
	assert.Equal(t, 16, cfg.BitsPerSample)
	require.NoError(t, cfg.Validate())
}

func TestDefaultMP3(t *testing.T) {
	t.Parallel()

	cfg := DefaultMP3()
	assert.Equal(t, 44100, cfg.SampleRate)
	assert.Equal(t, 2, cfg.Channels)
	assert.Equal(t, Bitrate192, cfg.Bitrate)
	assert.Equal(t, QualityHigh, cfg.Quality)
	require.NoError(t, cfg.Validate())
}

func TestAudioValidate_SupportedMatrix(t *testing.T) {
	t.Parallel()

	for _, rate := range SupportedSampleRates {
		for _, channels := range []int{1, 2} {
			for _, bits := range []int{16, 24} {
				cfg := Audio{SampleRate: rate, Channels: channels, BitsPerSample: bits}
				assert.NoError(t, cfg.Validate(), "config %+v", cfg)
			}
		}
	}
}

func TestAudioValidate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Audio
		wantErr error
	}{
		{"rate not in set", Audio{SampleRate: 12345, Channels: 2, BitsPerSample: 16}, ErrUnsupportedSampleRate},
		{"rate 44000 not coerced", Audio{SampleRate: 44000, Channels: 2, BitsPerSample: 16}, ErrUnsupportedSampleRate},
		{"zero rate", Audio{SampleRate: 0, Channels: 2, BitsPerSample: 16}, ErrUnsupportedSampleRate},
		{"three channels", Audio{SampleRate: 44100, Channels: 3, BitsPerSample: 16}, ErrUnsupportedChannels},
		{"zero channels", Audio{SampleRate: 44100, Channels: 0, BitsPerSample: 16}, ErrUnsupportedChannels},
		{"8 bit", Audio{SampleRate: 44100, Channels: 2, BitsPerSample: 8}, ErrUnsupportedBitDepth},
		{"32 bit", Audio{SampleRate: 44100, Channels: 2, BitsPerSample: 32}, ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMP3Validate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     MP3
		wantErr error
	}{
		{"rate not in set", MP3{SampleRate: 12345, Channels: 2, Bitrate: Bitrate192, Quality: QualityHigh}, ErrUnsupportedSampleRate},
		{"three channels", MP3{SampleRate: 44100, Channels: 3, Bitrate: Bitrate192, Quality: QualityHigh}, ErrUnsupportedChannels},
		{"bitrate 100", MP3{SampleRate: 44100, Channels: 2, Bitrate: 100, Quality: QualityHigh}, ErrUnsupportedBitrate},
		{"quality 7", MP3{SampleRate: 44100, Channels: 2, Bitrate: Bitrate192, Quality: 7}, ErrUnsupportedQuality},
		{"negative quality", MP3{SampleRate: 44100, Channels: 2, Bitrate: Bitrate192, Quality: -1}, ErrUnsupportedQuality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAudioDerivedSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cfg        Audio
		blockAlign int
		byteRate   int
	}{
		{Audio{SampleRate: 44100, Channels: 2, BitsPerSample: 16}, 4, 176400},
		{Audio{SampleRate: 8000, Channels: 1, BitsPerSample: 16}, 2, 16000},
		{Audio{SampleRate: 48000, Channels: 2, BitsPerSample: 24}, 6, 288000},
		{Audio{SampleRate: 96000, Channels: 1, BitsPerSample: 24}, 3, 288000},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d_%d", tt.cfg.SampleRate, tt.cfg.Channels, tt.cfg.BitsPerSample), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.blockAlign, tt.cfg.BlockAlign())
			assert.Equal(t, tt.byteRate, tt.cfg.ByteRate())
		})
	}
}

func TestMP3BlockAlign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, MP3{SampleRate: 44100, Channels: 1}.BlockAlign())
	assert.Equal(t, 4, MP3{SampleRate: 44100, Channels: 2}.BlockAlign())
}

func TestSampleRateSupported(t *testing.T) {
	t.Parallel()

	for _, rate := range SupportedSampleRates {
		assert.True(t, SampleRateSupported(rate), "rate %d", rate)
	}
	assert.False(t, SampleRateSupported(22000))
	assert.False(t, SampleRateSupported(44000))
	assert.False(t, SampleRateSupported(0))
	assert.False(t, SampleRateSupported(-8000))
}

func TestParseQuality(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in   string
		want Quality
	}{
		{"low", QualityLow},
		{"Medium", QualityMedium},
		{"HIGH", QualityHigh},
		{"best", QualityBest},
	} {
		got, err := ParseQuality(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseQuality("ultra")
	assert.ErrorIs(t, err, ErrUnsupportedQuality)
}

func TestQualityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "low", QualityLow.String())
	assert.Equal(t, "best", QualityBest.String())
	assert.Equal(t, "quality(9)", Quality(9).String())
}
