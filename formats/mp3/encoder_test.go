package mp3

import (
	"bytes"
	"errors"
	"io"
	"testing"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/EchoNoReturn/audio-helper/config"
	"github.com/EchoNoReturn/audio-helper/internal/audiotest"
)

func TestWrite_ProducesMPEGStream(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultMP3()
	pcm := audiotest.SinePCM16(cfg.SampleRate, cfg.Channels, cfg.SampleRate/2, 440)
	buf := new(bytes.Buffer)

	if err := Write(buf, cfg, pcm); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) == 0 {
		t.Fatal("encoder produced no output")
	}

	if _, ok := findFrameSync(data); !ok {
		t.Fatal("no MPEG frame sync found in output")
	}
}

func TestWrite_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.MP3
		wantErr error
	}{
		{
			"bad rate",
			config.MP3{SampleRate: 12345, Channels: 2, Bitrate: config.Bitrate192, Quality: config.QualityHigh},
			config.ErrUnsupportedSampleRate,
		},
		{
			"bad bitrate",
			config.MP3{SampleRate: 44100, Channels: 2, Bitrate: 100, Quality: config.QualityHigh},
			config.ErrUnsupportedBitrate,
		},
		{
			"bad quality",
			config.MP3{SampleRate: 44100, Channels: 2, Bitrate: config.Bitrate192, Quality: 9},
			config.ErrUnsupportedQuality,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			err := Write(buf, tt.cfg, audiotest.SilencePCM(100, tt.cfg.BlockAlign()))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Write() error = %v, want %v", err, tt.wantErr)
			}

			if buf.Len() != 0 {
				t.Errorf("wrote %d bytes despite invalid config", buf.Len())
			}
		})
	}
}

func TestWrite_UnalignedPCM(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultMP3() // 2 channels, 4-byte frames
	buf := new(bytes.Buffer)

	err := Write(buf, cfg, make([]byte, 7))
	if !errors.Is(err, ErrUnalignedPCM) {
		t.Fatalf("Write() error = %v, want ErrUnalignedPCM", err)
	}

	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes despite unaligned payload", buf.Len())
	}
}

func TestWrite_SmallInputStillFlushes(t *testing.T) {
	t.Parallel()

	// Less than one MPEG granule of input: all the audio lives in the
	// encoder's internal buffer until the flush.
	cfg := config.DefaultMP3()
	pcm := audiotest.SinePCM16(cfg.SampleRate, cfg.Channels, 100, 440)
	buf := new(bytes.Buffer)

	if err := Write(buf, cfg, pcm); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("flush produced no output for a sub-frame input")
	}
}

func TestWrite_ChannelMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		wantMono bool
	}{
		{"mono", 1, true},
		{"stereo", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.MP3{
				SampleRate: 44100,
				Channels:   tt.channels,
				Bitrate:    config.Bitrate128,
				Quality:    config.QualityMedium,
			}
			pcm := audiotest.SinePCM16(cfg.SampleRate, cfg.Channels, 44100/4, 440)
			buf := new(bytes.Buffer)

			if err := Write(buf, cfg, pcm); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			off, ok := findFrameSync(buf.Bytes())
			if !ok {
				t.Fatal("no MPEG frame sync found")
			}

			// Channel mode lives in bits 6-7 of the fourth header byte;
			// mode 3 is single channel.
			mode := (buf.Bytes()[off+3] >> 6) & 0x3
			if gotMono := mode == 3; gotMono != tt.wantMono {
				t.Errorf("frame channel mode = %d, want mono = %v", mode, tt.wantMono)
			}
		})
	}
}

// TestWrite_GoMP3Decodes verifies the stream with an independent decoder.
func TestWrite_GoMP3Decodes(t *testing.T) {
	t.Parallel()

	cfg := config.MP3{
		SampleRate: 44100,
		Channels:   2,
		Bitrate:    config.Bitrate192,
		Quality:    config.QualityHigh,
	}
	inFrames := 44100 / 2
	pcm := audiotest.SinePCM16(cfg.SampleRate, cfg.Channels, inFrames, 440)
	buf := new(bytes.Buffer)

	if err := Write(buf, cfg, pcm); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	dec, err := gomp3.NewDecoder(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("go-mp3 rejected the stream: %v", err)
	}

	if dec.SampleRate() != cfg.SampleRate {
		t.Errorf("decoded sample rate = %d, want %d", dec.SampleRate(), cfg.SampleRate)
	}

	// go-mp3 always emits 16-bit stereo, 4 bytes per frame.
	n, err := io.Copy(io.Discard, dec)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}
	gotFrames := int(n / 4)

	// Codec delay and final-frame padding add up to a few granules on each
	// end, so compare with a tolerance rather than exactly.
	const granule = 1152
	if gotFrames < inFrames-granule || gotFrames > inFrames+5*granule {
		t.Errorf("decoded %d frames from %d input frames", gotFrames, inFrames)
	}
}

func TestWrite_PropagatesWriteErrors(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultMP3()
	pcm := audiotest.SinePCM16(cfg.SampleRate, cfg.Channels, cfg.SampleRate, 440)

	err := Write(failWriter{}, cfg, pcm)
	if !errors.Is(err, ErrEncoder) {
		t.Fatalf("Write() error = %v, want ErrEncoder", err)
	}
}

// findFrameSync returns the offset of the first MPEG frame sync word.
func findFrameSync(data []byte) (int, bool) {
	for i := 0; i+3 < len(data); i++ {
		if data[i] == 0xff && data[i+1]&0xe0 == 0xe0 {
			return i, true
		}
	}
	return 0, false
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink unavailable")
}

func BenchmarkWrite(b *testing.B) {
	cfg := config.DefaultMP3()
	pcm := audiotest.SinePCM16(cfg.SampleRate, cfg.Channels, cfg.SampleRate, 440) // 1 second

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_ = Write(io.Discard, cfg, pcm)
	}
}
