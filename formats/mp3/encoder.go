// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	lame "github.com/viert/go-lame"

	"github.com/EchoNoReturn/audio-helper/config"
)

// batchFrames is the number of interleaved sample frames fed to the encoder
// per pass. LAME buffers input in 1152-frame MPEG granule pairs, so batches
// are a multiple of that.
const batchFrames = 8 * 1152

// Write encodes pcm as an MP3 elementary stream into w.
//
// pcm is interpreted as interleaved 16-bit signed little-endian samples at
// cfg.Channels. The buffer is fed to the encoder in fixed-size batches,
// then the encoder is flushed; the flush is what emits LAME's buffered
// trailing frames, so the stream would end with a truncated frame without
// it. No ID3 tags are added.
//
// cfg must pass Validate and len(pcm) must be a whole number of sample
// frames (cfg.BlockAlign() bytes each); a trailing partial sample is an
// error, not silently dropped.
func Write(w io.Writer, cfg config.MP3, pcm []byte) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	align := cfg.BlockAlign()
	if len(pcm)%align != 0 {
		return fmt.Errorf("%w: %d bytes with %d-byte frames", ErrUnalignedPCM, len(pcm), align)
	}

	// Track write errors ourselves: the binding's flush-on-close path does
	// not report them.
	out := &errWriter{w: w}

	enc := lame.NewEncoder(out)
	enc.SetInSamplerate(cfg.SampleRate)
	enc.SetNumChannels(cfg.Channels)
	enc.SetBrate(int(cfg.Bitrate))
	enc.SetQuality(lameQuality(cfg.Quality))

	batch := batchFrames * align
	for off := 0; off < len(pcm); off += batch {
		end := off + batch
		if end > len(pcm) {
			end = len(pcm)
		}
		if _, err := enc.Write(pcm[off:end]); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoder, err)
		}
		if out.err != nil {
			return fmt.Errorf("%w: %w", ErrEncoder, out.err)
		}
	}

	// Mandatory flush: emits the trailing frames still buffered inside LAME.
	enc.Close()
	if out.err != nil {
		return fmt.Errorf("%w: %w", ErrEncoder, out.err)
	}

	return nil
}

// lameQuality maps the ordinal quality setting onto LAME's inverted 0..9
// scale, where 0 is the slowest, highest-quality setting. QualityBest
// therefore selects the most CPU-expensive encode.
func lameQuality(q config.Quality) int {
	switch q {
	case config.QualityBest:
		return 0
	case config.QualityHigh:
		return 2
	case config.QualityMedium:
		return 5
	default:
		return 7
	}
}

// errWriter remembers the first error of the underlying writer so failures
// during the encoder's internal writes (including the flush) surface to the
// caller.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}

	return n, err
}
