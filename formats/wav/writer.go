// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/EchoNoReturn/audio-helper/config"
)

// HeaderSize is the size of the canonical RIFF/WAVE header this package
// writes and reads: RIFF chunk descriptor, fmt sub-chunk, data sub-chunk
// header.
const HeaderSize = 44

// pcmFormat is the fmt-chunk audio format tag for uncompressed PCM.
const pcmFormat = 1

// Write emits a complete RIFF/WAVE file: the 44-byte canonical header
// derived from cfg followed by pcm verbatim. The payload is assumed to be
// interleaved little-endian samples already at cfg's bit depth; no
// resampling or byte reordering happens here. All multi-byte header fields
// are little-endian regardless of host byte order.
//
// cfg must pass Validate and len(pcm) must be a multiple of
// cfg.BlockAlign(), otherwise nothing is written.
func Write(w io.Writer, cfg config.Audio, pcm []byte) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	align := cfg.BlockAlign()
	if len(pcm)%align != 0 {
		return fmt.Errorf("%w: %d bytes with %d-byte frames", ErrUnalignedPCM, len(pcm), align)
	}

	dataSize := uint32(len(pcm))
	riffSize := uint32(HeaderSize-8) + dataSize

	// Pre-allocate buffer for the entire header
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(cfg.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(cfg.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(cfg.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(align))
	binary.LittleEndian.PutUint16(header[34:36], uint16(cfg.BitsPerSample))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(pcm) == 0 {
		return nil
	}

	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
