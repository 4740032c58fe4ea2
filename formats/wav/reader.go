package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/EchoNoReturn/audio-helper/config"
)

// Info is the parsed canonical header of a WAV file.
type Info struct {
	Config   config.Audio
	DataSize uint32
}

// ReadHeader parses the canonical 44-byte RIFF/WAVE header produced by
// Write: RIFF/WAVE markers, a 16-byte PCM fmt chunk, then the data chunk
// header. The reader is left positioned at the first payload byte.
//
// The parsed config is returned as the header states it; callers that need
// the supported-enumeration guarantee validate it themselves.
func ReadHeader(r io.Reader) (Info, error) {
	header := make([]byte, HeaderSize)

	if _, err := io.ReadFull(r, header); err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return Info{}, ErrNotWavFile
	}

	// fmt chunk at 12.., assuming canonical layout
	if !bytes.HasPrefix(header[12:16], []byte("fmt ")) {
		return Info{}, ErrUnsupportedWavLayout
	}

	audioFormat := binary.LittleEndian.Uint16(header[20:22])
	if audioFormat != pcmFormat {
		return Info{}, ErrNotPCM
	}

	// data chunk directly after fmt, as in the canonical 44-byte header
	if !bytes.HasPrefix(header[36:40], []byte("data")) {
		return Info{}, ErrUnsupportedWavLayout
	}

	return Info{
		Config: config.Audio{
			SampleRate:    int(binary.LittleEndian.Uint32(header[24:28])),
			Channels:      int(binary.LittleEndian.Uint16(header[22:24])),
			BitsPerSample: int(binary.LittleEndian.Uint16(header[34:36])),
		},
		DataSize: binary.LittleEndian.Uint32(header[40:44]),
	}, nil
}
