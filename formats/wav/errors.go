package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrNotPCM               = errors.New("not uncompressed PCM")
	ErrUnalignedPCM         = errors.New("PCM byte length not aligned to frame size")
)
