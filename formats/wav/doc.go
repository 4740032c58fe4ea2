// SPDX-License-Identifier: EPL-2.0

// Package wav writes and inspects RIFF/WAVE containers around raw PCM.
//
// # Writing WAV Files
//
// Write produces a complete, byte-exact WAV file: the canonical 44-byte
// header followed by the PCM payload verbatim.
//
//	cfg := config.Audio{SampleRate: 48000, Channels: 1, BitsPerSample: 16}
//	file, _ := os.Create("output.wav")
//	err := wav.Write(file, cfg, pcmBytes)
//
// The payload must already be interleaved little-endian samples at the
// configured bit depth; the writer never resamples or reorders bytes. Its
// length must be a multiple of cfg.BlockAlign() (one interleaved frame),
// otherwise Write refuses with ErrUnalignedPCM before touching the output.
//
// # Reading Headers Back
//
// ReadHeader parses the same canonical layout and returns the stated
// configuration plus data size, which makes round-trip verification cheap:
//
//	info, err := wav.ReadHeader(file)
//	// info.Config matches what Write was given, info.DataSize == len(pcm)
//
// # Error Handling
//
//   - ErrNotWavFile: missing RIFF/WAVE markers
//   - ErrUnsupportedWavLayout: header is not the canonical 44-byte layout
//   - ErrNotPCM: fmt chunk carries a compressed format tag
//   - ErrUnalignedPCM: payload length is not a whole number of frames
//
// # File Format
//
// The canonical layout written here:
//   - RIFF chunk descriptor (12 bytes): "RIFF", riff size, "WAVE"
//   - fmt chunk (24 bytes): PCM tag 1, channels, sample rate, byte rate,
//     block align, bits per sample
//   - data chunk header (8 bytes) followed by the samples
//
// All multi-byte fields are little-endian regardless of host byte order.
package wav
