// SPDX-License-Identifier: EPL-2.0

// Package audiohelper converts raw PCM capture files into playable
// containers (WAV, MP3) and infers PCM parameters from loosely structured
// filenames, so mobile callers do not have to track format metadata out of
// band.
//
// # Quick Start
//
// Convert a PCM file to WAV with an explicit configuration:
//
//	cfg := config.Audio{SampleRate: 48000, Channels: 1, BitsPerSample: 16}
//	err := audiohelper.ConvertToWAV("voice.pcm", "voice.wav", &cfg)
//
// Passing a nil config selects the defaults (44.1 kHz stereo 16-bit for
// WAV; 44.1 kHz stereo, 192 kbps, high quality for MP3).
//
// # Automatic Conversion
//
// Capture pipelines often encode the parameters in the filename itself.
// AutoConvert recognizes those tokens (mixed languages, arbitrary
// delimiters) and reports back what it used:
//
//	res, err := audiohelper.AutoConvert("音频_48k16bit单声道.pcm", "out.wav", audiohelper.FormatWAV)
//	// res.Config == {48000, 1, 16}, res.Matched says which fields were
//	// recognized rather than defaulted
//
// InferConfig exposes the same inference as a pure function, without any
// file I/O.
//
// # Behavior Guarantees
//
//   - Configs are validated before any I/O; there is no partial output.
//   - Output files appear atomically or not at all.
//   - A PCM payload that does not divide into whole sample frames is an
//     error, never silently truncated.
//   - All operations are synchronous and hold nothing beyond the input
//     buffer and the output file handle.
//
// # Subpackages
//
//   - config: configuration value types and validation
//   - infer: filename token recognition
//   - formats/wav: RIFF/WAVE container writer and header reader
//   - formats/mp3: MP3 encoding via LAME
//
// The cmd/libaudiohelper package exports this API across a C ABI for
// mobile integration; cmd/audiohelper is a small conversion CLI.
package audiohelper
