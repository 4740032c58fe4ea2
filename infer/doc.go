// SPDX-License-Identifier: EPL-2.0

// Package infer recognizes audio parameters embedded in PCM filenames.
//
// Mobile recording pipelines often encode the capture parameters into the
// filename itself, with no consistent language or delimiter scheme:
//
//	浪花一朵朵片段8k16bit单声道.pcm
//	voice-48k-16bits-mono.pcm
//	music_44.1k16bit双声道.pcm
//
// Infer scans a filename with one independent matcher per field (sample
// rate, bit depth, channels) and assembles a complete, valid
// config.Audio, falling back to 44100 Hz / 2 channels / 16 bit for
// anything it cannot recognize. It is a total function: no input string
// makes it fail.
//
// The Result reports which fields were actually recognized, so callers can
// show or log what an automatic conversion ended up using:
//
//	res := infer.Infer("voice_48k16bits单声道.pcm")
//	// res.Config  == {48000, 1, 16}
//	// res.Matched == {SampleRate: true, Channels: true, BitsPerSample: true}
//
// Recognized-but-unsupported values (a "123k" rate, an "8bit" depth) are
// treated as non-matches rather than errors; the scan simply moves on to
// the next candidate or the default.
package infer
