// SPDX-License-Identifier: EPL-2.0

// Package mp3 encodes raw PCM into an MP3 elementary stream.
//
// The bitstream itself is produced by LAME through github.com/viert/go-lame;
// this package owns the orchestration around it: configuration mapping,
// batched feeding of the sample buffer, and the mandatory final flush.
//
// # Encoding
//
//	cfg := config.DefaultMP3() // 44.1 kHz stereo, 192 kbps, high quality
//	file, _ := os.Create("output.mp3")
//	err := mp3.Write(file, cfg, pcmBytes)
//
// The PCM payload is always interpreted as interleaved 16-bit signed
// little-endian samples at cfg.Channels. A payload whose length is not a
// whole number of sample frames is rejected with ErrUnalignedPCM.
//
// # Quality Mapping
//
// The ordinal Quality setting maps onto LAME's inverted 0..9 effort scale:
//
//	QualityBest   -> 0 (slowest, highest quality)
//	QualityHigh   -> 2
//	QualityMedium -> 5
//	QualityLow    -> 7
//
// # The Flush Step
//
// LAME buffers up to a granule pair of input internally. Write always ends
// with an explicit flush so those trailing frames reach the output;
// omitting it would leave the stream with a truncated final frame.
//
// # Output Format
//
//   - MP3 elementary stream (MPEG Audio Layer 3), constant bitrate
//   - No ID3 tags
//   - Channel count and sample rate as configured
package mp3
