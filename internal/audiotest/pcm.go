// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic PCM byte payloads for tests.
package audiotest

import (
	"encoding/binary"
	"math"
)

// SinePCM16 returns frames of an interleaved 16-bit little-endian sine
// tone at freq Hz, identical on every channel. Amplitude stays well below
// full scale so encoders never clip.
func SinePCM16(sampleRate, channels, frames int, freq float64) []byte {
	buf := make([]byte, frames*channels*2)
	for f := range frames {
		t := float64(f) / float64(sampleRate)
		v := int16(0.4 * 32767 * math.Sin(2*math.Pi*freq*t))
		for ch := range channels {
			binary.LittleEndian.PutUint16(buf[(f*channels+ch)*2:], uint16(v))
		}
	}
	return buf
}

// RampPCM16 returns frames of an interleaved 16-bit little-endian ramp,
// useful when tests need to compare exact sample values after a round
// trip. Channel ch at frame f carries f*channels+ch, wrapped into int16.
func RampPCM16(channels, frames int) []byte {
	buf := make([]byte, frames*channels*2)
	for f := range frames {
		for ch := range channels {
			v := int16((f*channels + ch) % 32768)
			binary.LittleEndian.PutUint16(buf[(f*channels+ch)*2:], uint16(v))
		}
	}
	return buf
}

// RampPCM24 returns frames of interleaved 24-bit little-endian samples
// with a deterministic ramp pattern.
func RampPCM24(channels, frames int) []byte {
	buf := make([]byte, frames*channels*3)
	for f := range frames {
		for ch := range channels {
			v := (f*channels + ch) * 257 // spread across the 24-bit range
			off := (f*channels + ch) * 3
			buf[off] = byte(v)
			buf[off+1] = byte(v >> 8)
			buf[off+2] = byte(v >> 16)
		}
	}
	return buf
}

// SilencePCM returns frames of zeroed sample frames of blockAlign bytes
// each.
func SilencePCM(frames, blockAlign int) []byte {
	return make([]byte, frames*blockAlign)
}
