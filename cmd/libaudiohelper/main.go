// SPDX-License-Identifier: EPL-2.0

// Command libaudiohelper builds the C-callable shared library for mobile
// integration:
//
//	go build -buildmode=c-shared -o libaudiohelper.so ./cmd/libaudiohelper
//
// Every exported function returns 0 on success and -1 on failure; after a
// failure get_last_error returns a human-readable description. A NULL
// config pointer means "use the default configuration", not an error.
//
// Ownership contract: every string handed to the caller (error text,
// version) is allocated on the C heap by this library and MUST be released
// with free_string. Never free it with the caller's own allocator.
//
// The last-error slot is process-wide and not thread-safe: serialize
// fallible calls, or treat error text as valid only until the thread's own
// next fallible call.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	uint32_t sample_rate;
	uint16_t channels;
	uint16_t bits_per_sample;
} PcmConfig;

typedef struct {
	uint32_t sample_rate;
	uint8_t  channels;
	uint32_t bitrate;
	uint8_t  quality;
} Mp3Config;
*/
import "C"

import (
	"errors"
	"sync"
	"unsafe"

	audiohelper "github.com/EchoNoReturn/audio-helper"
	"github.com/EchoNoReturn/audio-helper/config"
)

var lastErr struct {
	mu  sync.Mutex
	msg string
}

func setLastError(err error) {
	lastErr.mu.Lock()
	lastErr.msg = err.Error()
	lastErr.mu.Unlock()
}

func lastError() string {
	lastErr.mu.Lock()
	defer lastErr.mu.Unlock()
	return lastErr.msg
}

var errNullArgument = errors.New("null pointer argument")

// goString converts a C string argument, rejecting NULL.
func goString(p *C.char) (string, bool) {
	if p == nil {
		setLastError(errNullArgument)
		return "", false
	}
	return C.GoString(p), true
}

//export pcm_to_wav
func pcm_to_wav(inputPath, outputPath *C.char, cfg *C.PcmConfig) C.int {
	in, ok := goString(inputPath)
	if !ok {
		return -1
	}
	out, ok := goString(outputPath)
	if !ok {
		return -1
	}

	var c *config.Audio
	if cfg != nil {
		c = &config.Audio{
			SampleRate:    int(cfg.sample_rate),
			Channels:      int(cfg.channels),
			BitsPerSample: int(cfg.bits_per_sample),
		}
	}

	if err := audiohelper.ConvertToWAV(in, out, c); err != nil {
		setLastError(err)
		return -1
	}
	return 0
}

//export pcm_to_mp3
func pcm_to_mp3(inputPath, outputPath *C.char, cfg *C.Mp3Config) C.int {
	in, ok := goString(inputPath)
	if !ok {
		return -1
	}
	out, ok := goString(outputPath)
	if !ok {
		return -1
	}

	var c *config.MP3
	if cfg != nil {
		c = &config.MP3{
			SampleRate: int(cfg.sample_rate),
			Channels:   int(cfg.channels),
			Bitrate:    config.Bitrate(cfg.bitrate),
			Quality:    config.Quality(cfg.quality),
		}
	}

	if err := audiohelper.ConvertToMP3(in, out, c); err != nil {
		setLastError(err)
		return -1
	}
	return 0
}

//export auto_convert_audio
func auto_convert_audio(inputPath, outputPath *C.char, format C.int) C.int {
	in, ok := goString(inputPath)
	if !ok {
		return -1
	}
	out, ok := goString(outputPath)
	if !ok {
		return -1
	}

	if _, err := audiohelper.AutoConvert(in, out, audiohelper.Format(format)); err != nil {
		setLastError(err)
		return -1
	}
	return 0
}

//export infer_config_from_filename
func infer_config_from_filename(filename *C.char, cfg *C.PcmConfig) C.int {
	name, ok := goString(filename)
	if !ok {
		return -1
	}
	if cfg == nil {
		setLastError(errNullArgument)
		return -1
	}

	res := audiohelper.InferConfig(name)
	cfg.sample_rate = C.uint32_t(res.Config.SampleRate)
	cfg.channels = C.uint16_t(res.Config.Channels)
	cfg.bits_per_sample = C.uint16_t(res.Config.BitsPerSample)
	return 0
}

//export get_last_error
func get_last_error() *C.char {
	return C.CString(lastError())
}

//export get_version
func get_version() *C.char {
	return C.CString(audiohelper.Version)
}

//export free_string
func free_string(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

func main() {}
