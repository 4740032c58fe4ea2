// SPDX-License-Identifier: EPL-2.0

package audiohelper

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/EchoNoReturn/audio-helper/config"
	"github.com/EchoNoReturn/audio-helper/formats/mp3"
	"github.com/EchoNoReturn/audio-helper/formats/wav"
	"github.com/EchoNoReturn/audio-helper/infer"
)

// Format selects the conversion target of AutoConvert.
type Format int

const (
	FormatWAV Format = iota
	FormatMP3
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat maps a format name (case-insensitive) to its Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "wav":
		return FormatWAV, nil
	case "mp3":
		return FormatMP3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ConvertToWAV reads the PCM file at inputPath fully into memory and writes
// it as a RIFF/WAVE file at outputPath. A nil cfg selects the default
// configuration (44.1 kHz stereo 16-bit).
//
// The config is validated before any I/O happens, and the output appears
// atomically: on any failure no file is left at outputPath.
func ConvertToWAV(inputPath, outputPath string, cfg *config.Audio) error {
	c := config.DefaultAudio()
	if cfg != nil {
		c = *cfg
	}
	if err := c.Validate(); err != nil {
		return err
	}

	pcm, err := readPCMFile(inputPath)
	if err != nil {
		return err
	}

	return writeAtomic(outputPath, func(w io.Writer) error {
		return wav.Write(w, c, pcm)
	})
}

// ConvertToMP3 reads the PCM file at inputPath fully into memory and
// encodes it as an MP3 file at outputPath. A nil cfg selects the default
// configuration (44.1 kHz stereo, 192 kbps, high quality). The input is
// interpreted as interleaved 16-bit little-endian samples.
//
// Validation and atomicity behave as in ConvertToWAV.
func ConvertToMP3(inputPath, outputPath string, cfg *config.MP3) error {
	c := config.DefaultMP3()
	if cfg != nil {
		c = *cfg
	}
	if err := c.Validate(); err != nil {
		return err
	}

	pcm, err := readPCMFile(inputPath)
	if err != nil {
		return err
	}

	return writeAtomic(outputPath, func(w io.Writer) error {
		return mp3.Write(w, c, pcm)
	})
}

// AutoConvert infers the PCM configuration from inputPath's filename and
// converts to the requested format. The returned Result reports the
// resolved configuration and which of its fields were recognized in the
// filename rather than defaulted, so callers can display or log what was
// actually used. The Result is valid even when the conversion itself fails.
//
// For MP3 targets the inferred sample rate and channel count are combined
// with the default bitrate and quality (192 kbps, high). An inferred 24-bit
// depth cannot be MP3-encoded and is rejected before any I/O.
func AutoConvert(inputPath, outputPath string, format Format) (infer.Result, error) {
	res := infer.Infer(filepath.Base(inputPath))

	switch format {
	case FormatWAV:
		c := res.Config
		return res, ConvertToWAV(inputPath, outputPath, &c)

	case FormatMP3:
		if res.Config.BitsPerSample != 16 {
			return res, fmt.Errorf("%w: inferred %d bit", mp3.ErrRequires16Bit, res.Config.BitsPerSample)
		}
		c := config.DefaultMP3()
		c.SampleRate = res.Config.SampleRate
		c.Channels = res.Config.Channels
		return res, ConvertToMP3(inputPath, outputPath, &c)
	}

	return res, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
}

// InferConfig exposes filename inference without performing a conversion.
// It is a pure function: no I/O, never fails.
func InferConfig(filename string) infer.Result {
	return infer.Infer(filename)
}

// readPCMFile loads the whole PCM payload into memory. Peak memory is
// proportional to the input size; an accepted trade-off for the supported
// audio durations.
func readPCMFile(path string) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pcm") {
		return nil, fmt.Errorf("%w: %s", ErrNotPCMFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return data, nil
}

// writeAtomic runs write against a temporary file in the destination
// directory and renames it into place only on success, so the caller either
// sees the complete file or none of it.
func writeAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	name := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(name)
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}

	committed = true
	return nil
}
