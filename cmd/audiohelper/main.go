// SPDX-License-Identifier: EPL-2.0

// Command audiohelper converts raw PCM files to WAV or MP3 from the
// command line.
//
// Usage:
//
//	audiohelper wav   [-rate N] [-channels N] [-bits N] <input.pcm> <output.wav>
//	audiohelper mp3   [-rate N] [-channels N] [-bitrate N] [-quality low|medium|high|best] <input.pcm> <output.mp3>
//	audiohelper auto  [-format wav|mp3] <input.pcm> <output>
//	audiohelper infer <filename>
//	audiohelper info  <file.wav>
//
// Logging is configured through LOG_LEVEL (debug|info|warn|error) and
// LOG_FORMAT (text|json).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sethvargo/go-envconfig"

	audiohelper "github.com/EchoNoReturn/audio-helper"
	"github.com/EchoNoReturn/audio-helper/config"
	"github.com/EchoNoReturn/audio-helper/formats/wav"
)

// processConfig holds process-level settings. The conversion API itself
// never reads the environment.
type processConfig struct {
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogFormat string `env:"LOG_FORMAT, default=text"`
}

func (c processConfig) newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

func main() {
	var pc processConfig
	if err := envconfig.Process(context.Background(), &pc); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := pc.newLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "wav":
		err = runWAV(log, os.Args[2:])
	case "mp3":
		err = runMP3(log, os.Args[2:])
	case "auto":
		err = runAuto(log, os.Args[2:])
	case "infer":
		err = runInfer(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "version":
		fmt.Println(audiohelper.Version)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: audiohelper <wav|mp3|auto|infer|info|version> ...")
}

func runWAV(log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("wav", flag.ExitOnError)
	rate := fs.Int("rate", 44100, "sample rate in Hz")
	channels := fs.Int("channels", 2, "channel count")
	bits := fs.Int("bits", 16, "bits per sample")
	in, out, err := parsePaths(fs, args)
	if err != nil {
		return err
	}

	cfg := config.Audio{SampleRate: *rate, Channels: *channels, BitsPerSample: *bits}
	if err := audiohelper.ConvertToWAV(in, out, &cfg); err != nil {
		return err
	}

	log.Info("wrote wav", "output", out, "rate", cfg.SampleRate, "channels", cfg.Channels, "bits", cfg.BitsPerSample)
	return nil
}

func runMP3(log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("mp3", flag.ExitOnError)
	rate := fs.Int("rate", 44100, "sample rate in Hz")
	channels := fs.Int("channels", 2, "channel count")
	bitrate := fs.Int("bitrate", 192, "bitrate in kbps")
	quality := fs.String("quality", "high", "encoder quality (low|medium|high|best)")
	in, out, err := parsePaths(fs, args)
	if err != nil {
		return err
	}

	q, err := config.ParseQuality(*quality)
	if err != nil {
		return err
	}

	cfg := config.MP3{
		SampleRate: *rate,
		Channels:   *channels,
		Bitrate:    config.Bitrate(*bitrate),
		Quality:    q,
	}
	if err := audiohelper.ConvertToMP3(in, out, &cfg); err != nil {
		return err
	}

	log.Info("wrote mp3", "output", out, "rate", cfg.SampleRate, "channels", cfg.Channels,
		"bitrate", int(cfg.Bitrate), "quality", cfg.Quality.String())
	return nil
}

func runAuto(log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("auto", flag.ExitOnError)
	format := fs.String("format", "wav", "target format (wav|mp3)")
	in, out, err := parsePaths(fs, args)
	if err != nil {
		return err
	}

	f, err := audiohelper.ParseFormat(*format)
	if err != nil {
		return err
	}

	res, err := audiohelper.AutoConvert(in, out, f)
	if err != nil {
		return err
	}

	log.Info("auto-converted", "output", out, "format", f.String(),
		"rate", res.Config.SampleRate, "channels", res.Config.Channels, "bits", res.Config.BitsPerSample,
		"rate_from_name", res.Matched.SampleRate, "channels_from_name", res.Matched.Channels,
		"bits_from_name", res.Matched.BitsPerSample)
	return nil
}

func runInfer(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("infer: missing filename")
	}

	res := audiohelper.InferConfig(args[0])
	fmt.Printf("%d Hz, %d channel(s), %d bit\n",
		res.Config.SampleRate, res.Config.Channels, res.Config.BitsPerSample)
	return nil
}

func runInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("info: missing file")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := wav.ReadHeader(f)
	if err != nil {
		return err
	}

	fmt.Printf("%d Hz, %d channel(s), %d bit, %d data bytes\n",
		info.Config.SampleRate, info.Config.Channels, info.Config.BitsPerSample, info.DataSize)
	return nil
}

func parsePaths(fs *flag.FlagSet, args []string) (in, out string, err error) {
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if fs.NArg() < 2 {
		return "", "", fmt.Errorf("%s: need <input> and <output>", fs.Name())
	}
	return fs.Arg(0), fs.Arg(1), nil
}
