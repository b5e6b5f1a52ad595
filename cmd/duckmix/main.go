// SPDX-License-Identifier: EPL-2.0

// Command duckmix mixes a voice-over on top of a looping music bed and
// writes the result as a 16-bit PCM WAV file.
//
// Usage:
//
//	duckmix -voice narration.wav -music bed.mp3 -out mix.wav
//	duckmix -voice narration.wav -music bed.ogg -out mix.wav -config mix.yaml
//
// Input formats are chosen by file extension: .wav, .mp3, .ogg and .aiff
// are supported. The optional YAML config overrides individual mixing
// parameters; everything else keeps its default.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/duckmix"
	"github.com/ik5/duckmix/audio"
	"github.com/ik5/duckmix/formats/aiff"
	"github.com/ik5/duckmix/formats/mp3"
	"github.com/ik5/duckmix/formats/vorbis"
	"github.com/ik5/duckmix/formats/wav"
	"github.com/ik5/duckmix/internal/config"
)

func main() {
	voicePath := flag.String("voice", "", "Path to the voice-over track")
	musicPath := flag.String("music", "", "Path to the music track")
	outPath := flag.String("out", "mix.wav", "Path for the output WAV file")
	configPath := flag.String("config", "", "Optional path to a YAML config file")
	flag.Parse()

	if *voicePath == "" || *musicPath == "" {
		fmt.Fprintln(os.Stderr, "both -voice and -music are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := initLogger(cfg.Logging)

	logger.Info("Mixing",
		slog.String("voice", *voicePath),
		slog.String("music", *musicPath),
		slog.String("out", *outPath),
		slog.Float64("ducking_amount", cfg.Mix.DuckingAmount),
		slog.Float64("voice_boost", float64(cfg.Mix.VoiceBoost)),
	)

	registry := newRegistry()

	start := time.Now()

	voice, err := loadTrack(registry, *voicePath)
	if err != nil {
		logger.Error("Failed to load voice track", slog.String("error", err.Error()))
		os.Exit(1)
	}

	music, err := loadTrack(registry, *musicPath)
	if err != nil {
		logger.Error("Failed to load music track", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Tracks loaded",
		slog.Float64("voice_duration", voice.Duration()),
		slog.Int("voice_rate", voice.SampleRate()),
		slog.Float64("music_duration", music.Duration()),
		slog.Int("music_rate", music.SampleRate()),
		slog.Duration("elapsed", time.Since(start)),
	)

	data, err := duckmix.MixToWAV(voice, music, cfg.Mix.Params())
	if err != nil {
		logger.Error("Mixing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		logger.Error("Failed to write output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Done",
		slog.String("out", *outPath),
		slog.Int("bytes", len(data)),
		slog.Duration("elapsed", time.Since(start)),
	)
}

// newRegistry wires up one decoder per supported input format.
func newRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

// loadTrack decodes the file at path, picking the decoder by extension, and
// collects the whole stream into memory.
func loadTrack(registry *audio.Registry, path string) (*audio.Signal, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	decoder, ok := registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("unsupported format %q for %s", ext, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	src, err := decoder.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	sig, err := audio.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return sig, nil
}

// initLogger creates the structured logger described by the config.
func initLogger(cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
