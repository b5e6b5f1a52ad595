// SPDX-License-Identifier: EPL-2.0

// Package config loads the mixer's YAML configuration file and maps it onto
// pipeline parameters. Every key is optional; missing values keep their
// defaults, so a config file only has to name what it overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/duckmix"
)

// Config represents the complete mixer configuration.
type Config struct {
	Mix     MixConfig     `yaml:"mix"`
	Logging LoggingConfig `yaml:"logging"`
}

// MixConfig mirrors duckmix.Params with YAML keys.
type MixConfig struct {
	DuckingAmount           float64 `yaml:"ducking_amount"`
	NormalVolume            float64 `yaml:"normal_volume"`
	AttackTime              float64 `yaml:"attack_time"`             // seconds
	ReleaseTime             float64 `yaml:"release_time"`            // seconds
	LongSilenceThreshold    float64 `yaml:"long_silence_threshold"`  // seconds
	VoiceBoost              float32 `yaml:"voice_boost"`
	SpeechThreshold         float32 `yaml:"speech_threshold"`
	AnalysisWindowFrames    int     `yaml:"analysis_window_frames"`
	SpeechHoldTime          float64 `yaml:"speech_hold_time"`        // seconds
	PostSpeechPadding       float64 `yaml:"post_speech_padding"`     // seconds
	FadeOutDuration         float64 `yaml:"fade_out_duration"`       // seconds
	NormalizationTargetPeak float32 `yaml:"normalization_target_peak"`
	SilenceFloor            float64 `yaml:"silence_floor"`
}

// LoggingConfig controls the command-line tool's logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration matching duckmix.DefaultParams.
func Default() *Config {
	p := duckmix.DefaultParams()

	return &Config{
		Mix: MixConfig{
			DuckingAmount:           p.DuckingAmount,
			NormalVolume:            p.NormalVolume,
			AttackTime:              p.AttackTime,
			ReleaseTime:             p.ReleaseTime,
			LongSilenceThreshold:    p.LongSilenceThreshold,
			VoiceBoost:              p.VoiceBoost,
			SpeechThreshold:         p.SpeechThreshold,
			AnalysisWindowFrames:    p.AnalysisWindowFrames,
			SpeechHoldTime:          p.SpeechHoldTime,
			PostSpeechPadding:       p.PostSpeechPadding,
			FadeOutDuration:         p.FadeOutDuration,
			NormalizationTargetPeak: p.NormalizationTargetPeak,
			SilenceFloor:            p.SilenceFloor,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and parses the configuration file. Values absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Mix.Validate(); err != nil {
		return fmt.Errorf("mix config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates mixing parameters.
func (m *MixConfig) Validate() error {
	if m.DuckingAmount <= 0 {
		return fmt.Errorf("ducking_amount must be positive, got %f", m.DuckingAmount)
	}

	if m.NormalVolume <= 0 {
		return fmt.Errorf("normal_volume must be positive, got %f", m.NormalVolume)
	}

	if m.AttackTime < 0 || m.ReleaseTime < 0 {
		return fmt.Errorf("attack_time and release_time cannot be negative, got %f and %f",
			m.AttackTime, m.ReleaseTime)
	}

	if m.LongSilenceThreshold < 0 {
		return fmt.Errorf("long_silence_threshold cannot be negative, got %f", m.LongSilenceThreshold)
	}

	if m.VoiceBoost <= 0 {
		return fmt.Errorf("voice_boost must be positive, got %f", m.VoiceBoost)
	}

	if m.SpeechThreshold < 0 {
		return fmt.Errorf("speech_threshold cannot be negative, got %f", m.SpeechThreshold)
	}

	if m.AnalysisWindowFrames < 1 {
		return fmt.Errorf("analysis_window_frames must be at least 1, got %d", m.AnalysisWindowFrames)
	}

	if m.SpeechHoldTime < 0 {
		return fmt.Errorf("speech_hold_time cannot be negative, got %f", m.SpeechHoldTime)
	}

	if m.PostSpeechPadding < 0 {
		return fmt.Errorf("post_speech_padding cannot be negative, got %f", m.PostSpeechPadding)
	}

	if m.FadeOutDuration < 0 {
		return fmt.Errorf("fade_out_duration cannot be negative, got %f", m.FadeOutDuration)
	}

	if m.NormalizationTargetPeak <= 0 || m.NormalizationTargetPeak > 1 {
		return fmt.Errorf("normalization_target_peak must be in (0, 1], got %f", m.NormalizationTargetPeak)
	}

	if m.SilenceFloor <= 0 {
		return fmt.Errorf("silence_floor must be positive, got %f", m.SilenceFloor)
	}

	return nil
}

// Validate validates logging configuration.
func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	return nil
}

// Params converts the mix section to pipeline parameters.
func (m *MixConfig) Params() duckmix.Params {
	return duckmix.Params{
		DuckingAmount:           m.DuckingAmount,
		NormalVolume:            m.NormalVolume,
		AttackTime:              m.AttackTime,
		ReleaseTime:             m.ReleaseTime,
		LongSilenceThreshold:    m.LongSilenceThreshold,
		VoiceBoost:              m.VoiceBoost,
		SpeechThreshold:         m.SpeechThreshold,
		AnalysisWindowFrames:    m.AnalysisWindowFrames,
		SpeechHoldTime:          m.SpeechHoldTime,
		PostSpeechPadding:       m.PostSpeechPadding,
		FadeOutDuration:         m.FadeOutDuration,
		NormalizationTargetPeak: m.NormalizationTargetPeak,
		SilenceFloor:            m.SilenceFloor,
	}
}

// SlogLevel maps the configured level name to a slog.Level.
func (l *LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
