// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Signal is a complete, decoded audio buffer: planar per-channel float32
// samples at a fixed sample rate. All channels hold the same frame count.
//
// Pipeline stages treat Signals as immutable values. Channel exposes the
// underlying slice for reading; callers that need to modify samples must
// allocate their own copy.
type Signal struct {
	rate int
	data [][]float32
}

// New builds a Signal from planar channel data. It fails on a non-positive
// sample rate, zero channels, zero frames, or ragged channel lengths.
func New(rate int, data [][]float32) (*Signal, error) {
	if rate <= 0 {
		return nil, ErrBadSampleRate
	}
	if len(data) == 0 {
		return nil, ErrNoChannels
	}

	frames := len(data[0])
	if frames == 0 {
		return nil, ErrNoFrames
	}

	for _, ch := range data[1:] {
		if len(ch) != frames {
			return nil, ErrRaggedChannels
		}
	}

	return &Signal{rate: rate, data: data}, nil
}

// FromInterleaved builds a Signal from interleaved samples, deinterleaving
// them into planar channel buffers.
func FromInterleaved(rate, channels int, samples []float32) (*Signal, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrInvalidInterleave
	}

	frames := len(samples) / channels
	data := make([][]float32, channels)

	for c := range data {
		data[c] = make([]float32, frames)
		for f := 0; f < frames; f++ {
			data[c][f] = samples[f*channels+c]
		}
	}

	return New(rate, data)
}

// Collect drains src to exhaustion and returns the decoded audio as a
// Signal. The read buffer is sized from src.BufSize, rounded to whole
// frames.
func Collect(src Source) (*Signal, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	bufSize -= bufSize % channels

	var samples []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("collect samples: %w", err)
		}

		if n == 0 {
			break
		}
	}

	// Drop a trailing partial frame rather than padding it with zeros.
	samples = samples[:len(samples)-len(samples)%channels]

	return FromInterleaved(src.SampleRate(), channels, samples)
}

// SampleRate of the signal in Hz.
func (s *Signal) SampleRate() int { return s.rate }

// Channels count.
func (s *Signal) Channels() int { return len(s.data) }

// Frames per channel.
func (s *Signal) Frames() int {
	if len(s.data) == 0 {
		return 0
	}
	return len(s.data[0])
}

// Duration in seconds.
func (s *Signal) Duration() float64 {
	return float64(s.Frames()) / float64(s.rate)
}

// Channel returns the sample slice for channel c. The slice is shared with
// the Signal; it must not be written to.
func (s *Signal) Channel(c int) []float32 { return s.data[c] }

// Interleaved returns a freshly allocated interleaved copy of all channels,
// the layout the WAV encoder writes.
func (s *Signal) Interleaved() []float32 {
	channels := s.Channels()
	frames := s.Frames()
	out := make([]float32, frames*channels)

	for c, ch := range s.data {
		for f, v := range ch {
			out[f*channels+c] = v
		}
	}

	return out
}

// Validate re-checks the structural invariants. Stages call this on their
// inputs so a malformed signal fails fast instead of corrupting output.
func (s *Signal) Validate() error {
	if s == nil {
		return ErrNoChannels
	}

	_, err := New(s.rate, s.data)
	if err != nil {
		return err
	}

	return nil
}
