// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/duckmix/audio"
)

// Sine builds a Signal carrying a sine tone at the given frequency on every
// channel.
func Sine(sampleRate, channels, frames int, frequency float64) *audio.Signal {
	return Build(sampleRate, channels, frames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// Constant builds a Signal where every sample holds the same value.
func Constant(sampleRate, channels, frames int, value float32) *audio.Signal {
	return Build(sampleRate, channels, frames, func(frame, channel int) float32 {
		return value
	})
}

// Silence builds an all-zero Signal.
func Silence(sampleRate, channels, frames int) *audio.Signal {
	return Constant(sampleRate, channels, frames, 0)
}

// Bursts builds a mono voice-like Signal: a 200 Hz tone at the given
// amplitude inside each [start, end) second interval, silence elsewhere.
// Useful for exercising speech detection with known segment boundaries.
func Bursts(sampleRate, frames int, amplitude float32, intervals [][2]float64) *audio.Signal {
	return Build(sampleRate, 1, frames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		for _, iv := range intervals {
			if t >= iv[0] && t < iv[1] {
				return amplitude * float32(math.Sin(2*math.Pi*200*t))
			}
		}
		return 0
	})
}

// Build constructs a Signal from a per-sample waveform function.
func Build(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *audio.Signal {
	data := make([][]float32, channels)

	for c := range data {
		data[c] = make([]float32, frames)
		for f := 0; f < frames; f++ {
			data[c][f] = waveform(f, c)
		}
	}

	sig, err := audio.New(sampleRate, data)
	if err != nil {
		panic(err)
	}

	return sig
}
