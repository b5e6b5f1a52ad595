// SPDX-License-Identifier: EPL-2.0

package audio

// DownmixMono averages all channels of sig into a single channel. A mono
// signal passes through unchanged.
func DownmixMono(sig *Signal) *Signal {
	channels := sig.Channels()
	if channels == 1 {
		return sig
	}

	frames := sig.Frames()
	out := make([]float32, frames)
	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2: // Stereo (most common)
		left, right := sig.Channel(0), sig.Channel(1)
		for f := 0; f < frames; f++ {
			out[f] = (left[f] + right[f]) * 0.5
		}
	default: // Generic path
		for f := 0; f < frames; f++ {
			sum := float32(0)
			for c := 0; c < channels; c++ {
				sum += sig.Channel(c)[f]
			}
			out[f] = sum * inv
		}
	}

	mixed, _ := New(sig.SampleRate(), [][]float32{out})
	return mixed
}

// DownmixStereo reduces sig to at most two channels. Signals with one or two
// channels pass through unchanged; wider layouts fold surplus channels into
// the stereo pair alternately, rescaled so the fold cannot clip more than
// plain averaging would.
func DownmixStereo(sig *Signal) *Signal {
	channels := sig.Channels()
	if channels <= 2 {
		return sig
	}

	frames := sig.Frames()
	left := make([]float32, frames)
	right := make([]float32, frames)

	// perSide counts how many source channels land on each output channel.
	perSide := [2]float32{}
	for c := 0; c < channels; c++ {
		perSide[c%2]++
	}

	for f := 0; f < frames; f++ {
		var sums [2]float32
		for c := 0; c < channels; c++ {
			sums[c%2] += sig.Channel(c)[f]
		}
		left[f] = sums[0] / perSide[0]
		right[f] = sums[1] / perSide[1]
	}

	mixed, _ := New(sig.SampleRate(), [][]float32{left, right})
	return mixed
}
