// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/duckmix/utils"
)

// Resample converts sig to dstRate using Catmull-Rom cubic interpolation
// over whole channel buffers. When downsampling, a simple one-pole low-pass
// runs over each channel first to tame aliasing.
//
// A sig already at dstRate is returned as-is. The output frame count is
// floor(srcFrames * dstRate / srcRate), at least one frame.
func Resample(sig *Signal, dstRate int) (*Signal, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	if dstRate <= 0 {
		return nil, ErrBadSampleRate
	}

	if dstRate == sig.SampleRate() {
		return sig, nil
	}

	// ratio is how many source frames advance per output frame.
	ratio := float64(sig.SampleRate()) / float64(dstRate)
	srcFrames := sig.Frames()

	dstFrames := int(float64(srcFrames) / ratio)
	if dstFrames < 1 {
		dstFrames = 1
	}

	data := make([][]float32, sig.Channels())

	for c := range data {
		src := sig.Channel(c)
		if ratio > 1.0 {
			src = lowpass(src)
		}

		dst := make([]float32, dstFrames)
		for j := range dst {
			pos := float64(j) * ratio
			i := int(pos)
			frac := float32(pos - float64(i))

			y0 := src[clampIndex(i-1, srcFrames)]
			y1 := src[clampIndex(i, srcFrames)]
			y2 := src[clampIndex(i+1, srcFrames)]
			y3 := src[clampIndex(i+2, srcFrames)]

			dst[j] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
		}

		data[c] = dst
	}

	return New(dstRate, data)
}

// lowpass returns a filtered copy of src using a one-pole filter seeded with
// the first sample to avoid a warm-up transient.
func lowpass(src []float32) []float32 {
	const alpha float32 = 0.5

	out := make([]float32, len(src))
	state := src[0]

	for i, v := range src {
		state = alpha*v + (1-alpha)*state
		out[i] = state
	}

	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
