// SPDX-License-Identifier: EPL-2.0

package audio

// PeakLevel returns the maximum absolute sample value across all channels
// of sig.
func PeakLevel(sig *Signal) float32 {
	var peak float32

	for c := 0; c < sig.Channels(); c++ {
		for _, v := range sig.Channel(c) {
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
	}

	return peak
}

// Normalize returns a copy of sig uniformly scaled so its absolute peak
// equals targetPeak. The same gain applies to every channel, preserving the
// balance between them.
//
// A fully silent signal is returned unchanged: amplifying silence would
// divide by a zero peak, and there is nothing to normalize anyway.
func Normalize(sig *Signal, targetPeak float32) *Signal {
	peak := PeakLevel(sig)
	if peak == 0 {
		return sig
	}

	gain := targetPeak / peak
	data := make([][]float32, sig.Channels())

	for c := range data {
		src := sig.Channel(c)
		dst := make([]float32, len(src))
		for i, v := range src {
			dst[i] = v * gain
		}
		data[c] = dst
	}

	out, _ := New(sig.SampleRate(), data)
	return out
}
