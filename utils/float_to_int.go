// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts one float32 sample to signed 16-bit PCM.
// Input is clamped to [-1, 1] first. Negative values scale by 32768 and
// non-negative values by 32767 so both -1.0 and +1.0 land exactly on the
// int16 bounds without overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}
