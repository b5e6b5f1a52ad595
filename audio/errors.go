// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoChannels         = errors.New("signal must have at least one channel")
	ErrNoFrames           = errors.New("signal must have at least one frame")
	ErrBadSampleRate      = errors.New("sample rate must be positive")
	ErrRaggedChannels     = errors.New("all channels must have the same frame count")
	ErrInvalidInterleave  = errors.New("interleaved length must be multiple of channels")
	ErrSampleRateMismatch = errors.New("signals must share one sample rate")
)
