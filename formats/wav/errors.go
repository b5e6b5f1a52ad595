// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid WAV file
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrOnlyPCMSupported indicates the file uses a non-PCM sample format
	ErrOnlyPCMSupported = errors.New("only PCM WAV is supported")

	// ErrUnsupportedWavLayout indicates a WAV layout the decoder cannot handle
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrBadChannelCount indicates an invalid channel count for encoding
	ErrBadChannelCount = errors.New("channel count must be positive")
)
