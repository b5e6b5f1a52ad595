// SPDX-License-Identifier: EPL-2.0

// Package detect finds speech activity in a voice signal.
//
// Detection is peak-based: the first channel is split into consecutive
// analysis windows and a window counts as active when its maximum absolute
// sample exceeds a threshold. Active windows open or extend a segment;
// a segment closes only after the signal stays inactive past a hold time,
// so breaths and short pauses do not split one utterance into many
// segments.
//
//	segments, err := detect.Detect(voice, detect.Params{
//	    Threshold:    0.01,
//	    WindowFrames: 1024,
//	    HoldTime:     0.3,
//	})
//
// The result is ordered and non-overlapping; an entirely quiet signal
// yields an empty slice. The scan is a single pass with no look-ahead.
package detect
