// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding for the mixing pipeline.
//
// The decoder wraps github.com/go-audio/aiff and exposes 16-bit PCM AIFF
// files as an audio.Source of float32 samples in [-1.0, 1.0]:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("voice.aiff")
//	source, err := decoder.Decode(file)
//	voice, err := audio.Collect(source)
//
// Only 16-bit PCM is accepted. Decoding only.
package aiff
