// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding for the mixing pipeline.
//
// The decoder wraps github.com/jfreymuth/oggvorbis, which already produces
// interleaved float32 samples, so the adapter decodes straight into the
// caller's buffer with no conversion or copy:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("music.ogg")
//	source, err := decoder.Decode(file)
//	music, err := audio.Collect(source)
//
// Channel count and sample rate come from the stream. Decoding only.
package vorbis
