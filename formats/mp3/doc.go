// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding for the mixing pipeline.
//
// The decoder wraps github.com/hajimehoshi/go-mp3 and exposes its 16-bit
// PCM output as an audio.Source of float32 samples in [-1.0, 1.0]:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("music.mp3")
//	source, err := decoder.Decode(file)
//	music, err := audio.Collect(source)
//
// go-mp3 always outputs interleaved stereo; the sample rate comes from the
// file. Decoding only; MP3 is never an output format here.
package mp3
