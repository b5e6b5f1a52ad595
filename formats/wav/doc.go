// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and 16-bit PCM WAV encoding.
//
// Decoding uses github.com/go-audio/wav, which walks arbitrary RIFF chunk
// layouts, so files with LIST/INFO or other extra chunks decode fine.
// Encoding is a hand-written canonical writer so the output bytes are fully
// determined: a 44-byte header followed by interleaved 16-bit little-endian
// samples, nothing else.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("voice.wav")
//	source, err := decoder.Decode(file)
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source producing interleaved float32 samples
// in [-1.0, 1.0], normalized from the file's bit depth (8, 16, 24 or 32
// bit PCM). Non-PCM formats are rejected.
//
// # Encoding
//
//	data, err := wav.EncodeBytes(mixed)   // complete file as one []byte
//	err = wav.Encode(file, mixed)         // or stream to a writer
//
// Samples are clamped to [-1, 1] and scaled asymmetrically (negative by
// 32768, non-negative by 32767) so the full float range maps onto int16
// without overflow. WritePCM16 is the lower-level entry point for callers
// that already hold interleaved int16 samples.
package wav
