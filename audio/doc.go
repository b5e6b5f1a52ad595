// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core audio primitives of the mixing engine.
//
// This package contains the building blocks shared by every pipeline stage:
//   - Signal, an in-memory multi-channel float32 buffer
//   - Source interface for streaming decoder output
//   - Registry for decoder registration by format key
//   - Resample for offline sample rate conversion
//   - DownmixMono / DownmixStereo for channel reduction
//   - Normalize for peak normalization
//
// # Signal
//
// A Signal holds complete, already-decoded audio as planar (per-channel)
// float32 sample slices plus a sample rate:
//
//	sig, err := audio.New(44100, [][]float32{left, right})
//	dur := sig.Duration() // seconds
//
// All channels of one Signal share the same frame count. Pipeline stages
// treat Signals as immutable: each stage allocates its own output and never
// writes into an input it was handed.
//
// # Source Interface
//
// The Source interface is how decoders expose audio:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Collect drains a Source into a Signal, which is the form the offline
// engine works on:
//
//	src, _ := decoder.Decode(file)
//	sig, err := audio.Collect(src)
//
// # Resampling
//
// Resample converts a Signal to a new sample rate using Catmull-Rom cubic
// interpolation, with a simple one-pole low-pass applied when downsampling:
//
//	music48k, err := audio.Resample(music, 48000)
//
// The mixing pipeline uses this to bring the music track to the voice
// track's rate before rendering.
//
// # Channel Reduction
//
// DownmixMono averages all channels into one; DownmixStereo folds channels
// beyond the first two into the stereo pair. The renderer never takes more
// than two channels, so wider inputs go through DownmixStereo first.
//
// # Peak Normalization
//
// Normalize scales a Signal so its absolute peak lands on a target level:
//
//	out := audio.Normalize(mixed, 0.98)
//
// A fully silent Signal is returned unchanged; silence is never amplified.
//
// # Sample Format
//
// Samples are float32 nominally in [-1.0, 1.0]. Intermediate stages (summing
// voice over music) may exceed that range; normalization and the WAV
// encoder's clamping bring the final output back in range.
//
// # Error Handling
//
// Streaming reads return io.EOF when a Source is exhausted. Structural
// problems (no frames, bad sample rate, ragged channels) surface as the
// sentinel errors in errors.go and can be tested with errors.Is.
package audio
