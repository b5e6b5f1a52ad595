// SPDX-License-Identifier: EPL-2.0

// Package render mixes the voice and music signals into one output buffer.
//
// The voice track plays once from time zero, scaled by a constant boost.
// The music track loops seamlessly for the whole output and is scaled per
// sample by the gain envelope. Both are summed without limiting; peak
// normalization afterwards brings the mix back into range.
//
//	out, err := render.Render(voice, music, env, render.Params{
//	    VoiceBoost:        1.4,
//	    PostSpeechPadding: 3.0,
//	})
//
// The output runs PostSpeechPadding seconds past the end of the voice, at
// the voice's sample rate, with min(2, max(voice, music)) channels. Mono
// inputs are duplicated across a stereo output. Inputs must share one
// sample rate and carry at most two channels each; the pipeline resamples
// and downmixes before calling Render.
package render
