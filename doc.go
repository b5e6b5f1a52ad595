// SPDX-License-Identifier: EPL-2.0

// Package duckmix renders a voice-over on top of a looping music bed,
// automatically lowering the music while speech is active.
//
// The engine is fully offline: both tracks are decoded into memory, analyzed
// and mixed in one deterministic pass. Rendering the same inputs with the
// same parameters always produces byte-identical output.
//
// # Pipeline
//
// Mix runs five stages in order:
//
//  1. Conditioning: inputs wider than stereo are folded down and the music
//     is resampled to the voice's sample rate (audio subpackage).
//  2. Speech detection: the voice track is scanned window by window for
//     speech activity (detect subpackage).
//  3. Envelope generation: the detected segments become a piecewise-linear
//     gain curve for the music, with attack and release ramps, restoration
//     during long pauses, and a closing fade (envelope subpackage).
//  4. Rendering: the boosted voice and the looped, envelope-scaled music
//     are summed into the output signal (render subpackage).
//  5. Normalization: the mix is scaled so its peak lands on the target
//     level (audio.Normalize).
//
// # Quick Start
//
//	voiceFile, _ := os.Open("voice.wav")
//	musicFile, _ := os.Open("music.mp3")
//
//	voiceSrc, _ := wav.Decoder{}.Decode(voiceFile)
//	musicSrc, _ := mp3.Decoder{}.Decode(musicFile)
//
//	voice, _ := audio.Collect(voiceSrc)
//	music, _ := audio.Collect(musicSrc)
//
//	data, err := duckmix.MixToWAV(voice, music, duckmix.DefaultParams())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("mix.wav", data, 0o644)
//
// # Supported Formats
//
// Decoders live under formats/ and all return an audio.Source:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is always 16-bit PCM WAV, written by formats/wav.
//
// # Parameters
//
// Params controls every stage of the pipeline. DefaultParams returns a set
// tuned for spoken-word content over background music: the music drops to
// 20% while speech plays, recovers during pauses of five seconds or more,
// and fades out over the last five seconds of the program.
//
// For finer control the stages can be run individually; Mix is a thin
// orchestration over the detect, envelope, render and audio subpackages.
package duckmix
