// SPDX-License-Identifier: EPL-2.0

package duckmix

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/duckmix/audio"
	"github.com/ik5/duckmix/detect"
	"github.com/ik5/duckmix/envelope"
	"github.com/ik5/duckmix/formats/wav"
	"github.com/ik5/duckmix/render"
)

// ErrBadTargetPeak means the normalization target is outside (0, 1].
var ErrBadTargetPeak = errors.New("normalization target peak must be in (0, 1]")

// Params holds every tunable of the mixing pipeline. The zero value is not
// usable; start from DefaultParams and override what you need.
type Params struct {
	// DuckingAmount is the music gain while speech is active.
	DuckingAmount float64
	// NormalVolume is the music gain outside speech.
	NormalVolume float64
	// AttackTime in seconds for the ramp down to the ducked level.
	AttackTime float64
	// ReleaseTime in seconds for the ramp back to normal volume.
	ReleaseTime float64
	// LongSilenceThreshold is the minimum pause, in seconds, that earns a
	// volume restoration between speech segments.
	LongSilenceThreshold float64
	// VoiceBoost is a constant gain applied to the voice track.
	VoiceBoost float32
	// SpeechThreshold is the linear amplitude a window's peak must exceed
	// to count as speech.
	SpeechThreshold float32
	// AnalysisWindowFrames is the speech detector's window length.
	AnalysisWindowFrames int
	// SpeechHoldTime in seconds bridges short pauses inside a segment.
	SpeechHoldTime float64
	// PostSpeechPadding in seconds extends the output past the voice's end.
	PostSpeechPadding float64
	// FadeOutDuration is the closing fade length in seconds.
	FadeOutDuration float64
	// NormalizationTargetPeak is the final peak level of the mix.
	NormalizationTargetPeak float32
	// SilenceFloor is the fade-out target gain.
	SilenceFloor float64
}

// DefaultParams returns the parameter set tuned for voice-over narration
// above background music.
func DefaultParams() Params {
	return Params{
		DuckingAmount:           0.2,
		NormalVolume:            1.0,
		AttackTime:              0.2,
		ReleaseTime:             0.8,
		LongSilenceThreshold:    5.0,
		VoiceBoost:              1.4,
		SpeechThreshold:         0.01,
		AnalysisWindowFrames:    1024,
		SpeechHoldTime:          0.3,
		PostSpeechPadding:       3.0,
		FadeOutDuration:         5.0,
		NormalizationTargetPeak: 0.98,
		SilenceFloor:            0.001,
	}
}

// Mix runs the full pipeline and returns the normalized mix at the voice's
// sample rate. The voice plays once; the music loops for the whole output
// and is resampled first if its rate differs from the voice's.
//
// Inputs wider than stereo are folded down to stereo before mixing. Neither
// input signal is modified.
func Mix(voice, music *audio.Signal, p Params) (*audio.Signal, error) {
	if err := voice.Validate(); err != nil {
		return nil, fmt.Errorf("voice: %w", err)
	}
	if err := music.Validate(); err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	if p.NormalizationTargetPeak <= 0 || p.NormalizationTargetPeak > 1 {
		return nil, ErrBadTargetPeak
	}

	voice = audio.DownmixStereo(voice)
	music = audio.DownmixStereo(music)

	if music.SampleRate() != voice.SampleRate() {
		resampled, err := audio.Resample(music, voice.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("resampling music: %w", err)
		}
		music = resampled
	}

	segments, err := detect.Detect(voice, detect.Params{
		Threshold:    p.SpeechThreshold,
		WindowFrames: p.AnalysisWindowFrames,
		HoldTime:     p.SpeechHoldTime,
	})
	if err != nil {
		return nil, fmt.Errorf("detecting speech: %w", err)
	}

	// The envelope covers the full output, voice plus padding, measured in
	// whole frames so the fade timing matches the rendered length exactly.
	rate := voice.SampleRate()
	outFrames := voice.Frames() + int(math.Ceil(float64(rate)*p.PostSpeechPadding))
	totalDuration := float64(outFrames) / float64(rate)

	env, err := envelope.Generate(segments, totalDuration, envelope.Params{
		DuckingAmount:        p.DuckingAmount,
		NormalVolume:         p.NormalVolume,
		AttackTime:           p.AttackTime,
		ReleaseTime:          p.ReleaseTime,
		LongSilenceThreshold: p.LongSilenceThreshold,
		FadeOutDuration:      p.FadeOutDuration,
		SilenceFloor:         p.SilenceFloor,
	})
	if err != nil {
		return nil, fmt.Errorf("generating envelope: %w", err)
	}

	mixed, err := render.Render(voice, music, env, render.Params{
		VoiceBoost:        p.VoiceBoost,
		PostSpeechPadding: p.PostSpeechPadding,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	return audio.Normalize(mixed, p.NormalizationTargetPeak), nil
}

// MixToWAV runs Mix and encodes the result as a 16-bit PCM WAV file.
func MixToWAV(voice, music *audio.Signal, p Params) ([]byte, error) {
	mixed, err := Mix(voice, music, p)
	if err != nil {
		return nil, err
	}

	return wav.EncodeBytes(mixed)
}
