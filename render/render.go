// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"math"

	"github.com/ik5/duckmix/audio"
	"github.com/ik5/duckmix/envelope"
)

var (
	ErrTooManyChannels = errors.New("render inputs must have at most two channels")
	ErrBadPadding      = errors.New("post-speech padding must not be negative")
	ErrBadVoiceBoost   = errors.New("voice boost must be positive")
)

// Params controls the offline mix render.
type Params struct {
	// VoiceBoost is a constant gain applied to the voice track.
	VoiceBoost float32
	// PostSpeechPadding in seconds extends the output past the voice's
	// end so the music can fade out on its own.
	PostSpeechPadding float64
}

// Render sums the voice (played once, boosted) with the music (looped,
// scaled by env) into a new signal of the computed target length. No
// limiting happens here; samples may exceed [-1, 1] until normalization.
func Render(voice, music *audio.Signal, env envelope.Envelope, p Params) (*audio.Signal, error) {
	if err := voice.Validate(); err != nil {
		return nil, err
	}
	if err := music.Validate(); err != nil {
		return nil, err
	}

	if voice.SampleRate() != music.SampleRate() {
		return nil, audio.ErrSampleRateMismatch
	}
	if voice.Channels() > 2 || music.Channels() > 2 {
		return nil, ErrTooManyChannels
	}
	if p.PostSpeechPadding < 0 {
		return nil, ErrBadPadding
	}
	if p.VoiceBoost <= 0 {
		return nil, ErrBadVoiceBoost
	}

	rate := voice.SampleRate()
	voiceFrames := voice.Frames()
	musicFrames := music.Frames()
	outFrames := voiceFrames + int(math.Ceil(float64(rate)*p.PostSpeechPadding))

	outChannels := voice.Channels()
	if music.Channels() > outChannels {
		outChannels = music.Channels()
	}

	// Mono inputs feed channel 0 into every output channel.
	voiceCh := make([][]float32, outChannels)
	musicCh := make([][]float32, outChannels)
	data := make([][]float32, outChannels)

	for c := 0; c < outChannels; c++ {
		voiceCh[c] = voice.Channel(min(c, voice.Channels()-1))
		musicCh[c] = music.Channel(min(c, music.Channels()-1))
		data[c] = make([]float32, outFrames)
	}

	cur := env.Cursor()
	invRate := 1.0 / float64(rate)

	for f := 0; f < outFrames; f++ {
		gain := float32(cur.GainAt(float64(f) * invRate))
		mf := f % musicFrames

		for c := 0; c < outChannels; c++ {
			sum := musicCh[c][mf] * gain
			if f < voiceFrames {
				sum += voiceCh[c][f] * p.VoiceBoost
			}
			data[c][f] = sum
		}
	}

	return audio.New(rate, data)
}
