// SPDX-License-Identifier: EPL-2.0

package duckmix_test

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/ik5/duckmix"
	"github.com/ik5/duckmix/audio"
	"github.com/ik5/duckmix/detect"
	"github.com/ik5/duckmix/internal/audiotest"
)

const testRate = 8000

func testParams() duckmix.Params {
	p := duckmix.DefaultParams()
	p.FadeOutDuration = 1.0
	return p
}

func TestDefaultParams(t *testing.T) {
	t.Parallel()

	p := duckmix.DefaultParams()

	if p.DuckingAmount != 0.2 {
		t.Errorf("DuckingAmount = %v, want 0.2", p.DuckingAmount)
	}

	if p.VoiceBoost != 1.4 {
		t.Errorf("VoiceBoost = %v, want 1.4", p.VoiceBoost)
	}

	if p.PostSpeechPadding != 3.0 {
		t.Errorf("PostSpeechPadding = %v, want 3.0", p.PostSpeechPadding)
	}

	if p.NormalizationTargetPeak != 0.98 {
		t.Errorf("NormalizationTargetPeak = %v, want 0.98", p.NormalizationTargetPeak)
	}
}

func TestMix_OutputLength(t *testing.T) {
	t.Parallel()

	voice := audiotest.Silence(testRate, 1, testRate) // 1 second
	music := audiotest.Sine(testRate, 1, testRate/2, 440)

	out, err := duckmix.Mix(voice, music, testParams())
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	wantFrames := testRate + 3*testRate
	if out.Frames() != wantFrames {
		t.Errorf("Frames() = %d, want %d", out.Frames(), wantFrames)
	}

	if out.SampleRate() != testRate {
		t.Errorf("SampleRate() = %d, want %d", out.SampleRate(), testRate)
	}
}

func TestMix_DucksAndRestores(t *testing.T) {
	t.Parallel()

	// Two seconds of constant full-scale voice over a constant music bed.
	// Speech covers the whole voice, so during it the music sits at the
	// ducked level and the peak is voice*boost + music*duck = 1.5.
	voice := audiotest.Constant(testRate, 1, 2*testRate, 1.0)
	music := audiotest.Constant(testRate, 1, testRate, 0.5)

	out, err := duckmix.Mix(voice, music, testParams())
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	// Normalization scales the 1.5 peak down to the 0.98 target.
	scale := 0.98 / 1.5

	// t=3.5s: speech long over, gain fully restored, music alone at 0.5.
	restored := out.Channel(0)[int(3.5*testRate)]
	if math.Abs(float64(restored)-0.5*scale) > 0.001 {
		t.Errorf("restored sample = %v, want %v", restored, 0.5*scale)
	}

	// t=0.5s: speech active, ducked music under the boosted voice.
	ducked := out.Channel(0)[testRate/2]
	want := (1.0*1.4 + 0.5*0.2) * scale
	if math.Abs(float64(ducked)-want) > 0.001 {
		t.Errorf("ducked sample = %v, want %v", ducked, want)
	}

	// Final sample sits at the silence floor.
	last := out.Channel(0)[out.Frames()-1]
	if math.Abs(float64(last)) > 0.01 {
		t.Errorf("final sample = %v, want near zero", last)
	}
}

func TestMix_NormalizedPeak(t *testing.T) {
	t.Parallel()

	voice := audiotest.Bursts(testRate, 2*testRate, 0.5, [][2]float64{{0.3, 1.2}})
	music := audiotest.Sine(testRate, 1, testRate, 330)

	out, err := duckmix.Mix(voice, music, testParams())
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	peak := audio.PeakLevel(out)
	if math.Abs(float64(peak)-0.98) > 0.0001 {
		t.Errorf("PeakLevel() = %v, want 0.98", peak)
	}
}

func TestMix_SilentInputs(t *testing.T) {
	t.Parallel()

	voice := audiotest.Silence(testRate, 1, testRate)
	music := audiotest.Silence(testRate, 1, testRate)

	out, err := duckmix.Mix(voice, music, testParams())
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if peak := audio.PeakLevel(out); peak != 0 {
		t.Errorf("PeakLevel() = %v, want 0 for silent inputs", peak)
	}
}

func TestMix_ResamplesMusic(t *testing.T) {
	t.Parallel()

	voice := audiotest.Silence(testRate, 1, testRate)
	music := audiotest.Sine(4000, 1, 4000, 220)

	out, err := duckmix.Mix(voice, music, testParams())
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if out.SampleRate() != testRate {
		t.Errorf("SampleRate() = %d, want %d", out.SampleRate(), testRate)
	}
}

func TestMix_FoldsWideInputs(t *testing.T) {
	t.Parallel()

	voice := audiotest.Silence(testRate, 1, testRate)
	music := audiotest.Constant(testRate, 4, testRate, 0.25)

	out, err := duckmix.Mix(voice, music, testParams())
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if out.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", out.Channels())
	}
}

func TestMix_InvalidInput(t *testing.T) {
	t.Parallel()

	valid := audiotest.Silence(testRate, 1, testRate)

	tests := []struct {
		name    string
		voice   *audio.Signal
		music   *audio.Signal
		modify  func(*duckmix.Params)
		wantErr error
	}{
		{
			// A zero-value Signal fails validation on its rate first.
			name:    "zero-value voice",
			voice:   &audio.Signal{},
			music:   valid,
			wantErr: audio.ErrBadSampleRate,
		},
		{
			name:    "zero-value music",
			voice:   valid,
			music:   &audio.Signal{},
			wantErr: audio.ErrBadSampleRate,
		},
		{
			name:    "zero target peak",
			voice:   valid,
			music:   valid,
			modify:  func(p *duckmix.Params) { p.NormalizationTargetPeak = 0 },
			wantErr: duckmix.ErrBadTargetPeak,
		},
		{
			name:    "target peak above one",
			voice:   valid,
			music:   valid,
			modify:  func(p *duckmix.Params) { p.NormalizationTargetPeak = 1.5 },
			wantErr: duckmix.ErrBadTargetPeak,
		},
		{
			name:    "zero analysis window",
			voice:   valid,
			music:   valid,
			modify:  func(p *duckmix.Params) { p.AnalysisWindowFrames = 0 },
			wantErr: detect.ErrBadWindow,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := testParams()
			if tt.modify != nil {
				tt.modify(&p)
			}

			_, err := duckmix.Mix(tt.voice, tt.music, p)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Mix() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMix_Deterministic(t *testing.T) {
	t.Parallel()

	voice := audiotest.Bursts(testRate, 2*testRate, 0.5, [][2]float64{{0.2, 0.8}})
	music := audiotest.Sine(testRate, 2, testRate, 440)

	first, err := duckmix.MixToWAV(voice, music, testParams())
	if err != nil {
		t.Fatalf("MixToWAV() error = %v", err)
	}

	second, err := duckmix.MixToWAV(voice, music, testParams())
	if err != nil {
		t.Fatalf("MixToWAV() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("output lengths differ: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("outputs differ at byte %d", i)
		}
	}
}

func TestMixToWAV_Header(t *testing.T) {
	t.Parallel()

	voice := audiotest.Silence(testRate, 1, testRate)
	music := audiotest.Constant(testRate, 1, testRate, 0.5)

	data, err := duckmix.MixToWAV(voice, music, testParams())
	if err != nil {
		t.Fatalf("MixToWAV() error = %v", err)
	}

	wantFrames := testRate + 3*testRate
	wantLen := 44 + wantFrames*2
	if len(data) != wantLen {
		t.Errorf("len(data) = %d, want %d", len(data), wantLen)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Error("output is not a RIFF/WAVE file")
	}

	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != testRate {
		t.Errorf("header sample rate = %d, want %d", rate, testRate)
	}
}

func BenchmarkMix(b *testing.B) {
	voice := audiotest.Bursts(testRate, 5*testRate, 0.5, [][2]float64{{0.5, 2.0}, {3.0, 4.5}})
	music := audiotest.Sine(testRate, 2, 2*testRate, 440)
	p := testParams()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := duckmix.Mix(voice, music, p)
		if err != nil {
			b.Fatal(err)
		}
	}
}
