// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	left := []float32{0.1, 0.2, 0.3, 0.4}
	right := []float32{-0.1, -0.2, -0.3, -0.4}

	sig, err := New(8000, [][]float32{left, right})
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}

	if sig.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", sig.SampleRate())
	}

	if sig.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", sig.Channels())
	}

	if sig.Frames() != 4 {
		t.Errorf("Frames() = %d, want 4", sig.Frames())
	}

	wantDur := 4.0 / 8000.0
	if math.Abs(sig.Duration()-wantDur) > 1e-12 {
		t.Errorf("Duration() = %v, want %v", sig.Duration(), wantDur)
	}

	if sig.Channel(1)[2] != -0.3 {
		t.Errorf("Channel(1)[2] = %v, want -0.3", sig.Channel(1)[2])
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    int
		data    [][]float32
		wantErr error
	}{
		{
			name:    "zero sample rate",
			rate:    0,
			data:    [][]float32{{0.1}},
			wantErr: ErrBadSampleRate,
		},
		{
			name:    "negative sample rate",
			rate:    -44100,
			data:    [][]float32{{0.1}},
			wantErr: ErrBadSampleRate,
		},
		{
			name:    "no channels",
			rate:    8000,
			data:    [][]float32{},
			wantErr: ErrNoChannels,
		},
		{
			name:    "no frames",
			rate:    8000,
			data:    [][]float32{{}},
			wantErr: ErrNoFrames,
		},
		{
			name:    "ragged channels",
			rate:    8000,
			data:    [][]float32{{0.1, 0.2}, {0.1}},
			wantErr: ErrRaggedChannels,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.rate, tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromInterleaved_Stereo(t *testing.T) {
	t.Parallel()

	// L R L R L R
	samples := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}

	sig, err := FromInterleaved(16000, 2, samples)
	if err != nil {
		t.Fatalf("FromInterleaved() error = %v", err)
	}

	if sig.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", sig.Frames())
	}

	wantLeft := []float32{0.1, 0.2, 0.3}
	wantRight := []float32{-0.1, -0.2, -0.3}

	for f := 0; f < 3; f++ {
		if sig.Channel(0)[f] != wantLeft[f] {
			t.Errorf("left[%d] = %v, want %v", f, sig.Channel(0)[f], wantLeft[f])
		}
		if sig.Channel(1)[f] != wantRight[f] {
			t.Errorf("right[%d] = %v, want %v", f, sig.Channel(1)[f], wantRight[f])
		}
	}
}

func TestFromInterleaved_Misaligned(t *testing.T) {
	t.Parallel()

	_, err := FromInterleaved(16000, 2, []float32{0.1, 0.2, 0.3})
	if !errors.Is(err, ErrInvalidInterleave) {
		t.Errorf("FromInterleaved() error = %v, want %v", err, ErrInvalidInterleave)
	}
}

func TestInterleaved_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3, 0.4, -0.4}

	sig, err := FromInterleaved(44100, 2, samples)
	if err != nil {
		t.Fatalf("FromInterleaved() error = %v", err)
	}

	got := sig.Interleaved()
	if len(got) != len(samples) {
		t.Fatalf("Interleaved() length = %d, want %d", len(got), len(samples))
	}

	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("Interleaved()[%d] = %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 1000, func(frame, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return -0.25
	})

	sig, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if sig.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", sig.SampleRate())
	}

	if sig.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", sig.Channels())
	}

	if sig.Frames() != 1000 {
		t.Errorf("Frames() = %d, want 1000", sig.Frames())
	}

	for f := 0; f < sig.Frames(); f++ {
		if sig.Channel(0)[f] != 0.25 || sig.Channel(1)[f] != -0.25 {
			t.Fatalf("frame %d = (%v, %v), want (0.25, -0.25)",
				f, sig.Channel(0)[f], sig.Channel(1)[f])
		}
	}
}

func TestCollect_EmptySource(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 0, 0.5)

	_, err := Collect(src)
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("Collect() error = %v, want %v", err, ErrNoFrames)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	sig, err := New(8000, [][]float32{{0.1, 0.2}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := sig.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	var nilSig *Signal
	if err := nilSig.Validate(); err == nil {
		t.Error("Validate() on nil signal = nil, want error")
	}
}
