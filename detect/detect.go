// SPDX-License-Identifier: EPL-2.0

package detect

import (
	"errors"

	"github.com/ik5/duckmix/audio"
)

var (
	ErrBadWindow    = errors.New("analysis window must be at least one frame")
	ErrBadHoldTime  = errors.New("hold time must not be negative")
	ErrBadThreshold = errors.New("speech threshold must not be negative")
)

// Segment is one span of detected speech, in seconds on the voice signal's
// timeline. End is always greater than Start.
type Segment struct {
	Start float64
	End   float64
}

// Params controls speech detection.
type Params struct {
	// Threshold is the linear amplitude a window's peak must exceed to
	// count as speech.
	Threshold float32
	// WindowFrames is the analysis window length in frames.
	WindowFrames int
	// HoldTime in seconds keeps a segment open across short pauses.
	HoldTime float64
}

// Detect scans the first channel of voice and returns the ordered,
// non-overlapping speech segments. Segment boundaries are quantized to
// analysis windows. A signal with no active window yields an empty slice.
func Detect(voice *audio.Signal, p Params) ([]Segment, error) {
	if err := voice.Validate(); err != nil {
		return nil, err
	}

	if p.WindowFrames < 1 {
		return nil, ErrBadWindow
	}
	if p.HoldTime < 0 {
		return nil, ErrBadHoldTime
	}
	if p.Threshold < 0 {
		return nil, ErrBadThreshold
	}

	ch := voice.Channel(0)
	rate := float64(voice.SampleRate())

	var (
		segments   []Segment
		current    Segment
		open       bool
		lastActive float64
	)

	for start := 0; start < len(ch); start += p.WindowFrames {
		end := start + p.WindowFrames
		if end > len(ch) {
			end = len(ch)
		}

		endTime := float64(end) / rate

		if windowPeak(ch[start:end]) > p.Threshold {
			if !open {
				current.Start = float64(start) / rate
				open = true
			}
			current.End = endTime
			lastActive = endTime
			continue
		}

		// Close only once the pause outlasts the hold time, so brief
		// gaps stay bridged into one segment.
		if open && endTime > lastActive+p.HoldTime {
			segments = append(segments, current)
			open = false
		}
	}

	if open {
		segments = append(segments, current)
	}

	return segments, nil
}

func windowPeak(window []float32) float32 {
	var peak float32

	for _, v := range window {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	return peak
}
