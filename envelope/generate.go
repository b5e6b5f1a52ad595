// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"errors"

	"github.com/ik5/duckmix/detect"
)

var (
	ErrBadDuration = errors.New("total duration must be positive")
	ErrBadTiming   = errors.New("attack, release and fade-out must not be negative")
	ErrBadLevels   = errors.New("gain levels must be positive")
)

// Params controls envelope generation. All gains are linear.
type Params struct {
	// DuckingAmount is the music gain while speech is active.
	DuckingAmount float64
	// NormalVolume is the music gain outside speech.
	NormalVolume float64
	// AttackTime is how long the ramp down to the ducked level takes.
	AttackTime float64
	// ReleaseTime is how long the ramp back to normal volume takes.
	ReleaseTime float64
	// LongSilenceThreshold is the minimum gap between segments that earns
	// a volume restoration. Shorter gaps stay ducked.
	LongSilenceThreshold float64
	// FadeOutDuration is the closing fade length.
	FadeOutDuration float64
	// SilenceFloor is the fade target. A small positive value instead of
	// zero keeps ramps non-degenerate.
	SilenceFloor float64
}

// Generate builds the music gain envelope for the given speech segments over
// a program of totalDuration seconds. Segments must be ordered and
// non-overlapping, as detect.Detect produces them.
//
// The curve starts with a Step to NormalVolume at time zero and is
// continuous from there on: ducked ramps around each speech segment,
// restoration during gaps of at least LongSilenceThreshold seconds, and a
// closing fade to SilenceFloor. A fade that begins while the final
// restoration ramp is still rising takes over from the restoration's
// in-progress value, avoiding any jump.
func Generate(segments []detect.Segment, totalDuration float64, p Params) (Envelope, error) {
	if totalDuration <= 0 {
		return nil, ErrBadDuration
	}
	if p.AttackTime < 0 || p.ReleaseTime < 0 || p.FadeOutDuration < 0 {
		return nil, ErrBadTiming
	}
	if p.DuckingAmount <= 0 || p.NormalVolume <= 0 || p.SilenceFloor <= 0 {
		return nil, ErrBadLevels
	}

	b := builder{}
	b.step(0, p.NormalVolume)

	fadeStart := totalDuration - p.FadeOutDuration
	if fadeStart < 0 {
		fadeStart = 0
	}

	if len(segments) == 0 {
		b.holdUntil(fadeStart)
		b.rampTo(totalDuration, p.SilenceFloor)
		return b.env, nil
	}

	// Intro: stay at normal volume, then duck so the ramp lands exactly
	// when speech begins.
	duckStart := segments[0].Start - p.AttackTime
	if duckStart < 0 {
		duckStart = 0
	}
	b.holdUntil(duckStart)
	b.rampTo(segments[0].Start, p.DuckingAmount)

	// Long gaps get a restore/re-duck cycle; short gaps stay ducked so the
	// music volume does not flutter through brief pauses.
	for i := 0; i+1 < len(segments); i++ {
		gapStart := segments[i].End
		gapEnd := segments[i+1].Start

		if gapEnd-gapStart < p.LongSilenceThreshold {
			continue
		}

		// Hold the ducked level through the speech segment; the
		// restoration ramp starts at the gap, not inside speech.
		b.holdUntil(gapStart)
		b.rampTo(gapStart+p.ReleaseTime, p.NormalVolume)
		b.holdUntil(gapEnd - p.AttackTime)
		b.rampTo(gapEnd, p.DuckingAmount)
	}

	// Outro: restoration after the last segment may collide with the
	// closing fade. Ties prefer the non-overlapping case.
	restoreStart := segments[len(segments)-1].End
	restoreEnd := restoreStart + p.ReleaseTime

	switch {
	case fadeStart >= restoreEnd:
		// Fade begins after restoration completes.
		b.holdUntil(restoreStart)
		b.rampTo(restoreEnd, p.NormalVolume)
		b.holdUntil(fadeStart)
		b.rampTo(totalDuration, p.SilenceFloor)
	case fadeStart <= restoreStart:
		// Fade begins before restoration would start; skip restoring.
		b.holdUntil(fadeStart)
		b.rampTo(totalDuration, p.SilenceFloor)
	default:
		// Fade begins mid-restoration: pick up the restoration at its
		// in-progress value, then fade from there.
		progress := (fadeStart - restoreStart) / p.ReleaseTime
		v := p.DuckingAmount + (p.NormalVolume-p.DuckingAmount)*progress
		b.holdUntil(restoreStart)
		b.rampTo(fadeStart, v)
		b.rampTo(totalDuration, p.SilenceFloor)
	}

	return b.env, nil
}

// builder appends breakpoints while keeping the sequence strictly
// time-ordered.
type builder struct {
	env Envelope
}

func (b *builder) step(t, v float64) {
	b.env = append(b.env, Breakpoint{Time: t, Value: v, Mode: Step})
}

// holdUntil extends the current value to time t with a flat ramp. A no-op
// when t is not ahead of the last breakpoint.
func (b *builder) holdUntil(t float64) {
	last := &b.env[len(b.env)-1]
	if t <= last.Time {
		return
	}

	b.env = append(b.env, Breakpoint{Time: t, Value: last.Value, Mode: RampTo})
}

// rampTo appends a linear ramp arriving at value v at time t. A ramp of
// zero (or negative) length collapses into the previous breakpoint instead
// of creating a second breakpoint at the same time.
func (b *builder) rampTo(t, v float64) {
	last := &b.env[len(b.env)-1]
	if t <= last.Time {
		last.Value = v
		return
	}

	b.env = append(b.env, Breakpoint{Time: t, Value: v, Mode: RampTo})
}
