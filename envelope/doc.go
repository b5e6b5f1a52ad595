// SPDX-License-Identifier: EPL-2.0

// Package envelope builds and evaluates the music channel's gain automation.
//
// An Envelope is an ordered sequence of breakpoints forming a
// piecewise-linear gain curve:
//
//	type Breakpoint struct {
//	    Time  float64 // seconds
//	    Value float64 // linear gain
//	    Mode  Mode    // Step or RampTo
//	}
//
// A Step sets the gain instantly at its time; a RampTo interpolates
// linearly from the previous breakpoint, arriving exactly at its time.
// Gain is constant before the first breakpoint and after the last.
//
// # Generation
//
// Generate turns detected speech segments into a ducking curve: full volume
// until just before the first segment, ducked through speech, restored
// during silences long enough to be worth restoring, and faded to a small
// floor value at the end of the program:
//
//	env, err := envelope.Generate(segments, totalDuration, params)
//
// Every transition is a bounded-length linear ramp, so the curve is
// continuous everywhere except the single Step that anchors it at time
// zero. When the closing fade would overlap the post-speech volume
// restoration, the generator splices the fade onto the in-progress
// restoration value instead of letting the two curves fight.
//
// # Evaluation
//
// GainAt answers point queries; Cursor serves the renderer's
// sample-by-sample sweep in O(samples + breakpoints):
//
//	cur := env.Cursor()
//	for i := range frames {
//	    g := cur.GainAt(float64(i) / rate) // times must not decrease
//	}
package envelope
