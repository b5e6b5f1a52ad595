// SPDX-License-Identifier: EPL-2.0

package envelope

// Mode says how a breakpoint reaches its value.
type Mode int

const (
	// Step sets the value instantly at the breakpoint's time.
	Step Mode = iota
	// RampTo interpolates linearly from the previous breakpoint,
	// arriving at the value exactly at the breakpoint's time.
	RampTo
)

func (m Mode) String() string {
	switch m {
	case Step:
		return "step"
	case RampTo:
		return "ramp"
	default:
		return "unknown"
	}
}

// Breakpoint is one anchor of the piecewise-linear gain curve.
type Breakpoint struct {
	Time  float64
	Value float64
	Mode  Mode
}

// Envelope is a strictly time-ordered breakpoint sequence. It fully
// determines the gain at any time: constant before the first breakpoint,
// constant after the last, interpolated between the enclosing pair.
type Envelope []Breakpoint

// GainAt evaluates the envelope at time t.
func (e Envelope) GainAt(t float64) float64 {
	if len(e) == 0 {
		return 1.0
	}

	if t <= e[0].Time {
		return e[0].Value
	}

	for i := 1; i < len(e); i++ {
		if t < e[i].Time {
			return valueBetween(e[i-1], e[i], t)
		}
	}

	return e[len(e)-1].Value
}

// Cursor returns an iterator for evaluating the envelope at non-decreasing
// times, as the renderer does per sample.
func (e Envelope) Cursor() *Cursor {
	return &Cursor{env: e}
}

// Cursor walks an Envelope forward. GainAt must be called with
// non-decreasing times; each call advances past breakpoints already behind
// t, so a full sweep costs O(samples + breakpoints).
type Cursor struct {
	env Envelope
	idx int
}

func (c *Cursor) GainAt(t float64) float64 {
	if len(c.env) == 0 {
		return 1.0
	}

	for c.idx+1 < len(c.env) && t >= c.env[c.idx+1].Time {
		c.idx++
	}

	if c.idx == 0 && t <= c.env[0].Time {
		return c.env[0].Value
	}

	if c.idx+1 == len(c.env) {
		return c.env[c.idx].Value
	}

	return valueBetween(c.env[c.idx], c.env[c.idx+1], t)
}

// valueBetween evaluates the curve at t with prev.Time <= t < next.Time.
func valueBetween(prev, next Breakpoint, t float64) float64 {
	if next.Mode == Step {
		return prev.Value
	}

	span := next.Time - prev.Time
	if span <= 0 {
		return next.Value
	}

	frac := (t - prev.Time) / span
	return prev.Value + (next.Value-prev.Value)*frac
}
