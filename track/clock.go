// SPDX-License-Identifier: EPL-2.0

package track

import "github.com/ik5/audtrack/engine"

// Time returns the reconciled playback time in milliseconds, as
// maintained by CorrectTime. Unlike Position it is stable under
// hardware position jitter and safe to drive timing-sensitive
// consumers such as rhythm synchronization.
func (t *Track) Time() float64 { return t.smoothed }

// CorrectTime reconciles the engine-reported position with frame-clock
// time. dt is the wall time elapsed since the previous frame, in
// milliseconds. It must be called once per rendered frame, after any
// transport commands issued that frame; the Manager broadcast does
// this for every registered track.
//
// While playing, the new time is the average of the engine position
// and the previous time extrapolated by dt scaled with the playback
// rate. The blend damps position jitter while still tracking drift, at
// the cost of about half a frame of lag.
func (t *Track) CorrectTime(dt float64) {
	if t.disposed || t.handle == 0 {
		t.smoothed = 0
		return
	}

	st, err := t.eng.State(t.handle)
	if err != nil {
		// Engine read failed; keep the previous estimate.
		return
	}

	switch st {
	case engine.StateStopped:
		t.smoothed = 0
	case engine.StatePaused:
		pos, err := t.eng.Position(t.handle)
		if err != nil {
			return
		}
		t.smoothed = pos * 1000
	case engine.StatePlaying:
		pos, err := t.eng.Position(t.handle)
		if err != nil {
			return
		}
		t.smoothed = (pos*1000 + (t.smoothed + dt*t.rate)) / 2
	}
}
