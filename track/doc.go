// SPDX-License-Identifier: EPL-2.0

// Package track implements audio track transport control and playback
// time reconciliation.
//
// # Tracks
//
// A Track binds one decoded stream from an engine, wraps it with a
// tempo/pitch stage and drives it through a strict state machine:
//
//	loaded{stopped|playing|paused} -> disposed
//
// Disposed is terminal. Stop halts playback and disposes in one step:
// stopping releases resources rather than rewinding, so a stopped
// track cannot be resumed. Use Pause for resumable interruption.
//
//	mgr := track.NewManager()
//	t, err := track.NewFromPath(eng, mgr, "song.mp3")
//	if err != nil { ... }
//	t.Play()
//	t.Seek(2500)
//	t.SetRate(1.5)
//
// # True time
//
// Engine position queries have jitter and coarse update granularity.
// Each frame the driver calls
//
//	mgr.CorrectTime(dt)
//
// with the frame delta in milliseconds, and each playing track blends
// its extrapolated previous time with the engine position:
//
//	time = (position + (time + dt*rate)) / 2
//
// Track.Time then gives a damped, drift-tracking playback clock that
// moving gameplay elements can be rendered against. A paused track
// snaps to the engine position; a stopped or unloaded track reads 0.
//
// # Errors
//
// Transport errors are distinguishable with errors.Is: ErrNotLoaded,
// ErrDisposed, ErrInvalidTransition and ErrInvalidArgument. Rejected
// operations leave track state unchanged.
package track
