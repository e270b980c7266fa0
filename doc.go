// SPDX-License-Identifier: EPL-2.0

// Package audtrack provides audio track playback with frame-clock time
// reconciliation for Go games and other timing-sensitive applications.
//
// The library manages decoded audio streams through a strict transport
// state machine (play, pause, seek, restart, terminal stop), applies
// rate changes with optional pitch compensation, and blends the
// engine-reported playback position with per-frame wall time into a
// stable "true time" signal suitable for rhythm synchronization.
//
// # Quick Start
//
// The simplest way in is the Player, which bundles the pure-Go mixer
// engine with a track manager:
//
//	player, err := audtrack.NewPlayer(44100)
//	if err != nil {
//	    panic(err)
//	}
//	defer player.Close()
//
//	t, err := player.Load("song.mp3")
//	if err != nil {
//	    panic(err)
//	}
//	t.Play()
//
//	// Once per rendered frame, with the frame delta in milliseconds:
//	player.Advance(dt)
//	cursor := t.Time() // smoothed playback time in ms
//
// # Tracks
//
// Tracks are created from a file path or an in-memory byte buffer. On
// creation the raw decode stream is wrapped with a tempo stage and the
// track registers itself with its manager; Dispose (or the terminal
// Stop) releases the stream and deregisters it.
//
//	t.SetRate(1.5)       // 150% speed
//	t.SetPitched(true)   // keep the original pitch at the new speed
//	t.Seek(2500)         // jump to 2.5s
//	t.Restart()          // rewind and play
//
// # Engines
//
// Playback is delegated through the narrow engine.Engine interface.
// The mixer package implements it on the ebitengine/oto output stack
// with decoders for WAV, MP3, Ogg Vorbis and AIFF; tests and embedders
// with their own audio stack can substitute any other implementation.
//
// # Time Reconciliation
//
// Engine position queries have jitter and coarse update granularity.
// While a track plays, each frame tick computes
//
//	time = (position + (time + dt*rate)) / 2
//
// averaging the fresh engine position with the previous time
// extrapolated by the frame delta. The result damps jitter while
// tracking drift, at the cost of roughly half a frame of lag. See the
// track package for the full contract.
//
// # Error Handling
//
// Failures are sentinel errors matched with errors.Is: the track
// package distinguishes ErrNotLoaded, ErrDisposed,
// ErrInvalidTransition and ErrInvalidArgument, and construction
// propagates decoder and device errors. Rejected operations never
// leave partial state behind.
package audtrack
