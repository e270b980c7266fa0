// SPDX-License-Identifier: EPL-2.0

// Package mixer is a pure-Go playback backend implementing the
// engine.Engine boundary.
//
// # Streams
//
// Stream creation decodes the whole input through the codec registry
// into an interleaved float32 buffer, folds anything beyond stereo,
// and resamples once to the device rate. Playback then runs against
// in-memory PCM: exact length, constant-time seeking, no decode work
// on the audio path.
//
// # Output
//
// Each stream gets its own player on a shared ebitengine/oto context;
// oto mixes the players in software and pulls int16 little-endian
// stereo from the stream's render function on its own goroutine.
//
// # Tempo and pitch
//
// WrapTempo replaces a raw stream with one carrying a tempo stage.
// Tempo changes playback speed without pitch via granular overlap-add
// time-stretching; pitch shifts by reading grains at a varispeed ratio
// with cubic interpolation. Neutral settings bypass the stage so
// normal-rate playback is bit-exact.
//
// # Auto-free
//
// SetAutoFree arranges for a stream's handle to be dropped when its
// render naturally reaches the end, matching the fire-and-forget use
// of one-shot tracks.
package mixer
