// SPDX-License-Identifier: EPL-2.0

// Package engine defines the boundary between track control and audio
// playback backends.
//
// The Engine interface is deliberately narrow: stream creation from a
// path or byte buffer, transport control, position/length/state
// queries, and tempo/pitch attributes. The track package drives it and
// never assumes anything about the implementation; the mixer package
// provides a pure-Go implementation, and tests substitute fakes.
//
// Streams are identified by opaque handles. Handle 0 is reserved and
// never valid, which lets callers use it as a "no stream" sentinel.
package engine
