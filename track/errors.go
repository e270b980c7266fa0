// SPDX-License-Identifier: EPL-2.0

package track

import "errors"

var (
	// ErrNotLoaded reports an operation on a track with no bound stream.
	ErrNotLoaded = errors.New("track has no stream loaded")

	// ErrDisposed reports an operation on a track whose stream has
	// already been released.
	ErrDisposed = errors.New("track is disposed")

	// ErrInvalidTransition reports a transport command that is illegal
	// in the current playback state, such as Play while playing.
	ErrInvalidTransition = errors.New("invalid playback transition")

	// ErrInvalidArgument reports a rejected parameter value, such as a
	// non-positive rate or an out-of-range seek position. The track
	// state is unchanged when this is returned.
	ErrInvalidArgument = errors.New("invalid argument")
)
