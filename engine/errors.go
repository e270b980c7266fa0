// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrBadHandle reports an operation on a handle that does not
	// refer to a live stream.
	ErrBadHandle = errors.New("bad stream handle")

	// ErrNoTempoStage reports a tempo or pitch adjustment on a stream
	// that was never wrapped with WrapTempo.
	ErrNoTempoStage = errors.New("stream has no tempo stage")
)
