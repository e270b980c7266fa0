// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	// ErrBadAttribute reports a tempo or pitch value outside the range
	// the stage can render, such as a tempo at or below -100 percent.
	ErrBadAttribute = errors.New("attribute out of range")
)
