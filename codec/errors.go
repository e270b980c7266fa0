// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown audio format")
)
