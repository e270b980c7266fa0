// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audtrack/codec"
)

type Decoder struct{}

// Decode reads a complete Ogg Vorbis stream. oggvorbis already produces
// interleaved float32, so its output is used directly.
func (Decoder) Decode(r io.Reader) (*codec.Buffer, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &codec.Buffer{
		Data:       data,
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
	}, nil
}
