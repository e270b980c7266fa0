// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/audtrack/codec"
)

type Decoder struct{}

// Decode reads a complete AIFF stream. go-audio requires an
// io.ReadSeeker, so non-seekable input is buffered in memory.
func (Decoder) Decode(r io.Reader) (*codec.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	intBuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding aiff: %w", err)
	}

	var maxVal float32
	switch dec.BitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		return nil, fmt.Errorf("%d bits: %w", dec.BitDepth, ErrUnsupportedBitDepth)
	}

	data := make([]float32, len(intBuf.Data))
	for i, v := range intBuf.Data {
		data[i] = float32(v) / maxVal
	}

	return &codec.Buffer{
		Data:       data,
		SampleRate: intBuf.Format.SampleRate,
		Channels:   intBuf.Format.NumChannels,
	}, nil
}
