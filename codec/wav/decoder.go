// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audtrack/codec"
)

type Decoder struct{}

// Decode reads a complete WAV stream and returns its PCM content.
// Non-seekable readers are buffered in memory first because the
// go-audio parser needs to walk RIFF chunks with io.ReadSeeker.
func (Decoder) Decode(r io.Reader) (*codec.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	intBuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}

	return fromIntBuffer(intBuf, int(dec.BitDepth))
}

// fromIntBuffer normalizes go-audio integer PCM to float32 by bit depth.
func fromIntBuffer(buf *goaudio.IntBuffer, bitDepth int) (*codec.Buffer, error) {
	var maxVal float32
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	data := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float32(v) / maxVal
	}

	return &codec.Buffer{
		Data:       data,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
	}, nil
}
