// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audtrack/codec"
	"github.com/ik5/audtrack/dsp"
)

type Decoder struct{}

// Decode reads a complete MP3 stream.
// go-mp3 always emits 16-bit little-endian stereo PCM.
func (Decoder) Decode(r io.Reader) (*codec.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	return &codec.Buffer{
		Data:       pcm16ToFloat32(raw),
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}, nil
}

// pcm16ToFloat32 converts 16-bit little-endian PCM bytes to normalized
// float32 samples. A trailing odd byte is dropped.
func pcm16ToFloat32(raw []byte) []float32 {
	samples := len(raw) / 2
	out := make([]float32, samples)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		out[i] = dsp.Int16ToFloat32(v)
	}
	return out
}
