// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 16383, -16384, 32767, -32768}

	var enc bytes.Buffer
	if err := Encode16(&enc, 8000, 1, samples); err != nil {
		t.Fatalf("Encode16() error = %v", err)
	}

	buf, err := Decoder{}.Decode(bytes.NewReader(enc.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if buf.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", buf.SampleRate)
	}
	if buf.Channels != 1 {
		t.Errorf("Channels = %d, want 1", buf.Channels)
	}
	if buf.Frames() != len(samples) {
		t.Fatalf("Frames() = %d, want %d", buf.Frames(), len(samples))
	}

	for i, s := range samples {
		want := float64(s) / 32768.0
		if math.Abs(float64(buf.Data[i])-want) > 1.0/32768.0 {
			t.Errorf("Data[%d] = %v, want ≈%v", i, buf.Data[i], want)
		}
	}
}

func TestEncodeDecode_Stereo(t *testing.T) {
	t.Parallel()

	// Interleaved L/R pairs
	samples := []int16{1000, -1000, 2000, -2000, 3000, -3000}

	var enc bytes.Buffer
	if err := Encode16(&enc, 44100, 2, samples); err != nil {
		t.Fatalf("Encode16() error = %v", err)
	}

	buf, err := Decoder{}.Decode(bytes.NewReader(enc.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if buf.Channels != 2 {
		t.Errorf("Channels = %d, want 2", buf.Channels)
	}
	if buf.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", buf.Frames())
	}
	if buf.Data[0] <= 0 || buf.Data[1] >= 0 {
		t.Errorf("first frame = (%v, %v), want (positive, negative)", buf.Data[0], buf.Data[1])
	}
}

func TestDecode_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("this is not a wav file at all")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecode_NonSeekableReader(t *testing.T) {
	t.Parallel()

	samples := []int16{42, -42}
	var enc bytes.Buffer
	if err := Encode16(&enc, 8000, 1, samples); err != nil {
		t.Fatalf("Encode16() error = %v", err)
	}

	// bytes.Buffer is not an io.ReadSeeker; the decoder must buffer.
	buf, err := Decoder{}.Decode(&enc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if buf.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", buf.Frames())
	}
}
