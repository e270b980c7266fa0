// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"math"

	"github.com/ik5/audtrack/codec/wav"
	"github.com/ik5/audtrack/dsp"
)

// SinePCM generates interleaved float32 frames of a sine wave. All
// channels carry the same signal.
func SinePCM(sampleRate, channels, frames int, frequency float64) []float32 {
	out := make([]float32, frames*channels)
	for f := range frames {
		t := float64(f) / float64(sampleRate)
		v := float32(math.Sin(2 * math.Pi * frequency * t))
		for c := range channels {
			out[f*channels+c] = v
		}
	}
	return out
}

// SilencePCM generates interleaved zero frames.
func SilencePCM(channels, frames int) []float32 {
	return make([]float32, frames*channels)
}

// WAVBytes encodes interleaved float32 PCM as an in-memory 16-bit WAV
// stream, for feeding decoders and engines in end-to-end tests.
func WAVBytes(sampleRate, channels int, pcm []float32) []byte {
	samples := make([]int16, len(pcm))
	for i, v := range pcm {
		samples[i] = dsp.Float32ToInt16(v)
	}

	var buf bytes.Buffer
	// Writing to a bytes.Buffer cannot fail.
	_ = wav.Encode16(&buf, sampleRate, channels, samples)
	return buf.Bytes()
}
