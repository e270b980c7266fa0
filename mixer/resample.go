// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"github.com/ik5/audtrack/codec"
	"github.com/ik5/audtrack/dsp"
)

// prepare normalizes a decoded buffer for the render path: at most two
// channels, at the device sample rate.
func prepare(b *codec.Buffer, deviceRate int) *codec.Buffer {
	if b.Channels > outChannels {
		b = foldStereo(b)
	}
	if b.SampleRate != deviceRate {
		b = resampleBuffer(b, deviceRate)
	}
	return b
}

// foldStereo naively folds a multi-channel buffer down to stereo: even
// source channels average into the left output, odd into the right.
func foldStereo(b *codec.Buffer) *codec.Buffer {
	frames := b.Frames()
	out := make([]float32, frames*2)

	nLeft := (b.Channels + 1) / 2
	nRight := b.Channels / 2

	for f := range frames {
		var left, right float32
		base := f * b.Channels
		for c := range b.Channels {
			if c%2 == 0 {
				left += b.Data[base+c]
			} else {
				right += b.Data[base+c]
			}
		}
		out[f*2] = left / float32(nLeft)
		out[f*2+1] = right / float32(nRight)
	}

	return &codec.Buffer{Data: out, SampleRate: b.SampleRate, Channels: 2}
}

// resampleBuffer converts b to dstRate using cubic interpolation over
// the whole buffer. Unlike a streaming resampler this runs once at
// load time; playback then works purely in device-rate frames, which
// keeps position accounting trivial.
func resampleBuffer(b *codec.Buffer, dstRate int) *codec.Buffer {
	if b.SampleRate == dstRate || b.Frames() == 0 {
		return &codec.Buffer{Data: b.Data, SampleRate: dstRate, Channels: b.Channels}
	}

	srcFrames := b.Frames()
	ratio := float64(b.SampleRate) / float64(dstRate)
	dstFrames := int(float64(srcFrames) / ratio)
	out := make([]float32, dstFrames*b.Channels)

	for f := range dstFrames {
		pos := float64(f) * ratio
		i := int(pos)
		frac := float32(pos - float64(i))
		for c := range b.Channels {
			y0 := frameSample(b, i-1, c)
			y1 := frameSample(b, i, c)
			y2 := frameSample(b, i+1, c)
			y3 := frameSample(b, i+2, c)
			out[f*b.Channels+c] = dsp.CubicInterpolate(y0, y1, y2, y3, frac)
		}
	}

	return &codec.Buffer{Data: out, SampleRate: dstRate, Channels: b.Channels}
}

// frameSample reads channel c of frame f, clamping f to the buffer
// edges so interpolation kernels can read past either end.
func frameSample(b *codec.Buffer, f, c int) float32 {
	if f < 0 {
		f = 0
	}
	if last := b.Frames() - 1; f > last {
		f = last
	}
	return b.Data[f*b.Channels+c]
}

// frameAt reads frame f as a stereo pair; mono buffers feed both
// channels, frames outside the buffer are silence.
func frameAt(b *codec.Buffer, f int) (left, right float32) {
	if f < 0 || f >= b.Frames() {
		return 0, 0
	}
	if b.Channels == 1 {
		v := b.Data[f]
		return v, v
	}
	return b.Data[f*2], b.Data[f*2+1]
}

// sampleAt reads the stereo pair at fractional frame position p using
// cubic interpolation. Positions outside the buffer read as silence.
func sampleAt(b *codec.Buffer, p float64) (left, right float32) {
	if p < 0 || p >= float64(b.Frames()) {
		return 0, 0
	}
	i := int(p)
	frac := float32(p - float64(i))

	l0, r0 := frameAt(b, i-1)
	l1, r1 := frameAt(b, i)
	l2, r2 := frameAt(b, i+1)
	l3, r3 := frameAt(b, i+2)

	left = dsp.CubicInterpolate(l0, l1, l2, l3, frac)
	right = dsp.CubicInterpolate(r0, r1, r2, r3, frac)
	return left, right
}
