// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"github.com/ik5/audtrack/codec"
	"github.com/ik5/audtrack/dsp"
)

// Grain geometry for overlap-add synthesis. 2048 frames is about 46ms
// at 44.1kHz; the 50% hop keeps periodic Hann windows gain-neutral.
const (
	grainFrames = 2048
	hopFrames   = grainFrames / 2
)

// tempoStage renders a buffer with independent tempo and pitch.
//
// Tempo is a granular time-stretch: source grains are taken hop-by-hop
// at the stretched cursor advance, Hann-windowed and overlap-added.
// Pitch is varispeed within each grain: samples are read at the pitch
// ratio with cubic interpolation. With both attributes neutral the
// stage passes samples through untouched.
type tempoStage struct {
	speed float64 // tempo multiplier, 1.0 = normal
	pitch float64 // pitch ratio, 1.0 = neutral

	window []float32
	acc    []float32 // overlap accumulator, grainFrames stereo frames
	fifo   []float32 // synthesized stereo samples not yet consumed
}

func newTempoStage() *tempoStage {
	return &tempoStage{
		speed:  1.0,
		pitch:  1.0,
		window: dsp.HannWindow(grainFrames),
		acc:    make([]float32, grainFrames*2),
	}
}

// reset drops synthesis state; must be called when the cursor jumps.
func (ts *tempoStage) reset() {
	for i := range ts.acc {
		ts.acc[i] = 0
	}
	ts.fifo = ts.fifo[:0]
}

// neutral reports whether the stage currently has no audible effect.
func (ts *tempoStage) neutral() bool {
	return ts.speed == 1.0 && ts.pitch == 1.0 && len(ts.fifo) == 0
}

// synth produces one hop of output into the fifo, advancing pos by the
// stretched hop length.
func (ts *tempoStage) synth(buf *codec.Buffer, pos *float64) {
	for i := range grainFrames {
		l, r := sampleAt(buf, *pos+float64(i)*ts.pitch)
		w := ts.window[i]
		ts.acc[2*i] += l * w
		ts.acc[2*i+1] += r * w
	}

	ts.fifo = append(ts.fifo, ts.acc[:hopFrames*2]...)

	copy(ts.acc, ts.acc[hopFrames*2:])
	for i := (grainFrames - hopFrames) * 2; i < len(ts.acc); i++ {
		ts.acc[i] = 0
	}

	*pos += float64(hopFrames) * ts.speed
}

// render fills dst (interleaved stereo) from buf starting at *pos,
// returning the number of frames written. Zero means the source is
// exhausted.
func (ts *tempoStage) render(buf *codec.Buffer, pos *float64, dst []float32) int {
	frames := len(dst) / 2
	if ts.neutral() {
		return renderDirect(buf, pos, dst)
	}

	total := float64(buf.Frames())
	out := 0
	for out < frames {
		for len(ts.fifo) < 2 && *pos < total {
			ts.synth(buf, pos)
		}
		if len(ts.fifo) < 2 {
			break
		}

		n := min(frames-out, len(ts.fifo)/2)
		copy(dst[out*2:], ts.fifo[:n*2])
		m := copy(ts.fifo, ts.fifo[n*2:])
		ts.fifo = ts.fifo[:m]
		out += n
	}
	return out
}

// renderDirect copies frames one-to-one. A negative cursor renders
// silence until it reaches zero, which is how a "just before start"
// seek plays in.
func renderDirect(buf *codec.Buffer, pos *float64, dst []float32) int {
	frames := len(dst) / 2
	total := buf.Frames()

	out := 0
	for out < frames {
		p := *pos
		if p >= float64(total) {
			break
		}
		var l, r float32
		if p >= 0 {
			l, r = frameAt(buf, int(p))
		}
		dst[out*2] = l
		dst[out*2+1] = r
		*pos = p + 1
		out++
	}
	return out
}
