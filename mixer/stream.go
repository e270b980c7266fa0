// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/ik5/audtrack/codec"
	"github.com/ik5/audtrack/dsp"
	"github.com/ik5/audtrack/engine"
)

// stream is one live handle: a prepared PCM buffer, a cursor and an
// optional tempo stage. It doubles as the io.Reader the output player
// pulls int16 little-endian stereo from.
//
// The mutex guards against the pull happening on the device goroutine
// while control calls arrive from the caller's goroutine.
type stream struct {
	mtx sync.Mutex

	buf        *codec.Buffer
	sampleRate int

	// pos is the cursor in device-rate frames. It may be negative
	// after a "just before start" seek.
	pos float64

	state    engine.State
	tempo    *tempoStage
	autoFree bool
	pl       player

	// onComplete runs once when playback naturally reaches the end of
	// an auto-free stream; the engine uses it to drop the handle.
	onComplete func()
	completed  bool

	scratch []float32
}

const outChannels = 2
const frameBytes = outChannels * 2 // int16 output

func (s *stream) Read(p []byte) (int, error) {
	s.mtx.Lock()

	frames := len(p) / frameBytes
	if frames == 0 {
		s.mtx.Unlock()
		return 0, nil
	}

	need := frames * outChannels
	if cap(s.scratch) < need {
		s.scratch = make([]float32, need)
	}
	s.scratch = s.scratch[:need]

	var n int
	if s.tempo != nil {
		n = s.tempo.render(s.buf, &s.pos, s.scratch)
	} else {
		n = renderDirect(s.buf, &s.pos, s.scratch)
	}

	if n == 0 {
		s.state = engine.StateStopped
		done := s.autoFree && !s.completed
		s.completed = true
		complete := s.onComplete
		s.mtx.Unlock()
		if done && complete != nil {
			complete()
		}
		return 0, io.EOF
	}

	for i := range n * outChannels {
		binary.LittleEndian.PutUint16(p[2*i:2*i+2], uint16(dsp.Float32ToInt16(s.scratch[i])))
	}

	s.mtx.Unlock()
	return n * frameBytes, nil
}

func (s *stream) play(dev device) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.pl == nil {
		// oto players do not pull from their source before Play is
		// called, so creating one under the lock is safe.
		s.pl = dev.newPlayer(s)
	}
	s.pl.Play()
	s.state = engine.StatePlaying
}

func (s *stream) pause() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.pl != nil {
		s.pl.Pause()
	}
	s.state = engine.StatePaused
}

func (s *stream) stop() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.pl != nil {
		s.pl.Pause()
	}
	s.state = engine.StateStopped
}

func (s *stream) seek(seconds float64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.pos = seconds * float64(s.sampleRate)
	s.completed = false
	if s.tempo != nil {
		s.tempo.reset()
	}
}

func (s *stream) position() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.pos / float64(s.sampleRate)
}

func (s *stream) activity() engine.State {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.state
}

func (s *stream) setAutoFree() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.autoFree = true
}

func (s *stream) setTempo(percent float64) error {
	factor := 1 + percent/100
	if factor <= 0 {
		return ErrBadAttribute
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tempo.speed = factor
	return nil
}

func (s *stream) setPitch(ratio float64) error {
	if ratio <= 0 {
		return ErrBadAttribute
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tempo.pitch = ratio
	return nil
}

func (s *stream) close() error {
	s.mtx.Lock()
	pl := s.pl
	s.pl = nil
	s.state = engine.StateStopped
	s.mtx.Unlock()

	if pl != nil {
		return pl.Close()
	}
	return nil
}
