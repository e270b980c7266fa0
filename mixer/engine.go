// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/audtrack/codec"
	"github.com/ik5/audtrack/codec/aiff"
	"github.com/ik5/audtrack/codec/mp3"
	"github.com/ik5/audtrack/codec/vorbis"
	"github.com/ik5/audtrack/codec/wav"
	"github.com/ik5/audtrack/engine"
)

// Engine is a pure-Go engine.Engine: codec decoding into device-rate
// PCM buffers, per-stream players on an oto output context, and a
// granular tempo/pitch stage.
type Engine struct {
	dev        device
	sampleRate int
	codecs     *codec.Registry

	mtx     sync.Mutex
	streams map[engine.StreamHandle]*stream
	next    engine.StreamHandle
}

var _ engine.Engine = (*Engine)(nil)

// New opens the default audio output at sampleRate and returns a ready
// engine with the wav, mp3, ogg and aiff decoders registered.
func New(sampleRate int) (*Engine, error) {
	dev, err := newOtoDevice(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("opening output device: %w", err)
	}
	return newEngine(dev, sampleRate), nil
}

func newEngine(dev device, sampleRate int) *Engine {
	reg := codec.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return &Engine{
		dev:        dev,
		sampleRate: sampleRate,
		codecs:     reg,
		streams:    make(map[engine.StreamHandle]*stream),
	}
}

// Codecs exposes the decoder registry so callers can add formats.
func (e *Engine) Codecs() *codec.Registry { return e.codecs }

// SampleRate returns the device output rate in Hz.
func (e *Engine) SampleRate() int { return e.sampleRate }

func formatForExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return "wav"
	case ".mp3":
		return "mp3"
	case ".ogg", ".oga":
		return "ogg"
	case ".aiff", ".aif":
		return "aiff"
	}
	return ""
}

func (e *Engine) StreamFromPath(path string) (engine.StreamHandle, error) {
	format := formatForExt(path)
	dec, ok := e.codecs.Get(format)
	if !ok {
		return 0, fmt.Errorf("%s: %w", path, codec.ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	buf, err := dec.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	return e.insert(buf), nil
}

func (e *Engine) StreamFromBytes(data []byte) (engine.StreamHandle, error) {
	format, ok := codec.Detect(data)
	if !ok {
		return 0, codec.ErrUnknownFormat
	}
	dec, ok := e.codecs.Get(format)
	if !ok {
		return 0, fmt.Errorf("%s: %w", format, codec.ErrUnknownFormat)
	}

	buf, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("decoding %s stream: %w", format, err)
	}
	return e.insert(buf), nil
}

// insert registers a prepared buffer under a fresh handle.
func (e *Engine) insert(buf *codec.Buffer) engine.StreamHandle {
	s := &stream{
		buf:        prepare(buf, e.sampleRate),
		sampleRate: e.sampleRate,
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.next++
	h := e.next
	e.streams[h] = s
	s.onComplete = func() { e.autoRemove(h, s) }
	return h
}

func (e *Engine) lookup(h engine.StreamHandle) (*stream, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	s, ok := e.streams[h]
	if !ok {
		return nil, engine.ErrBadHandle
	}
	return s, nil
}

func (e *Engine) WrapTempo(h engine.StreamHandle) (engine.StreamHandle, error) {
	e.mtx.Lock()
	s, ok := e.streams[h]
	if !ok {
		e.mtx.Unlock()
		return 0, engine.ErrBadHandle
	}

	// Ownership of the raw stream transfers to the wrapper: the old
	// handle dies here and only the shared buffer lives on.
	delete(e.streams, h)

	ns := &stream{
		buf:        s.buf,
		sampleRate: e.sampleRate,
		tempo:      newTempoStage(),
	}
	e.next++
	nh := e.next
	e.streams[nh] = ns
	ns.onComplete = func() { e.autoRemove(nh, ns) }
	e.mtx.Unlock()

	if err := s.close(); err != nil {
		return 0, fmt.Errorf("releasing raw stream: %w", err)
	}
	return nh, nil
}

func (e *Engine) SetAutoFree(h engine.StreamHandle) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.setAutoFree()
	return nil
}

// autoRemove drops a naturally-completed stream. Called from the
// device pull goroutine, so the player is closed asynchronously rather
// than from inside its own read loop.
func (e *Engine) autoRemove(h engine.StreamHandle, s *stream) {
	e.mtx.Lock()
	if e.streams[h] == s {
		delete(e.streams, h)
	}
	e.mtx.Unlock()

	go s.close()
}

func (e *Engine) Play(h engine.StreamHandle) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.play(e.dev)
	return nil
}

func (e *Engine) Pause(h engine.StreamHandle) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.pause()
	return nil
}

func (e *Engine) Stop(h engine.StreamHandle) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.stop()
	return nil
}

func (e *Engine) Free(h engine.StreamHandle) error {
	e.mtx.Lock()
	s, ok := e.streams[h]
	if ok {
		delete(e.streams, h)
	}
	e.mtx.Unlock()

	if !ok {
		return engine.ErrBadHandle
	}
	if err := s.close(); err != nil {
		return fmt.Errorf("closing stream: %w", err)
	}
	return nil
}

func (e *Engine) SetPosition(h engine.StreamHandle, seconds float64) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.seek(seconds)
	return nil
}

func (e *Engine) Position(h engine.StreamHandle) (float64, error) {
	s, err := e.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.position(), nil
}

func (e *Engine) Length(h engine.StreamHandle) (float64, error) {
	s, err := e.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.buf.Duration(), nil
}

func (e *Engine) State(h engine.StreamHandle) (engine.State, error) {
	s, err := e.lookup(h)
	if err != nil {
		return engine.StateStopped, err
	}
	return s.activity(), nil
}

func (e *Engine) SetTempo(h engine.StreamHandle, percent float64) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	if s.tempo == nil {
		return engine.ErrNoTempoStage
	}
	if err := s.setTempo(percent); err != nil {
		return fmt.Errorf("tempo %v%%: %w", percent, err)
	}
	return nil
}

func (e *Engine) SetPitch(h engine.StreamHandle, semitones float64) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	if s.tempo == nil {
		return engine.ErrNoTempoStage
	}
	if err := s.setPitch(math.Exp2(semitones / 12)); err != nil {
		return fmt.Errorf("pitch %v semitones: %w", semitones, err)
	}
	return nil
}

// Close frees every live stream and suspends the output device.
func (e *Engine) Close() error {
	e.mtx.Lock()
	streams := make([]*stream, 0, len(e.streams))
	for _, s := range e.streams {
		streams = append(streams, s)
	}
	e.streams = make(map[engine.StreamHandle]*stream)
	e.mtx.Unlock()

	var firstErr error
	for _, s := range streams {
		if err := s.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := e.dev.close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
