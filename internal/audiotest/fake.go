// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides a scriptable fake engine and PCM signal
// generators for tests.
package audiotest

import (
	"github.com/ik5/audtrack/engine"
)

// FakeStream is the observable state of one fake stream. Tests mutate
// fields directly to script engine behavior (e.g. advance Pos to
// simulate playback, or set State to simulate natural completion).
type FakeStream struct {
	State    engine.State
	Pos      float64 // seconds
	Len      float64 // seconds
	Tempo    float64 // percent deviation
	Pitch    float64 // semitones
	AutoFree bool
	Wrapped  bool
}

// FakeEngine implements engine.Engine entirely in memory.
type FakeEngine struct {
	Streams map[engine.StreamHandle]*FakeStream
	// Freed records every handle released with Free, in order,
	// including frees caused by WrapTempo taking ownership.
	Freed []engine.StreamHandle

	// StreamLen is the length in seconds given to created streams.
	StreamLen float64

	// CreateErr, when set, makes stream creation fail.
	CreateErr error
	// WrapErr, when set, makes WrapTempo fail.
	WrapErr error
	// CallErr, when set, makes every post-creation call fail.
	CallErr error

	next engine.StreamHandle
}

var _ engine.Engine = (*FakeEngine)(nil)

// NewFakeEngine returns a fake whose created streams are streamLen
// seconds long.
func NewFakeEngine(streamLen float64) *FakeEngine {
	return &FakeEngine{
		Streams:   make(map[engine.StreamHandle]*FakeStream),
		StreamLen: streamLen,
	}
}

func (e *FakeEngine) create() (engine.StreamHandle, error) {
	if e.CreateErr != nil {
		return 0, e.CreateErr
	}
	e.next++
	e.Streams[e.next] = &FakeStream{Len: e.StreamLen}
	return e.next, nil
}

func (e *FakeEngine) StreamFromPath(string) (engine.StreamHandle, error) {
	return e.create()
}

func (e *FakeEngine) StreamFromBytes([]byte) (engine.StreamHandle, error) {
	return e.create()
}

func (e *FakeEngine) lookup(h engine.StreamHandle) (*FakeStream, error) {
	if e.CallErr != nil {
		return nil, e.CallErr
	}
	s, ok := e.Streams[h]
	if !ok {
		return nil, engine.ErrBadHandle
	}
	return s, nil
}

func (e *FakeEngine) WrapTempo(h engine.StreamHandle) (engine.StreamHandle, error) {
	s, ok := e.Streams[h]
	if !ok {
		return 0, engine.ErrBadHandle
	}
	if e.WrapErr != nil {
		return 0, e.WrapErr
	}
	delete(e.Streams, h)
	e.Freed = append(e.Freed, h)

	e.next++
	e.Streams[e.next] = &FakeStream{Len: s.Len, Wrapped: true}
	return e.next, nil
}

func (e *FakeEngine) SetAutoFree(h engine.StreamHandle) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.AutoFree = true
	return nil
}

func (e *FakeEngine) Play(h engine.StreamHandle) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.State = engine.StatePlaying
	return nil
}

func (e *FakeEngine) Pause(h engine.StreamHandle) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.State = engine.StatePaused
	return nil
}

func (e *FakeEngine) Stop(h engine.StreamHandle) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.State = engine.StateStopped
	return nil
}

func (e *FakeEngine) Free(h engine.StreamHandle) error {
	if _, ok := e.Streams[h]; !ok {
		return engine.ErrBadHandle
	}
	delete(e.Streams, h)
	e.Freed = append(e.Freed, h)
	return nil
}

func (e *FakeEngine) SetPosition(h engine.StreamHandle, seconds float64) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	s.Pos = seconds
	return nil
}

func (e *FakeEngine) Position(h engine.StreamHandle) (float64, error) {
	s, err := e.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.Pos, nil
}

func (e *FakeEngine) Length(h engine.StreamHandle) (float64, error) {
	s, err := e.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.Len, nil
}

func (e *FakeEngine) State(h engine.StreamHandle) (engine.State, error) {
	s, err := e.lookup(h)
	if err != nil {
		return engine.StateStopped, err
	}
	return s.State, nil
}

func (e *FakeEngine) SetTempo(h engine.StreamHandle, percent float64) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	if !s.Wrapped {
		return engine.ErrNoTempoStage
	}
	s.Tempo = percent
	return nil
}

func (e *FakeEngine) SetPitch(h engine.StreamHandle, semitones float64) error {
	s, err := e.lookup(h)
	if err != nil {
		return err
	}
	if !s.Wrapped {
		return engine.ErrNoTempoStage
	}
	s.Pitch = semitones
	return nil
}
