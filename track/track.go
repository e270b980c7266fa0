// SPDX-License-Identifier: EPL-2.0

package track

import (
	"fmt"
	"math"

	"github.com/ik5/audtrack/engine"
)

// Track controls playback of a single audio stream and reconciles the
// engine-reported position with frame-clock time.
//
// A Track exclusively owns its stream handle. All positions and times
// at this level are in milliseconds; the engine boundary below works in
// seconds.
//
// Transport commands and CorrectTime are expected to be issued from a
// single goroutine, normally the frame loop. The Manager a track
// registers into is safe to share; the track itself is not.
type Track struct {
	eng engine.Engine
	mgr *Manager

	handle engine.StreamHandle

	rate      float64
	pitched   bool
	hasPlayed bool
	disposed  bool

	// smoothed is the reconciled "true time" in milliseconds,
	// maintained by CorrectTime across frames.
	smoothed float64
}

// NewFromPath decodes the audio file at path into a track. The raw
// decode stream is wrapped with a tempo stage (which takes ownership of
// it), flagged to release resources when playback completes, and the
// track is registered in mgr. On failure nothing is registered.
func NewFromPath(eng engine.Engine, mgr *Manager, path string) (*Track, error) {
	raw, err := eng.StreamFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return wrap(eng, mgr, raw)
}

// NewFromBytes is NewFromPath for an in-memory encoded stream.
func NewFromBytes(eng engine.Engine, mgr *Manager, data []byte) (*Track, error) {
	raw, err := eng.StreamFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading stream: %w", err)
	}
	return wrap(eng, mgr, raw)
}

func wrap(eng engine.Engine, mgr *Manager, raw engine.StreamHandle) (*Track, error) {
	h, err := eng.WrapTempo(raw)
	if err != nil {
		eng.Free(raw)
		return nil, fmt.Errorf("wrapping tempo stage: %w", err)
	}
	if err := eng.SetAutoFree(h); err != nil {
		eng.Free(h)
		return nil, fmt.Errorf("marking stream auto-free: %w", err)
	}

	t := &Track{
		eng:    eng,
		mgr:    mgr,
		handle: h,
		rate:   1.0,
	}
	mgr.Register(t)
	return t, nil
}

// guard is the shared precondition of every operation except
// construction and Dispose.
func (t *Track) guard() error {
	if t.disposed {
		return ErrDisposed
	}
	if t.handle == 0 {
		return ErrNotLoaded
	}
	return nil
}

// Play starts or resumes playback. The first successful Play applies
// the current pitch setting before the stream starts. Playing an
// already-playing track fails with ErrInvalidTransition.
func (t *Track) Play() error {
	if err := t.guard(); err != nil {
		return err
	}

	st, err := t.eng.State(t.handle)
	if err != nil {
		return fmt.Errorf("querying state: %w", err)
	}
	if st == engine.StatePlaying {
		return fmt.Errorf("already playing: %w", ErrInvalidTransition)
	}

	if !t.hasPlayed {
		if err := t.applyPitch(); err != nil {
			return err
		}
	}

	if err := t.eng.Play(t.handle); err != nil {
		return fmt.Errorf("starting playback: %w", err)
	}
	t.hasPlayed = true
	return nil
}

// Pause suspends playback. Pausing a track that is not playing fails
// with ErrInvalidTransition.
func (t *Track) Pause() error {
	if err := t.guard(); err != nil {
		return err
	}

	st, err := t.eng.State(t.handle)
	if err != nil {
		return fmt.Errorf("querying state: %w", err)
	}
	if st != engine.StatePlaying {
		return fmt.Errorf("not playing: %w", ErrInvalidTransition)
	}

	if err := t.eng.Pause(t.handle); err != nil {
		return fmt.Errorf("pausing playback: %w", err)
	}
	return nil
}

// Stop halts playback and disposes the track. Stop is terminal: the
// stream is released rather than rewound, and the track cannot be
// played again afterwards.
func (t *Track) Stop() error {
	if err := t.guard(); err != nil {
		return err
	}

	if err := t.eng.Stop(t.handle); err != nil {
		return fmt.Errorf("halting playback: %w", err)
	}
	return t.Dispose()
}

// Restart rewinds to the start and plays. When currently playing the
// track is paused first. The sequence is not atomic; if the seek step
// fails the track is left paused.
func (t *Track) Restart() error {
	if err := t.guard(); err != nil {
		return err
	}

	st, err := t.eng.State(t.handle)
	if err != nil {
		return fmt.Errorf("querying state: %w", err)
	}
	if st == engine.StatePlaying {
		if err := t.Pause(); err != nil {
			return err
		}
	}
	if err := t.Seek(0); err != nil {
		return err
	}
	return t.Play()
}

// Seek moves the playback cursor to ms milliseconds. The accepted
// range is [-1, Length]; -1 positions the cursor just before the
// start. Out-of-range positions fail with ErrInvalidArgument and leave
// the cursor unchanged.
func (t *Track) Seek(ms float64) error {
	if err := t.guard(); err != nil {
		return err
	}

	length, err := t.Length()
	if err != nil {
		return err
	}
	if ms < -1 || ms > length {
		return fmt.Errorf("seek to %vms outside [-1, %v]: %w", ms, length, ErrInvalidArgument)
	}

	if err := t.eng.SetPosition(t.handle, ms/1000); err != nil {
		return fmt.Errorf("seeking: %w", err)
	}
	return nil
}

// SetRate changes the playback speed multiplier (1.0 = normal). The
// engine tempo attribute receives the equivalent percentage deviation,
// and the pitch setting is re-applied so compensation stays consistent
// with the new rate. Non-positive rates fail with ErrInvalidArgument
// and keep the previous rate.
func (t *Track) SetRate(r float64) error {
	if err := t.guard(); err != nil {
		return err
	}
	if r <= 0 {
		return fmt.Errorf("rate %v is not positive: %w", r, ErrInvalidArgument)
	}

	if err := t.eng.SetTempo(t.handle, r*100-100); err != nil {
		return fmt.Errorf("setting tempo: %w", err)
	}
	t.rate = r
	return t.applyPitch()
}

// SetPitched toggles pitch compensation. When enabled the pitch shift
// is 12*log2(rate) semitones, cancelling the natural pitch change a
// rate change would cause; when disabled the shift is reset to neutral
// and pitch follows rate.
func (t *Track) SetPitched(enable bool) error {
	if err := t.guard(); err != nil {
		return err
	}
	t.pitched = enable
	return t.applyPitch()
}

func (t *Track) applyPitch() error {
	var semitones float64
	if t.pitched {
		semitones = 12 * math.Log2(t.rate)
	}
	if err := t.eng.SetPitch(t.handle, semitones); err != nil {
		return fmt.Errorf("applying pitch: %w", err)
	}
	return nil
}

// Dispose releases the stream, deregisters the track and marks it
// disposed. Disposing an already-disposed track is a no-op.
func (t *Track) Dispose() error {
	if t.disposed {
		return nil
	}

	if t.handle != 0 {
		if err := t.eng.Free(t.handle); err != nil {
			return fmt.Errorf("freeing stream: %w", err)
		}
		t.handle = 0
	}
	t.disposed = true
	t.mgr.Deregister(t)
	return nil
}

// Rate returns the current playback speed multiplier.
func (t *Track) Rate() float64 { return t.rate }

// IsPitched reports whether pitch compensation is enabled.
func (t *Track) IsPitched() bool { return t.pitched }

// HasPlayed reports whether the track has ever been played.
func (t *Track) HasPlayed() bool { return t.hasPlayed }

// IsDisposed reports whether the track has been disposed.
func (t *Track) IsDisposed() bool { return t.disposed }

// Position returns the engine-reported playback cursor in milliseconds.
func (t *Track) Position() (float64, error) {
	if err := t.guard(); err != nil {
		return 0, err
	}
	sec, err := t.eng.Position(t.handle)
	if err != nil {
		return 0, fmt.Errorf("querying position: %w", err)
	}
	return sec * 1000, nil
}

// Length returns the stream length in milliseconds.
func (t *Track) Length() (float64, error) {
	if err := t.guard(); err != nil {
		return 0, err
	}
	sec, err := t.eng.Length(t.handle)
	if err != nil {
		return 0, fmt.Errorf("querying length: %w", err)
	}
	return sec * 1000, nil
}

// IsPlaying reports whether the stream is actively playing.
func (t *Track) IsPlaying() (bool, error) {
	st, err := t.state()
	return st == engine.StatePlaying, err
}

// IsPaused reports whether the stream is paused.
func (t *Track) IsPaused() (bool, error) {
	st, err := t.state()
	return st == engine.StatePaused, err
}

// IsStopped reports whether the stream is stopped.
func (t *Track) IsStopped() (bool, error) {
	st, err := t.state()
	return st == engine.StateStopped, err
}

func (t *Track) state() (engine.State, error) {
	if err := t.guard(); err != nil {
		return engine.StateStopped, err
	}
	st, err := t.eng.State(t.handle)
	if err != nil {
		return engine.StateStopped, fmt.Errorf("querying state: %w", err)
	}
	return st, nil
}
