// SPDX-License-Identifier: EPL-2.0

package engine

// StreamHandle identifies an audio stream owned by an Engine.
// The zero handle never refers to a live stream.
type StreamHandle uint32

// State is the activity state of a stream. Exactly one state holds for
// any live stream at any time.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// Engine is the narrow capability surface a playback backend must
// provide. Positions and lengths are in seconds of stream time; tempo
// is a percentage deviation from normal speed (0 = normal, 50 = one
// and a half times); pitch is in semitones.
//
// Engines are expected to be safe for concurrent use, but every call
// is synchronous and bounded; nothing here blocks on playback.
type Engine interface {
	// StreamFromPath decodes the file at path into a new stream.
	StreamFromPath(path string) (StreamHandle, error)
	// StreamFromBytes decodes an in-memory encoded stream.
	StreamFromBytes(data []byte) (StreamHandle, error)

	// WrapTempo layers a tempo/pitch processing stage over h and
	// returns the wrapped stream. Ownership of h transfers to the
	// wrapper: freeing the returned handle frees the underlying
	// stream, and h itself must not be used afterwards.
	WrapTempo(h StreamHandle) (StreamHandle, error)

	// SetAutoFree marks h to release its resources once playback
	// naturally reaches the end of the stream.
	SetAutoFree(h StreamHandle) error

	Play(h StreamHandle) error
	Pause(h StreamHandle) error
	Stop(h StreamHandle) error
	Free(h StreamHandle) error

	SetPosition(h StreamHandle, seconds float64) error
	Position(h StreamHandle) (float64, error)
	Length(h StreamHandle) (float64, error)
	State(h StreamHandle) (State, error)

	// SetTempo adjusts playback speed without affecting pitch.
	SetTempo(h StreamHandle, percent float64) error
	// SetPitch shifts pitch without affecting speed.
	SetPitch(h StreamHandle, semitones float64) error
}
