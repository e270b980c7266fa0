// SPDX-License-Identifier: EPL-2.0

package audtrack

import (
	"fmt"
	"io"

	"github.com/ik5/audtrack/engine"
	"github.com/ik5/audtrack/mixer"
	"github.com/ik5/audtrack/track"
)

// Player bundles an engine with a track manager: the one object a game
// loop needs to load tracks and drive their time correction.
type Player struct {
	eng engine.Engine
	mgr *track.Manager
}

// NewPlayer opens the default audio output at sampleRate (44100 is the
// usual choice) backed by the mixer engine.
func NewPlayer(sampleRate int) (*Player, error) {
	eng, err := mixer.New(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return NewPlayerWith(eng), nil
}

// NewPlayerWith builds a Player on a custom engine implementation.
func NewPlayerWith(eng engine.Engine) *Player {
	return &Player{
		eng: eng,
		mgr: track.NewManager(),
	}
}

// Engine returns the underlying engine.
func (p *Player) Engine() engine.Engine { return p.eng }

// Tracks returns the live track manager.
func (p *Player) Tracks() *track.Manager { return p.mgr }

// Load decodes the audio file at path into a new managed track.
func (p *Player) Load(path string) (*track.Track, error) {
	return track.NewFromPath(p.eng, p.mgr, path)
}

// LoadBytes decodes an in-memory encoded stream into a new managed
// track, sniffing the format from its magic bytes.
func (p *Player) LoadBytes(data []byte) (*track.Track, error) {
	return track.NewFromBytes(p.eng, p.mgr, data)
}

// Advance ticks the frame clock: every live track reconciles its
// smoothed time against the engine position. dt is the elapsed wall
// time since the previous frame in milliseconds. Call it once per
// frame, after any transport commands issued that frame.
func (p *Player) Advance(dt float64) {
	p.mgr.CorrectTime(dt)
}

// Close disposes every live track and shuts down the engine if it
// supports closing.
func (p *Player) Close() error {
	var firstErr error
	for _, t := range p.mgr.Tracks() {
		if err := t.Dispose(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c, ok := p.eng.(io.Closer); ok {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
