// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
)

// device abstracts the audio output so the engine can be exercised in
// tests without sound hardware.
type device interface {
	newPlayer(r io.Reader) player
	close() error
}

// player mirrors the subset of *oto.Player the engine uses.
type player interface {
	Play()
	Pause()
	IsPlaying() bool
	Close() error
}

type otoDevice struct {
	ctx *oto.Context
}

func newOtoDevice(sampleRate int) (*otoDevice, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: outChannels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	return &otoDevice{ctx: ctx}, nil
}

func (d *otoDevice) newPlayer(r io.Reader) player {
	return d.ctx.NewPlayer(r)
}

func (d *otoDevice) close() error {
	// oto contexts cannot be destroyed; suspending stops the output
	// goroutines and releases the device to the OS mixer.
	err := d.ctx.Suspend()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
