// SPDX-License-Identifier: EPL-2.0

package audtrack_test

import (
	"fmt"

	"github.com/ik5/audtrack"
	"github.com/ik5/audtrack/internal/audiotest"
)

// Example_transport walks a track through the transport states and the
// rate controls. A scriptable engine stands in for the audio device so
// the example is deterministic; a real program would call
// audtrack.NewPlayer(44100) instead.
func Example_transport() {
	player := audtrack.NewPlayerWith(audiotest.NewFakeEngine(180.0))
	defer player.Close()

	track, err := player.LoadBytes([]byte("encoded audio"))
	if err != nil {
		fmt.Printf("load error: %v\n", err)
		return
	}

	if err := track.Play(); err != nil {
		fmt.Printf("play error: %v\n", err)
		return
	}
	playing, _ := track.IsPlaying()
	fmt.Printf("playing: %v\n", playing)

	// Play 10% slower, keeping the original pitch.
	if err := track.SetRate(0.9); err != nil {
		fmt.Printf("rate error: %v\n", err)
		return
	}
	fmt.Printf("rate: %v\n", track.Rate())

	// Tick the frame clock as a game loop would, one 16ms frame.
	player.Advance(16)
	fmt.Printf("time: %.1fms\n", track.Time())

	if err := track.Pause(); err != nil {
		fmt.Printf("pause error: %v\n", err)
		return
	}
	paused, _ := track.IsPaused()
	fmt.Printf("paused: %v\n", paused)

	// Output:
	// playing: true
	// rate: 0.9
	// time: 7.2ms
	// paused: true
}
