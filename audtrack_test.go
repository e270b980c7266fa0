// SPDX-License-Identifier: EPL-2.0

package audtrack_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audtrack"
	"github.com/ik5/audtrack/internal/audiotest"
)

func newPlayer() (*audtrack.Player, *audiotest.FakeEngine) {
	eng := audiotest.NewFakeEngine(5.0)
	return audtrack.NewPlayerWith(eng), eng
}

func TestLoadBytes_RegistersTrack(t *testing.T) {
	t.Parallel()

	p, _ := newPlayer()

	tr, err := p.LoadBytes([]byte("encoded"))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	if !p.Tracks().Contains(tr) {
		t.Error("loaded track not registered with the manager")
	}
	if got := p.Tracks().Len(); got != 1 {
		t.Errorf("Tracks().Len() = %d, want 1", got)
	}
}

func TestLoad_CreateFailure(t *testing.T) {
	t.Parallel()

	p, eng := newPlayer()
	eng.CreateErr = errors.New("no such file")

	if _, err := p.Load("missing.wav"); err == nil {
		t.Fatal("Load() succeeded, want error")
	}
	if got := p.Tracks().Len(); got != 0 {
		t.Errorf("Tracks().Len() = %d after failed load, want 0", got)
	}
}

func TestAdvance_DrivesTrackClocks(t *testing.T) {
	t.Parallel()

	p, eng := newPlayer()

	tr, err := p.LoadBytes([]byte("encoded"))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if err := tr.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	// The engine reports 1.000s while the smoothed clock is at zero;
	// every tick halves the gap, so the clock converges upward.
	for _, s := range eng.Streams {
		s.Pos = 1.0
	}

	var last float64
	for range 20 {
		p.Advance(16)
		last = tr.Time()
	}

	if math.Abs(last-1016) > 1.0 {
		t.Errorf("Time() = %vms after convergence, want ≈1016", last)
	}
}

func TestClose_DisposesTracks(t *testing.T) {
	t.Parallel()

	p, eng := newPlayer()

	tr1, err := p.LoadBytes([]byte("one"))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	tr2, err := p.LoadBytes([]byte("two"))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !tr1.IsDisposed() || !tr2.IsDisposed() {
		t.Error("tracks survived Close")
	}
	if got := p.Tracks().Len(); got != 0 {
		t.Errorf("Tracks().Len() = %d after Close, want 0", got)
	}
	if len(eng.Streams) != 0 {
		t.Errorf("%d engine streams alive after Close, want 0", len(eng.Streams))
	}
}
