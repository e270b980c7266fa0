// SPDX-License-Identifier: EPL-2.0

package track

import "sync"

// Manager is the set of live tracks. It replaces a process-global
// registry with an explicit object owned by the frame-loop driver: the
// driver broadcasts per-frame time correction through it, and tracks
// register on construction and deregister on disposal.
//
// The manager is safe for concurrent use. Individual tracks are not;
// transport calls for one track must stay on one goroutine.
type Manager struct {
	mtx    sync.Mutex
	tracks map[*Track]struct{}
}

func NewManager() *Manager {
	return &Manager{
		tracks: make(map[*Track]struct{}),
	}
}

// Register adds t to the live set. Registering a track twice is a no-op.
func (m *Manager) Register(t *Track) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.tracks[t] = struct{}{}
}

// Deregister removes t from the live set.
func (m *Manager) Deregister(t *Track) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	delete(m.tracks, t)
}

// Contains reports whether t is registered.
func (m *Manager) Contains(t *Track) bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	_, ok := m.tracks[t]
	return ok
}

// Len returns the number of live tracks.
func (m *Manager) Len() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return len(m.tracks)
}

// Tracks returns a snapshot of the live set. Order is unspecified.
func (m *Manager) Tracks() []*Track {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	out := make([]*Track, 0, len(m.tracks))
	for t := range m.tracks {
		out = append(out, t)
	}
	return out
}

// CorrectTime broadcasts a frame tick to every live track. dt is the
// elapsed wall time since the previous frame in milliseconds.
func (m *Manager) CorrectTime(dt float64) {
	for _, t := range m.Tracks() {
		t.CorrectTime(dt)
	}
}
