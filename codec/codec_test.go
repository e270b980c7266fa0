// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"io"
	"testing"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (*Buffer, error) {
	return &Buffer{SampleRate: 44100, Channels: 2}, nil
}

func TestBuffer_Frames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		samples  int
		channels int
		want     int
	}{
		{name: "stereo", samples: 100, channels: 2, want: 50},
		{name: "mono", samples: 100, channels: 1, want: 100},
		{name: "empty", samples: 0, channels: 2, want: 0},
		{name: "zero channels", samples: 10, channels: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := &Buffer{Data: make([]float32, tt.samples), Channels: tt.channels}
			if got := b.Frames(); got != tt.want {
				t.Errorf("Frames() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	b := &Buffer{
		Data:       make([]float32, 44100*2), // one second of stereo
		SampleRate: 44100,
		Channels:   2,
	}

	if got := b.Duration(); got != 1.0 {
		t.Errorf("Duration() = %v, want 1.0", got)
	}

	empty := &Buffer{Channels: 2}
	if got := empty.Duration(); got != 0 {
		t.Errorf("empty Duration() = %v, want 0", got)
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   []byte
		want   string
		wantOK bool
	}{
		{
			name:   "wav",
			data:   []byte("RIFF\x24\x00\x00\x00WAVEfmt "),
			want:   "wav",
			wantOK: true,
		},
		{
			name:   "aiff",
			data:   []byte("FORM\x00\x00\x00\x24AIFFCOMM"),
			want:   "aiff",
			wantOK: true,
		},
		{
			name:   "ogg",
			data:   []byte("OggS\x00\x02"),
			want:   "ogg",
			wantOK: true,
		},
		{
			name:   "mp3 with id3 tag",
			data:   []byte("ID3\x04\x00"),
			want:   "mp3",
			wantOK: true,
		},
		{
			name:   "mp3 bare frame sync",
			data:   []byte{0xFF, 0xFB, 0x90, 0x00},
			want:   "mp3",
			wantOK: true,
		},
		{
			name: "unknown",
			data: []byte("hello world, definitely not audio"),
		},
		{
			name: "riff but not wave",
			data: []byte("RIFF\x24\x00\x00\x00AVI LIST"),
		},
		{
			name: "empty",
			data: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Detect(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("Detect() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
