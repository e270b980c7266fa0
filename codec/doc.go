// SPDX-License-Identifier: EPL-2.0

// Package codec provides whole-stream audio decoding into PCM buffers.
//
// Unlike a streaming decode pipeline, every decoder here consumes its
// input completely and returns a Buffer: interleaved float32 samples
// with a known sample rate and channel count. The playback layer needs
// random access for seeking and an exact total length for position
// validation, and a fully decoded buffer provides both trivially.
//
// # Decoders
//
// Each format lives in its own subpackage:
//   - WAV via codec/wav (go-audio/wav)
//   - MP3 via codec/mp3 (hajimehoshi/go-mp3)
//   - Ogg Vorbis via codec/vorbis (jfreymuth/oggvorbis)
//   - AIFF via codec/aiff (go-audio/aiff)
//
// All decoders implement the Decoder interface:
//
//	type Decoder interface {
//	    Decode(r io.Reader) (*Buffer, error)
//	}
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := codec.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sniffing
//
// Detect inspects container magic bytes so byte buffers can be decoded
// without a file extension:
//
//	format, ok := codec.Detect(data)
//
// # Sample Format
//
// Samples are interleaved float32 in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format keeps downstream processing independent of
// source bit depths.
package codec
