// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE PCM audio.
//
// Decoding is delegated to github.com/go-audio/wav and supports 8, 16,
// 24 and 32-bit integer PCM, normalized to float32. Encode16 writes
// canonical 16-bit PCM files and streams.
package wav
