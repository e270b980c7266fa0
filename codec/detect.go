// SPDX-License-Identifier: EPL-2.0

package codec

import "bytes"

// Detect sniffs the container magic of data and returns the registry
// format key. It recognizes RIFF/WAVE, Ogg, FORM/AIFF and MP3 (ID3
// tag or bare frame sync). The boolean is false for unknown data.
func Detect(data []byte) (string, bool) {
	if len(data) >= 12 {
		if bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")) {
			return "wav", true
		}
		if bytes.Equal(data[:4], []byte("FORM")) && bytes.Equal(data[8:12], []byte("AIFF")) {
			return "aiff", true
		}
	}
	if len(data) >= 4 && bytes.Equal(data[:4], []byte("OggS")) {
		return "ogg", true
	}
	if len(data) >= 3 && bytes.Equal(data[:3], []byte("ID3")) {
		return "mp3", true
	}
	// Bare MPEG audio frame sync: 11 set bits
	if len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0 {
		return "mp3", true
	}
	return "", false
}
