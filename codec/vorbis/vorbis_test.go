// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"testing"
)

func TestDecode_InvalidData(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an ogg container")))
	if err == nil {
		t.Fatal("Decode() succeeded on garbage input")
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Fatal("Decode() succeeded on empty input")
	}
}
