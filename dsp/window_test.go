// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"
)

func TestHannWindow_Shape(t *testing.T) {
	t.Parallel()

	w := HannWindow(8)

	if len(w) != 8 {
		t.Fatalf("len = %d, want 8", len(w))
	}
	if w[0] != 0 {
		t.Errorf("w[0] = %v, want 0", w[0])
	}
	if math.Abs(float64(w[4]-1)) > 1e-6 {
		t.Errorf("w[n/2] = %v, want 1", w[4])
	}
}

func TestHannWindow_OverlapSumsToUnity(t *testing.T) {
	t.Parallel()

	// Periodic Hann at 50% overlap must be gain-neutral: for every
	// index i in the second half, w[i] + w[i - n/2] == 1.
	const n = 64
	w := HannWindow(n)

	for i := n / 2; i < n; i++ {
		sum := float64(w[i] + w[i-n/2])
		if math.Abs(sum-1) > 1e-6 {
			t.Errorf("w[%d]+w[%d] = %v, want 1", i, i-n/2, sum)
		}
	}
}
