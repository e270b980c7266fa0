// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// HannWindow returns a periodic Hann window of n points.
// At 50% overlap consecutive periodic Hann windows sum to unity,
// which keeps overlap-add synthesis gain-neutral.
func HannWindow(n int) []float32 {
	w := make([]float32, n)
	for i := range w {
		w[i] = float32(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n))))
	}
	return w
}
