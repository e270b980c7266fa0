package track

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotLoaded, ErrDisposed, ErrInvalidTransition, ErrInvalidArgument}

	for i, a := range sentinels {
		if a == nil {
			t.Fatalf("sentinel %d is nil", i)
		}
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want distinct sentinels", a, b)
			}
		}
	}
}

func TestSentinelErrors_SurviveWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("seek to 9000ms outside [-1, 5000]: %w", ErrInvalidArgument)

	if !errors.Is(wrapped, ErrInvalidArgument) {
		t.Error("errors.Is() failed for wrapped ErrInvalidArgument")
	}
	if errors.Is(wrapped, ErrInvalidTransition) {
		t.Error("errors.Is() matched the wrong sentinel")
	}
}
