package investments

import (
	"slices"
	"testing"
)

func TestDescribe(t *testing.T) {
	got := Describe(slices.Values([]float64{2, 4, 4, 4, 5, 5, 7, 9}))
	if got.N != 8 {
		t.Errorf("N = %d, want 8", got.N)
	}
	if !approx(got.Mean, 5, 1e-12) {
		t.Errorf("Mean = %v, want 5", got.Mean)
	}
	// population standard deviation, as a numerical library would report it
	if !approx(got.Std, 2, 1e-12) {
		t.Errorf("Std = %v, want 2", got.Std)
	}
	if got.Min != 2 || got.Max != 9 {
		t.Errorf("Min/Max = %v/%v, want 2/9", got.Min, got.Max)
	}
}

func TestDescribe_Empty(t *testing.T) {
	got := Describe(slices.Values([]float64(nil)))
	if got != (Stats{}) {
		t.Errorf("Describe(empty) = %+v, want zero Stats", got)
	}
}
