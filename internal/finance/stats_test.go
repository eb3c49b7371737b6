package finance

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
	if got := Mean([]float64{42}); got != 42 {
		t.Errorf("Mean([42]) = %v, want 42", got)
	}
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean([1..4]) = %v, want 2.5", got)
	}
}

func TestPopulationVariance(t *testing.T) {
	if got := PopulationVariance(nil); got != 0 {
		t.Errorf("PopulationVariance(nil) = %v, want 0", got)
	}
	if got := PopulationVariance([]float64{7.5}); got != 0 {
		t.Errorf("PopulationVariance(single) = %v, want 0", got)
	}
	// Constant sequence has zero variance.
	if got := PopulationVariance([]float64{3, 3, 3, 3, 3}); got != 0 {
		t.Errorf("PopulationVariance(constant) = %v, want 0", got)
	}
	// Divisor is N, not N-1: variance of [2, 4] is 1, not 2.
	if got := PopulationVariance([]float64{2, 4}); got != 1 {
		t.Errorf("PopulationVariance([2 4]) = %v, want 1", got)
	}
	if got := PopulationVariance([]float64{1, 2, 3, 4, 5}); got != 2 {
		t.Errorf("PopulationVariance([1..5]) = %v, want 2", got)
	}
}

func TestPopulationVariancePropagatesNaN(t *testing.T) {
	got := PopulationVariance([]float64{1, math.NaN(), 3})
	if !math.IsNaN(got) {
		t.Errorf("PopulationVariance with NaN input = %v, want NaN", got)
	}
}
