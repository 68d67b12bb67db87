package interpolate

import (
	"fmt"
	"math"
	"sort"
)

// Sample is a single observed point, y = f(x).
type Sample struct {
	X, Y float64
}

// zip pairs up xs and ys in order. If the lengths differ, the extra values in
// the longer slice are ignored.
func zip(xs, ys []float64) []Sample {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{xs[i], ys[i]}
	}
	return samples
}

// unzip splits samples into their x and y coordinates.
func unzip(samples []Sample) (xs, ys []float64) {
	xs, ys = make([]float64, len(samples)), make([]float64, len(samples))
	for i, s := range samples {
		xs[i], ys[i] = s.X, s.Y
	}
	return xs, ys
}

// checkSamples makes sure that the samples can be differenced: every value is
// finite and no two samples share an x value. Every pair of x values meets in
// some level of the divided difference table, so this is checked over the
// whole sequence and not just between neighbors.
func checkSamples(samples []Sample) error {
	for i, s := range samples {
		if !isFinite(s.X) || !isFinite(s.Y) {
			return fmt.Errorf(
				"sample %d is (%g, %g): %w", i, s.X, s.Y, ErrNonFinite,
			)
		}
	}

	xs, _ := unzip(samples)
	sort.Float64s(xs)
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return fmt.Errorf("x = %g: %w", xs[i], ErrDuplicateX)
		}
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
