package interpolate

// DividedDifferences computes the Newton forward divided differences of a
// sequence of samples: [y_0, f[x_0, x_1], f[x_0, x_1, x_2], ...]. The result
// has one element per sample.
//
// The samples are checked first, so duplicate or non-finite values return an
// error instead of infinite coefficients.
func DividedDifferences(samples []Sample) ([]float64, error) {
	if err := checkSamples(samples); err != nil {
		return nil, err
	}
	return DividedDifferencesUnchecked(samples), nil
}

// DividedDifferencesUnchecked is DividedDifferences without any validation.
// Duplicate x values divide by zero and show up as Inf or NaN entries.
func DividedDifferencesUnchecked(samples []Sample) []float64 {
	if len(samples) == 0 {
		return []float64{}
	}

	xs, level := unzip(samples)
	dds := make([]float64, 0, len(samples))
	dds = append(dds, level[0])

	// Each level is one element shorter than the last and is differenced
	// in place. s is the width of the window [x_t, x_{t+s}].
	for s := 1; s < len(samples); s++ {
		for t := 0; t < len(level)-1; t++ {
			level[t] = (level[t+1] - level[t]) / (xs[t+s] - xs[t])
		}
		level = level[:len(level)-1]
		dds = append(dds, level[0])
	}

	return dds
}
