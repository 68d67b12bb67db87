package interpolate

import (
	"fmt"
	"math/bits"
)

// MaxSamples is the largest number of samples a Polynomial can be fit to.
// Expanding the last Newton term enumerates every subset of the first
// MaxSamples - 1 x values as the bits of a uint64.
//
// The expansion costs O(n 2^n), so in practice the limit is time, not bits:
// a few dozen samples is already slow.
const MaxSamples = 64

// Permute expands the product (x - xs[0])(x - xs[1])...(x - xs[k-1]) into
// monomials. Every subset of xs is visited as a bit pattern: the subset
// contributes the product of -xs[j] over its members to the slot indexed by
// its size. The returned slice has length k + 1 and slot m holds the
// coefficient of x^(k-m), so the leading coefficient comes first.
func Permute(xs []float64) ([]float64, error) {
	k := len(xs)
	if k >= MaxSamples {
		return nil, fmt.Errorf(
			"expanding %d factors needs %d bits, only %d are available: %w",
			k, k, MaxSamples-1, ErrCapacity,
		)
	}

	term := make([]float64, k+1)
	subsets := uint64(1) << uint(k)
	for mask := uint64(0); mask < subsets; mask++ {
		unit := 1.0
		for j := 0; j < k; j++ {
			if mask&(uint64(1)<<uint(j)) != 0 {
				unit *= -xs[j]
			}
		}
		term[bits.OnesCount64(mask)] += unit
	}

	return term, nil
}

// expand turns divided differences into power-basis coefficients:
//
//	P(x) = d_0 + d_1 (x - x_0) + d_2 (x - x_0)(x - x_1) + ...
//
// Each Newton term is expanded by Permute and added in with its order
// reversed, so that coeffs[i] is the coefficient of x^i.
func expand(xs, dds []float64) ([]float64, error) {
	n := len(dds)
	coeffs := make([]float64, n)
	term := []float64{1}

	for s := 0; s < n; s++ {
		for t := range term {
			coeffs[t] += dds[s] * term[len(term)-1-t]
		}

		if s == n-1 {
			break
		}

		var err error
		term, err = Permute(xs[:s+1])
		if err != nil {
			return nil, err
		}
	}

	for i, c := range coeffs {
		if !isFinite(c) {
			return nil, fmt.Errorf(
				"coefficient of x^%d is %g: %w", i, c, ErrNonFinite,
			)
		}
	}

	return coeffs, nil
}
