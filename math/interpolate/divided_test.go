package interpolate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDividedDifferences(t *testing.T) {
	table := []struct {
		samples []Sample
		dds     []float64
	}{
		{[]Sample{}, []float64{}},
		{[]Sample{{2, 7}}, []float64{7}},
		{[]Sample{{0, 0}, {1, 1}, {2, 4}}, []float64{0, 1, 1}},
		{[]Sample{{1, 1}, {2, 8}, {3, 27}, {4, 64}}, []float64{1, 7, 6, 1}},
		// Uneven spacing: f(x) = 2x + 1.
		{[]Sample{{0, 1}, {0.5, 2}, {2, 5}}, []float64{1, 2, 0}},
		// Decreasing order works too.
		{[]Sample{{2, 4}, {1, 1}, {0, 0}}, []float64{4, 3, 1}},
	}

	for i, test := range table {
		dds, err := DividedDifferences(test.samples)
		require.NoError(t, err)
		if !almostEq(dds, test.dds, 1e-12) {
			t.Errorf("%d) Expected %g for divided differences. Got %g.",
				i+1, test.dds, dds)
		}
	}
}

func TestDividedDifferencesDoesNotModifyInput(t *testing.T) {
	samples := []Sample{{0, 0}, {1, 1}, {2, 4}}
	_, err := DividedDifferences(samples)
	require.NoError(t, err)
	assert.Equal(t, []Sample{{0, 0}, {1, 1}, {2, 4}}, samples)
}

func TestDividedDifferencesDuplicateX(t *testing.T) {
	table := [][]Sample{
		{{0, 0}, {0, 1}},
		{{0, 0}, {1, 1}, {0, 2}},
		{{3, 0}, {1, 1}, {2, 2}, {1, 5}},
	}
	for i, samples := range table {
		_, err := DividedDifferences(samples)
		assert.True(t, errors.Is(err, ErrDuplicateX), "%d) err = %v", i+1, err)
	}
}

func TestDividedDifferencesNonFinite(t *testing.T) {
	table := [][]Sample{
		{{0, 0}, {math.NaN(), 1}},
		{{0, math.Inf(1)}, {1, 1}},
		{{math.Inf(-1), 0}, {1, 1}},
	}
	for i, samples := range table {
		_, err := DividedDifferences(samples)
		assert.True(t, errors.Is(err, ErrNonFinite), "%d) err = %v", i+1, err)
	}
}

// Without validation, a duplicate x divides by zero and the infinities leak
// into every later level.
func TestDividedDifferencesUncheckedPropagation(t *testing.T) {
	dds := DividedDifferencesUnchecked([]Sample{{0, 0}, {0, 1}, {1, 2}})
	require.Len(t, dds, 3)
	assert.Equal(t, 0.0, dds[0])
	assert.True(t, math.IsInf(dds[1], +1))
	assert.True(t, math.IsInf(dds[2], -1))

	dds = DividedDifferencesUnchecked([]Sample{{1, 3}, {1, 3}})
	assert.True(t, math.IsNaN(dds[1]))
}
