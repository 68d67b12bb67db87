/*package interpolate fits Newton interpolating polynomials to sampled points
and integrates them. It is used to turn a handful of free energy samples taken
along a coupling coordinate into a smooth curve and an area estimate.
*/
package interpolate

// Interpolator is a 1D interpolator.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Polynomial{}
)
