package interpolate

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
)

type polyParams struct{ capacity int }
type internalOption func(*polyParams)

// Option configures how a Polynomial is fit.
type Option internalOption

// Capacity lowers the maximum number of samples a Polynomial will accept.
// It must be in the range [1, MaxSamples].
func Capacity(n int) Option {
	return func(p *polyParams) { p.capacity = n }
}

func (p *polyParams) loadOptions(opts []Option) error {
	p.capacity = MaxSamples
	for _, opt := range opts { opt(p) }

	if p.capacity < 1 || p.capacity > MaxSamples {
		return fmt.Errorf(
			"capacity %d is outside [1, %d]: %w",
			p.capacity, MaxSamples, ErrCapacity,
		)
	}
	return nil
}

// Polynomial is a Newton interpolating polynomial which has been expanded
// into the power basis. It holds its own copy of the samples it was fit to
// and is never modified after construction, so it can be shared between
// goroutines freely.
type Polynomial struct {
	samples []Sample
	coeffs  []float64
}

// NewPolynomial fits a polynomial of degree len(samples) - 1 through the
// given samples. The samples should be ordered by x: the integration bounds
// are the first and last samples, and the trapezoids are taken between
// neighbors.
func NewPolynomial(samples []Sample, opts ...Option) (*Polynomial, error) {
	p := &polyParams{}
	if err := p.loadOptions(opts); err != nil { return nil, err }

	if len(samples) > p.capacity {
		return nil, fmt.Errorf(
			"%d samples given, but the capacity is %d: %w",
			len(samples), p.capacity, ErrCapacity,
		)
	}

	poly := &Polynomial{}
	poly.samples = make([]Sample, len(samples))
	copy(poly.samples, samples)

	dds, err := DividedDifferences(poly.samples)
	if err != nil { return nil, err }

	xs, _ := unzip(poly.samples)
	poly.coeffs, err = expand(xs, dds)
	if err != nil { return nil, err }

	return poly, nil
}

// NewPolynomialXY is NewPolynomial for samples given as two parallel slices.
// If the slices have different lengths, the extra values in the longer one
// are ignored.
func NewPolynomialXY(xs, ys []float64, opts ...Option) (*Polynomial, error) {
	return NewPolynomial(zip(xs, ys), opts...)
}

// Samples returns a copy of the samples the polynomial was fit to.
func (poly *Polynomial) Samples() []Sample {
	out := make([]Sample, len(poly.samples))
	copy(out, poly.samples)
	return out
}

// Coeffs returns a copy of the power-basis coefficients. Coeffs()[i] is the
// coefficient of x^i.
func (poly *Polynomial) Coeffs() []float64 {
	out := make([]float64, len(poly.coeffs))
	copy(out, poly.coeffs)
	return out
}

// Len returns the number of samples.
func (poly *Polynomial) Len() int { return len(poly.samples) }

// Degree returns the degree of the polynomial, or -1 if it is empty.
func (poly *Polynomial) Degree() int { return len(poly.coeffs) - 1 }

// Eval evaluates the polynomial at x.
func (poly *Polynomial) Eval(x float64) float64 {
	y := 0.0
	for i := len(poly.coeffs) - 1; i >= 0; i-- {
		y = y*x + poly.coeffs[i]
	}
	return y
}

// EvalAll evaluates the polynomial at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (poly *Polynomial) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 { out = [][]float64{make([]float64, len(xs))} }
	for i, x := range xs { out[0][i] = poly.Eval(x) }
	return out[0]
}

// IntegralBetween integrates the polynomial analytically from lo to hi.
func (poly *Polynomial) IntegralBetween(lo, hi float64) float64 {
	area := 0.0
	for i, c := range poly.coeffs {
		power := float64(i + 1)
		area += c * (math.Pow(hi, power) - math.Pow(lo, power)) / power
	}
	return area
}

// Integral integrates the polynomial from the x value of the first sample to
// the x value of the last sample. The bounds follow the order the samples
// were given in, not their numeric range, so samples given in decreasing
// order give a negated area.
func (poly *Polynomial) Integral() (float64, error) {
	if len(poly.samples) < 2 {
		return 0, fmt.Errorf(
			"integral needs 2 samples, have %d: %w",
			len(poly.samples), ErrTooFewSamples,
		)
	}

	lo, hi := poly.samples[0].X, poly.samples[len(poly.samples)-1].X
	return poly.IntegralBetween(lo, hi), nil
}

// Quadrature estimates the same area as Integral with the trapezoid rule
// applied to the raw samples. It does not use the coefficients at all, so it
// is an independent check on the fit.
func (poly *Polynomial) Quadrature() (float64, error) {
	if len(poly.samples) < 2 {
		return 0, fmt.Errorf(
			"quadrature needs 2 samples, have %d: %w",
			len(poly.samples), ErrTooFewSamples,
		)
	}

	area := 0.0
	for k := 0; k < len(poly.samples)-1; k++ {
		a, b := poly.samples[k], poly.samples[k+1]
		area += 0.5 * (b.Y + a.Y) * (b.X - a.X)
	}
	return area, nil
}

// Grid evaluates the polynomial at steps + 1 evenly spaced points on [0, 1],
// endpoints included.
//
// The domain is always [0, 1], whatever range the samples cover: the samples
// are expected to sit on a normalized coupling coordinate. Use GridRange for
// anything else.
func (poly *Polynomial) Grid(steps int) ([]Sample, error) {
	return poly.GridRange(0, 1, steps)
}

// GridRange evaluates the polynomial at steps + 1 evenly spaced points on
// [lo, hi], endpoints included.
func (poly *Polynomial) GridRange(lo, hi float64, steps int) ([]Sample, error) {
	if steps < 1 {
		return nil, fmt.Errorf("steps = %d: %w", steps, ErrBadSteps)
	} else if len(poly.coeffs) == 0 {
		return nil, ErrEmpty
	}

	xs := floats.Span(make([]float64, steps+1), lo, hi)
	grid := make([]Sample, len(xs))
	for i, x := range xs {
		grid[i] = Sample{x, poly.Eval(x)}
	}
	return grid, nil
}

// ReportCoeffs writes a human-readable table of the coefficients to w, one
// "degree, coefficient" line per power of x.
func (poly *Polynomial) ReportCoeffs(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Degree, Coefficients"); err != nil {
		return err
	}
	for i, c := range poly.coeffs {
		if _, err := fmt.Fprintf(w, "%6d, %.8f\n", i, c); err != nil {
			return err
		}
	}
	return nil
}

// ReportArea writes an area estimate to w.
func ReportArea(w io.Writer, area float64) error {
	_, err := fmt.Fprintf(w, "area under the curve: %.8f\n", area)
	return err
}
