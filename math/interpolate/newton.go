package interpolate

import (
	"io"
	"os"
	"sync"
)

// Newton holds the polynomial fit to the most recently loaded samples. Each
// load builds a complete new Polynomial and swaps it in, so readers never see
// a partially computed fit. Newton is safe for concurrent use.
//
// The print flags on the accessors write human-readable summaries to the
// report writer, which is os.Stdout unless SetReport is called.
type Newton struct {
	mu     sync.RWMutex
	poly   *Polynomial
	report io.Writer
	opts   []Option
}

// NewNewton creates an empty Newton. The options are applied to every
// subsequent load.
func NewNewton(opts ...Option) *Newton {
	return &Newton{poly: &Polynomial{}, report: os.Stdout, opts: opts}
}

// Load replaces the current samples and fit. It returns a copy of the stored
// samples. If the samples cannot be fit, the error is returned and the
// previous fit is kept.
func (nt *Newton) Load(samples []Sample) ([]Sample, error) {
	poly, err := NewPolynomial(samples, nt.opts...)
	if err != nil { return nil, err }

	nt.mu.Lock()
	nt.poly = poly
	nt.mu.Unlock()

	return poly.Samples(), nil
}

// LoadXY is Load for samples given as two parallel slices. See
// NewPolynomialXY.
func (nt *Newton) LoadXY(xs, ys []float64) ([]Sample, error) {
	return nt.Load(zip(xs, ys))
}

// Clear removes all samples and coefficients.
func (nt *Newton) Clear() {
	nt.mu.Lock()
	nt.poly = &Polynomial{}
	nt.mu.Unlock()
}

// Snapshot returns the current fit. The returned Polynomial is not affected
// by later loads.
func (nt *Newton) Snapshot() *Polynomial {
	nt.mu.RLock()
	defer nt.mu.RUnlock()
	return nt.poly
}

// SetReport changes where the print flags write to.
func (nt *Newton) SetReport(w io.Writer) {
	nt.mu.Lock()
	nt.report = w
	nt.mu.Unlock()
}

func (nt *Newton) state() (*Polynomial, io.Writer) {
	nt.mu.RLock()
	defer nt.mu.RUnlock()
	return nt.poly, nt.report
}

// Coeffs returns the power-basis coefficients of the current fit and, if
// print is set, reports them.
func (nt *Newton) Coeffs(print bool) ([]float64, error) {
	poly, w := nt.state()
	if print {
		if err := poly.ReportCoeffs(w); err != nil { return nil, err }
	}
	return poly.Coeffs(), nil
}

// Integral returns Polynomial.Integral for the current fit and, if print is
// set, reports it.
func (nt *Newton) Integral(print bool) (float64, error) {
	poly, w := nt.state()
	return reportedArea(poly.Integral, w, print)
}

// Quadrature returns Polynomial.Quadrature for the current fit and, if print
// is set, reports it.
func (nt *Newton) Quadrature(print bool) (float64, error) {
	poly, w := nt.state()
	return reportedArea(poly.Quadrature, w, print)
}

// Grid returns Polynomial.Grid for the current fit.
func (nt *Newton) Grid(steps int) ([]Sample, error) {
	return nt.Snapshot().Grid(steps)
}

func reportedArea(
	f func() (float64, error), w io.Writer, print bool,
) (float64, error) {
	area, err := f()
	if err != nil { return 0, err }
	if print {
		if err := ReportArea(w, area); err != nil { return 0, err }
	}
	return area, nil
}
