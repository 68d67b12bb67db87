package interpolate

import "errors"

// Every message is prefixed with "interpolate: ". Functions wrap these with
// fmt.Errorf("...: %w", ErrX) when extra context is useful, so callers should
// match them with errors.Is.
var (
	// ErrDuplicateX is returned when two samples share an x value. The
	// divided differences would divide by zero.
	ErrDuplicateX = errors.New("interpolate: duplicate x value")

	// ErrNonFinite is returned when a sample or a derived coefficient is NaN
	// or ±Inf.
	ErrNonFinite = errors.New("interpolate: NaN or Inf encountered")

	// ErrCapacity is returned when the sample count is larger than the
	// subset enumeration can handle, or when an invalid capacity is
	// requested.
	ErrCapacity = errors.New("interpolate: sample count exceeds capacity")

	// ErrTooFewSamples is returned by the area estimates when fewer than two
	// samples are loaded.
	ErrTooFewSamples = errors.New("interpolate: too few samples")

	// ErrEmpty is returned when a grid is requested from a polynomial with
	// no samples.
	ErrEmpty = errors.New("interpolate: no samples loaded")

	// ErrBadSteps is returned when a grid is requested with a step count
	// below one.
	ErrBadSteps = errors.New("interpolate: step count must be positive")
)
