package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/newton/math/interpolate"
)

const (
	ExampleNewtonFile = `[Newton]

#######################
# Required Parameters #
#######################

# Text file containing the samples. Each line is one sample, columns are
# separated by whitespace and lines starting with '#' are ignored. The
# samples must be listed in increasing order of x: the integral is taken from
# the first sample to the last one.
Input = path/to/samples.txt

#######################
# Optional Parameters #
#######################

# Columns of Input holding x and y. Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# File the fitted curve is written to, one "x, y" line per grid point. If not
# set, no curve is written.
# Output = path/to/curve.txt

# Number of grid intervals used for Output and PlotFile. The curve is
# evaluated at Steps + 1 points. Default is 100.
# Steps = 100

# Range the curve is evaluated over. The default of [0, 1] assumes that x is a
# normalized coupling coordinate. Change both if your samples cover some other
# range.
# DomainMin = 0
# DomainMax = 1

# Largest number of samples that will be accepted. Fitting n samples takes
# time proportional to n 2^n, so this guards against accidentally passing in a
# large table. It cannot be set above 64. Default is 64.
# MaxSamples = 20

# Print the polynomial coefficients, the analytic integral and the trapezoid
# estimate of the area to stdout.
# PrintPolynomial = true
# PrintIntegral = true
# PrintQuadrature = true

# Writes a figure of the samples and the fitted curve. Needs python and
# matplotlib.
# PlotFile = path/to/curve.png

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleSamplesFile = `# lambda  dU/dlambda
0.0   51.49866347
0.1   23.92508775
0.2   10.35390700
0.3    2.58426990
0.4   -2.18351656
0.5   -5.41745387
0.6   -7.62452181
0.7   -9.25455804
0.8  -10.45592989
0.9  -11.39244138
1.0  -12.12433704`
)

// SharedConfig holds the logging and profiling options.
type SharedConfig struct {
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type NewtonConfig struct {
	SharedConfig

	// Required
	Input string

	// Optional
	XColumn, YColumn int
	Output, PlotFile string
	Steps int
	DomainMin, DomainMax float64
	MaxSamples int
	PrintPolynomial, PrintIntegral, PrintQuadrature bool
}

type NewtonWrapper struct {
	Newton NewtonConfig
}

func DefaultNewtonWrapper() *NewtonWrapper {
	con := NewtonConfig{}
	con.XColumn, con.YColumn = 0, 1
	con.Steps = 100
	con.DomainMin, con.DomainMax = 0, 1
	con.MaxSamples = interpolate.MaxSamples
	return &NewtonWrapper{con}
}

func (con *NewtonConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *NewtonConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *NewtonConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *NewtonConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *NewtonConfig) ValidSteps() bool {
	return con.Steps > 0
}
func (con *NewtonConfig) ValidDomain() bool {
	return con.DomainMin < con.DomainMax
}
func (con *NewtonConfig) ValidMaxSamples() bool {
	return con.MaxSamples > 0 && con.MaxSamples <= interpolate.MaxSamples
}

// UnitDomain returns true if the curve is evaluated over the default [0, 1]
// range.
func (con *NewtonConfig) UnitDomain() bool {
	return con.DomainMin == 0 && con.DomainMax == 1
}

// CheckInit returns a descriptive error for the first invalid value in con.
func (con *NewtonConfig) CheckInit() error {
	switch {
	case !con.ValidInput():
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	case !con.ValidColumns():
		return fmt.Errorf(
			"'XColumn' and 'YColumn' must be distinct and non-negative, "+
				"but are %d and %d.", con.XColumn, con.YColumn,
		)
	case !con.ValidSteps():
		return fmt.Errorf("'Steps' must be positive, but is %d.", con.Steps)
	case !con.ValidDomain():
		return fmt.Errorf(
			"'DomainMin' must be smaller than 'DomainMax', but they are "+
				"%g and %g.", con.DomainMin, con.DomainMax,
		)
	case !con.ValidMaxSamples():
		return fmt.Errorf(
			"'MaxSamples' must be in the range [1, %d], but is %d.",
			interpolate.MaxSamples, con.MaxSamples,
		)
	}
	return nil
}

// ReadNewtonConfig reads and checks a [Newton] config file.
func ReadNewtonConfig(fname string) (*NewtonConfig, error) {
	wrap := DefaultNewtonWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return checkedConfig(wrap)
}

// ReadNewtonConfigString is ReadNewtonConfig for a config held in memory.
func ReadNewtonConfigString(str string) (*NewtonConfig, error) {
	wrap := DefaultNewtonWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	return checkedConfig(wrap)
}

func checkedConfig(wrap *NewtonWrapper) (*NewtonConfig, error) {
	con := &wrap.Newton
	if err := con.CheckInit(); err != nil { return nil, err }
	return con, nil
}
