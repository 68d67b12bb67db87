package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/newton/math/interpolate"
)

// ReadSamples reads (x, y) samples from two columns of a whitespace separated
// text table. Samples are returned in the order they appear in the file.
func ReadSamples(fname string, xCol, yCol int) ([]interpolate.Sample, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil { return nil, err }

	xs, ys := cols[0], cols[1]
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"Columns %d and %d of %s have %d and %d values.",
			xCol, yCol, fname, len(xs), len(ys),
		)
	}

	samples := make([]interpolate.Sample, len(xs))
	for i := range samples {
		samples[i] = interpolate.Sample{X: xs[i], Y: ys[i]}
	}
	return samples, nil
}

// ReadConfigSamples reads the samples described by con.
func ReadConfigSamples(con *NewtonConfig) ([]interpolate.Sample, error) {
	return ReadSamples(con.Input, con.XColumn, con.YColumn)
}
