package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phil-mansfield/newton/math/interpolate"
)

// WriteGrid writes one "x, y" line per point to w, with x to 4 decimal places
// and y to 8.
func WriteGrid(w io.Writer, grid []interpolate.Sample) error {
	bw := bufio.NewWriter(w)
	for _, s := range grid {
		if _, err := fmt.Fprintf(bw, "%.4f, %.8f\n", s.X, s.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteGridFile writes the grid to the named file, truncating it if it
// already exists. The file is closed before returning, even on failure.
func WriteGridFile(fname string, grid []interpolate.Sample) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("File %s cannot be opened: %w", fname, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil { err = cerr }
	}()

	return WriteGrid(f, grid)
}
