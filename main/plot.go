package main

import (
	"github.com/phil-mansfield/newton/math/interpolate"

	plt "github.com/phil-mansfield/pyplot"
)

// plotCurve draws the raw samples as points and the fitted curve as a line
// and saves the figure to fname. This shells out to python.
func plotCurve(fname string, samples, grid []interpolate.Sample) {
	xs, ys := split(samples)
	gxs, gys := split(grid)

	plt.Reset()
	plt.Figure(plt.FigSize(8, 6))
	plt.Plot(gxs, gys, "r", plt.LW(2))
	plt.Plot(xs, ys, "ok")
	plt.XLabel(`$\lambda$`, plt.FontSize(16))
	plt.YLabel(`$\langle dU/d\lambda \rangle$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
	plt.Execute()
}

func split(samples []interpolate.Sample) (xs, ys []float64) {
	xs, ys = make([]float64, len(samples)), make([]float64, len(samples))
	for i := range samples {
		xs[i], ys[i] = samples[i].X, samples[i].Y
	}
	return xs, ys
}
