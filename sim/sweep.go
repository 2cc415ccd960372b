package sim

import (
	"gonum.org/v1/gonum/floats"
)

// Linspace returns count evenly spaced values over [lo, hi], endpoints included.
// Panics if count < 2, like floats.Span.
func Linspace(lo, hi float64, count int) []float64 {
	return floats.Span(make([]float64, count), lo, hi)
}

// Steps returns start, start+step, ... for every value strictly below stop.
// Returns nil when step <= 0 or start >= stop.
func Steps(start, stop, step int) []float64 {
	if step <= 0 || start >= stop {
		return nil
	}
	out := make([]float64, 0, (stop-start+step-1)/step)
	for n := start; n < stop; n += step {
		out = append(out, float64(n))
	}
	return out
}

// Evaluate maps f over xs into a fresh slice.
func Evaluate(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// PlotRange returns the plotted user counts: PlotPoints values over [1, C-1].
func (p Params) PlotRange() []float64 {
	return Linspace(1, p.C()-1, p.Simulation.PlotPoints)
}
