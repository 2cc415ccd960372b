// sim/metrics_utils.go
package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// MeanAbsError returns mean(|want[i] - got[i]|).
// Returns an error if the slices differ in length or are empty.
func MeanAbsError(want, got []float64) (float64, error) {
	if len(want) != len(got) {
		return 0, fmt.Errorf("mean absolute error: length mismatch %d vs %d", len(want), len(got))
	}
	if len(want) == 0 {
		return 0, fmt.Errorf("mean absolute error: no samples")
	}
	diffs := make([]float64, len(want))
	for i := range want {
		diffs[i] = math.Abs(want[i] - got[i])
	}
	return stat.Mean(diffs, nil), nil
}

// ResidualStdDev returns the sample standard deviation of got[i] - want[i].
// Needs at least two samples; returns 0 otherwise.
func ResidualStdDev(want, got []float64) float64 {
	n := min(len(want), len(got))
	if n < 2 {
		return 0
	}
	residuals := make([]float64, n)
	for i := 0; i < n; i++ {
		residuals[i] = got[i] - want[i]
	}
	return stat.StdDev(residuals, nil)
}
