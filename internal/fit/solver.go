package fit

import (
	"errors"
	"math"
)

var (
	// ErrDegenerateRegion means the selected region cannot support a fit:
	// fewer than two usable points, or a time column with zero variance.
	ErrDegenerateRegion = errors.New("degenerate region: need at least 2 points with varying time")
	// ErrNoConvergence means the iterative solver ran out of iterations.
	ErrNoConvergence = errors.New("least-squares solver did not converge")
)

const (
	maxIterations  = 50
	convergenceTol = 1e-12
)

// solveThroughOrigin fits y = k*x by Gauss-Newton iteration starting from
// zero. For a model linear in k each step solves the normal equation
// exactly, so iteration one lands on the least-squares solution and
// iteration two observes a zero step.
func solveThroughOrigin(x, y []float64) (float64, error) {
	if len(x) < 2 {
		return 0, ErrDegenerateRegion
	}

	var sxx float64
	for _, xi := range x {
		sxx += xi * xi
	}
	if sxx == 0 {
		return 0, ErrDegenerateRegion
	}

	k := 0.0
	for iter := 0; iter < maxIterations; iter++ {
		var num float64
		for i := range x {
			num += x[i] * (y[i] - k*x[i])
		}
		step := num / sxx
		k += step
		if math.Abs(step) <= convergenceTol*(1+math.Abs(k)) {
			return k, nil
		}
	}
	return 0, ErrNoConvergence
}

// timeVaries reports whether the time column carries any variation.
func timeVaries(t []float64) bool {
	for _, v := range t[1:] {
		if v != t[0] {
			return true
		}
	}
	return false
}
