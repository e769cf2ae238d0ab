package fit

import (
	"math"

	"github.com/hazem18977/kenan/internal/dataset"
	"github.com/hazem18977/kenan/internal/stats"
)

// Result holds a fitted rate law over the selected region.
type Result struct {
	// Param is the parameter exactly as solved. For the first-order law
	// its sign is an artifact of the origin-forced fit.
	Param float64
	// RateConstant is the physical rate constant reported to the user:
	// |k1| for the first-order law, k2 for the second-order law.
	RateConstant float64
	// Transformed are the predictions in the fitting variable
	// (ln(ratio) or 1/A), aligned to the region.
	Transformed []float64
	// Predicted are the predictions mapped back to the observed variable
	// (ratio or concentration), aligned to the region.
	Predicted []float64
	// MAPE and R2 are evaluated against the observed variable.
	MAPE float64
	R2   float64
}

// FirstOrder fits ln(ratio) = -k1*t through the origin.
func FirstOrder(region *dataset.Dataset) (*Result, error) {
	if region.Len() < 2 {
		return nil, ErrDegenerateRegion
	}
	t := region.Times()
	if !timeVaries(t) {
		return nil, ErrDegenerateRegion
	}

	// y = k*x with x = -t solves ln(ratio) = -k1*t for k1 directly.
	x := make([]float64, len(t))
	for i, v := range t {
		x[i] = -v
	}
	k1, err := solveThroughOrigin(x, region.LnRatios())
	if err != nil {
		return nil, err
	}

	transformed := make([]float64, len(t))
	predicted := make([]float64, len(t))
	for i, v := range t {
		transformed[i] = -k1 * v
		predicted[i] = math.Exp(transformed[i])
	}

	observed := region.Ratios()
	return &Result{
		Param:        k1,
		RateConstant: math.Abs(k1),
		Transformed:  transformed,
		Predicted:    predicted,
		MAPE:         stats.MAPE(observed, predicted),
		R2:           stats.RSquared(observed, predicted),
	}, nil
}

// SecondOrder fits 1/A = 1/A0 + k2*t, with A0 re-anchored to the
// concentration of the first point in the region rather than the
// dataset-level reference.
func SecondOrder(region *dataset.Dataset) (*Result, error) {
	if region.Len() < 2 {
		return nil, ErrDegenerateRegion
	}
	t := region.Times()
	if !timeVaries(t) {
		return nil, ErrDegenerateRegion
	}

	invA0 := 1 / region.Point(0).A

	// Subtracting the fixed intercept reduces the law to y = k*t.
	invA := region.InvConcentrations()
	y := make([]float64, len(invA))
	for i, v := range invA {
		y[i] = v - invA0
	}
	k2, err := solveThroughOrigin(t, y)
	if err != nil {
		return nil, err
	}

	transformed := make([]float64, len(t))
	predicted := make([]float64, len(t))
	for i, v := range t {
		transformed[i] = invA0 + k2*v
		predicted[i] = 1 / transformed[i]
	}

	observed := region.Concentrations()
	return &Result{
		Param:        k2,
		RateConstant: k2,
		Transformed:  transformed,
		Predicted:    predicted,
		MAPE:         stats.MAPE(observed, predicted),
		R2:           stats.RSquared(observed, predicted),
	}, nil
}
