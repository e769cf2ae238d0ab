// Package stats provides the small set of error metrics used to judge
// model fits.
package stats

import "math"

// Mean returns the arithmetic mean, or NaN for empty input.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// PercentError returns the absolute percent error of pred against obs.
func PercentError(obs, pred float64) float64 {
	return math.Abs((obs-pred)/obs) * 100
}

// MAPE returns the mean absolute percentage error of pred against obs,
// in percent. Inputs must have equal length; empty input yields NaN.
func MAPE(obs, pred []float64) float64 {
	if len(obs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := range obs {
		sum += math.Abs((obs[i] - pred[i]) / obs[i])
	}
	return sum / float64(len(obs)) * 100
}

// RSquared returns the coefficient of determination 1 - SSres/SStot of
// pred against obs. A constant observed series has zero total variance;
// in that case the result is 1 when the predictions match exactly and 0
// otherwise.
func RSquared(obs, pred []float64) float64 {
	if len(obs) == 0 {
		return math.NaN()
	}
	mean := Mean(obs)
	var ssRes, ssTot float64
	for i := range obs {
		r := obs[i] - pred[i]
		d := obs[i] - mean
		ssRes += r * r
		ssTot += d * d
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}
