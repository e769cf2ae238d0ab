// Package sample generates seeded synthetic decay series for the CLI
// harness and for tests. Generated tables go through the same raw-table
// handoff as real experimental data.
package sample

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/hazem18977/kenan/internal/dataset"
)

// Params controls series generation.
type Params struct {
	Seed         int64
	RateConstant float64   // k1 for first order, k2 for second order
	InitialConc  float64   // A0
	NoiseLevel   float64   // relative noise on the measured concentration
	Times        []float64 // sampling grid, minutes
}

// DefaultParams mirrors a typical bench experiment: one measurement every
// five minutes for an hour, k1 = 0.05, A0 = 100, 2% noise.
func DefaultParams() Params {
	return Params{
		Seed:         42,
		RateConstant: 0.05,
		InitialConc:  100,
		NoiseLevel:   0.02,
		Times:        TimeGrid(60, 5),
	}
}

// TimeGrid returns the sampling grid [0, step, 2*step, ...] up to and
// including duration.
func TimeGrid(duration, step float64) []float64 {
	if step <= 0 || duration < 0 {
		return []float64{0}
	}
	n := int(duration/step) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// FirstOrderSeries generates a noisy first-order decay A = A0*exp(-k*t).
func FirstOrderSeries(p Params) dataset.RawTable {
	return series(p, func(t float64) float64 {
		return p.InitialConc * math.Exp(-p.RateConstant*t)
	})
}

// SecondOrderSeries generates a noisy second-order decay
// 1/A = 1/A0 + k*t.
func SecondOrderSeries(p Params) dataset.RawTable {
	return series(p, func(t float64) float64 {
		return 1 / (1/p.InitialConc + p.RateConstant*t)
	})
}

func series(p Params, trueConc func(t float64) float64) dataset.RawTable {
	rng := rand.New(rand.NewSource(p.Seed))

	rows := make([]dataset.RawRow, len(p.Times))
	for i, t := range p.Times {
		a := trueConc(t)
		if p.NoiseLevel > 0 {
			a *= 1 + rng.NormFloat64()*p.NoiseLevel
		}
		// Measured concentrations stay positive, as in a real assay.
		a = math.Max(a, p.InitialConc*1e-3)

		rows[i] = dataset.RawRow{
			Time: formatValue(t),
			Conc: formatValue(a),
			Ref:  formatValue(p.InitialConc),
		}
	}

	return dataset.RawTable{Rows: rows, HasRef: true}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
