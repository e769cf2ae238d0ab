package sample

import (
	"testing"

	"github.com/hazem18977/kenan/internal/analysis"
	"github.com/hazem18977/kenan/internal/dataset"
	"github.com/hazem18977/kenan/internal/stable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeGrid(t *testing.T) {
	assert.Equal(t, []float64{0, 5, 10, 15, 20}, TimeGrid(20, 5))
	assert.Equal(t, []float64{0}, TimeGrid(0, 5))
	assert.Equal(t, []float64{0}, TimeGrid(10, 0))
}

func TestSeriesDeterministic(t *testing.T) {
	p := DefaultParams()
	a := FirstOrderSeries(p)
	b := FirstOrderSeries(p)
	assert.Equal(t, a, b, "same seed must reproduce the series")

	p.Seed++
	c := FirstOrderSeries(p)
	assert.NotEqual(t, a, c)
}

func TestSeriesSurvivesPreprocessing(t *testing.T) {
	for _, gen := range []func(Params) dataset.RawTable{FirstOrderSeries, SecondOrderSeries} {
		raw := gen(DefaultParams())
		ds, err := dataset.Preprocess(raw)
		require.NoError(t, err)
		assert.Equal(t, len(raw.Rows), ds.Len())
	}
}

// A noiseless generated series must round-trip the full pipeline and give
// back the generating constant.
func TestNoiselessSeriesRecovery(t *testing.T) {
	p := DefaultParams()
	p.NoiseLevel = 0

	t.Run("first order", func(t *testing.T) {
		rep, err := analysis.Run(FirstOrderSeries(p), stable.DefaultThreshold)
		require.NoError(t, err)
		require.True(t, rep.FirstOrder.OK())
		assert.InEpsilon(t, p.RateConstant, rep.FirstOrder.Result.RateConstant, 1e-6)
		assert.InDelta(t, 1.0, rep.FirstOrder.Result.R2, 1e-9)
	})

	t.Run("second order", func(t *testing.T) {
		p := p
		p.RateConstant = 0.002
		rep, err := analysis.Run(SecondOrderSeries(p), stable.DefaultThreshold)
		require.NoError(t, err)
		require.True(t, rep.SecondOrder.OK())
		assert.InEpsilon(t, p.RateConstant, rep.SecondOrder.Result.RateConstant, 1e-6)
	})
}
