package report

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/hazem18977/kenan/internal/dataset"
	"github.com/hazem18977/kenan/internal/fit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regionFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	times := []float64{0, 2, 5}
	concs := []float64{100, 90, 78}
	rows := make([]dataset.RawRow, len(times))
	for i := range times {
		rows[i] = dataset.RawRow{
			Time: strconv.FormatFloat(times[i], 'f', -1, 64),
			Conc: strconv.FormatFloat(concs[i], 'f', -1, 64),
			Ref:  "100",
		}
	}
	ds, err := dataset.Preprocess(dataset.RawTable{Rows: rows, HasRef: true})
	require.NoError(t, err)
	return ds
}

func TestSummaryRows(t *testing.T) {
	pfo := &fit.Result{RateConstant: 0.05, R2: 0.999, MAPE: 0.5}
	pso := &fit.Result{RateConstant: 0.002, R2: 0.98, MAPE: 2.1}

	rows := Summary(pfo, pso)
	require.Len(t, rows, 2)

	assert.Equal(t, FirstOrderName, rows[0].Model)
	assert.Equal(t, "k1 = 0.05000 1/min", rows[0].Params)
	assert.Equal(t, 0.999, rows[0].R2)

	assert.Equal(t, SecondOrderName, rows[1].Model)
	assert.Equal(t, "k2 = 0.00200 L/(mg*min)", rows[1].Params)
	assert.Equal(t, 2.1, rows[1].MAPE)
}

func TestSummarySkipsFailedModel(t *testing.T) {
	pso := &fit.Result{RateConstant: 0.002}
	rows := Summary(nil, pso)
	require.Len(t, rows, 1)
	assert.Equal(t, SecondOrderName, rows[0].Model)
}

func TestDetailRows(t *testing.T) {
	region := regionFixture(t)
	pfo := &fit.Result{Predicted: []float64{1, 0.9, 0.78}}
	pso := &fit.Result{Predicted: []float64{100, 89, 78}}

	rows := Detail(region, pfo, pso)
	require.Len(t, rows, 3)

	assert.Equal(t, 2.0, rows[1].Time)
	assert.InDelta(t, 0.9, rows[1].Ratio, 1e-12)
	assert.InDelta(t, 0.0, rows[1].PFOErr, 1e-9)
	assert.InDelta(t, 90.0, rows[1].Conc, 1e-12)
	assert.InDelta(t, 100.0/90, rows[1].PSOErr, 1e-9)
}

func TestDetailRowsWithFailedModel(t *testing.T) {
	region := regionFixture(t)
	pfo := &fit.Result{Predicted: []float64{1, 0.9, 0.78}}

	rows := Detail(region, pfo, nil)
	require.Len(t, rows, 3)
	assert.False(t, math.IsNaN(rows[0].PFOPred))
	assert.True(t, math.IsNaN(rows[0].PSOPred))
	assert.True(t, math.IsNaN(rows[0].PSOErr))
}

func TestRenderSummary(t *testing.T) {
	rows := Summary(&fit.Result{RateConstant: 0.05, R2: 1, MAPE: 0}, nil)
	out := RenderSummary(rows)

	assert.Contains(t, out, "model")
	assert.Contains(t, out, "PFO")
	assert.Contains(t, out, "k1 = 0.05000 1/min")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRenderDetailFailedCells(t *testing.T) {
	region := regionFixture(t)
	rows := Detail(region, nil, &fit.Result{Predicted: []float64{100, 89, 78}})
	out := RenderDetail(rows)

	assert.Contains(t, out, "-") // PFO columns render as dashes
	assert.Contains(t, out, "89.0000")
}
