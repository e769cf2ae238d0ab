// Package analysis runs the full pipeline: preprocess the raw table,
// select the stable region, fit both rate laws independently and assemble
// the result tables.
package analysis

import (
	"fmt"

	"github.com/hazem18977/kenan/internal/dataset"
	"github.com/hazem18977/kenan/internal/fit"
	"github.com/hazem18977/kenan/internal/report"
	"github.com/hazem18977/kenan/internal/stable"
)

// ModelReport is the per-model outcome. Exactly one of Result and Err is
// set: a failed fit carries its error here instead of blocking the run.
type ModelReport struct {
	Name   string
	Result *fit.Result
	Err    error
}

// OK reports whether the model fitted.
func (m ModelReport) OK() bool { return m.Err == nil }

// Report is the outcome of one analysis run. It is rebuilt from scratch
// on every invocation; nothing is cached across runs.
type Report struct {
	Dataset *dataset.Dataset
	Indices []int // selected stable prefix into Dataset
	Region  *dataset.Dataset

	FirstOrder  ModelReport
	SecondOrder ModelReport

	Summary []report.SummaryRow
	Detail  []report.DetailRow
}

// Run executes the pipeline over a raw table with the given selector
// threshold. It fails only when no cleaned dataset can be produced:
// dataset.ErrNoData when the table is empty, dataset.ErrEmptyDataset when
// no rows survive cleaning. Fit failures are reported per model.
func Run(raw dataset.RawTable, threshold float64) (*Report, error) {
	ds, err := dataset.Preprocess(raw)
	if err != nil {
		return nil, err
	}

	indices := stable.Select(ds.Times(), ds.LnRatios(), threshold)
	region := ds.Subset(indices)

	r := &Report{
		Dataset: ds,
		Indices: indices,
		Region:  region,
	}

	pfo, pfoErr := fit.FirstOrder(region)
	if pfoErr != nil {
		pfoErr = fmt.Errorf("first-order fit: %w", pfoErr)
	}
	r.FirstOrder = ModelReport{Name: report.FirstOrderName, Result: pfo, Err: pfoErr}

	pso, psoErr := fit.SecondOrder(region)
	if psoErr != nil {
		psoErr = fmt.Errorf("second-order fit: %w", psoErr)
	}
	r.SecondOrder = ModelReport{Name: report.SecondOrderName, Result: pso, Err: psoErr}

	r.Summary = report.Summary(pfo, pso)
	r.Detail = report.Detail(region, pfo, pso)

	return r, nil
}
