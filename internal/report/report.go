// Package report assembles the summary and point-by-point comparison
// tables from the fitted models. Assembly is core scope; chart drawing and
// spreadsheet serialization belong to presentation collaborators.
package report

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/hazem18977/kenan/internal/dataset"
	"github.com/hazem18977/kenan/internal/fit"
	"github.com/hazem18977/kenan/internal/stats"
)

// Model display names for the two rate laws.
const (
	FirstOrderName  = "PFO"
	SecondOrderName = "PSO"
)

// SummaryRow is one line of the model comparison summary.
type SummaryRow struct {
	Model  string
	Params string
	R2     float64
	MAPE   float64
}

// DetailRow compares both models against one selected point. Prediction
// and error fields for a model that failed to fit are NaN.
type DetailRow struct {
	Time    float64
	Ratio   float64 // observed A/A0
	PFOPred float64
	PFOErr  float64 // percent
	Conc    float64 // observed A
	PSOPred float64
	PSOErr  float64 // percent
}

// Summary builds the summary table. A nil result skips its row; per-model
// failure is reported separately by the analysis layer.
func Summary(pfo, pso *fit.Result) []SummaryRow {
	rows := make([]SummaryRow, 0, 2)
	if pfo != nil {
		rows = append(rows, SummaryRow{
			Model:  FirstOrderName,
			Params: fmt.Sprintf("k1 = %.5f 1/min", pfo.RateConstant),
			R2:     pfo.R2,
			MAPE:   pfo.MAPE,
		})
	}
	if pso != nil {
		rows = append(rows, SummaryRow{
			Model:  SecondOrderName,
			Params: fmt.Sprintf("k2 = %.5f L/(mg*min)", pso.RateConstant),
			R2:     pso.R2,
			MAPE:   pso.MAPE,
		})
	}
	return rows
}

// Detail builds the point-by-point comparison over the selected region.
// Either result may be nil; its columns are then filled with NaN.
func Detail(region *dataset.Dataset, pfo, pso *fit.Result) []DetailRow {
	rows := make([]DetailRow, region.Len())
	for i := range rows {
		p := region.Point(i)
		row := DetailRow{
			Time:    p.T,
			Ratio:   p.Ratio,
			Conc:    p.A,
			PFOPred: math.NaN(),
			PFOErr:  math.NaN(),
			PSOPred: math.NaN(),
			PSOErr:  math.NaN(),
		}
		if pfo != nil {
			row.PFOPred = pfo.Predicted[i]
			row.PFOErr = stats.PercentError(p.Ratio, pfo.Predicted[i])
		}
		if pso != nil {
			row.PSOPred = pso.Predicted[i]
			row.PSOErr = stats.PercentError(p.A, pso.Predicted[i])
		}
		rows[i] = row
	}
	return rows
}

// RenderSummary formats the summary table as aligned text.
func RenderSummary(rows []SummaryRow) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "model\tparameters\tR2\tMAPE (%)")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.2f\n", r.Model, r.Params, r.R2, r.MAPE)
	}
	w.Flush()
	return sb.String()
}

// RenderDetail formats the detail table as aligned text. NaN cells (a
// model that failed to fit) render as "-".
func RenderDetail(rows []DetailRow) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "time\tA/A0 obs\tPFO pred\tPFO err (%)\tA obs\tPSO pred\tPSO err (%)")
	for _, r := range rows {
		fmt.Fprintf(w, "%.4f\t%.4f\t%s\t%s\t%.4f\t%s\t%s\n",
			r.Time, r.Ratio,
			cell(r.PFOPred, 4), cell(r.PFOErr, 2),
			r.Conc,
			cell(r.PSOPred, 4), cell(r.PSOErr, 2))
	}
	w.Flush()
	return sb.String()
}

func cell(v float64, prec int) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.*f", prec, v)
}
