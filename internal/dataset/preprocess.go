package dataset

import (
	"errors"
	"math"
)

var (
	// ErrNoData means the raw table contained no rows at all.
	ErrNoData = errors.New("no data provided")
	// ErrEmptyDataset means every row was dropped during cleaning.
	ErrEmptyDataset = errors.New("no valid rows after preprocessing")
)

// Preprocess cleans a raw table into a Dataset.
//
// Each numeric cell goes through the fallback parser chain. When the
// reference-concentration column is absent, the first positive
// concentration in the table anchors A0 for every row. When the ratio
// column is absent, or a ratio cell survives no parser, the ratio is
// recomputed as A/A0. Rows with a missing, non-finite or non-positive
// time (time may be zero), concentration, reference or ratio are dropped.
// Surviving rows get ln(ratio) and 1/A appended.
func Preprocess(raw RawTable) (*Dataset, error) {
	if len(raw.Rows) == 0 {
		return nil, ErrNoData
	}

	defaultA0, haveDefaultA0 := firstPositiveConc(raw.Rows)

	points := make([]Point, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		t, ok := parseNumeric(row.Time)
		if !ok || !isFinite(t) || t < 0 {
			continue
		}
		a, ok := parseNumeric(row.Conc)
		if !ok || !isFinite(a) || a <= 0 {
			continue
		}

		var a0 float64
		if raw.HasRef {
			v, ok := parseNumeric(row.Ref)
			if !ok || !isFinite(v) || v <= 0 {
				continue
			}
			a0 = v
		} else {
			if !haveDefaultA0 {
				continue
			}
			a0 = defaultA0
		}

		ratio := a / a0
		if raw.HasRatio {
			if v, ok := parseNumeric(row.Ratio); ok {
				ratio = v
			}
		}
		if !isFinite(ratio) || ratio <= 0 {
			continue
		}

		points = append(points, Point{
			T:       t,
			A:       a,
			A0:      a0,
			Ratio:   ratio,
			LnRatio: math.Log(ratio),
			InvA:    1 / a,
		})
	}

	if len(points) == 0 {
		return nil, ErrEmptyDataset
	}
	return newDataset(points), nil
}

// firstPositiveConc finds the value anchoring A0 when the reference column
// is absent: the first concentration cell that parses to a positive number.
func firstPositiveConc(rows []RawRow) (float64, bool) {
	for _, row := range rows {
		if v, ok := parseNumeric(row.Conc); ok && isFinite(v) && v > 0 {
			return v, true
		}
	}
	return 0, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
