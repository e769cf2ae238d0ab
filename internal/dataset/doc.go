// Package dataset turns raw tabular concentration measurements into a
// cleaned, immutable time series with the derived columns used by the
// kinetic models.
//
// The entry point is [Preprocess], which takes a [RawTable] handed over by
// an ingestion collaborator and returns a [Dataset]:
//
//	ds, err := dataset.Preprocess(raw)
//	if errors.Is(err, dataset.ErrEmptyDataset) {
//	    // every row was dropped during cleaning
//	}
//
// Rows with unparseable, missing, non-finite or non-positive values are
// dropped silently; the pipeline only fails once zero rows survive.
package dataset
