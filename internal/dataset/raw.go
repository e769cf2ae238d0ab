package dataset

// RawRow is one row of the tabular input as delivered by an ingestion
// collaborator. Cells are kept as raw strings so the numeric fallback
// chain can be applied uniformly regardless of the source format.
type RawRow struct {
	Time  string
	Conc  string
	Ref   string
	Ratio string
}

// RawTable is the ordered raw input. The reference-concentration and ratio
// columns are optional; presence is tracked at table level because a
// missing column is different from a row with an empty cell.
type RawTable struct {
	Rows     []RawRow
	HasRef   bool
	HasRatio bool
}
