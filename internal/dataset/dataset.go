package dataset

// Point is a single cleaned measurement with its derived transforms.
type Point struct {
	T       float64 // time
	A       float64 // concentration
	A0      float64 // reference concentration
	Ratio   float64 // A / A0
	LnRatio float64 // ln(A/A0), first-order fitting variable
	InvA    float64 // 1/A, second-order fitting variable
}

// Dataset is an ordered, immutable sequence of cleaned points.
type Dataset struct {
	points []Point
}

func newDataset(points []Point) *Dataset {
	return &Dataset{points: points}
}

func (d *Dataset) Len() int { return len(d.points) }

func (d *Dataset) Point(i int) Point { return d.points[i] }

// Points returns a copy of the underlying points.
func (d *Dataset) Points() []Point {
	c := make([]Point, len(d.points))
	copy(c, d.points)
	return c
}

func (d *Dataset) Times() []float64 {
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		out[i] = p.T
	}
	return out
}

func (d *Dataset) LnRatios() []float64 {
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		out[i] = p.LnRatio
	}
	return out
}

func (d *Dataset) Ratios() []float64 {
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		out[i] = p.Ratio
	}
	return out
}

func (d *Dataset) Concentrations() []float64 {
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		out[i] = p.A
	}
	return out
}

func (d *Dataset) InvConcentrations() []float64 {
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		out[i] = p.InvA
	}
	return out
}

// Subset returns a new Dataset containing the points at the given indices,
// in the given order. Indices must be valid for the receiver.
func (d *Dataset) Subset(indices []int) *Dataset {
	points := make([]Point, len(indices))
	for i, idx := range indices {
		points[i] = d.points[idx]
	}
	return newDataset(points)
}

// Summary holds descriptive statistics of a cleaned dataset.
type Summary struct {
	Points   int
	TimeMin  float64
	TimeMax  float64
	ConcMin  float64
	ConcMax  float64
	A0       float64
	RatioMin float64
	RatioMax float64
}

// Summary computes descriptive statistics. A0 is taken from the first
// point, matching how the reference concentration is anchored.
func (d *Dataset) Summary() Summary {
	if len(d.points) == 0 {
		return Summary{}
	}
	s := Summary{
		Points:   len(d.points),
		TimeMin:  d.points[0].T,
		TimeMax:  d.points[0].T,
		ConcMin:  d.points[0].A,
		ConcMax:  d.points[0].A,
		A0:       d.points[0].A0,
		RatioMin: d.points[0].Ratio,
		RatioMax: d.points[0].Ratio,
	}
	for _, p := range d.points[1:] {
		s.TimeMin = min(s.TimeMin, p.T)
		s.TimeMax = max(s.TimeMax, p.T)
		s.ConcMin = min(s.ConcMin, p.A)
		s.ConcMax = max(s.ConcMax, p.A)
		s.RatioMin = min(s.RatioMin, p.Ratio)
		s.RatioMax = max(s.RatioMax, p.Ratio)
	}
	return s
}
