package stable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectConsistentTrend(t *testing.T) {
	// Perfectly log-linear decay: every slope equals the reference and
	// never reverses, so the whole series is selected.
	ts := []float64{0, 2, 5, 10, 20, 40}
	y := make([]float64, len(ts))
	for i, v := range ts {
		y[i] = -0.05 * v
	}

	got := Select(ts, y, DefaultThreshold)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got)
}

func TestSelectPlateauTerminates(t *testing.T) {
	// The third segment flattens to 5% of the reference slope.
	ts := []float64{0, 1, 2, 3}
	y := []float64{0, -1, -2, -2.05}

	got := Select(ts, y, 0.1)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestSelectSignReversalTerminates(t *testing.T) {
	// The slope turns positive after two descending segments; its
	// magnitude alone would pass the threshold test.
	ts := []float64{0, 1, 2, 3}
	y := []float64{0, -1, -2, -1.5}

	got := Select(ts, y, 0.1)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestSelectZeroReferenceSlope(t *testing.T) {
	// Flat start: the reference slope is zero, so the scan terminates
	// once a slope magnitude exceeds the threshold outright.
	ts := []float64{0, 1, 2, 3}
	y := []float64{1, 1, 1, 5}

	got := Select(ts, y, 0.1)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestSelectDuplicateTimestampsSkipped(t *testing.T) {
	// Duplicate leading timestamps must be skipped without terminating
	// the scan or dividing by zero.
	ts := []float64{0, 0, 5}
	y := []float64{0, -0.01, -0.25}

	got := Select(ts, y, 0.1)
	require.NotEmpty(t, got)
	assert.Equal(t, []int{0, 2}, got)
}

func TestSelectAlwaysReturnsPrefix(t *testing.T) {
	tests := []struct {
		name string
		ts   []float64
		y    []float64
	}{
		{"single point", []float64{3}, []float64{-1}},
		{"two points", []float64{0, 1}, []float64{0, -1}},
		{"noisy decay", []float64{0, 1, 2, 3, 4}, []float64{0, -0.9, -2.1, -2.9, -2.95}},
		{"all duplicates", []float64{2, 2, 2}, []float64{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.ts, tt.y, DefaultThreshold)
			require.NotEmpty(t, got)
			assert.Equal(t, 0, got[0])
			for i := 1; i < len(got); i++ {
				assert.Greater(t, got[i], got[i-1])
			}
		})
	}
}

func TestSelectSinglePoint(t *testing.T) {
	assert.Equal(t, []int{0}, Select([]float64{0}, []float64{0}, DefaultThreshold))
}

func TestSelectEmpty(t *testing.T) {
	assert.Nil(t, Select(nil, nil, DefaultThreshold))
}
