// Package stable isolates the leading run of points that follows one
// consistent log-linear trend, excluding later plateau or drift points.
package stable

import "math"

// DefaultThreshold is the default sensitivity for the slope comparison.
const DefaultThreshold = 0.1

// Select scans y over t and returns the strictly increasing index prefix
// judged to follow a single trend. The scan is greedy and single-pass:
//
//   - the slope at a candidate is measured against the last accepted point,
//     not its immediate predecessor;
//   - its magnitude is compared to the first slope seen (the reference);
//   - its sign is compared to the previously accepted slope.
//
// The scan terminates permanently when the slope magnitude falls below
// threshold relative to the reference, or when the sign reverses. With a
// zero reference slope it terminates once |slope| exceeds the threshold
// instead. Candidates with a zero time delta are skipped without
// terminating, so duplicate timestamps never divide by zero.
//
// The asymmetry of the comparison basis (reference slope for magnitude,
// previous slope for sign) is intentional: it reproduces the established
// selection behavior exactly.
//
// The result always starts with index 0 and is never empty for non-empty
// input; a one-point series yields [0].
func Select(t, y []float64, threshold float64) []int {
	if len(y) == 0 {
		return nil
	}

	accepted := []int{0}
	var referenceSlope float64
	haveReference := false
	previousSlope := 0.0

	for i := 1; i < len(y); i++ {
		last := accepted[len(accepted)-1]
		deltaT := t[i] - t[last]
		if deltaT == 0 {
			// Duplicate timestamp: skip the candidate, keep scanning.
			continue
		}
		slope := (y[i] - y[last]) / deltaT

		if !haveReference {
			referenceSlope = slope
			haveReference = true
		} else if referenceSlope != 0 {
			ratio := math.Abs(slope / referenceSlope)
			if ratio < threshold || slope*previousSlope < 0 {
				break
			}
		} else if math.Abs(slope) > threshold {
			break
		}

		accepted = append(accepted, i)
		previousSlope = slope
	}

	return accepted
}
