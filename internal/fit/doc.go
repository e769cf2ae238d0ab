// Package fit performs the two competing single-parameter rate-law fits
// over the selected stable region.
//
//   - [FirstOrder]: ln(A/A0) = -k1*t, origin-forced
//   - [SecondOrder]: 1/A = 1/A0 + k2*t, intercept anchored to the first
//     point of the region
//
// Both laws are linear in their single free parameter, so the iterative
// solver lands on the closed-form solution on its first step. Goodness of
// fit is always evaluated against the original observed variable (ratio
// for first order, concentration for second order), not the transformed
// fitting variable.
package fit
