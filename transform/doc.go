// Package transform derives new sequences from float64 sequences and
// estimates empirical distributions: lagged differences, cumulative
// aggregates, the ECDF and a Gaussian kernel density estimate.
//
// 🚀 What's inside?
//
//   - Lagged: Diff (x[i] − x[i−p]), PctChange (x[i]/x[i−p] − 1)
//   - Cumulative: CumSum, CumMean (prefix sum and prefix mean)
//   - Distribution: ECDF (sorted values + cumulative probabilities),
//     KDE (Gaussian kernel density on an evenly spaced grid)
//
// ✨ Conventions:
//   - Inputs are never mutated; every function returns fresh slices.
//   - Lagged outputs keep the input length, with the first p positions NaN.
//   - PctChange converts a division-by-zero ±Inf into NaN so downstream
//     NaN-aware statistics can skip it.
//   - ECDF assigns rank probabilities (i+1)/n, so the last probability is
//     exactly 1.
//   - KDE pads the grid Cut bandwidths beyond [min, max] to keep density
//     mass from being truncated at the data edges. When no bandwidth is
//     given it derives one from the robust Silverman rule
//     0.9·min(s, IQR/1.34)·n^(−1/5).
//
// Errors: ErrEmptyInput for empty sequences, ErrBadPeriods when p < 1,
// ErrBadGrid when the KDE grid has fewer than two points.
//
// Performance: lagged and cumulative transforms are O(n); ECDF is
// O(n·log n); KDE is O(n·GridSize).
package transform
