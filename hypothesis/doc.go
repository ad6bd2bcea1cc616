// Package hypothesis implements classical inferential statistics over
// float64 samples: t-tests, chi-square tests, effect sizes and the
// Mann-Whitney U rank test.
//
// 🚀 What's inside?
//
//   - OneSampleTTest, TwoSampleTTest (pooled or Welch) — Student-t p-values
//   - ChiSquareGOF, ChiSquareIndependence — chi-squared p-values
//   - CohenD, HedgesG — standardized mean-difference effect sizes
//   - MannWhitneyU — rank test with averaged mid-ranks, tie-corrected
//     normal approximation and continuity correction
//
// ✨ Conventions:
//   - Every test takes an Alternative (TwoSided, Greater, Less) selecting
//     the tail of the p-value; Greater means the first sample tends larger.
//   - P-values come from gonum's distuv distributions (StudentsT,
//     ChiSquared, UnitNormal), never from hand-rolled approximations.
//   - Samples too small to carry the test (a one-sample test on fewer than
//     two points, an empty sample in a two-sample test) are
//     ErrInsufficientData; a zero-variance sample makes the statistic and
//     p-value NaN rather than ±Inf.
//
// Inputs are never mutated. All tests are O(n) except Mann-Whitney's
// O(n·log n) ranking pass.
package hypothesis
