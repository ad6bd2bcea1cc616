// Package pairwise computes covariance and correlation between index-aligned
// float64 sequences: static pair statistics, full symmetric matrices over the
// columns of a dense matrix, causal rolling forms, and NaN-aware variants
// built on pairwise-valid masks.
//
// 🚀 Conventions:
//
//   - Covariance uses the unbiased convention Σ(xᵢ−mx)(yᵢ−my)/(n−1).
//   - Correlation is covariance over the product of sample standard
//     deviations; a zero-variance side yields NaN, never ±Inf.
//   - Rolling outputs are same-length with a NaN prefix before the first
//     full window, and slide running sums of x, y, xy, x², y² in O(1)
//     per step — the same incremental discipline as the rolling package.
//   - NaN-aware statistics restrict to indices where BOTH members of the
//     pair are valid. The rolling NaN-aware forms track a distinct
//     valid-pair count (not the union of each side's own valid counts) and
//     add/remove a pair's contribution only when both elements are valid.
//     Fewer than two valid pairs in scope yields NaN.
//
// ✨ Matrix statistics:
//
//	CovMatrix and CorrMatrix produce the full symmetric p×p grid over
//	column pairs, computing each upper-triangle entry once and mirroring.
//	The correlation diagonal is exactly 1 by definition, not recomputed.
//	MatrixOptions.Workers bounds the goroutines fanned across rows of the
//	output; scheduling never affects results.
//
// Errors: ErrLengthMismatch for unequal pair lengths, ErrEmptyInput for
// empty sequences, ErrBadWindow for windows outside 1..len(x). Insufficient
// valid data is a NaN result, never an error.
package pairwise
