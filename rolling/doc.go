// Package rolling computes causal (backward-looking) sliding-window
// statistics over float64 sequences: mean, variance, standard deviation,
// z-score and EWMA, plus NaN-aware variants and per-column matrix forms.
//
// 🚀 Window semantics:
//
//	For window size w the output at position i covers observations
//	[i−w+1, i] — only the present and the past. Outputs always have the
//	same length as the input; positions before the window is fully
//	populated (i < w−1) carry NaN, never zero.
//
// ✨ Algorithms:
//   - Mean/Var/Std/Zscore slide a running sum and sum-of-squares, adding the
//     incoming element and subtracting the one leaving: O(1) per step.
//     Windowed variance (sumSq − sum²/w)/(w−1) is clamped at zero against
//     negative rounding artifacts.
//   - MeanStd shares one pair of accumulators for both outputs (one pass).
//   - EWMA is the unadjusted recursion out[i] = α·x[i] + (1−α)·out[i−1]
//     seeded with out[0] = x[0].
//   - NaN-aware variants track a per-window valid count and valid sums,
//     adding/removing only non-NaN elements. The window at position i spans
//     [max(0, i−w+1), i], so values appear as soon as the valid count reaches
//     the minimum-periods policy: by default 1 for mean-type outputs and 2
//     for variance-type outputs (pass minPeriods > 0 to override).
//   - Matrix forms apply the sequence kernel to each column independently,
//     optionally in parallel (MatrixOptions.Workers), preserving shape.
//
// Errors: ErrEmptyInput for empty sequences, ErrBadWindow when w ≤ 0 or
// w > len(xs), ErrBadAlpha unless 0 < α ≤ 1. Insufficient data inside a
// window is never an error — it is a NaN at that output position.
//
// Performance: every kernel is O(n) total, O(1) amortized per step.
package rolling
