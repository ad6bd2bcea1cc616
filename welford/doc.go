// Package welford implements Welford's single-pass algorithm for running
// mean and unbiased sample variance.
//
// 🚀 Why Welford?
//
//	The textbook sum / sum-of-squares formula catastrophically cancels when
//	observations share a large common offset (think 1e9 ± 1). Welford's
//	update keeps every intermediate on the scale of the deviations:
//	  count += 1
//	  mean  += (x − mean) / count
//	  M2    += (x − oldMean) · (x − newMean)
//	so variance = M2 / (count − 1) stays accurate to near machine precision.
//
// ✨ Usage:
//
//	var acc welford.Accumulator
//	for _, x := range xs {
//	  acc.Add(x)
//	}
//	m, v := acc.Mean(), acc.Variance()
//
// The Accumulator is the incremental-update discipline reused by the rolling
// and pairwise engines; Summarize is the one-shot convenience over a slice.
//
// Performance: O(1) per Add, O(n) per Summarize, zero allocations.
package welford
