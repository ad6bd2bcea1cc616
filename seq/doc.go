// Package seq provides the shared primitives every statistics package in
// bunkerstats builds on: the dense row-major Matrix type, order-statistic
// helpers (sorted copies, interpolated quantiles, medians), the NaN validity
// predicate used by every NaN-aware variant, and a bounded worker fan-out for
// column-parallel matrix kernels.
//
// 🚀 Why a shared package?
//
//	Every higher-level component (describe, rolling, pairwise, transform,
//	hypothesis) needs the same handful of primitives:
//	  • a cache-friendly n×p float64 grid with column extraction
//	  • linear-interpolation quantiles over a sorted slice
//	  • a single definition of "valid observation" (non-NaN)
//	  • data-parallel execution across independent columns
//
// ✨ Conventions:
//   - Inputs are never mutated; helpers that need ordering sort a copy.
//   - NaN is the missing-value sentinel throughout the module.
//   - Quantiles interpolate linearly between order statistics at q·(n−1).
//   - Worker counts only affect scheduling, never results.
//
// See the package-level examples and the component packages for usage.
package seq
