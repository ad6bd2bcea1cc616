// Package bunkerstats is your in-memory toolbox for fast, NaN-aware
// numerical statistics over float64 sequences and matrices — from
// single-pass accumulators to rolling windows and inferential tests.
//
// 🚀 What is bunkerstats?
//
//	A pure-computation statistics engine that brings together:
//		• Streaming: Welford accumulator (count, mean, unbiased variance)
//		• Descriptive: mean/var/std, quantiles, IQR, MAD, trimmed mean
//		• Robust scaling: min-max, median/MAD, winsorization, quantile bins
//		• Rolling windows: mean, var, std, z-score, EWMA — causal, O(1)/step
//		• Pairwise: covariance & Pearson correlation, rolling and matrix forms
//		• Transforms: diff, pct-change, cumsum/cummean, ECDF, Gaussian KDE
//		• Inference: t-tests, chi-square, Cohen's d/Hedges' g, Mann-Whitney U
//
// ✨ Why choose bunkerstats?
//
//   - NaN as a value – every family has NaN-aware variants that skip
//     missing observations instead of poisoning the result
//   - Reference semantics – Bessel-corrected variance, linearly
//     interpolated quantiles, backward-looking windows
//   - Numerically careful – incremental updates instead of naive
//     sum-of-squares, so large offsets don't cancel catastrophically
//   - Pure computation – no I/O, no goroutine state between calls;
//     matrix kernels parallelize internally and stay deterministic
//
// Under the hood, everything is organized under seven subpackages:
//
//	seq/        — shared primitives: Matrix, sorted-copy quantiles, validity
//	welford/    — single-pass streaming accumulator
//	describe/   — descriptive & robust statistics, scaling, outlier flags
//	rolling/    — causal sliding-window statistics + matrix forms
//	pairwise/   — covariance & correlation: static, rolling, matrix, NaN-aware
//	transform/  — sequence transforms, ECDF and kernel density estimation
//	hypothesis/ — t-tests, chi-square tests, effect sizes, rank tests
//
// Quick example:
//
//	var acc welford.Accumulator
//	for _, x := range xs {
//		acc.Add(x)
//	}
//	mean, std := acc.Mean(), acc.Std()
//
// This root package re-exports the full catalogue, so callers who prefer a
// single import can reach every function as bunkerstats.Mean,
// bunkerstats.RollingCov, bunkerstats.OneSampleTTest and so on.
//
//	go get github.com/bunkerlabs/bunkerstats
package bunkerstats
