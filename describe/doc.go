// Package describe computes descriptive and robust scalar statistics over
// dense float64 sequences: moments, order statistics, scaling transforms,
// outlier flags and their NaN-aware variants.
//
// 🚀 What's inside?
//
//   - Moments: Mean, Var, Std, Zscore (unbiased n−1 variance throughout)
//   - Order statistics: Percentile, Median, IQR, MAD, TrimmedMean
//   - Scaling: MinMaxScale, RobustScale (median/MAD), Winsorize, QuantileBins
//   - Outlier flags: IQROutliers (Tukey fences), ZscoreOutliers
//   - NaN-aware scalars: MeanNaN, StdNaN, VarNaN over the valid subset
//   - Sign utilities: SignMask, DemeanWithSigns
//
// ✨ Conventions:
//   - Inputs are never mutated; order statistics sort a private copy.
//   - Quantiles interpolate linearly between order statistics at q·(n−1).
//   - Insufficient data (empty input, single point for variance) yields NaN,
//     never an error; malformed parameters (a trim proportion outside [0,1),
//     inverted winsorization bounds, a non-positive bin count) error fast.
//   - Functions other than the *NaN variants assume NaN-free input;
//     callers with missing values pre-filter or use the NaN-aware forms.
//
// Performance: scalar reductions are O(n); order statistics are O(n·log n)
// for the sorting pass; nothing allocates beyond its output.
package describe
