package bunkerstats

import (
	"github.com/bunkerlabs/bunkerstats/describe"
	"github.com/bunkerlabs/bunkerstats/hypothesis"
	"github.com/bunkerlabs/bunkerstats/pairwise"
	"github.com/bunkerlabs/bunkerstats/rolling"
	"github.com/bunkerlabs/bunkerstats/seq"
	"github.com/bunkerlabs/bunkerstats/transform"
	"github.com/bunkerlabs/bunkerstats/welford"
)

// This file is pure re-export: every alias below points at the owning
// subpackage, which keeps the documentation, semantics and sentinel errors
// in one place. Rolling kernels gain a Rolling prefix here because their
// subpackage names (rolling.Mean) collide with the descriptive scalars.
// Sentinel errors are not re-exported; match them with errors.Is against
// the owning subpackage.

// Shared primitives (seq).
type Matrix = seq.Matrix

var (
	NewMatrix          = seq.NewMatrix
	MatrixFromRows     = seq.MatrixFromRows
	SortedCopy         = seq.SortedCopy
	QuantileFromSorted = seq.QuantileFromSorted
	IsValid            = seq.IsValid
	ValidCount         = seq.ValidCount
	ValidValues        = seq.ValidValues
)

// Streaming accumulator (welford).
type Accumulator = welford.Accumulator

var Summarize = welford.Summarize

// Descriptive & robust statistics (describe).
var (
	Mean            = describe.Mean
	Var             = describe.Var
	Std             = describe.Std
	Zscore          = describe.Zscore
	Percentile      = describe.Percentile
	Median          = describe.Median
	IQR             = describe.IQR
	MAD             = describe.MAD
	TrimmedMean     = describe.TrimmedMean
	MeanNaN         = describe.MeanNaN
	VarNaN          = describe.VarNaN
	StdNaN          = describe.StdNaN
	MinMaxScale     = describe.MinMaxScale
	RobustScale     = describe.RobustScale
	Winsorize       = describe.Winsorize
	QuantileBins    = describe.QuantileBins
	IQROutliers     = describe.IQROutliers
	ZscoreOutliers  = describe.ZscoreOutliers
	SignMask        = describe.SignMask
	DemeanWithSigns = describe.DemeanWithSigns
)

// Rolling-window statistics (rolling).
type RollingMatrixOptions = rolling.MatrixOptions

var (
	RollingMean         = rolling.Mean
	RollingVar          = rolling.Var
	RollingStd          = rolling.Std
	RollingMeanStd      = rolling.MeanStd
	RollingZscore       = rolling.Zscore
	EWMA                = rolling.EWMA
	RollingMeanNaN      = rolling.MeanNaN
	RollingVarNaN       = rolling.VarNaN
	RollingStdNaN       = rolling.StdNaN
	RollingZscoreNaN    = rolling.ZscoreNaN
	RollingMatrixMean   = rolling.MatrixMean
	RollingMatrixVar    = rolling.MatrixVar
	RollingMatrixStd    = rolling.MatrixStd
	RollingMatrixZscore = rolling.MatrixZscore

	DefaultRollingMatrixOptions = rolling.DefaultMatrixOptions
)

// Pairwise covariance & correlation (pairwise).
type PairwiseMatrixOptions = pairwise.MatrixOptions

var (
	Cov            = pairwise.Cov
	Corr           = pairwise.Corr
	RollingCov     = pairwise.RollingCov
	RollingCorr    = pairwise.RollingCorr
	CovNaN         = pairwise.CovNaN
	CorrNaN        = pairwise.CorrNaN
	RollingCovNaN  = pairwise.RollingCovNaN
	RollingCorrNaN = pairwise.RollingCorrNaN
	CovMatrix      = pairwise.CovMatrix
	CorrMatrix     = pairwise.CorrMatrix

	DefaultPairwiseMatrixOptions = pairwise.DefaultMatrixOptions
)

// Sequence transforms & distribution analysis (transform).
type KDEOptions = transform.KDEOptions

var (
	Diff              = transform.Diff
	PctChange         = transform.PctChange
	CumSum            = transform.CumSum
	CumMean           = transform.CumMean
	ECDF              = transform.ECDF
	KDE               = transform.KDE
	DefaultKDEOptions = transform.DefaultKDEOptions
)

// Inferential statistics (hypothesis).
type (
	Alternative       = hypothesis.Alternative
	TTestResult       = hypothesis.TTestResult
	ChiSquareResult   = hypothesis.ChiSquareResult
	MannWhitneyResult = hypothesis.MannWhitneyResult
)

const (
	TwoSided = hypothesis.TwoSided
	Greater  = hypothesis.Greater
	Less     = hypothesis.Less
)

var (
	OneSampleTTest        = hypothesis.OneSampleTTest
	TwoSampleTTest        = hypothesis.TwoSampleTTest
	ChiSquareGOF          = hypothesis.ChiSquareGOF
	ChiSquareIndependence = hypothesis.ChiSquareIndependence
	CohenD                = hypothesis.CohenD
	HedgesG               = hypothesis.HedgesG
	MannWhitneyU          = hypothesis.MannWhitneyU
)
