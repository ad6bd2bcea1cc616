package hypothesis

import (
	"math"

	"github.com/bunkerlabs/bunkerstats/welford"
)

// CohenD returns the standardized mean difference (m1−m2)/s. With pooled
// the denominator is the pooled standard deviation
// √(((n1−1)s1² + (n2−1)s2²)/(n1+n2−2)); otherwise the unpooled
// √((s1²+s2²)/2). Zero spread yields NaN. Either sample below two
// observations is ErrInsufficientData.
// Complexity: O(n1+n2).
func CohenD(x, y []float64, pooled bool) (float64, error) {
	m1, v1, n1 := welford.Summarize(x)
	m2, v2, n2 := welford.Summarize(y)
	if n1 < 2 || n2 < 2 {
		return 0, ErrInsufficientData
	}

	var s float64
	if pooled {
		f1, f2 := float64(n1), float64(n2)
		s = math.Sqrt(((f1-1)*v1 + (f2-1)*v2) / (f1 + f2 - 2))
	} else {
		s = math.Sqrt((v1 + v2) / 2)
	}
	if s == 0 {
		return math.NaN(), nil
	}

	return (m1 - m2) / s, nil
}

// HedgesG returns Cohen's pooled d scaled by the small-sample bias
// correction 1 − 3/(4·df − 1) with df = n1+n2−2.
// Complexity: O(n1+n2).
func HedgesG(x, y []float64) (float64, error) {
	d, err := CohenD(x, y, true)
	if err != nil {
		return 0, err
	}
	df := float64(len(x) + len(y) - 2)

	return d * (1 - 3/(4*df-1)), nil
}
