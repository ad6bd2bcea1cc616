package describe

// SignMask maps each element to its sign: +1 for positive, −1 for negative,
// 0 otherwise (including NaN, which compares false both ways).
// Complexity: O(n).
func SignMask(xs []float64) []int8 {
	out := make([]int8, len(xs))
	for i, x := range xs {
		switch {
		case x > 0:
			out[i] = 1
		case x < 0:
			out[i] = -1
		}
	}

	return out
}

// DemeanWithSigns subtracts the mean from every element and returns the
// demeaned sequence together with the sign mask of the deviations.
// Complexity: O(n).
func DemeanWithSigns(xs []float64) ([]float64, []int8) {
	m := Mean(xs)
	demeaned := make([]float64, len(xs))
	for i, x := range xs {
		demeaned[i] = x - m
	}

	return demeaned, SignMask(demeaned)
}
