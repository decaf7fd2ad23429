package rwu

import "math"

// gaussianSmooth applies a 1-D Gaussian filter (truncated at 4 sigma,
// reflected boundaries). NaN inputs contaminate every window they touch,
// matching the reference smoothing the estimator was validated against.
func gaussianSmooth(v []float64, sigma float64) []float64 {
	r := int(4.*sigma + .5)
	w := make([]float64, 2*r+1)
	ws := 0.
	for i := -r; i <= r; i++ {
		w[i+r] = math.Exp(-float64(i*i) / (2. * sigma * sigma))
		ws += w[i+r]
	}
	for i := range w {
		w[i] /= ws
	}

	n := len(v)
	reflect := func(i int) int {
		// scipy 'reflect': (d c b a | a b c d | d c b a)
		for i < 0 || i >= n {
			if i < 0 {
				i = -i - 1
			}
			if i >= n {
				i = 2*n - i - 1
			}
		}
		return i
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		s := 0.
		for j := -r; j <= r; j++ {
			s += w[j+r] * v[reflect(i+j)]
		}
		out[i] = s
	}
	return out
}
