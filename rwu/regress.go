package rwu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ols fits y = intercept + slope*i over the sample positions i = 0..n-1.
// NaN samples are dropped from the fit; their positions are kept.
func ols(y []float64) (intercept, slope float64, err error) {
	x := make([]float64, 0, len(y))
	yv := make([]float64, 0, len(y))
	for i, v := range y {
		if math.IsNaN(v) {
			continue
		}
		x = append(x, float64(i))
		yv = append(yv, v)
	}
	if len(yv) < 2 {
		return 0, 0, fmt.Errorf("ols: %d usable samples", len(yv))
	}
	intercept, slope = stat.LinearRegression(x, yv, nil, false)
	return intercept, slope, nil
}
