package sapflow

import (
	"fmt"
	"math"
)

// radial discretization of the sapwood profile
const npoints = 50

// Weibull evaluates the 4-parameter distribution of Gebauer et al. (2008)
// describing relative sap velocity at depth x into the sapwood. The
// parenthesization follows the published form.
func Weibull(x, a, b, c, d float64) float64 {
	cc := (c - 1.) / c
	u := (x-d)/b + math.Pow(c-1./c, 1./c)
	return cc + a*math.Pow(cc, cc)*math.Exp(-math.Pow(u, c))*math.Pow(u, c-1.)
}

// Rel returns the relative flux density profile at npoints radial positions
// across the sapwood.
func Rel(r float64, tree string) ([]float64, error) {
	p, err := params(tree)
	if err != nil {
		return nil, err
	}
	th, err := GebauerThickness(r, tree)
	if err != nil {
		return nil, err
	}
	sv := make([]float64, npoints)
	for i := range sv {
		x := float64(i) / npoints * th
		sv[i] = Weibull(x, p.A, p.B, p.C, p.D)
	}
	return sv, nil
}

// Act returns the depth [cm] of the "zero" sap velocity limit: the first
// radial position where the cumulative flux distribution exceeds the
// activity percentile perc.
func Act(r, perc float64, tree string) (float64, error) {
	sv, err := Rel(r, tree)
	if err != nil {
		return 0, err
	}
	th, err := GebauerThickness(r, tree)
	if err != nil {
		return 0, err
	}
	sum := 0.
	for _, v := range sv {
		sum += v
	}
	cum := 0.
	for i, v := range sv {
		cum += v
		if cum/sum > perc {
			return float64(i) / npoints * th, nil
		}
	}
	return 0, fmt.Errorf("sapflow.Act: no activity limit below percentile %.2f", perc)
}
