package sapflow

import (
	"fmt"
	"math"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
)

// fitProfile scales the species Weibull profile to the velocities measured
// at the mid (s1) and inner (s2) sensor depths through a single free scale
// parameter, solved by scalar minimization.
func fitProfile(r, s1, s2 float64, tree string) (scale, th float64, rel []float64, err error) {
	rel, err = Rel(r, tree)
	if err != nil {
		return 0, 0, nil, err
	}
	th, err = GebauerThickness(r, tree)
	if err != nil {
		return 0, 0, nil, err
	}

	i1, i2 := -1, -1
	for i := 0; i < npoints; i++ {
		x := float64(i) / npoints * th
		if i1 < 0 && x >= 1.8 {
			i1 = i
		}
		if i2 < 0 && x >= 3. {
			i2 = i
		}
	}
	if i1 < 0 || i2 < 0 {
		return 0, 0, nil, fmt.Errorf("sapflow.fitProfile: sapwood of %.1f cm too thin for sensor depths", th)
	}

	trans := func(u float64) float64 { return mmaths.LinearTransform(-100., 100., u) }
	solv := func(u float64) float64 {
		f := trans(u)
		e1 := f*rel[i1] - s1
		e2 := f*rel[i2] - s2
		return math.Sqrt(.2*e1*e1 + e2*e2)
	}
	uFib, _ := glbopt.Fibonacci(solv)
	return trans(uFib), th, rel, nil
}

// Volume fits the radial profile to the two measured depths and integrates
// velocity times annular area over the active sapwood, bounded outward at
// 2.4 cm and inward at the activity percentile perc [cm³/h].
func Volume(r, s1, s2, perc float64, tree string) (float64, error) {
	if math.IsNaN(s1) || math.IsNaN(s2) {
		return math.NaN(), nil
	}
	scale, th, rel, err := fitProfile(r, s1, s2, tree)
	if err != nil {
		return 0, err
	}
	act, err := Act(r, perc, tree)
	if err != nil {
		return 0, err
	}

	q := 0.
	for i := 0; i < npoints; i++ {
		x := float64(i) / npoints * th
		if x <= 2.4 || x > act {
			continue
		}
		a, err := ACirc(r, x-.01*th, x+.01*th, tree)
		if err != nil {
			return 0, err
		}
		q += a * scale * rel[i]
	}
	return q, nil
}

// Distribution returns the fitted velocity profile at the npoints radial
// positions rather than the aggregated flux.
func Distribution(r, s1, s2 float64, tree string) ([]float64, error) {
	scale, _, rel, err := fitProfile(r, s1, s2, tree)
	if err != nil {
		return nil, err
	}
	d := make([]float64, len(rel))
	for i, v := range rel {
		d[i] = scale * v
	}
	return d, nil
}

// Calc converts a table of East30 sap velocities (inner, mid, outer
// thermocouples at 30, 18 and 5 mm) to volumetric flow per time step. The
// inner column is profile-fitted; mid and outer scale their reference rings
// directly.
func Calc(inner, mid, outer []float64, r, perc float64, tree string) (qi, qm, qo []float64, err error) {
	if len(mid) != len(inner) || len(outer) != len(inner) {
		return nil, nil, nil, fmt.Errorf("sapflow.Calc: ragged velocity table")
	}
	am, err := ACirc(r, 1.1, 2.4, tree)
	if err != nil {
		return nil, nil, nil, err
	}
	ao, err := ACirc(r, 0., 1.1, tree)
	if err != nil {
		return nil, nil, nil, err
	}

	qi = make([]float64, len(inner))
	qm = make([]float64, len(inner))
	qo = make([]float64, len(inner))
	for t := range inner {
		if qi[t], err = Volume(r, mid[t], inner[t], perc, tree); err != nil {
			return nil, nil, nil, err
		}
		qm[t] = mid[t] * am
		qo[t] = outer[t] * ao
	}
	return qi, qm, qo, nil
}
