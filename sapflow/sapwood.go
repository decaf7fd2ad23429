// Package sapflow converts sap-velocity sensor readings into volumetric sap
// flow using empirical sapwood-geometry models (Gebauer, Rössler, Račko,
// Galvac). Radii are at breast height [cm]; velocities in [cm/h].
package sapflow

import (
	"fmt"
	"math"
)

// Roessler estimates bark thickness [cm] from tree radius (Rössler, 2008).
func Roessler(r float64, tree string) (float64, error) {
	var db float64
	switch tree {
	case "beech":
		db = 2.61029 + .28522*2.*r
	case "oak":
		db = 9.88855 + .56734*2.*r
	default:
		return 0, fmt.Errorf("sapflow.Roessler: no bark model for %q", tree)
	}
	return db / 10., nil
}

// GebauerThickness estimates sapwood thickness [cm] from tree radius,
// corrected for bark (Gebauer et al., 2008).
func GebauerThickness(r float64, tree string) (float64, error) {
	db, err := Roessler(r, tree)
	if err != nil {
		return 0, err
	}
	r -= db / 2.

	var as float64
	switch tree {
	case "beech":
		as = .778 * math.Pow(2.*r, 1.917)
	case "oak":
		as = .065 * math.Pow(2.*r, 2.264)
	default:
		return 0, fmt.Errorf("sapflow.GebauerThickness: no sapwood model for %q", tree)
	}
	return -1. * (math.Sqrt((math.Pi*r*r-as)/math.Pi) - r), nil
}

// Racko estimates sapwood thickness [cm] from tree radius (Račko et al.,
// 2018); with hydra set only the hydrated area is returned.
func Racko(r float64, hydra bool) float64 {
	if hydra {
		return .34*r - 2.714
	}
	return .3748 * r
}

// Galvac estimates sapwood thickness [cm] from tree radius (Glavac et al.,
// 1990).
func Galvac(r float64) float64 {
	dbh := 2. * r
	as := .6546*dbh*dbh + .5736*dbh - 40.069
	return -1. * (math.Sqrt((math.Pi*r*r-as)/math.Pi) - r)
}

// ACirc returns the area [cm²] of the circular ring between sensor depths
// outer and inner [cm below bark], the reference cross-section for sap flow.
func ACirc(r, outer, inner float64, tree string) (float64, error) {
	db, err := Roessler(r, tree)
	if err != nil {
		return 0, err
	}
	r -= db / 2. // correct for bark
	return math.Pi*(r-outer)*(r-outer) - math.Pi*(r-inner)*(r-inner), nil
}
