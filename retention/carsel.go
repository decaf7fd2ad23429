package retention

import "fmt"

// Soil is one row of the reference soil-parameter table: texture class,
// grain-size fractions [%], and van Genuchten parameters.
type Soil struct {
	Texture          string
	Silt, Sand, Clay float64
	VanGenuchten
}

// Carsel is the standard parameter table after Carsel & Parrish (1988).
// Alpha converted to [1/m], Ks to [m/s].
var Carsel = []Soil{
	{"C", 30., 15., 55., New(.068, .38, .008*100., 1.09, .200/360000.)},
	{"CL", 37., 30., 33., New(.095, .41, .019*100., 1.31, .258/360000.)},
	{"L", 40., 40., 20., New(.078, .43, .036*100., 1.56, 1.042/360000.)},
	{"LS", 13., 81., 6., New(.057, .43, .124*100., 2.28, 14.592/360000.)},
	{"S", 4., 93., 3., New(.045, .43, .145*100., 2.68, 29.700/360000.)},
	{"SC", 11., 48., 41., New(.100, .38, .027*100., 1.23, .121/360000.)},
	{"SCL", 19., 54., 27., New(.100, .39, .059*100., 1.48, 1.308/360000.)},
	{"SI", 85., 6., 9., New(.034, .46, .016*100., 1.37, .250/360000.)},
	{"SIC", 48., 6., 46., New(.070, .36, .005*100., 1.09, .021/360000.)},
	{"SICL", 59., 8., 33., New(.089, .43, .010*100., 1.23, .071/360000.)},
	{"SIL", 65., 17., 18., New(.067, .45, .020*100., 1.41, .450/360000.)},
	{"SL", 26., 63., 11., New(.065, .41, .075*100., 1.89, 4.421/360000.)},
}

// ByTexture returns the Carsel & Parrish soil for a texture class code.
func ByTexture(code string) (Soil, error) {
	for _, s := range Carsel {
		if s.Texture == code {
			return s, nil
		}
	}
	return Soil{}, fmt.Errorf("retention.ByTexture: unknown texture class %q", code)
}
