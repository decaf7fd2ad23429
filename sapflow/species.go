package sapflow

import "fmt"

// Params are the tree-specific constants of the 4-parameter Weibull sap
// velocity distribution after Gebauer et al. (2008).
type Params struct {
	Name       string // botanical name
	A, B, C, D float64
}

// Gebauer is the published species parameter table.
var Gebauer = map[string]Params{
	"beech":         {"Fagus sylvatica", 2.69, 3.42, 1.00, 2.44},
	"hornbeam":      {"Carpinus betulus", 1.37, 5.88, 2.43, 2.79},
	"limeA":         {"Tilia sp. (A)", 1.62, 6.35, 2.71, 3.28},
	"limeB":         {"Tilia sp. (B)", 1.11, 4.52, 1.67, 1.88},
	"sycamoremaple": {"Acer pseudoplatanus", 1.44, 8.98, 3.47, 3.42},
	"maple":         {"Acer campestre", 1.74, 4.86, 1.94, 2.50},
	"ash":           {"Fraxinus excelsior", 1.00, 1.44, 1.54, 0.42},
}

func params(tree string) (Params, error) {
	p, ok := Gebauer[tree]
	if !ok {
		return Params{}, fmt.Errorf("sapflow: unknown tree species %q", tree)
	}
	return p, nil
}
