package retention

// lookup discretization: relative saturation 0.01..1.00
const nbins = 100

// Lookup tabulates the retention surface of one soil over 100 relative
// saturation bins for fast interpolation.
type Lookup struct {
	ThetaStar, Psi, Theta, Ku, D [nbins]float64
}

// NewLookup builds the table for one soil. The last diffusivity bin copies
// its neighbour; D is singular at full saturation.
func NewLookup(v VanGenuchten) *Lookup {
	var l Lookup
	for i := 0; i < nbins; i++ {
		thst := float64(i+1) / nbins
		l.ThetaStar[i] = thst
		l.Psi[i] = v.PsiThetaStar(thst)
		l.Theta[i] = v.Theta(thst)
		l.Ku[i] = v.KuThetaStar(thst)
		l.D[i] = v.DThetaStar(thst)
	}
	l.D[nbins-1] = l.D[nbins-2]
	return &l
}

// BuildLookup tabulates a set of soils, one table per sample.
func BuildLookup(soils []VanGenuchten) []*Lookup {
	ls := make([]*Lookup, len(soils))
	for i, v := range soils {
		ls[i] = NewLookup(v)
	}
	return ls
}

// PsiAt linearly interpolates matric head at a relative saturation.
func (l *Lookup) PsiAt(thst float64) float64 { return l.interp(&l.Psi, thst) }

// KuAt linearly interpolates conductivity at a relative saturation.
func (l *Lookup) KuAt(thst float64) float64 { return l.interp(&l.Ku, thst) }

// DAt linearly interpolates diffusivity at a relative saturation.
func (l *Lookup) DAt(thst float64) float64 { return l.interp(&l.D, thst) }

// ThetaAt linearly interpolates moisture content at a relative saturation.
func (l *Lookup) ThetaAt(thst float64) float64 { return l.interp(&l.Theta, thst) }

func (l *Lookup) interp(col *[nbins]float64, thst float64) float64 {
	if thst <= l.ThetaStar[0] {
		return col[0]
	}
	if thst >= l.ThetaStar[nbins-1] {
		return col[nbins-1]
	}
	// uniform bins
	f := thst*nbins - 1.
	i := int(f)
	w := f - float64(i)
	return col[i]*(1.-w) + col[i+1]*w
}
