package retention

import "math"

// pore-connectivity exponent (Mualem)
const ell = .5

// VanGenuchten holds the closed-form retention curve parameters for one soil.
// Matric head psi is negative under unsaturated conditions [m]; moisture
// contents are volumetric [-]; Ks is the saturated conductivity [m/s].
type VanGenuchten struct {
	Tr, Ts, Alpha, N, M, Ks float64
}

// New builds a parameter set, deriving m = 1-1/n.
func New(tr, ts, alpha, n, ks float64) VanGenuchten {
	return VanGenuchten{Tr: tr, Ts: ts, Alpha: alpha, N: n, M: 1. - 1./n, Ks: ks}
}

// ThetaStar converts moisture content to relative saturation.
func (v *VanGenuchten) ThetaStar(theta float64) float64 {
	return (theta - v.Tr) / (v.Ts - v.Tr)
}

// Theta converts relative saturation to moisture content.
func (v *VanGenuchten) Theta(thst float64) float64 {
	return thst*(v.Ts-v.Tr) + v.Tr
}

// PsiThetaStar converts relative saturation to matric head. An infinite head
// at the saturation extreme is substituted with the head at theta* = 0.98 to
// match the reference implementation.
func (v *VanGenuchten) PsiThetaStar(thst float64) float64 {
	psi := v.psiThst(thst)
	if math.IsInf(psi, 0) {
		return v.psiThst(.98)
	}
	return psi
}

func (v *VanGenuchten) psiThst(thst float64) float64 {
	t := math.Pow(thst, 1./v.M)
	return -1. / v.Alpha * math.Pow((1.-t)/t, 1./v.N)
}

// ThetaStarPsi converts matric head to relative saturation.
func (v *VanGenuchten) ThetaStarPsi(psi float64) float64 {
	return math.Pow(1./(1.+math.Pow(math.Abs(psi)*v.Alpha, v.N)), v.M)
}

// PsiTheta converts moisture content to matric head.
func (v *VanGenuchten) PsiTheta(theta float64) float64 {
	return v.PsiThetaStar(v.ThetaStar(theta))
}

// ThetaPsi converts matric head to moisture content.
func (v *VanGenuchten) ThetaPsi(psi float64) float64 {
	return v.Theta(v.ThetaStarPsi(psi))
}

// KuPsi computes unsaturated hydraulic conductivity from matric head.
func (v *VanGenuchten) KuPsi(psi float64) float64 {
	w := 1. + math.Pow(v.Alpha*math.Abs(psi), v.N)
	return v.Ks * math.Pow(w, -v.M*ell) * math.Pow(1.-math.Pow(1.-1./w, v.M), 2.)
}

// KuThetaStar computes unsaturated hydraulic conductivity from relative
// saturation (Mualem-van Genuchten).
func (v *VanGenuchten) KuThetaStar(thst float64) float64 {
	return v.Ks * math.Pow(thst, ell) * math.Pow(1.-math.Pow(1.-math.Pow(thst, 1./v.M), v.M), 2.)
}

// KuTheta computes unsaturated hydraulic conductivity from moisture content.
func (v *VanGenuchten) KuTheta(theta float64) float64 {
	return v.KuThetaStar(v.ThetaStar(theta))
}

// CPsi computes the specific water capacity dtheta/dpsi from matric head.
func (v *VanGenuchten) CPsi(psi float64) float64 {
	a := math.Abs(psi)
	return -1. * (v.Ts - v.Tr) * v.N * v.M * math.Pow(v.Alpha, v.N) * math.Pow(a, v.N-1.) *
		math.Pow(1.+math.Pow(v.Alpha*a, v.N), -v.M-1.)
}

// DThetaStar computes soil-water diffusivity from relative saturation.
func (v *VanGenuchten) DThetaStar(thst float64) float64 {
	t := math.Pow(thst, 1./v.M)
	return (v.Ks * (1. - v.M) * math.Pow(thst, .5-1./v.M)) / (v.Alpha * v.M * (v.Ts - v.Tr)) *
		(math.Pow(1.-t, -v.M) + math.Pow(1.-t, v.M) - 2.)
}

// DTheta computes soil-water diffusivity from moisture content.
func (v *VanGenuchten) DTheta(theta float64) float64 {
	return v.DThetaStar(v.ThetaStar(theta))
}

// DPsi computes soil-water diffusivity from matric head by finite difference
// over a 0.05 m head increment.
func (v *VanGenuchten) DPsi(psi float64) float64 {
	dth := v.ThetaPsi(psi) - v.ThetaPsi(psi-.05)
	return v.KuPsi(psi) * .1 / dth
}

// DPsiDThetaStar computes dpsi/dtheta about a relative saturation, clamped to
// [0.01,0.9899] and differenced over a 0.02 increment.
func (v *VanGenuchten) DPsiDThetaStar(thst float64) float64 {
	if thst > .9899 {
		thst = .9899
	}
	if thst < .01 {
		thst = .01
	}
	t1, t0 := thst-.01, thst+.01
	psi0, psi1 := v.PsiThetaStar(t0), v.PsiThetaStar(t1)
	return (psi1 - psi0) / (v.Theta(t1) - v.Theta(t0))
}
