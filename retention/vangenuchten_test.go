package retention

import (
	"math"
	"testing"
)

func loam() VanGenuchten {
	s, err := ByTexture("L")
	if err != nil {
		panic(err)
	}
	return s.VanGenuchten
}

func TestThetaRoundTrip(t *testing.T) {
	v := loam()
	for th := v.Tr + .01; th < v.Ts; th += .02 {
		if got := v.Theta(v.ThetaStar(th)); math.Abs(got-th) > 1e-12 {
			t.Errorf("theta %f round-tripped to %f", th, got)
		}
	}
}

func TestPsiRoundTrip(t *testing.T) {
	v := loam()
	for _, psi := range []float64{-10., -5., -1., -.5, -.1, -.01} {
		thst := v.ThetaStarPsi(psi)
		if got := v.PsiThetaStar(thst); math.Abs(got-psi) > 1e-9*math.Abs(psi) {
			t.Errorf("psi %f round-tripped to %f (theta* %f)", psi, got, thst)
		}
	}
}

func TestPsiSaturationClamp(t *testing.T) {
	v := loam()
	want := v.PsiThetaStar(.98)
	if math.IsInf(want, 0) || math.IsNaN(want) {
		t.Fatalf("reference head at theta*=0.98 not finite: %f", want)
	}
	if got := v.PsiThetaStar(0.); got != want {
		t.Errorf("clamped head %f, want %f", got, want)
	}
}

func TestKuMonotone(t *testing.T) {
	v := loam()
	prev := -1.
	for i := 1; i <= 100; i++ {
		ku := v.KuThetaStar(float64(i) / 100.)
		if ku < prev {
			t.Fatalf("Ku not non-decreasing at theta* %f: %e < %e", float64(i)/100., ku, prev)
		}
		prev = ku
	}
	if v.KuThetaStar(1.) > v.Ks*(1.+1e-12) {
		t.Errorf("Ku at saturation %e exceeds Ks %e", v.KuThetaStar(1.), v.Ks)
	}
}

func TestKuConversionsAgree(t *testing.T) {
	v := loam()
	for th := v.Tr + .02; th < v.Ts-.02; th += .05 {
		a := v.KuTheta(th)
		b := v.KuThetaStar(v.ThetaStar(th))
		if math.Abs(a-b) > 1e-18 {
			t.Errorf("KuTheta %e != KuThetaStar %e at theta %f", a, b, th)
		}
	}
}

func TestCapacityNegative(t *testing.T) {
	v := loam()
	for _, psi := range []float64{-5., -1., -.1} {
		if c := v.CPsi(psi); c >= 0 {
			t.Errorf("water capacity at psi %f is %e, want negative", psi, c)
		}
	}
}

func TestDiffusivityPositive(t *testing.T) {
	v := loam()
	if d := v.DPsi(-1.); d <= 0 || math.IsNaN(d) {
		t.Errorf("DPsi(-1) = %e", d)
	}
	if d := v.DThetaStar(.5); d <= 0 || math.IsNaN(d) {
		t.Errorf("DThetaStar(0.5) = %e", d)
	}
}

func TestDPsiDThetaStarClamp(t *testing.T) {
	v := loam()
	lo, hi := v.DPsiDThetaStar(.001), v.DPsiDThetaStar(.01)
	if lo != hi {
		t.Errorf("sub-range saturation not clamped: %e != %e", lo, hi)
	}
	if d := v.DPsiDThetaStar(.5); math.IsNaN(d) || math.IsInf(d, 0) {
		t.Errorf("DPsiDThetaStar(0.5) = %f", d)
	}
}

func TestByTexture(t *testing.T) {
	if _, err := ByTexture("SIL"); err != nil {
		t.Errorf("SIL lookup failed: %v", err)
	}
	if _, err := ByTexture("peat"); err == nil {
		t.Error("unknown texture class accepted")
	}
	if len(Carsel) != 12 {
		t.Errorf("Carsel table holds %d classes, want 12", len(Carsel))
	}
}
