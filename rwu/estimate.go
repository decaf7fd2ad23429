// Package rwu estimates daily root water uptake from the step-shaped diurnal
// dynamics of rhizosphere soil-moisture records (Jackisch et al., 2020).
package rwu

import (
	"math"
	"sort"
	"time"

	"github.com/maseology/objfunc"
)

// Day is one row of the daily record: fitted slopes, uptake estimates,
// diagnostics and the three reference timestamps. A day that fails a check
// keeps NaN estimates with its diagnostic set; no error is raised.
type Day struct {
	Date           time.Time
	RWU            float64 // uptake with extrapolated night changes [vol.%]
	RWUnoNight     float64 // uptake neglecting nocturnal changes [vol.%]
	LMnight, LMday float64 // linear-model slopes [vol.%/step]
	EvalNSE        float64 // bounded Nash-Sutcliffe vs idealized step
	StepControl    int     // step diagnostic; 1111 = all criteria met
	Evalx          int     // 1: window search; 0: fixed-offset fallback
	Tin, Tout, Tix time.Time
}

// Estimator holds the tunables of the daily step evaluation.
type Estimator struct {
	Eph       Ephemeris
	DiffLag   int     // moisture-change window, in time steps
	SlopeDiff float64 // minimum night-to-day slope ratio
	MaxDiff   float64 // drift threshold on the smoothed change [vol.%]
	MinTime   float64 // minimum night/day span [h]
}

// NewEstimator returns an Estimator with the published defaults.
func NewEstimator(eph Ephemeris) *Estimator {
	return &Estimator{Eph: eph, DiffLag: 3, SlopeDiff: 3., MaxDiff: .25, MinTime: 3.5}
}

// Estimate runs the daily loop over every calendar day in the series but the
// last, returning one record per day.
func (e *Estimator) Estimate(s Series) []Day {
	dd := s.days()
	if len(dd) < 2 {
		return nil
	}
	freq := s.Freq()
	dv := gaussianSmooth(s.Diff(e.DiffLag), 1.)

	days := make([]Day, 0, len(dd)-1)
	for _, d := range dd[:len(dd)-1] {
		days = append(days, e.day(s, dv, freq, d))
	}
	return days
}

func (e *Estimator) day(s Series, dv []float64, freq time.Duration, d time.Time) Day {
	_, setPrev := e.Eph.SunTimes(d.AddDate(0, 0, -1))
	rise, set := e.Eph.SunTimes(d)

	tinI, toutI, tixI, evalx := e.refTimes(s, dv, setPrev, rise, set)
	day := e.dayRWU(s, dv, freq, d, tinI, toutI, tixI, evalx)
	day.EvalNSE = e.stepNSE(s, setPrev, rise, set, s.T[tinI], s.T[tixI])
	return day
}

// refTimes searches the sunset/sunrise-anchored window of the smoothed
// change series for the end of uptake (first non-negative change), the start
// of the declining front (first change below -0.02 thereafter) and its end
// (first positive change after that). When no such ordering exists the day
// falls back to fixed offsets one hour past sunset/sunrise, flagged evalx=0.
func (e *Estimator) refTimes(s Series, dv []float64, setPrev, rise, set time.Time) (tin, tout, tix, evalx int) {
	if i0, i1, ok := s.window(setPrev.Add(-5*time.Hour), set.Add(2*time.Hour)); ok {
		a := -1
		for i := i0; i <= i1; i++ {
			if dv[i] >= 0 {
				a = i
				break
			}
		}
		if a >= 0 {
			b := -1
			for i := a + 1; i <= i1; i++ {
				if dv[i] <= -.02 {
					b = i
					break
				}
			}
			if b >= 0 {
				for i := b + 1; i <= i1; i++ {
					if dv[i] > 0 {
						return a, b - 1, i, 1
					}
				}
			}
		}
	}
	return s.Nearest(setPrev.Add(time.Hour)), s.Nearest(rise.Add(time.Hour)), s.Nearest(set.Add(time.Hour)), 0
}

func (e *Estimator) dayRWU(s Series, dv []float64, freq time.Duration, d time.Time, tinI, toutI, tixI, evalx int) Day {
	nan := math.NaN()
	day := Day{
		Date: d, RWU: nan, RWUnoNight: nan, LMnight: nan, LMday: nan, EvalNSE: nan,
		Evalx: evalx, Tin: s.T[tinI], Tout: s.T[toutI], Tix: s.T[tixI],
	}

	// reject too-short spans and days with drift beyond the noise threshold
	if day.Tout.Sub(day.Tin).Hours() < e.MinTime || day.Tix.Sub(day.Tout).Hours() < e.MinTime {
		day.StepControl = 2
		return day
	}
	for i := tinI; i <= tixI; i++ {
		if dv[i] > e.MaxDiff {
			day.StepControl = 3
			return day
		}
	}

	// night-time linear model, fit short of sunrise by one hour
	_, n1, ok := s.window(day.Tin, day.Tout.Add(-time.Hour))
	if !ok {
		return day
	}
	b0, m0, err := ols(s.V[tinI : n1+1])
	if err != nil {
		return day
	}
	day.LMnight = m0

	// day-time linear model
	_, m1, err := ols(s.V[toutI : tixI+1])
	if err != nil {
		return day
	}
	day.LMday = m1

	// extrapolate the night model across the full night+day span
	nstep := int(day.Tix.Sub(day.Tin)/freq) + 1
	fuse := b0 + m0*float64(nstep-1)

	// step criteria; slopes judged per 6 h
	scale := 6. * 3600. / freq.Seconds()
	sc := 0
	if m0/scale > -.5/6. { // night decline limited to 0.5 vol.% per 6 h
		sc += 10
	}
	if m0/scale < 1./6. { // night rise limited to 1 vol.% per 6 h
		sc += 100
	}
	if m1 < 0 { // day slope must decline
		sc += 1000
	}
	if m1 < e.SlopeDiff*m0 { // and be steeper than the night trend
		sc++
	}
	day.StepControl = sc

	day.RWU = fuse - s.V[tixI]
	day.RWUnoNight = s.V[toutI] - s.V[tixI]
	return day
}

// stepNSE compares the observed series against an idealized step drawn
// between the astronomical reference times, scored as a bounded (C2M)
// Nash-Sutcliffe efficiency.
func (e *Estimator) stepNSE(s Series, setPrev, rise, set, tin, tix time.Time) float64 {
	const gridStep = 30 * time.Minute

	dtin := s.T[s.Nearest(setPrev.Add(-90*time.Minute))]
	dtout := s.T[s.Nearest(rise.Add(2*time.Hour))]
	dtix := s.T[s.Nearest(set.Add(-30*time.Minute))]
	if !dtin.Before(dtix) {
		return math.NaN()
	}

	n := int(dtix.Sub(dtin)/gridStep) + 1
	pos := func(t time.Time) int {
		p := int((t.Sub(dtin) + gridStep/2) / gridStep)
		if p < 0 {
			p = 0
		}
		if p >= n {
			p = n - 1
		}
		return p
	}

	// idealized step: night plateau, slight overnight rise, return to the
	// evening value
	v0 := s.V[s.Nearest(dtin)]
	v1 := s.V[s.Nearest(dtix)]
	knot := map[int]float64{
		pos(dtin):                         v0,
		pos(dtout.Add(time.Hour)):         v0 + .01,
		pos(dtix.Add(-150 * time.Minute)): v1,
	}
	kp := make([]int, 0, len(knot))
	for p := range knot {
		kp = append(kp, p)
	}
	sort.Ints(kp)

	ideal := make([]float64, n)
	for i := range ideal {
		ideal[i] = math.NaN()
	}
	for i, p := range kp {
		ideal[p] = knot[p]
		if i > 0 {
			p0 := kp[i-1]
			for j := p0 + 1; j < p; j++ {
				w := float64(j-p0) / float64(p-p0)
				ideal[j] = knot[p0]*(1.-w) + knot[p]*w
			}
		}
	}
	for j := kp[len(kp)-1] + 1; j < n; j++ { // hold past the last knot
		ideal[j] = knot[kp[len(kp)-1]]
	}

	// align on coincident timestamps
	i0, i1, ok := s.window(tin.Add(-30*time.Minute), tix.Add(30*time.Minute))
	if !ok {
		return math.NaN()
	}
	var obs, sim []float64
	for i := i0; i <= i1; i++ {
		off := s.T[i].Sub(dtin)
		if off < 0 || off%gridStep != 0 {
			continue
		}
		p := int(off / gridStep)
		if p >= n || math.IsNaN(ideal[p]) || math.IsNaN(s.V[i]) {
			continue
		}
		obs = append(obs, s.V[i])
		sim = append(sim, ideal[p])
	}
	if len(obs) < 2 {
		return math.NaN()
	}
	// efficiency is denominated in the idealized step's variance
	nse := objfunc.NSE(sim, obs)
	return nse / (2. - nse)
}
