package rwu

import (
	"math"
	"time"
)

// Safe masks low-confidence results in place: a step control below 1100
// (excess night change or no day decline) and negative uptake are refused.
func Safe(days []Day) {
	for i := range days {
		if days[i].StepControl < 1100 {
			days[i].RWU = math.NaN()
			days[i].RWUnoNight = math.NaN()
		}
		if days[i].RWU < 0 {
			days[i].RWU = math.NaN()
		}
		if days[i].RWUnoNight < 0 {
			days[i].RWUnoNight = math.NaN()
		}
	}
}

// Table holds aligned daily results for a set of sensor columns.
type Table struct {
	Dates                []time.Time
	Names                []string
	RWU, RWUnoNight, NSE [][]float64 // [sensor][day]
}

// Batch runs the estimator over a set of sensor series and assembles aligned
// result tables; the first sensor drives the output index and later columns
// are joined on date, so offset records land on their own rows. With safe
// set, the quality filters are applied to both uptake variants.
func (e *Estimator) Batch(names []string, sensors []Series, safe bool) Table {
	tb := Table{Names: names}
	pos := make(map[int64]int)
	for j, s := range sensors {
		r := e.Estimate(s)
		if safe {
			Safe(r)
		}
		if j == 0 {
			tb.Dates = make([]time.Time, len(r))
			for i, d := range r {
				tb.Dates[i] = d.Date
				pos[d.Date.Unix()] = i
			}
		}
		rw, rn, ns := make([]float64, len(tb.Dates)), make([]float64, len(tb.Dates)), make([]float64, len(tb.Dates))
		for i := range tb.Dates {
			rw[i], rn[i], ns[i] = math.NaN(), math.NaN(), math.NaN()
		}
		for _, d := range r {
			if i, ok := pos[d.Date.Unix()]; ok {
				rw[i], rn[i], ns[i] = d.RWU, d.RWUnoNight, d.EvalNSE
			}
		}
		tb.RWU = append(tb.RWU, rw)
		tb.RWUnoNight = append(tb.RWUnoNight, rn)
		tb.NSE = append(tb.NSE, ns)
	}
	return tb
}
