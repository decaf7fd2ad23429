package rwu

import (
	"math"
	"sort"
	"time"

	"github.com/maseology/mmio"
)

// Series is an ordered soil-moisture record: one sensor, volumetric %,
// time-zone aware timestamps at a roughly fixed sampling interval.
type Series struct {
	T []time.Time
	V []float64
}

// FromTimeSeries orders an mmio.TimeSeries into a Series.
func FromTimeSeries(ts mmio.TimeSeries) Series {
	s := Series{T: make([]time.Time, 0, len(ts)), V: make([]float64, 0, len(ts))}
	for t := range ts {
		s.T = append(s.T, t)
	}
	sort.Slice(s.T, func(i, j int) bool { return s.T[i].Before(s.T[j]) })
	for _, t := range s.T {
		s.V = append(s.V, ts[t])
	}
	return s
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.T) }

// Diff returns v[i]-v[i-lag]; the first lag entries are NaN.
func (s Series) Diff(lag int) []float64 {
	d := make([]float64, len(s.V))
	for i := range d {
		if i < lag {
			d[i] = math.NaN()
		} else {
			d[i] = s.V[i] - s.V[i-lag]
		}
	}
	return d
}

// Freq returns the modal sampling interval.
func (s Series) Freq() time.Duration {
	c := make(map[time.Duration]int)
	for i := 1; i < len(s.T); i++ {
		c[s.T[i].Sub(s.T[i-1])]++
	}
	var md time.Duration
	mx := -1
	for d, n := range c {
		if n > mx {
			md, mx = d, n
		}
	}
	return md
}

// Nearest returns the index of the sample closest in time to t.
func (s Series) Nearest(t time.Time) int {
	i := sort.Search(len(s.T), func(i int) bool { return !s.T[i].Before(t) })
	if i == 0 {
		return 0
	}
	if i == len(s.T) {
		return len(s.T) - 1
	}
	if t.Sub(s.T[i-1]) <= s.T[i].Sub(t) {
		return i - 1
	}
	return i
}

// window returns the inclusive index range [i0,i1] of samples within [from,to];
// ok is false when the range holds no samples.
func (s Series) window(from, to time.Time) (i0, i1 int, ok bool) {
	i0 = sort.Search(len(s.T), func(i int) bool { return !s.T[i].Before(from) })
	i1 = sort.Search(len(s.T), func(i int) bool { return s.T[i].After(to) }) - 1
	return i0, i1, i0 <= i1 && i0 < len(s.T)
}

// days returns the unique calendar dates (midnight, series zone) in order.
func (s Series) days() []time.Time {
	if len(s.T) == 0 {
		return nil
	}
	var dd []time.Time
	var last time.Time
	for _, t := range s.T {
		y, m, d := t.Date()
		dt := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		if len(dd) == 0 || !dt.Equal(last) {
			dd = append(dd, dt)
			last = dt
		}
	}
	return dd
}
