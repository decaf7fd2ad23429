package rwu

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Ephemeris supplies the astronomical reference times the daily window
// search is anchored to. Injected so the estimator can be exercised against
// fixed times in testing.
type Ephemeris interface {
	SunTimes(d time.Time) (rise, set time.Time)
}

// Location computes civil sunrise/sunset for a monitoring site.
type Location struct {
	Lat, Lon float64
}

// SunTimes returns sunrise and sunset for the date of d, in d's zone.
func (l Location) SunTimes(d time.Time) (time.Time, time.Time) {
	r, s := sunrise.SunriseSunset(l.Lat, l.Lon, d.Year(), d.Month(), d.Day())
	return r.In(d.Location()), s.In(d.Location())
}
