// Package rootwater ties the daily root-water-uptake estimator to tabular
// sensor data: it reads multi-sensor soil-moisture tables, runs the per-day
// evaluation for every column and writes the aligned result tables.
package rootwater

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cojacoo/rootwater/rwu"
	"github.com/maseology/mmio"
)

var timeFormats = []string{"2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02T15:04:05Z07:00"}

// ReadSensorCsv reads a sensor table (datetime first column, one column per
// sensor) with timestamps interpreted in zone tz. Blank fields parse to NaN.
func ReadSensorCsv(fp string, tz *time.Location) (names []string, dts []time.Time, cols [][]float64, err error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ReadSensorCsv: %v", err)
	}
	if len(lns) < 2 {
		return nil, nil, nil, fmt.Errorf("ReadSensorCsv: %s holds no data", fp)
	}

	names = strings.Split(strings.TrimSpace(lns[0]), ",")[1:]
	cols = make([][]float64, len(names))

	parse := func(s string) (time.Time, error) {
		for _, f := range timeFormats {
			if t, err := time.ParseInLocation(f, s, tz); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized datetime %q", s)
	}

	for _, ln := range lns[1:] {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		sp := strings.Split(ln, ",")
		if len(sp) != len(names)+1 {
			return nil, nil, nil, fmt.Errorf("ReadSensorCsv: ragged row %q", ln)
		}
		t, err := parse(sp[0])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("ReadSensorCsv: %v", err)
		}
		dts = append(dts, t)
		for j, s := range sp[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				v = math.NaN()
			}
			cols[j] = append(cols[j], v)
		}
	}
	return names, dts, cols, nil
}

// BatchRWU runs the daily estimator over every sensor column of a
// soil-moisture table and writes three aligned result tables
// (<prfx>rwu.csv, <prfx>rwu_nonight.csv, <prfx>eval_nse.csv).
func BatchRWU(csvFP string, loc rwu.Location, tz *time.Location, safe bool, outprfx string) error {
	names, dts, cols, err := ReadSensorCsv(csvFP, tz)
	if err != nil {
		return err
	}
	sensors := make([]rwu.Series, len(cols))
	for j := range cols {
		sensors[j] = rwu.Series{T: dts, V: cols[j]}
	}

	tb := rwu.NewEstimator(loc).Batch(names, sensors, safe)
	hdr := "date," + strings.Join(names, ",")
	mmio.WriteCsvDateFloats(outprfx+"rwu.csv", hdr, tb.Dates, tb.RWU...)
	mmio.WriteCsvDateFloats(outprfx+"rwu_nonight.csv", hdr, tb.Dates, tb.RWUnoNight...)
	mmio.WriteCsvDateFloats(outprfx+"eval_nse.csv", hdr, tb.Dates, tb.NSE...)
	return nil
}
