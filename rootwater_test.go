package rootwater

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cojacoo/rootwater/rwu"
	"github.com/cojacoo/rootwater/sapflow"
	"github.com/maseology/mmio"
)

func TestReadSensorCsv(t *testing.T) {
	tz := time.FixedZone("Etc/GMT-1", 3600)
	names, dts, cols, err := ReadSensorCsv("testdata/sm.csv", tz)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "sm1" || names[1] != "sm2" {
		t.Fatalf("sensor names %v", names)
	}
	if len(dts) != 144 {
		t.Fatalf("%d rows, want 144", len(dts))
	}
	for j := range cols {
		if len(cols[j]) != len(dts) {
			t.Fatalf("column %s holds %d values", names[j], len(cols[j]))
		}
	}
	if dts[0].Location() != tz {
		t.Error("timestamps not in the requested zone")
	}
	for i := 1; i < len(dts); i++ {
		if d := dts[i].Sub(dts[i-1]); d != 30*time.Minute {
			t.Fatalf("interval %v at row %d", d, i)
		}
	}
	if cols[0][0] != 35. || cols[1][0] != 38. {
		t.Errorf("first row %f %f", cols[0][0], cols[1][0])
	}
}

func TestReadSensorCsvBlankField(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "gap.csv")
	csv := "datetime,sm1\n2019-06-10 00:00:00,35.0\n2019-06-10 00:30:00,\n"
	if err := os.WriteFile(fp, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, cols, err := ReadSensorCsv(fp, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(cols[0][1]) {
		t.Errorf("blank field parsed to %f", cols[0][1])
	}
}

// readValueRows parses the numeric columns of a date-indexed csv table.
func readValueRows(t *testing.T, fp string) [][]float64 {
	t.Helper()
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		t.Fatal(err)
	}
	var rows [][]float64
	for _, ln := range lns[1:] {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		sp := strings.Split(ln, ",")
		r := make([]float64, len(sp)-1)
		for j, s := range sp[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				v = math.NaN()
			}
			r[j] = v
		}
		rows = append(rows, r)
	}
	return rows
}

func matchTable(t *testing.T, name string, got, want [][]float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: %d rows, want %d", name, len(got), len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("%s row %d: %d columns, want %d", name, i, len(got[i]), len(want[i]))
		}
		for j := range want[i] {
			g, w := got[i][j], want[i][j]
			if math.IsNaN(w) != math.IsNaN(g) || (!math.IsNaN(w) && math.Abs(g-w) > tol) {
				t.Errorf("%s row %d col %d: %f, want %f", name, i, j, g, w)
			}
		}
	}
}

func TestEvaluateMC(t *testing.T) {
	tz := time.FixedZone("Etc/GMT-1", 3600)
	_, dts, cols, err := ReadSensorCsv("testdata/sm.csv", tz)
	if err != nil {
		t.Fatal(err)
	}
	s := rwu.Series{T: dts, V: cols[0]}
	eph := rwu.Location{Lat: 49.70764, Lon: 5.897638}
	prfx := filepath.Join(t.TempDir(), "mc.")

	if err := EvaluateMC(s, eph, 5, prfx); err != nil {
		t.Fatal(err)
	}
	for _, fn := range []string{"samplespace.csv", "mcsummary.csv"} {
		if _, err := os.Stat(prfx + fn); err != nil {
			t.Errorf("missing output %s: %v", fn, err)
		}
	}
}

func TestBatchRWU(t *testing.T) {
	// the written tables must reproduce the reference output to two decimals
	tz := time.FixedZone("Etc/GMT-1", 3600)
	loc := rwu.Location{Lat: 49.70764, Lon: 5.897638}
	prfx := filepath.Join(t.TempDir(), "rootwater.")

	if err := BatchRWU("testdata/sm.csv", loc, tz, true, prfx); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct{ out, golden string }{
		{"rwu.csv", "testdata/rwu_golden.csv"},
		{"rwu_nonight.csv", "testdata/rwu_nonight_golden.csv"},
		{"eval_nse.csv", "testdata/eval_nse_golden.csv"},
	} {
		got := readValueRows(t, prfx+tc.out)
		want := readValueRows(t, tc.golden)
		matchTable(t, tc.out, got, want, .01)
	}
}

func TestSapflowReference(t *testing.T) {
	// reference table in litres per hour, matched to two decimals
	tz := time.FixedZone("Etc/GMT-1", 3600)
	_, _, cols, err := ReadSensorCsv("dat/SV_test.csv", tz)
	if err != nil {
		t.Fatal(err)
	}
	qi, qm, qo, err := sapflow.Calc(cols[0], cols[1], cols[2], 32., .95, "beech")
	if err != nil {
		t.Fatal(err)
	}
	got := make([][]float64, len(qi))
	for i := range qi {
		got[i] = []float64{qi[i] / 1000., qm[i] / 1000., qo[i] / 1000.}
	}
	want := readValueRows(t, "testdata/sapflow_golden.csv")
	matchTable(t, "sapflow", got, want, .01)
}
