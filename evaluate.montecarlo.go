package rootwater

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cojacoo/rootwater/rwu"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// sensitivity sample space of the estimator tunables
const (
	nMCdim      = 3
	diffLagLo   = 1.
	diffLagHi   = 6.
	slopeDiffLo = 1.
	slopeDiffHi = 5.
	maxDiffLo   = .05
	maxDiffHi   = .5
)

// EvaluateMC samples the estimator tunables by Latin hypercube and reports
// the sensitivity of the daily uptake estimates for one sensor series:
// per sample, the number of fully valid days and their mean uptake.
func EvaluateMC(s rwu.Series, eph rwu.Ephemeris, n int, outprfx string) error {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, nMCdim, false)

	func() { // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < nMCdim; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outprfx+"samplespace.csv", lns)
	}()

	csvw := mmio.NewCSVwriter(outprfx + "mcsummary.csv")
	defer csvw.Close()
	if err := csvw.WriteHead("sample,difflag,slopediff,maxdiff,nvalid,meanrwu"); err != nil {
		return fmt.Errorf("EvaluateMC: %v", err)
	}

	for k := 0; k < n; k++ {
		dl := int(mmaths.LinearTransform(diffLagLo, diffLagHi, sp.U[0][k]) + .5)
		sd := mmaths.LinearTransform(slopeDiffLo, slopeDiffHi, sp.U[1][k])
		md := mmaths.LinearTransform(maxDiffLo, maxDiffHi, sp.U[2][k])

		est := rwu.NewEstimator(eph)
		est.DiffLag, est.SlopeDiff, est.MaxDiff = dl, sd, md

		nv, sum := 0, 0.
		for _, d := range est.Estimate(s) {
			if d.StepControl == 1111 && !math.IsNaN(d.RWU) {
				nv++
				sum += d.RWU
			}
		}
		mean := math.NaN()
		if nv > 0 {
			mean = sum / float64(nv)
		}
		csvw.WriteLine(k, dl, sd, md, nv, mean)
	}
	return nil
}
