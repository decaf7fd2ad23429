package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cojacoo/rootwater"
	"github.com/cojacoo/rootwater/rwu"
	"github.com/cojacoo/rootwater/sapflow"
	"github.com/maseology/mmio"
)

func main() {

	// defaults: the Attert basin beech stand the toolbox was built against
	var (
		smFP     = "dat/SM_test.csv"
		svFP     = "dat/SV_test.csv"
		outPrfx  = "out/rootwater."
		lat, lon = 49.70764, 5.897638
		tzoffset = 3600 // Etc/GMT-1
		radius   = 32.
		perc     = .95
		tree     = "beech"
	)
	if len(os.Args) > 1 { // control file override
		ins := mmio.NewInstruct(os.Args[1])
		if v, ok := ins.Param["smfp"]; ok {
			smFP = v[0]
		}
		if v, ok := ins.Param["svfp"]; ok {
			svFP = v[0]
		}
		if v, ok := ins.Param["outprfx"]; ok {
			outPrfx = v[0]
		}
		if v, ok := ins.Param["lat"]; ok {
			lat, _ = strconv.ParseFloat(v[0], 64)
		}
		if v, ok := ins.Param["lon"]; ok {
			lon, _ = strconv.ParseFloat(v[0], 64)
		}
		if v, ok := ins.Param["radius"]; ok {
			radius, _ = strconv.ParseFloat(v[0], 64)
		}
		if v, ok := ins.Param["tree"]; ok {
			tree = v[0]
		}
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nrootwater run complete")

	tz := time.FixedZone("Etc/GMT-1", tzoffset)
	loc := rwu.Location{Lat: lat, Lon: lon}

	// daily root water uptake per soil-moisture sensor
	if err := rootwater.BatchRWU(smFP, loc, tz, true, outPrfx); err != nil {
		log.Fatalf(" BatchRWU failed: %v", err)
	}
	tt.Print("RWU estimation complete\n")

	// sap velocity to volumetric sap flow
	names, dts, cols, err := rootwater.ReadSensorCsv(svFP, tz)
	if err != nil {
		log.Fatalf(" ReadSensorCsv failed: %v", err)
	}
	if len(cols) < 3 {
		log.Fatalf(" sap velocity table %s needs inner, mid and outer columns", svFP)
	}
	qi, qm, qo, err := sapflow.Calc(cols[0], cols[1], cols[2], radius, perc, tree)
	if err != nil {
		log.Fatalf(" sapflow.Calc failed: %v", err)
	}
	mmio.WriteCsvDateFloats(outPrfx+"sapflow.csv", "date,"+names[0]+","+names[1]+","+names[2], dts, qi, qm, qo)
	tt.Print("sap flow conversion complete\n")
}
