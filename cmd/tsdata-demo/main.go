package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	tsdata "github.com/tsmlgo/go-tsdata"
	"github.com/tsmlgo/go-tsdata/simulate"
)

func main() {
	numInstances := flag.Int("instances", 20, "number of instances to simulate")
	numDimensions := flag.Int("dimensions", 2, "number of dimensions per instance")
	length := flag.Int("length", 128, "number of observations per series")
	missingRate := flag.Float64("missing", 0.0, "fraction of observations replaced with NaN")
	seed := flag.Uint64("seed", 42, "random seed")
	out := flag.String("out", "dataset.html", "output HTML chart path")
	maxCharts := flag.Int("max-charts", 8, "maximum number of instance charts to render")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	opt := simulate.NewDefaultOptions()
	opt.NumInstances = *numInstances
	opt.NumDimensions = *numDimensions
	opt.Length = *length
	opt.Classes = []string{"cylinder", "bell", "funnel"}
	opt.MissingRate = *missingRate
	opt.Seed = *seed

	ds, err := simulate.Dataset(opt)
	if err != nil {
		slog.Error("simulating dataset", "error", err.Error())
		os.Exit(1)
	}

	fmt.Printf("dataset %q: %d instances, %d classes\n", ds.Name(), ds.NumInstances(), ds.NumClasses())
	fmt.Printf("equal length: %t\n", ds.IsEqualLength())
	fmt.Printf("multivariate: %t\n", ds.IsMultivariate())
	fmt.Printf("has missing:  %t\n", ds.HasMissing())
	counts := ds.ClassCounts()
	for i, lbl := range ds.Vocabulary().Labels() {
		fmt.Printf("  %-12s %d\n", lbl, counts[i])
	}

	if err := tsdata.RenderHTML(tsdata.PageDataset(ds, *maxCharts), *out); err != nil {
		slog.Error("rendering charts", "error", err.Error())
		os.Exit(1)
	}
	fmt.Printf("charts written to %s\n", *out)
}
