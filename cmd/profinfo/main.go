// Command profinfo measures and prints the instrumental profile of a
// synthetic calibration lamp spectrum.
//
// Usage:
//
//	profinfo [flags]
//
// The lamp is described as a comma-separated list of emission lines, each
// given as center:height:stdev on the wavelength axis.
//
// Examples:
//
//	profinfo
//	profinfo -lines 25:1:0.5,75:2:1.5 -delta 0.05
//	profinfo -noise 0.01 -seed 3 -upper 5
//	profinfo -all
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectro/measure/instprofile"
	"github.com/cwbudde/algo-spectro/spectral/synth"
	profstats "github.com/cwbudde/algo-spectro/stats/profile"
)

func main() {
	start := flag.Float64("start", 0, "wavelength axis start")
	step := flag.Float64("step", 0.1, "wavelength axis spacing")
	samples := flag.Int("samples", 1000, "number of samples on the axis")
	lines := flag.String("lines", "25:1:0.5,75:2:1.5", "emission lines as center:height:stdev,...")
	delta := flag.Float64("delta", 0.05, "hysteresis threshold for peak detection")
	noise := flag.Float64("noise", 0, "white noise amplitude added to the spectrum")
	seed := flag.Int64("seed", 1, "noise random seed")
	seedStdev := flag.Float64("seed-stdev", 0, "initial stdev guess for line fits (0 = default)")
	upper := flag.Float64("upper", 0, "reject lines with FWHM at or above this value (0 = disabled)")
	all := flag.Bool("all", false, "show every fitted line including rejected ones")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: profinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Measures the instrumental profile of a synthetic lamp spectrum.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  profinfo -lines 25:1:0.5,75:2:1.5 -delta 0.05\n")
		fmt.Fprintf(os.Stderr, "  profinfo -noise 0.01 -seed 3 -upper 5\n")
		fmt.Fprintf(os.Stderr, "  profinfo -all\n")
	}
	flag.Parse()

	lamp, err := parseLines(*lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	x, err := synth.Axis(*start, *step, *samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	g := synth.NewGenerator(synth.WithSeed(*seed))

	flux, err := g.Lamp(x, lamp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *noise > 0 {
		n, err := g.WhiteNoise(*noise, len(flux))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := synth.Add(flux, n); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	prof := instprofile.NewProfiler(instprofile.Config{
		SeedStdev:  *seedStdev,
		UpperLimit: *upper,
	})

	if *all {
		printFits(prof, x, flux, *delta)
		return
	}

	printProfile(prof, x, flux, *delta)
}

func parseLines(spec string) ([]synth.Line, error) {
	var lines []synth.Line

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %q: want center:height:stdev", part)
		}

		vals := make([]float64, 3)
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("line %q: %w", part, err)
			}
			vals[i] = v
		}

		lines = append(lines, synth.Line{Center: vals[0], Height: vals[1], Stdev: vals[2]})
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("no emission lines given")
	}

	return lines, nil
}

func printProfile(prof *instprofile.Profiler, x, flux []float64, delta float64) {
	points, err := prof.Profile(x, flux, delta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Wavelength\tFWHM\tR\n")
	fmt.Fprintf(tw, "----------\t----\t-\n")

	for _, p := range points {
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.1f\n", p.Wavelength, p.FWHM, p.Wavelength/p.FWHM)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	s := profstats.Calculate(points)
	if s.Count == 0 {
		fmt.Println("no lines measured")
		return
	}

	fmt.Printf("\n%d lines, FWHM %.4f..%.4f (median %.4f, mean %.4f +/- %.4f), mean R %.1f\n",
		s.Count, s.MinFWHM, s.MaxFWHM, s.MedianFWHM, s.MeanFWHM, s.StdevFWHM, s.MeanResolvingPower)
}

func printFits(prof *instprofile.Profiler, x, flux []float64, delta float64) {
	fits, err := prof.Fits(x, flux, delta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Mean\tHeight\tStdev\tFWHM\tStatus\n")
	fmt.Fprintf(tw, "----\t------\t-----\t----\t------\n")

	for _, f := range fits {
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\t%.4f\t%s\n",
			f.Params.Mean,
			f.Params.Amplitude,
			f.Params.Stdev,
			instprofile.FWHM(f.Params.Stdev),
			f.Status,
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
