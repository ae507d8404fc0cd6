package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/dasnellings/germlineRatio/prevalence"
	"io"
	"math"
	"os"
)

func usage(flags *flag.FlagSet) {
	fmt.Fprint(flags.Output(),
		"germlineRatio - Calculate the fraction of samples in each panel with each variant passing read support, allele frequency, and depth filters.\n"+
			"\tpanel509 and exome vcf files are read as mutect output, wgs vcf files are read as gatk output.\n\n"+
			"Usage:\n"+
			"  germlineRatio [options] -panel509 panel509.list -exome exome.list -wgs wgs.list -o output.tsv\n\n"+
			"Each list file contains the path to one vcf file per line.\n\n"+
			"Options:\n")
	flags.PrintDefaults()
}

// parseArgs reads the command line into prevalence.Settings.
func parseArgs(args []string, errOut io.Writer) (prevalence.Settings, error) {
	var s prevalence.Settings
	flags := flag.NewFlagSet("germlineRatio", flag.ContinueOnError)
	flags.SetOutput(errOut)
	flags.Usage = func() { usage(flags) }

	defaults := prevalence.DefaultThresholds()
	panel509 := flags.String("panel509", "", "File listing panel509 vcf files (mutect), one per line.")
	exome := flags.String("exome", "", "File listing exome vcf files (mutect), one per line.")
	wgs := flags.String("wgs", "", "File listing wgs vcf files (gatk), one per line.")
	flags.StringVar(&s.Output, "o", "", "Output TSV file. May be 'stdout'.")
	flags.StringVar(&s.Output, "out_file", "", "Output TSV file. Same as -o.")
	minSupport := flags.Uint("s", uint(defaults.MinSupport), "Minimum number of reads supporting the variant.")
	flags.Float64Var(&s.MinFreq, "f", defaults.MinFreq, "Minimum variant allele frequency.")
	minDepth := flags.Uint("d", uint(defaults.MinDepth), "Minimum read depth at the variant.")
	flags.IntVar(&s.Threads, "threads", 1, "Number of panels to read concurrently.")
	flags.StringVar(&s.SummaryFile, "summary", "", "Output a TSV file summarizing the prevalence of variants in each panel.")
	flags.StringVar(&s.PlotFile, "plot", "", "Output a histogram of variant prevalence in each panel. Format is set by extension (e.g. .pdf, .png, .svg).")
	flags.BoolVar(&s.Hist, "hist", false, "Print a histogram of variant prevalence in each panel to stderr.")
	flags.IntVar(&s.Verbose, "v", 0, "Verbose output by setting to >0.")

	err := flags.Parse(args)
	if err != nil {
		return s, err
	}

	// only panels given on the command line are declared, even with an empty path
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "panel509":
			s.Panel509 = panel509
		case "exome":
			s.Exome = exome
		case "wgs":
			s.Wgs = wgs
		}
	})

	switch {
	case *minSupport > math.MaxInt32 || *minDepth > math.MaxInt32:
		flags.Usage()
		return s, fmt.Errorf("\nERROR: -s and -d must be <= %d", math.MaxInt32)
	case s.Output == "":
		flags.Usage()
		return s, errors.New("\nERROR: must specify an output file with -o")
	case s.Threads < 1:
		flags.Usage()
		return s, errors.New("\nERROR: threads must be >= 1")
	case flags.NArg() > 0:
		flags.Usage()
		return s, fmt.Errorf("\nERROR: unexpected arguments: %v", flags.Args())
	}

	s.MinSupport = int(*minSupport)
	s.MinDepth = int(*minDepth)
	return s, nil
}

func main() {
	s, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		errExit(err.Error())
	}

	prevalence.Prevalence(s)
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
