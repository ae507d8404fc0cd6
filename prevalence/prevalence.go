// Package prevalence calculates the fraction of samples in each panel that carry each
// variant passing read support, allele frequency, and depth filters.
package prevalence

import (
	"errors"
	"fmt"
	"github.com/dasnellings/germlineRatio/tally"
	"github.com/vertgenlab/gonomics/exception"
	"golang.org/x/sync/errgroup"
	"log"
	"os"
)

// Settings holds all options for a Prevalence run.
type Settings struct {
	Panel509 *string // list of mutect vcf files, nil if not declared
	Exome    *string // list of mutect vcf files, nil if not declared
	Wgs      *string // list of gatk vcf files, nil if not declared
	Output   string
	Thresholds
	Threads     int
	SummaryFile string
	PlotFile    string
	Hist        bool
	Verbose     int
}

// Result is the output of aggregating all panels. Samples[i] is the number of
// sample files read for Panels[i].
type Result struct {
	Panels  []Panel
	Samples []int
	Tally   *tally.Tally
}

// Names returns the panel names in registry order.
func (r Result) Names() []string {
	ans := make([]string, len(r.Panels))
	for i := range r.Panels {
		ans[i] = r.Panels[i].Name
	}
	return ans
}

// Ratios returns the prevalence of each variant observed in panel i, ordered as Tally.Keys.
func (r Result) Ratios(i int) []float64 {
	counts := r.Tally.PanelCounts(r.Panels[i].Name)
	ans := make([]float64, len(counts))
	for j := range counts {
		ans[j] = float64(counts[j]) / float64(r.Samples[i])
	}
	return ans
}

// Run aggregates each panel in order. When threads > 1, up to threads panels are read
// concurrently into separate tallies that are merged in panel order once all are done.
func Run(panels []Panel, th Thresholds, threads, verbose int) (Result, error) {
	ans := Result{
		Panels:  panels,
		Samples: make([]int, len(panels)),
		Tally:   tally.New(),
	}

	var err error
	if threads <= 1 {
		for i := range panels {
			if verbose > 0 {
				log.Printf("reading %s vcf files listed in %s\n", panels[i].Name, panels[i].ListFile)
			}
			ans.Samples[i], err = AggregatePanel(panels[i].ListFile, panels[i].Name, panels[i].Caller, th, ans.Tally, verbose)
			if err != nil {
				return ans, err
			}
		}
		return ans, nil
	}

	tallies := make([]*tally.Tally, len(panels))
	g := new(errgroup.Group)
	g.SetLimit(threads)
	for i := range panels {
		i := i
		tallies[i] = tally.New()
		g.Go(func() error {
			if verbose > 0 {
				log.Printf("spawned thread to read %s vcf files listed in %s\n", panels[i].Name, panels[i].ListFile)
			}
			var err error
			ans.Samples[i], err = AggregatePanel(panels[i].ListFile, panels[i].Name, panels[i].Caller, th, tallies[i], verbose)
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return ans, err
	}

	for i := range tallies {
		ans.Tally.Merge(tallies[i])
	}
	return ans, nil
}

// Prevalence aggregates the panels declared in s, writes the prevalence table to s.Output,
// and writes any optional summary and histogram outputs. Panics on error.
func Prevalence(s Settings) {
	var err error
	panels := Registry(s.Panel509, s.Exome, s.Wgs)
	if len(panels) == 0 {
		log.Println("WARNING: no panels were declared. Output will only contain a header.")
	}

	res, err := Run(panels, s.Thresholds, s.Threads, s.Verbose)
	exception.PanicOnErr(err)
	if s.Verbose > 0 {
		log.Printf("found %d variants passing filters\n", res.Tally.Len())
	}

	err = WriteReportFile(s.Output, res)
	exception.PanicOnErr(err)

	if s.SummaryFile != "" {
		err = WriteSummaryFile(s.SummaryFile, Summarize(res))
		exception.PanicOnErr(err)
	}

	if s.Hist {
		fmt.Fprint(os.Stderr, AsciiHistograms(res))
	}

	if s.PlotFile != "" {
		err = PlotHistograms(s.PlotFile, res)
		if errors.Is(err, ErrNothingToPlot) {
			log.Printf("WARNING: no variants passed filters. %s was not created.\n", s.PlotFile)
		} else {
			exception.PanicOnErr(err)
		}
	}
}
