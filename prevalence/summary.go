package prevalence

import (
	"fmt"
	"github.com/vertgenlab/gonomics/fileio"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"io"
)

// PanelSummary describes the distribution of variant prevalence in a single panel.
type PanelSummary struct {
	Panel    string
	Caller   string
	Samples  int
	Variants int // variants observed at least once in the panel
	Mean     float64
	Sd       float64
	Max      float64
}

func Summarize(r Result) []PanelSummary {
	ans := make([]PanelSummary, len(r.Panels))
	var ratios []float64
	for i := range r.Panels {
		ratios = r.Ratios(i)
		ans[i] = PanelSummary{
			Panel:    r.Panels[i].Name,
			Caller:   r.Panels[i].Caller.Name(),
			Samples:  r.Samples[i],
			Variants: len(ratios),
		}
		if len(ratios) == 0 {
			continue
		}
		ans[i].Max = floats.Max(ratios)
		if len(ratios) == 1 {
			ans[i].Mean = ratios[0]
			continue
		}
		ans[i].Mean, ans[i].Sd = stat.MeanStdDev(ratios, nil)
	}
	return ans
}

func WriteSummaryFile(output string, sums []PanelSummary) error {
	out := fileio.EasyCreate(output)
	err := WriteSummary(out, sums)
	closeErr := out.Close()
	if err != nil {
		return err
	}
	return closeErr
}

func WriteSummary(out io.Writer, sums []PanelSummary) error {
	_, err := fmt.Fprintln(out, "panel\tcaller\tsamples\tvariants\tmeanPrevalence\tsdPrevalence\tmaxPrevalence")
	if err != nil {
		return err
	}
	for _, s := range sums {
		_, err = fmt.Fprintf(out, "%s\t%s\t%d\t%d\t%.6g\t%.6g\t%.6g\n", s.Panel, s.Caller, s.Samples, s.Variants, s.Mean, s.Sd, s.Max)
		if err != nil {
			return err
		}
	}
	return nil
}
