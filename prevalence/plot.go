package prevalence

import (
	"errors"
	"fmt"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"strings"
)

// number of equal width bins over [0, 1]. Ratios above 1 are placed in the last bin.
const histBins = 10

var ErrNothingToPlot = errors.New("no variants passed filters in any panel")

// binRatios counts ratios in histBins equal width bins spanning [0, 1].
func binRatios(ratios []float64) []float64 {
	ans := make([]float64, histBins)
	var bin int
	for _, r := range ratios {
		bin = int(r * histBins)
		if bin >= histBins {
			bin = histBins - 1
		}
		if bin < 0 {
			bin = 0
		}
		ans[bin]++
	}
	return ans
}

func binLabels() []string {
	ans := make([]string, histBins)
	for i := range ans {
		ans[i] = fmt.Sprintf("%.1f", float64(i+1)/histBins)
	}
	return ans
}

// AsciiHistograms returns a terminal plot of the prevalence histogram of each panel
// with at least one variant.
func AsciiHistograms(r Result) string {
	s := new(strings.Builder)
	var ratios []float64
	for i := range r.Panels {
		ratios = r.Ratios(i)
		if len(ratios) == 0 {
			continue
		}
		s.WriteString(asciigraph.Plot(binRatios(ratios),
			asciigraph.Height(8),
			asciigraph.Precision(0),
			asciigraph.SeriesColors(asciigraph.AnsiColor(i+1)),
			asciigraph.Caption(fmt.Sprintf("%s: variants per prevalence bin (%d bins over 0-1, %d variants)", r.Panels[i].Name, histBins, len(ratios)))))
		s.WriteString("\n\n")
	}
	return s.String()
}

// PlotHistograms saves a grouped bar chart of the prevalence histogram of each panel.
// The image format is determined by the extension of file (e.g. .pdf, .png, .svg).
// Returns ErrNothingToPlot if no panel has any variants.
func PlotHistograms(file string, r Result) error {
	p := plot.New()
	p.Title.Text = "Variant prevalence"
	p.X.Label.Text = "Fraction of samples (bin upper bound)"
	p.Y.Label.Text = "Variants"

	barWidth := vg.Points(8)
	var plotted int
	var ratios []float64
	for i := range r.Panels {
		ratios = r.Ratios(i)
		if len(ratios) == 0 {
			continue
		}
		bars, err := plotter.NewBarChart(plotter.Values(binRatios(ratios)), barWidth)
		if err != nil {
			return err
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = vg.Length(plotted) * barWidth
		p.Add(bars)
		p.Legend.Add(r.Panels[i].Name, bars)
		plotted++
	}

	if plotted == 0 {
		return ErrNothingToPlot
	}

	p.Legend.Top = true
	p.NominalX(binLabels()...)
	return p.Save(20*vg.Centimeter, 12*vg.Centimeter, file)
}
