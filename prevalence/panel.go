package prevalence

import (
	"github.com/dasnellings/germlineRatio/caller"
)

// Panel is a named set of samples called with the same variant caller.
type Panel struct {
	Name     string
	Caller   caller.Caller
	ListFile string // file with the path to one sample vcf per line
}

// Registry returns the declared panels in the fixed order panel509, exome, wgs.
// A panel is declared when its list file is non-nil, even if the path is empty.
// Panels panel509 and exome are called with mutect and wgs is called with gatk.
func Registry(panel509, exome, wgs *string) []Panel {
	var ans []Panel
	if panel509 != nil {
		ans = append(ans, Panel{Name: "panel509", Caller: caller.ByName("mutect"), ListFile: *panel509})
	}
	if exome != nil {
		ans = append(ans, Panel{Name: "exome", Caller: caller.ByName("mutect"), ListFile: *exome})
	}
	if wgs != nil {
		ans = append(ans, Panel{Name: "wgs", Caller: caller.ByName("gatk"), ListFile: *wgs})
	}
	return ans
}

// Thresholds are the minimum values a record must meet to be counted.
// Records exactly at a threshold pass.
type Thresholds struct {
	MinSupport int
	MinFreq    float64
	MinDepth   int
}

func DefaultThresholds() Thresholds {
	return Thresholds{MinSupport: 4, MinFreq: 0.2, MinDepth: 15}
}

func (th Thresholds) Pass(ev caller.Evidence) bool {
	return ev.Support >= th.MinSupport && ev.Freq >= th.MinFreq && ev.Depth >= th.MinDepth
}
