package prevalence

import (
	"fmt"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"strings"
)

// WriteReportFile writes the prevalence table for r to output. Output may be "stdout"
// and is gzipped if it ends in .gz.
func WriteReportFile(output string, r Result) error {
	out := fileio.EasyCreate(output)
	err := WriteReport(out, r)
	closeErr := out.Close()
	if err != nil {
		return err
	}
	return closeErr
}

// WriteReport writes a header followed by one line per variant in r.Tally, sorted by
// tally.Compare. Each panel column holds the fraction of the panel's samples with the
// variant, or 0 if the variant was never observed in the panel.
func WriteReport(out io.Writer, r Result) error {
	var err error
	header := append([]string{"chrom", "pos", "ref", "alt"}, r.Names()...)
	_, err = fmt.Fprintln(out, strings.Join(header, "\t"))
	if err != nil {
		return err
	}

	s := new(strings.Builder)
	var count int
	var found bool
	for _, key := range r.Tally.Keys() {
		s.Reset()
		s.WriteString(key.String())
		for i := range r.Panels {
			s.WriteByte('\t')
			count, found = r.Tally.Count(key, r.Panels[i].Name)
			if !found {
				s.WriteByte('0')
				continue
			}
			s.WriteString(formatRatio(count, r.Samples[i]))
		}
		_, err = fmt.Fprintln(out, s.String())
		if err != nil {
			return err
		}
	}
	return nil
}

func formatRatio(count, samples int) string {
	return fmt.Sprintf("%.6g", float64(count)/float64(samples))
}
