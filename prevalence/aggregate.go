package prevalence

import (
	"fmt"
	"github.com/dasnellings/germlineRatio/caller"
	"github.com/dasnellings/germlineRatio/tally"
	"log"
	"strings"
)

// AggregatePanel reads the sample vcf files listed in listFile and increments t once for
// every record that passes th. Sample files that can not be opened are skipped with a
// warning and are not counted. The number of sample files read is returned.
//
// A list file that can not be read or a malformed record returns an error.
func AggregatePanel(listFile, panel string, c caller.Caller, th Thresholds, t *tally.Tally, verbose int) (int, error) {
	list, err := openLines(listFile)
	if err != nil {
		return 0, fmt.Errorf("could not open vcf list file for %s: %w", panel, err)
	}
	defer cleanup(list)

	if !caller.Known(c) {
		log.Printf("WARNING: unrecognized variant caller '%s' for %s. Records will be treated as having no read support.\n", c.Name(), panel)
	}

	var samples int
	var opened bool
	var sampleFile string
	for list.Scan() {
		sampleFile = strings.TrimSuffix(list.Text(), "\r")
		opened, err = aggregateSample(sampleFile, panel, c, th, t, verbose)
		if err != nil {
			return samples, err
		}
		if opened {
			samples++
		}
	}
	if err = list.Err(); err != nil {
		return samples, fmt.Errorf("problem reading vcf list file %s: %w", listFile, err)
	}

	if verbose > 0 {
		log.Printf("finished %s: %d samples\n", panel, samples)
	}
	return samples, nil
}

// aggregateSample returns false if file could not be opened.
func aggregateSample(file, panel string, c caller.Caller, th Thresholds, t *tally.Tally, verbose int) (bool, error) {
	in, err := openLines(file)
	if err != nil {
		log.Printf("WARNING: problem opening %s. Skipping sample.\n%v\n", file, err)
		return false, nil
	}
	defer cleanup(in)

	var lineNum, passed int
	var line string
	var fields []string
	var ev caller.Evidence
	var key tally.VariantKey
	for in.Scan() {
		lineNum++
		line = in.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields = strings.Split(strings.TrimSpace(line), "\t")
		ev, err = c.Extract(fields)
		if err != nil {
			return true, fmt.Errorf("%s line %d: %w", file, lineNum, err)
		}

		if !th.Pass(ev) {
			continue
		}

		key, err = tally.KeyFromFields(fields)
		if err != nil {
			return true, fmt.Errorf("%s line %d: %w", file, lineNum, err)
		}
		t.Increment(key, panel)
		passed++
	}
	if err = in.Err(); err != nil {
		return true, fmt.Errorf("problem reading %s: %w", file, err)
	}

	if verbose > 1 {
		log.Printf("%s\t%s\t%d records passed filters\n", panel, file, passed)
	}
	return true, nil
}
