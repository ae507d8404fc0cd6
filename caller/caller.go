// Package caller extracts read depth, alternate allele support, and allele frequency from
// single VCF data lines written by the variant callers supported by germlineRatio.
package caller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a record is missing a column or sub-field, or when a
// numeric sub-field can not be parsed.
var ErrMalformed = errors.New("malformed vcf record")

// column of the first sample block in a vcf data line
const sampleCol = 9

// Evidence is the read evidence for the alternate allele of a single record.
type Evidence struct {
	Depth   int
	Support int
	Freq    float64
}

// Caller extracts Evidence from the tab-split fields of a vcf data line.
// Adding support for another variant caller means adding another Caller.
type Caller interface {
	Name() string
	Extract(fields []string) (Evidence, error)
}

// Gatk reads records from gatk HaplotypeCaller. FORMAT is expected to be GT:AD:...:DP:...
// with DP in the 4th position. The allele frequency is not stored in the record and is
// computed as alt reads / depth.
type Gatk struct{}

// Mutect reads records from mutect. FORMAT is expected to be GT:AD:...:DP:AF:...
// When the first sample block is a heterozygous call (0/1) the tumor sample is taken
// from the second sample block.
type Mutect struct{}

type unknown struct {
	name string
}

// ByName returns the Caller for the input name. Names other than "gatk" and "mutect" return a
// Caller that extracts zero evidence for every record.
func ByName(name string) Caller {
	switch name {
	case "gatk":
		return Gatk{}
	case "mutect":
		return Mutect{}
	default:
		return unknown{name: name}
	}
}

// Known reports whether c extracts evidence from records.
func Known(c Caller) bool {
	_, ok := c.(unknown)
	return !ok
}

func (Gatk) Name() string { return "gatk" }

func (Gatk) Extract(fields []string) (Evidence, error) {
	var ans Evidence
	var format []string
	var err error
	format, err = subFields(fields, sampleCol, 4)
	if err != nil {
		return ans, err
	}

	ans.Depth, err = parseCount(format[3], "depth")
	if err != nil {
		return ans, err
	}

	ad := strings.Split(format[1], ",")
	if len(ad) < 2 {
		return ans, fmt.Errorf("%w: allele depth %q has no alternate allele count", ErrMalformed, format[1])
	}
	ans.Support, err = parseCount(ad[1], "alternate allele depth")
	if err != nil {
		return ans, err
	}

	if ans.Support == 0 {
		ans.Freq = 0
	} else {
		ans.Freq = float64(ans.Support) / float64(ans.Depth)
	}
	return ans, nil
}

func (Mutect) Name() string { return "mutect" }

func (Mutect) Extract(fields []string) (Evidence, error) {
	var ans Evidence
	var err error
	if len(fields) <= sampleCol {
		return ans, fmt.Errorf("%w: expected at least %d columns, found %d", ErrMalformed, sampleCol+1, len(fields))
	}

	col := sampleCol
	if strings.Contains(fields[sampleCol], "0/1") {
		col = sampleCol + 1
	}

	var format []string
	format, err = subFields(fields, col, 5)
	if err != nil {
		return ans, err
	}

	ans.Depth, err = parseCount(format[3], "depth")
	if err != nil {
		return ans, err
	}

	ans.Freq, err = strconv.ParseFloat(format[4], 64)
	if err != nil {
		return ans, fmt.Errorf("%w: allele frequency: %v", ErrMalformed, err)
	}

	ad := strings.Split(format[1], ",")
	ans.Support, err = parseCount(ad[0], "alternate allele depth")
	if err != nil {
		return ans, err
	}
	return ans, nil
}

func (u unknown) Name() string { return u.name }

func (unknown) Extract(fields []string) (Evidence, error) {
	return Evidence{}, nil
}

// subFields splits the colon delimited sample block in column col and checks that it
// has at least minLen sub-fields.
func subFields(fields []string, col, minLen int) ([]string, error) {
	if len(fields) <= col {
		return nil, fmt.Errorf("%w: expected at least %d columns, found %d", ErrMalformed, col+1, len(fields))
	}
	ans := strings.Split(fields[col], ":")
	if len(ans) < minLen {
		return nil, fmt.Errorf("%w: sample block %q has %d fields, expected at least %d", ErrMalformed, fields[col], len(ans), minLen)
	}
	return ans, nil
}

func parseCount(s, name string) (int, error) {
	val, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}
	return int(val), nil
}
