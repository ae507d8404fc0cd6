// Package tally counts pass-filter observations of variants in each panel.
package tally

import (
	"fmt"
	"golang.org/x/exp/maps"
	"sort"
	"strconv"
	"strings"
)

// VariantKey identifies a variant site and allele across panels.
type VariantKey struct {
	Chrom string
	Pos   string
	Ref   string
	Alt   string
}

// KeyFromFields builds a VariantKey from columns 0, 1, 3, and 4 of a tab-split vcf data line.
func KeyFromFields(fields []string) (VariantKey, error) {
	if len(fields) < 5 {
		return VariantKey{}, fmt.Errorf("expected at least 5 columns to build variant key, found %d", len(fields))
	}
	return VariantKey{Chrom: fields[0], Pos: fields[1], Ref: fields[3], Alt: fields[4]}, nil
}

func (k VariantKey) String() string {
	return strings.Join([]string{k.Chrom, k.Pos, k.Ref, k.Alt}, "\t")
}

// Compare orders keys by chromosome, then numerically by position, then ref, then alt.
// Positions that are not integers are compared as strings.
func Compare(a, b VariantKey) int {
	if c := strings.Compare(a.Chrom, b.Chrom); c != 0 {
		return c
	}
	if c := comparePos(a.Pos, b.Pos); c != 0 {
		return c
	}
	if c := strings.Compare(a.Ref, b.Ref); c != 0 {
		return c
	}
	return strings.Compare(a.Alt, b.Alt)
}

func comparePos(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr != nil || bErr != nil:
		return strings.Compare(a, b)
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Tally maps each VariantKey to the number of pass-filter records observed per panel.
// Counts only grow. The zero value is not usable, use New.
type Tally struct {
	// MAP STRUCTURE:
	// key is the variant, second level key is the panel name,
	// second level value is the number of pass-filter records.
	// e.g. m[VariantKey{"1", "100", "A", "T"}]["exome"] == 3
	m map[VariantKey]map[string]int
}

func New() *Tally {
	return &Tally{m: make(map[VariantKey]map[string]int)}
}

// Increment adds one observation of k in panel.
func (t *Tally) Increment(k VariantKey, panel string) {
	t.add(k, panel, 1)
}

func (t *Tally) add(k VariantKey, panel string, n int) {
	panels, found := t.m[k]
	if !found {
		panels = make(map[string]int)
		t.m[k] = panels
	}
	panels[panel] += n
}

// Count returns the number of observations of k in panel and whether panel has any
// observation of k.
func (t *Tally) Count(k VariantKey, panel string) (int, bool) {
	count, found := t.m[k][panel]
	return count, found
}

// Len returns the number of distinct variants.
func (t *Tally) Len() int {
	return len(t.m)
}

// Keys returns all variants sorted by Compare.
func (t *Tally) Keys() []VariantKey {
	keys := maps.Keys(t.m)
	sort.Slice(keys, func(i, j int) bool { return Compare(keys[i], keys[j]) < 0 })
	return keys
}

// PanelCounts returns the counts of every variant observed in panel, ordered as Keys.
func (t *Tally) PanelCounts(panel string) []int {
	var ans []int
	for _, k := range t.Keys() {
		if count, found := t.m[k][panel]; found {
			ans = append(ans, count)
		}
	}
	return ans
}

// Merge adds all counts in other to t.
func (t *Tally) Merge(other *Tally) {
	for k, panels := range other.m {
		for panel, count := range panels {
			t.add(k, panel, count)
		}
	}
}
