package tally

import (
	"strings"
	"testing"
)

func TestIncrement(t *testing.T) {
	a := VariantKey{"1", "100", "A", "T"}
	b := VariantKey{"1", "100", "A", "G"}
	m := New()
	m.Increment(a, "exome")
	m.Increment(a, "exome")
	m.Increment(a, "wgs")
	m.Increment(b, "wgs")

	if m.Len() != 2 {
		t.Error("expected 2 variants, found", m.Len())
	}
	if count, found := m.Count(a, "exome"); count != 2 || !found {
		t.Error("problem counting exome", count, found)
	}
	if count, found := m.Count(b, "exome"); count != 0 || found {
		t.Error("panel without observation should not be found", count, found)
	}
	if count, found := m.Count(VariantKey{"2", "1", "C", "G"}, "wgs"); count != 0 || found {
		t.Error("missing variant should not be found", count, found)
	}
}

func TestKeysSorted(t *testing.T) {
	m := New()
	keys := []VariantKey{
		{"2", "5", "A", "C"},
		{"1", "100", "A", "T"},
		{"1", "20", "G", "A"},
		{"1", "100", "A", "C"},
		{"10", "1", "T", "A"},
		{"1", "100", "AT", "A"},
	}
	for _, k := range keys {
		m.Increment(k, "panel509")
	}

	expected := []VariantKey{
		{"1", "20", "G", "A"},
		{"1", "100", "A", "C"},
		{"1", "100", "A", "T"},
		{"1", "100", "AT", "A"},
		{"10", "1", "T", "A"},
		{"2", "5", "A", "C"},
	}
	obs := m.Keys()
	if len(obs) != len(expected) {
		t.Fatal("wrong number of keys", obs)
	}
	for i := range obs {
		if obs[i] != expected[i] {
			t.Errorf("key %d: expected %v, found %v", i, expected[i], obs[i])
		}
	}
}

func TestComparePosFallback(t *testing.T) {
	if Compare(VariantKey{"1", "9", "A", "T"}, VariantKey{"1", "10", "A", "T"}) >= 0 {
		t.Error("positions should compare numerically")
	}
	if Compare(VariantKey{"1", "x", "A", "T"}, VariantKey{"1", "10", "A", "T"}) <= 0 {
		t.Error("non-numeric positions should compare as strings")
	}
	if Compare(VariantKey{"1", "10", "A", "T"}, VariantKey{"1", "10", "A", "T"}) != 0 {
		t.Error("equal keys should compare equal")
	}
}

func TestMerge(t *testing.T) {
	a := VariantKey{"1", "100", "A", "T"}
	b := VariantKey{"3", "7", "C", "G"}
	m1 := New()
	m1.Increment(a, "panel509")
	m2 := New()
	m2.Increment(a, "panel509")
	m2.Increment(a, "wgs")
	m2.Increment(b, "wgs")

	m1.Merge(m2)
	if count, _ := m1.Count(a, "panel509"); count != 2 {
		t.Error("problem merging counts", count)
	}
	if count, _ := m1.Count(b, "wgs"); count != 1 {
		t.Error("problem merging new key", count)
	}
	counts := m1.PanelCounts("wgs")
	if len(counts) != 2 || counts[0] != 1 || counts[1] != 1 {
		t.Error("problem with panel counts", counts)
	}
}

func TestKeyFromFields(t *testing.T) {
	k, err := KeyFromFields(strings.Split("chrX\t1234\trs1\tC\tT\t.\tPASS", "\t"))
	if err != nil || k != (VariantKey{"chrX", "1234", "C", "T"}) {
		t.Error("problem building key", k, err)
	}
	if k.String() != "chrX\t1234\tC\tT" {
		t.Error("problem with key string", k.String())
	}
	if _, err = KeyFromFields([]string{"chrX", "1234", "rs1", "C"}); err == nil {
		t.Error("expected error for short line")
	}
}
