package caller

import (
	"errors"
	"strings"
	"testing"
)

func split(line string) []string {
	return strings.Split(line, "\t")
}

func TestGatkExtract(t *testing.T) {
	ev, err := Gatk{}.Extract(split("chr1\t100\t.\tA\tT\t50\tPASS\t.\tGT:AD:GQ:DP:PL\t0/1:12,8:99:20:200,0,300"))
	if err != nil {
		t.Fatal(err)
	}
	if ev.Depth != 20 || ev.Support != 8 || ev.Freq != 0.4 {
		t.Error("problem with gatk extraction", ev)
	}

	ev, err = Gatk{}.Extract(split("chr1\t100\t.\tA\tT\t50\tPASS\t.\tGT:AD:GQ:DP:PL\t0/0:20,0:99:20:0,60,900"))
	if err != nil {
		t.Fatal(err)
	}
	if ev.Depth != 20 || ev.Support != 0 || ev.Freq != 0 {
		t.Error("problem with gatk extraction of zero support", ev)
	}
}

func TestMutectExtract(t *testing.T) {
	// tumor only, sample block in column 9
	ev, err := Mutect{}.Extract(split("1\t100\t.\tA\tT\t.\tPASS\tSOMATIC\tGT:AD:BQ:DP:FA\t0:8,12:30:20:0.4"))
	if err != nil {
		t.Fatal(err)
	}
	if ev.Depth != 20 || ev.Support != 8 || ev.Freq != 0.4 {
		t.Error("problem with mutect extraction", ev)
	}

	// heterozygous call in column 9 moves the sample block to column 10
	ev, err = Mutect{}.Extract(split("1\t100\t.\tA\tT\t.\tPASS\tSOMATIC\tGT:AD:BQ:DP:FA\t0/1:30,1:30:31:0.03\t0:9,21:30:30:0.3"))
	if err != nil {
		t.Fatal(err)
	}
	if ev.Depth != 30 || ev.Support != 9 || ev.Freq != 0.3 {
		t.Error("problem with mutect extraction from second sample", ev)
	}
}

func TestMalformed(t *testing.T) {
	lines := []struct {
		c    Caller
		line string
	}{
		{Gatk{}, "chr1\t100\t.\tA\tT\t50\tPASS\t."},
		{Gatk{}, "chr1\t100\t.\tA\tT\t50\tPASS\t.\tGT:AD:GQ:DP\t0/1:12,8:99:x"},
		{Gatk{}, "chr1\t100\t.\tA\tT\t50\tPASS\t.\tGT:AD:GQ:DP\t0/1:12:99:20"},
		{Gatk{}, "chr1\t100\t.\tA\tT\t50\tPASS\t.\tGT:AD:GQ:DP\t0/1:12,-8:99:20"},
		{Mutect{}, "1\t100\t.\tA\tT\t.\tPASS\tSOMATIC\tGT:AD:BQ:DP:FA\t0:8,12:30:20:abc"},
		{Mutect{}, "1\t100\t.\tA\tT\t.\tPASS\tSOMATIC\tGT:AD:BQ:DP:FA\t0:8,12:30:20"},
		{Mutect{}, "1\t100\t.\tA\tT\t.\tPASS\tSOMATIC\tGT:AD:BQ:DP:FA\t0/1:8,12:30:20:0.4"},
	}

	for i := range lines {
		_, err := lines[i].c.Extract(split(lines[i].line))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("expected malformed error for %s line %d, got %v", lines[i].c.Name(), i, err)
		}
	}
}

func TestByName(t *testing.T) {
	if ByName("gatk").Name() != "gatk" || ByName("mutect").Name() != "mutect" {
		t.Error("problem looking up callers by name")
	}

	c := ByName("strelka")
	if Known(c) || !Known(Gatk{}) || !Known(Mutect{}) {
		t.Error("problem with Known")
	}

	ev, err := c.Extract(split("not\ta\tvcf\tline"))
	if err != nil || ev != (Evidence{}) {
		t.Error("unknown caller should extract zero evidence", ev, err)
	}
}
