package cmd

import (
	"flag"
	"testing"
)

func TestEstimateFlagsDefaults(t *testing.T) {
	// The default flags must describe a valid deal end to end.
	var e estimateFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	e.register(f)
	if err := f.Parse(nil); err != nil {
		t.Fatalf("parsing default flags: %v", err)
	}

	summary, err := e.summary()
	if err != nil {
		t.Fatalf("estimating with default flags: %v", err)
	}
	if summary.InitialCapital <= 0 {
		t.Errorf("initial capital = %.2f, want positive", summary.InitialCapital)
	}
	if summary.TermYears != 7 {
		t.Errorf("term = %d years, want 7", summary.TermYears)
	}
}

func TestEstimateFlagsReplacement(t *testing.T) {
	var e estimateFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	e.register(f)
	if err := f.Parse([]string{"-replacement", "3150000"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	a, err := e.assumptions()
	if err != nil {
		t.Fatalf("building assumptions: %v", err)
	}
	if a.Replacement == nil || *a.Replacement != 3_150_000 {
		t.Errorf("replacement not carried into the assumptions: %v", a.Replacement)
	}
}

func TestEstimateFlagsBadPolicy(t *testing.T) {
	var e estimateFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	e.register(f)
	if err := f.Parse([]string{"-policy", "nonsense"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	if _, err := e.assumptions(); err == nil {
		t.Error("expected an error for an unknown interest policy")
	}
}

func TestParseHorizons(t *testing.T) {
	tests := []struct {
		flag    string
		want    []int
		wantErr bool
	}{
		{flag: "", want: nil},
		{flag: "5", want: []int{5}},
		{flag: "2, 5,10", want: []int{2, 5, 10}},
		{flag: "2,x", wantErr: true},
	}
	for _, tc := range tests {
		c := sweepCmd{horizons: tc.flag}
		got, err := c.parseHorizons()
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseHorizons(%q): expected error", tc.flag)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseHorizons(%q): %v", tc.flag, err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("parseHorizons(%q) = %v, want %v", tc.flag, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("parseHorizons(%q) = %v, want %v", tc.flag, got, tc.want)
				break
			}
		}
	}
}
