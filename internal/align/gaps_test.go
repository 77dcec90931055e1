package align

import (
	"slices"
	"testing"
)

func TestFindGapsGroupsConsecutiveMisses(t *testing.T) {
	ref := []int{1, 5, 10, 15, 20}
	prog := []int{5, 15}
	got := findGaps(ref, prog)
	want := []gapRun{{0, 0}, {2, 2}, {4, 4}}
	if !slices.Equal(got, want) {
		t.Fatalf("findGaps: got %v want %v", got, want)
	}
}

func TestFindGapsTrailingRunEmittedAtScanEnd(t *testing.T) {
	got := findGaps([]int{1, 2, 3, 4}, []int{1, 0})
	want := []gapRun{{1, 3}}
	if !slices.Equal(got, want) {
		t.Fatalf("findGaps: got %v want %v", got, want)
	}
}

func TestFindGapsEmptyProgressIsOneRun(t *testing.T) {
	got := findGaps([]int{3, 13, 23}, nil)
	want := []gapRun{{0, 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("findGaps: got %v want %v", got, want)
	}
}

func TestFindGapsNoneWhenAllValuesPresent(t *testing.T) {
	if got := findGaps([]int{1, 2}, []int{2, 1, 0}); got != nil {
		t.Fatalf("expected no runs, got %v", got)
	}
	if got := findGaps(nil, []int{0, 5}); got != nil {
		t.Fatalf("empty reference: expected no runs, got %v", got)
	}
}

func TestGapRunClassification(t *testing.T) {
	refLen := 4
	cases := []struct {
		run      gapRun
		leading  bool
		trailing bool
	}{
		{gapRun{0, 1}, true, false},
		{gapRun{2, 3}, false, true},
		{gapRun{1, 2}, false, false},
		{gapRun{0, 3}, true, true},
	}
	for _, tc := range cases {
		if got := tc.run.leading(); got != tc.leading {
			t.Fatalf("%v leading = %v, want %v", tc.run, got, tc.leading)
		}
		if got := tc.run.trailing(refLen); got != tc.trailing {
			t.Fatalf("%v trailing = %v, want %v", tc.run, got, tc.trailing)
		}
	}
}
