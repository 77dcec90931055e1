package align

import (
	"slices"
	"testing"
)

func TestPossiblesListsStaleMarkersInOrder(t *testing.T) {
	got := possibles([]int{5, 6, 15, 17, 0}, []int{15, 20})
	want := []int{5, 6, 17}
	if !slices.Equal(got, want) {
		t.Fatalf("possibles: got %v want %v", got, want)
	}
}

func TestPossiblesIgnoresPlaceholders(t *testing.T) {
	if got := possibles([]int{0, 0, 0}, []int{1, 2}); got != nil {
		t.Fatalf("placeholders are never stale, got %v", got)
	}
}

func TestRemoveStaleDeletesSlotsEntirely(t *testing.T) {
	got := removeStale([]int{15, 20}, []int{5, 6, 15, 17, 0})
	want := []int{15, 0}
	if !slices.Equal(got, want) {
		t.Fatalf("removeStale: got %v want %v", got, want)
	}
}

func TestRemoveStaleAgainstEmptyReference(t *testing.T) {
	got := removeStale(nil, []int{0, 5, 0})
	want := []int{0, 0}
	if !slices.Equal(got, want) {
		t.Fatalf("removeStale: got %v want %v", got, want)
	}
}

func TestRemoveStaleNoopWhenAllMarkersValid(t *testing.T) {
	prog := []int{0, 10, 15, 0}
	got := removeStale([]int{5, 10, 15, 20}, slices.Clone(prog))
	if !slices.Equal(got, prog) {
		t.Fatalf("removeStale: got %v want %v", got, prog)
	}
}
