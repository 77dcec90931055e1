package align

import "slices"

// gapRun is a maximal span of reference indices whose values occur
// nowhere in progress. Indices are 0-based and inclusive.
type gapRun struct {
	start int
	end   int
}

func (g gapRun) leading() bool {
	return g.start == 0
}

// trailing is checked independently of leading: a run can be both, which
// means progress holds no matched anchor at all.
func (g gapRun) trailing(refLen int) bool {
	return g.end == refLen-1
}

// findGaps scans reference in order and groups consecutive positions
// whose values are absent from progress into runs. Stale markers must
// already have been removed for the result to mean anything.
func findGaps(ref, prog []int) []gapRun {
	var runs []gapRun
	inRun := false
	var run gapRun
	for i, v := range ref {
		if slices.Contains(prog, v) {
			if inRun {
				runs = append(runs, run)
				inRun = false
			}
			continue
		}
		if !inRun {
			run = gapRun{start: i, end: i}
			inRun = true
		} else {
			run.end = i
		}
	}
	if inRun {
		runs = append(runs, run)
	}
	return runs
}
