package scenario

import (
	"fmt"
	"io"
	"slices"

	"alignctl/internal/align"
)

// Scenario is one realignment case: a reference, a progress sequence,
// and optionally the exact sequence the run must produce. Without an
// expectation the run is still checked for success and consistency.
type Scenario struct {
	Name      string
	Reference []int
	Progress  []int
	Expect    []int
	HasExpect bool
}

// Result is the outcome of running one scenario.
type Result struct {
	Scenario Scenario
	Got      []int
	Err      error
	Pass     bool
}

// Summary aggregates a suite run.
type Summary struct {
	Run    int
	Passed int
	Failed int
	// Names of failed scenarios, in run order.
	Failures []string
}

func (s Summary) OK() bool {
	return s.Failed == 0
}

// Run realigns the scenario's progress against its reference and grades
// the outcome.
func Run(s Scenario) Result {
	got, err := align.Realign(s.Reference, s.Progress)
	res := Result{Scenario: s, Got: got, Err: err}
	if err != nil {
		return res
	}
	if !align.Consistent(s.Reference, got) {
		return res
	}
	if s.HasExpect && !slices.Equal(got, s.Expect) {
		return res
	}
	res.Pass = true
	return res
}

// RunSuite executes the scenarios in order, writing a per-scenario
// report (and trace tables when requested) to w.
func RunSuite(scenarios []Scenario, trace bool, w io.Writer) Summary {
	var sum Summary
	for i, s := range scenarios {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("scenario-%d", i+1)
		}
		if trace {
			fmt.Fprintf(w, "--- %s\n", name)
			fmt.Fprint(w, RenderTable(s.Reference, s.Progress))
		}
		res := Run(s)
		sum.Run++
		if res.Pass {
			sum.Passed++
			fmt.Fprintf(w, "[PASS] %s -> %q\n", name, FormatSeq(res.Got))
		} else {
			sum.Failed++
			sum.Failures = append(sum.Failures, name)
			switch {
			case res.Err != nil:
				fmt.Fprintf(w, "[FAIL] %s: %v\n", name, res.Err)
			case s.HasExpect && !slices.Equal(res.Got, s.Expect):
				fmt.Fprintf(w, "[FAIL] %s: got %q want %q\n", name, FormatSeq(res.Got), FormatSeq(s.Expect))
			default:
				fmt.Fprintf(w, "[FAIL] %s: result %q not consistent with reference\n", name, FormatSeq(res.Got))
			}
		}
		if trace && res.Err == nil {
			fmt.Fprint(w, RenderTable(s.Reference, res.Got))
		}
	}
	return sum
}
