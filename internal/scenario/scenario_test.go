package scenario

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"alignctl/internal/testutil/testlog"
)

func TestRunPassesOnConsistentResult(t *testing.T) {
	testlog.Start(t)
	res := Run(Scenario{
		Name:      "stale plus gap",
		Reference: []int{15, 20},
		Progress:  []int{5, 6, 15, 17, 0},
	})
	if res.Err != nil {
		t.Fatalf("run: %v", res.Err)
	}
	if !res.Pass {
		t.Fatalf("expected pass, got %+v", res)
	}
	if !slices.Equal(res.Got, []int{15, 0}) {
		t.Fatalf("got %v", res.Got)
	}
}

func TestRunChecksExpectation(t *testing.T) {
	s := Scenario{
		Reference: []int{1, 2, 3},
		Progress:  []int{1, 0},
		Expect:    []int{1, 0, 0},
		HasExpect: true,
	}
	if res := Run(s); !res.Pass {
		t.Fatalf("expected pass, got %+v", res)
	}

	s.Expect = []int{0, 0, 0}
	if res := Run(s); res.Pass {
		t.Fatalf("mismatched expectation must fail, got %v", res.Got)
	}
}

func TestRunFailsOnUnreconcilableInput(t *testing.T) {
	res := Run(Scenario{
		Reference: []int{1, 2},
		Progress:  []int{2, 1},
	})
	if res.Pass || res.Err == nil {
		t.Fatalf("expected failing result with error, got %+v", res)
	}
}

func TestRunSuiteSummaryAndReport(t *testing.T) {
	scenarios := []Scenario{
		{Name: "ok", Reference: []int{1, 2, 3}, Progress: []int{1, 0}},
		{Name: "bad", Reference: []int{1, 2}, Progress: []int{2, 1}},
		{Reference: []int{18}, Progress: []int{0}},
	}
	var out bytes.Buffer
	sum := RunSuite(scenarios, false, &out)

	if sum.Run != 3 || sum.Passed != 2 || sum.Failed != 1 {
		t.Fatalf("summary: %+v", sum)
	}
	if sum.OK() {
		t.Fatal("summary with a failure must not be OK")
	}
	if !slices.Equal(sum.Failures, []string{"bad"}) {
		t.Fatalf("failures: %v", sum.Failures)
	}
	report := out.String()
	if !strings.Contains(report, "[PASS] ok") || !strings.Contains(report, "[FAIL] bad") {
		t.Fatalf("report missing lines:\n%s", report)
	}
	if !strings.Contains(report, "[PASS] scenario-3") {
		t.Fatalf("unnamed scenario not defaulted:\n%s", report)
	}
}

func TestRunSuiteTraceRendersTables(t *testing.T) {
	var out bytes.Buffer
	RunSuite([]Scenario{{Name: "t", Reference: []int{1, 2}, Progress: []int{1, 0}}}, true, &out)
	if !strings.Contains(out.String(), "Reference") || !strings.Contains(out.String(), "Progress") {
		t.Fatalf("trace output missing table:\n%s", out.String())
	}
}

func TestRenderTableUnevenLengths(t *testing.T) {
	got := RenderTable([]int{15, 20}, []int{5, 6, 15, 17, 0})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header plus 5 rows, got %d:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[1], "15") || !strings.Contains(lines[1], "5") {
		t.Fatalf("first row wrong: %q", lines[1])
	}
	if strings.TrimSpace(lines[3]) != "15" {
		t.Fatalf("row past reference end must only show progress: %q", lines[3])
	}
}
