// Package scenario owns the realignment harness glue.
//
// Ownership boundary:
// - literal "1,4,8,9" sequence parsing
// - scenario and suite models
// - run execution, pass/fail checks, summary reporting
// - side-by-side trace rendering
//
// The algorithm itself lives in internal/align; nothing here affects
// its correctness.
package scenario
