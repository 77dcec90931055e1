// Package align owns progress-sequence realignment.
//
// Ownership boundary:
// - consistency checking between reference and progress
// - stale marker removal
// - gap detection and single-edit resolution
// - surplus placeholder removal
// - the convergence loop tying them together
//
// align never fabricates completed markers: the only values it writes
// into a progress sequence are placeholders (0). Parsing, file formats
// and reporting belong to internal/scenario and cmd/alignctl.
package align
