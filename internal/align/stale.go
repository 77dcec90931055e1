package align

import "slices"

// possibles lists the non-zero values of suspect that occur nowhere in
// reference, in suspect order.
func possibles(suspect, reference []int) []int {
	var out []int
	for _, v := range suspect {
		if v != 0 && !slices.Contains(reference, v) {
			out = append(out, v)
		}
	}
	return out
}

// removeStale deletes every progress slot holding a marker whose value
// no longer exists in reference. The slot vanishes entirely rather than
// being zeroed: a disappeared identifier can never be the right answer
// for any position, and position-based gap reasoning needs it gone.
func removeStale(ref, prog []int) []int {
	for stale := possibles(prog, ref); len(stale) > 0; stale = possibles(prog, ref) {
		at := indexOf(prog, stale[0])
		if at < 0 {
			break
		}
		prog = slices.Delete(prog, at, at+1)
	}
	return prog
}
