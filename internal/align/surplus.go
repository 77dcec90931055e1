package align

// surplusEdit finds one removable placeholder when progress is still
// longer than reference after gap resolution closed every run. It walks
// matched anchors forward from a cursor: while reference and progress
// agree on an anchor's position the surplus must sit later, and the
// first anchor progress holds too far ahead pins a placeholder right
// before it. One deletion per call; the caller re-invokes until the
// lengths agree.
func surplusEdit(ref, prog []int) Edit {
	if len(prog) > len(ref) && allPlaceholders(prog) {
		return DeleteAt(1)
	}

	start := 0
	lastProgAt := -1
	for {
		progAt, refAt, ok := nextAnchor(start, ref, prog)
		if !ok {
			// No anchors past the cursor; the slot after the last one
			// is a placeholder if anything is.
			if start > 0 && lastProgAt+1 < len(prog) && prog[lastProgAt+1] == 0 {
				return DeleteAt(lastProgAt + 2)
			}
			return Edit{}
		}
		switch {
		case progAt == refAt:
			if refAt == len(ref)-1 && progAt+2 <= len(prog) {
				return DeleteAt(progAt + 2)
			}
			if refAt == len(ref)-1 {
				return Edit{}
			}
			start = refAt + 1
			lastProgAt = progAt
		case progAt > refAt:
			if prog[progAt-1] == 0 {
				return DeleteAt(progAt)
			}
			start = refAt + 1
			lastProgAt = progAt
		default:
			if start > 0 && progAt+1 < len(prog) && prog[progAt+1] == 0 {
				return DeleteAt(progAt + 2)
			}
			return Edit{}
		}
	}
}

// nextAnchor locates the first non-zero progress value at or after the
// cursor and the slot holding the same value in reference, both 0-based.
// ok is false when either side has no such value.
func nextAnchor(start int, ref, prog []int) (progAt, refAt int, ok bool) {
	progAt = -1
	for i := start; i < len(prog); i++ {
		if prog[i] != 0 {
			progAt = i
			break
		}
	}
	if progAt < 0 {
		return -1, -1, false
	}
	for i := start; i < len(ref); i++ {
		if ref[i] == prog[progAt] {
			return progAt, i, true
		}
	}
	return -1, -1, false
}

func allPlaceholders(prog []int) bool {
	for _, v := range prog {
		if v != 0 {
			return false
		}
	}
	return true
}
