package align

import "fmt"

// nextGapEdit computes at most one corrective edit for the first gap run
// that is not yet correctly sized. Returning a single edit per call is
// deliberate: applying it can reshuffle every later run, so the caller
// re-scans from scratch after each application.
func nextGapEdit(ref, prog []int) (Edit, error) {
	if Consistent(ref, prog) {
		return Edit{}, nil
	}
	if len(prog) == 0 && len(ref) > 0 {
		return InsertAfter(0), nil
	}

	for _, run := range findGaps(ref, prog) {
		edit, err := resolveRun(ref, prog, run)
		if err != nil {
			return Edit{}, err
		}
		if !edit.IsZero() {
			return edit, nil
		}
	}
	return Edit{}, nil
}

func resolveRun(ref, prog []int, run gapRun) (Edit, error) {
	leading := run.leading()
	trailing := run.trailing(len(ref))

	switch {
	case leading && trailing:
		// No anchors at all; only the lengths can disagree.
		switch {
		case len(prog) == len(ref):
			return Edit{}, nil
		case len(prog) < len(ref):
			return InsertAfter(0), nil
		default:
			return DeleteAt(1), nil
		}

	case leading:
		afterIdx := run.end + 1
		at := indexOf(prog, ref[afterIdx])
		if at < 0 {
			return Edit{}, fmt.Errorf("%w: leading run anchor %d missing from progress", ErrPrecondition, ref[afterIdx])
		}
		switch {
		case at == afterIdx:
			return Edit{}, nil
		case at < afterIdx:
			// too few placeholders at the head
			return InsertAfter(0), nil
		default:
			// too many placeholders at the head
			return DeleteAt(1), nil
		}

	case trailing:
		beforeIdx := run.start - 1
		at := lastIndexOf(prog, ref[beforeIdx])
		if at < 0 {
			return Edit{}, fmt.Errorf("%w: trailing run anchor %d missing from progress", ErrPrecondition, ref[beforeIdx])
		}
		fromEndRef := len(ref) - 1 - beforeIdx
		fromEndProg := len(prog) - 1 - at
		switch {
		case fromEndRef == fromEndProg:
			return Edit{}, nil
		case fromEndRef < fromEndProg:
			// too many placeholders at the tail
			return DeleteAt(len(prog)), nil
		default:
			// too few placeholders at the tail
			return InsertAfter(len(prog)), nil
		}

	default:
		beforeIdx := run.start - 1
		afterIdx := run.end + 1
		before := indexOf(prog, ref[beforeIdx])
		after := indexOf(prog, ref[afterIdx])
		if before < 0 || after < 0 {
			return Edit{}, fmt.Errorf("%w: interior run anchors %d..%d missing from progress", ErrPrecondition, ref[beforeIdx], ref[afterIdx])
		}
		spanRef := afterIdx - beforeIdx
		spanProg := after - before
		if spanProg < 1 {
			return Edit{}, fmt.Errorf("%w: anchors %d..%d out of order in progress", ErrPrecondition, ref[beforeIdx], ref[afterIdx])
		}
		switch {
		case spanRef == spanProg:
			return Edit{}, nil
		case spanRef < spanProg:
			// too many placeholders between the anchors
			return DeleteAt(before + 2), nil
		default:
			// too few placeholders between the anchors
			return InsertAfter(before + 1), nil
		}
	}
}

func indexOf(seq []int, v int) int {
	for i, x := range seq {
		if x == v {
			return i
		}
	}
	return -1
}

func lastIndexOf(seq []int, v int) int {
	for i := len(seq) - 1; i >= 0; i-- {
		if seq[i] == v {
			return i
		}
	}
	return -1
}
