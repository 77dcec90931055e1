package align

import "fmt"

// Validate checks the inputs the rest of the package assumes: a strictly
// ascending, positive reference and a non-negative progress sequence.
// Gap classification is undefined over anything weaker, so callers get a
// fail-fast ErrPrecondition instead of a silent wrong answer.
func Validate(ref, prog []int) error {
	prev := 0
	for i, v := range ref {
		if v <= 0 {
			return fmt.Errorf("%w: reference[%d]=%d must be positive", ErrPrecondition, i, v)
		}
		if v <= prev {
			return fmt.Errorf("%w: reference[%d]=%d not strictly ascending (previous %d)", ErrPrecondition, i, v, prev)
		}
		prev = v
	}
	for i, v := range prog {
		if v < 0 {
			return fmt.Errorf("%w: progress[%d]=%d must be non-negative", ErrPrecondition, i, v)
		}
	}
	return nil
}
