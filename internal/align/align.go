package align

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

// Consistent reports whether progress already corresponds to reference:
// equal lengths, and every slot either a placeholder or the reference
// value at the same index.
func Consistent(ref, prog []int) bool {
	if len(ref) != len(prog) {
		return false
	}
	for i, v := range prog {
		if v != 0 && v != ref[i] {
			return false
		}
	}
	return true
}

// Realign patches progress so it corresponds positionally to reference
// again, preserving every completed marker whose identifier survived the
// reference change. The input slices are not modified; the patched
// progress is returned.
//
// The loop order matters: stale markers first (their slots must vanish
// before positions mean anything), then gap runs one edit at a time with
// a full re-scan between edits, then leftover surplus placeholders.
// Each loop is bounded; if the bound trips or the final check fails the
// inputs could not be reconciled and ErrUnreconcilable is returned.
func Realign(ref, prog []int) ([]int, error) {
	if err := Validate(ref, prog); err != nil {
		return nil, err
	}
	p := slices.Clone(prog)
	if Consistent(ref, p) {
		return p, nil
	}

	p = removeStale(ref, p)
	log.Debug().Msgf("align.Realign stale markers removed ref=%v progress=%v", ref, p)
	if Consistent(ref, p) {
		return p, nil
	}

	// Every successful edit shrinks some run's length mismatch by one,
	// and the total mismatch can never exceed the combined lengths.
	bound := 2*(len(ref)+len(p)) + 2
	for i := 0; ; i++ {
		if i > bound {
			return p, fmt.Errorf("%w: gap resolution did not converge after %d edits", ErrUnreconcilable, i)
		}
		edit, err := nextGapEdit(ref, p)
		if err != nil {
			return nil, err
		}
		if edit.IsZero() {
			break
		}
		if p, err = edit.Apply(p); err != nil {
			return nil, err
		}
		log.Debug().Msgf("align.Realign gap edit=%s progress=%v", edit, p)
	}

	for len(p) > len(ref) {
		edit := surplusEdit(ref, p)
		if edit.IsZero() {
			break
		}
		var err error
		if p, err = edit.Apply(p); err != nil {
			return nil, err
		}
		log.Debug().Msgf("align.Realign surplus edit=%s progress=%v", edit, p)
	}

	if !Consistent(ref, p) {
		return p, fmt.Errorf("%w: progress %v does not correspond to reference %v", ErrUnreconcilable, p, ref)
	}
	return p, nil
}
