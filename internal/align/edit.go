package align

import (
	"fmt"
	"slices"
)

type editOp int

const (
	opNone editOp = iota
	opInsert
	opDelete
)

// Edit is one corrective change to a progress sequence. Positions follow
// the external slot contract: 1-based, with inserts expressed as
// "insert after slot pos" (0 = prepend, len = append) and deletes as the
// absolute slot to remove. Callers that track physical slot identity
// depend on this convention staying exact.
//
// The zero Edit means "nothing to fix" and is reported by IsZero.
type Edit struct {
	op  editOp
	pos int
}

// InsertAfter builds an edit that inserts a placeholder after slot pos.
func InsertAfter(pos int) Edit {
	return Edit{op: opInsert, pos: pos}
}

// DeleteAt builds an edit that removes slot pos.
func DeleteAt(pos int) Edit {
	return Edit{op: opDelete, pos: pos}
}

func (e Edit) IsZero() bool {
	return e.op == opNone
}

// Signed reports the edit in the legacy signed-position form: pos >= 0
// inserts after that slot, pos < 0 deletes slot -pos. The second return
// is false for the zero Edit, which has no signed encoding.
func (e Edit) Signed() (int, bool) {
	switch e.op {
	case opInsert:
		return e.pos, true
	case opDelete:
		return -e.pos, true
	default:
		return 0, false
	}
}

func (e Edit) String() string {
	switch e.op {
	case opInsert:
		return fmt.Sprintf("insert-after(%d)", e.pos)
	case opDelete:
		return fmt.Sprintf("delete-at(%d)", e.pos)
	default:
		return "none"
	}
}

// Apply performs the edit on prog and returns the resulting sequence.
// Inserted slots are always placeholders. The input slice may be reused
// as backing storage, like append.
func (e Edit) Apply(prog []int) ([]int, error) {
	switch e.op {
	case opInsert:
		if e.pos < 0 || e.pos > len(prog) {
			return prog, fmt.Errorf("%w: insert after %d of %d", ErrBadEdit, e.pos, len(prog))
		}
		return slices.Insert(prog, e.pos, 0), nil
	case opDelete:
		if e.pos < 1 || e.pos > len(prog) {
			return prog, fmt.Errorf("%w: delete at %d of %d", ErrBadEdit, e.pos, len(prog))
		}
		return slices.Delete(prog, e.pos-1, e.pos), nil
	default:
		return prog, nil
	}
}
