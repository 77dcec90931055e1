package align

import "errors"

var (
	ErrPrecondition   = errors.New("align: precondition violation")
	ErrUnreconcilable = errors.New("align: unreconcilable state")
	ErrBadEdit        = errors.New("align: edit position out of range")
)
