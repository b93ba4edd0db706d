package body

import "errors"

var (
	ErrInvalidBody   = errors.New("invalid body")
	ErrDuplicateBody = errors.New("duplicate body name")
	ErrUnknownParent = errors.New("unknown parent body")
	ErrParentCycle   = errors.New("parent cycle")
	ErrNoBodies      = errors.New("no bodies")
)
