package core

import (
	"errors"
)

var (
	ErrOverflow        = errors.New("arithmetic overflow")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrDegenerateInput = errors.New("degenerate geometric input")
	ErrInvalidShift    = errors.New("fixed point shift out of range")
	ErrUnknownScalar   = errors.New("unknown scalar kind")
)
