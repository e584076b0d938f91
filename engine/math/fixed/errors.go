package fixed

import (
	"fmt"

	"github.com/spaghettifunk/geom3/engine/core"
)

// ArithmeticError is returned by the checked operations and used as the
// panic value of the unchecked ones. Err is one of core.ErrOverflow,
// core.ErrDivisionByZero or core.ErrInvalidShift.
type ArithmeticError struct {
	Op   string
	Type string
	Err  error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Type, e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

func newError(typ, op string, err error) *ArithmeticError {
	return &ArithmeticError{Op: op, Type: typ, Err: err}
}

// must panics with err, logging it first.
func must[T any](v T, err error) T {
	if err != nil {
		core.LogError(err.Error())
		panic(err)
	}
	return v
}
