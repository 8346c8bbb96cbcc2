package mathexpr

import "errors"

var (
	ErrEmptyExpression   = errors.New("empty expression")
	ErrInvalidExpression = errors.New("invalid arithmetic expression")
	ErrDivisionByZero    = errors.New("division by zero")
)
