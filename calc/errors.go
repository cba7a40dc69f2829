package calc

import (
	"errors"
	"fmt"
)

// Kind classifies an evaluation failure.
type Kind int

const (
	MismatchedParen Kind = iota + 1
	InvalidNumber
	DivisionByZero
	UnknownOperator
	TrailingInput // strict mode only
)

var (
	ErrMismatchedParen = errors.New("mismatched parentheses")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrTrailingInput   = errors.New("unexpected input after expression")
)

func (k Kind) sentinel() error {
	switch k {
	case MismatchedParen:
		return ErrMismatchedParen
	case InvalidNumber:
		return ErrInvalidNumber
	case DivisionByZero:
		return ErrDivisionByZero
	case UnknownOperator:
		return ErrUnknownOperator
	case TrailingInput:
		return ErrTrailingInput
	}
	return nil
}

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error reports the first failure of an evaluation and the byte offset into
// the input at which it was detected.
type Error struct {
	Kind   Kind
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// Unwrap makes errors.Is work against the Err* sentinels.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}
