package calc

import (
	"errors"
	"strconv"
)

// Structural errors. Parse and evaluation errors unwrap to one of these, so
// errors.Is matches either kind.
var (
	ErrExpectedOperand            = errors.New("expected operand")
	ErrExpectedOperator           = errors.New("expected operator")
	ErrExpectedClosingParentheses = errors.New("expected closing parentheses")
)

// ParseError is an error indicating input that does not follow the
// expression grammar. It implements InputError.
type ParseError struct {
	// Col is the position of the rune where the parser gave up, or one past
	// the last rune if the input ended early.
	Col int
	// Err is ErrExpectedOperand, ErrExpectedOperator, or
	// ErrExpectedClosingParentheses.
	Err error
}

func (err *ParseError) Error() string {
	return errpos(err.Col, err.Err.Error())
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

func (err *ParseError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the rune that caused the error.
	Pos() int
}

var _ InputError = (*ParseError)(nil)
