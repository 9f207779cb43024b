package exprtree

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is matched by every *ParseError.
	ErrMalformed = errors.New("malformed token sequence")
	// ErrUndefinedVariable is matched by every *UndefinedVariableError.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrDivisionByZero is returned by Evaluate when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("integer divide by zero")
)

// Error represents an error while parsing a token sequence.
//
// The error will contain the index of the offending token if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position is the zero-based index of the token the error occurred at, or the length of the
	// input if it occurred at the end.
	Position() int
}

// ParseError is returned by FromPostfix and FromInfix when a token sequence does not reduce to
// exactly one tree.
type ParseError struct {
	Msg   string
	Index int
	Token string
}

var _ Error = &ParseError{}

// Errorf creates a new ParseError at the given token index.
func Errorf(index int, token string, format string, args ...interface{}) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Index: index, Token: token}
}

func (p *ParseError) Message() string { return p.Msg } // nolint: golint
func (p *ParseError) Position() int   { return p.Index } // nolint: golint

func (p *ParseError) Error() string {
	if p.Token == "" {
		return fmt.Sprintf("token %d: %s", p.Index, p.Msg)
	}
	return fmt.Sprintf("token %d %q: %s", p.Index, p.Token, p.Msg)
}

// Is allows errors.Is(err, ErrMalformed).
func (p *ParseError) Is(target error) bool { return target == ErrMalformed }

// UndefinedVariableError is returned by Evaluate when a variable has no assignment.
type UndefinedVariableError struct {
	Name string
}

func (u *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", u.Name)
}

// Is allows errors.Is(err, ErrUndefinedVariable).
func (u *UndefinedVariableError) Is(target error) bool { return target == ErrUndefinedVariable }
