package eval

import (
	"fmt"

	"github.com/havrydotdev/lox/token"
	"github.com/havrydotdev/lox/value"
)

type ErrorKind uint8

const (
	TypeError ErrorKind = iota
	UndefinedVariable
)

func (k ErrorKind) String() string {
	if k == UndefinedVariable {
		return "UndefinedVariable"
	}

	return "TypeError"
}

// RuntimeError aborts the statement being executed. Token locates it in
// the source.
type RuntimeError struct {
	Token   token.Token
	Kind    ErrorKind
	Message string

	err error
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func (e *RuntimeError) Unwrap() error {
	return e.err
}

func typeError(op token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: op, Kind: TypeError, Message: fmt.Sprintf(format, args...)}
}

func undefined(name token.Token, err error) *RuntimeError {
	return &RuntimeError{Token: name, Kind: UndefinedVariable, Message: err.Error(), err: err}
}

func operandsError(op token.Token, want string, l, r value.Value) *RuntimeError {
	return typeError(op, "Operands of '%s' must be %s, got %v and %v.", op.Lexeme, want, l.Kind, r.Kind)
}
